package tokconfigs

import (
	"github.com/reusee/dscope"
	"github.com/tokenlang/tok/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
