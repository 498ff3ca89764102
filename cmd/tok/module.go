package main

import (
	"github.com/reusee/dscope"
	"github.com/tokenlang/tok/tokconfigs"
)

type Module struct {
	dscope.Module
	Configs tokconfigs.Module
}
