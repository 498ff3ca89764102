package tokconfigs

import (
	"github.com/tokenlang/tok/cmds"
	"github.com/tokenlang/tok/configs"
)

// ShowPositions prefixes each printed token with name:line:column.
type ShowPositions bool

var positionsFlag = cmds.Switch("-positions")

func (Module) ShowPositions(
	loader configs.Loader,
) ShowPositions {
	if *positionsFlag {
		return true
	}
	return ShowPositions(configs.First[bool](loader, "show_positions"))
}
