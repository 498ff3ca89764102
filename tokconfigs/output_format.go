package tokconfigs

import (
	"fmt"

	"github.com/tokenlang/tok/cmds"
	"github.com/tokenlang/tok/configs"
	"github.com/tokenlang/tok/vars"
)

// OutputFormat selects how scanned tokens are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

var formatFlag = cmds.Var[string]("-format")

func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	format := OutputFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "output_format"),
		string(FormatText),
	))
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		panic(fmt.Errorf("unknown output format: %s", format))
	}
	return format
}
