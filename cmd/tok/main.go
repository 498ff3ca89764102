package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/tokenlang/tok/cmds"
	"github.com/tokenlang/tok/logs"
	"github.com/tokenlang/tok/modes"
	"github.com/tokenlang/tok/tokconfigs"
	"github.com/tokenlang/tok/toklang"
	"golang.org/x/term"
)

var filePatterns = cmds.Collect[string]("-file")

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		format tokconfigs.OutputFormat,
		showPositions tokconfigs.ShowPositions,
	) {
		ctx, _ := newSpan(ctx, "")

		failed := false
		for _, source := range readSources() {
			logger.DebugContext(ctx, "scan",
				"source", source.Name,
				"len", len(source.Content),
			)

			tokens, err := toklang.ScanAll(source)
			ce(printTokens(os.Stdout, tokens, format, showPositions))
			if err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}
	})
}

func readSources() []*toklang.Source {
	var sources []*toklang.Source

	for _, pattern := range *filePatterns {
		paths, err := filepath.Glob(pattern)
		if err != nil || len(paths) == 0 {
			// not a pattern, take it verbatim
			paths = []string{pattern}
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err == nil && info.IsDir() {
				continue
			}
			content, err := os.ReadFile(path)
			ce(err)
			sources = append(sources, toklang.NewSource(path, string(content)))
		}
	}

	if len(sources) == 0 {
		sources = append(sources, toklang.NewSource("stdin", string(getStdinContent())))
	}

	return sources
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
