package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	names := make(map[*Command][]string)
	for name, command := range p.commands {
		names[command] = append(names[command], name)
	}

	var commands []*Command
	for command, ns := range names {
		slices.Sort(ns)
		names[command] = ns
		commands = append(commands, command)
	}
	slices.SortFunc(commands, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, command := range commands {
		fmt.Fprintf(os.Stdout, "%s\n", strings.Join(names[command], " | "))
		if command.Description != "" {
			fmt.Fprintf(os.Stdout, "\t%s\n", command.Description)
		}
	}
}
