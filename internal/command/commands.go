// Package command registers the decconst commands.
package command

import (
	"github.com/govalues/decimal96/internal/command/eval"
	"github.com/govalues/decimal96/internal/command/unpack"
	"github.com/mitchellh/cli"
)

// Commands returns the mapping of all the available decconst commands.
func Commands(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"eval":   func() (cli.Command, error) { return eval.New(ui), nil },
		"unpack": func() (cli.Command, error) { return unpack.New(ui), nil },
	}
}
