// Command decconst folds constant decimal expressions and prints their
// canonical values and packed words.
package main

import (
	"fmt"
	"os"

	"github.com/govalues/decimal96/internal/command"
	"github.com/mitchellh/cli"
)

// Version is the version of decconst.
const Version = "0.1.0"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI("decconst", Version)
	c.Args = os.Args[1:]
	c.Commands = command.Commands(ui)
	c.HelpWriter = os.Stdout

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("Error executing CLI: %v", err))
		return 1
	}
	return exitCode
}
