package eval

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/govalues/decimal96/internal/command/flags"
	"github.com/govalues/decimal96/internal/constexpr"
	"github.com/govalues/decimal96/internal/logging"
	"github.com/mitchellh/cli"
)

func New(ui cli.Ui) *cmd {
	c := &cmd{UI: ui}
	c.init()
	return c
}

type cmd struct {
	UI    cli.Ui
	flags *flag.FlagSet
	help  string

	// flags
	logLevel string
	logJSON  bool
	json     bool
	steps    bool
}

func (c *cmd) init() {
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.StringVar(&c.logLevel, "log-level", logging.LogLevelDefault(),
		"Minimum `level` of the log lines written to the error stream. "+
			"Defaults to the value of "+logging.EnvLogLevel+" or WARN.")
	c.flags.BoolVar(&c.logJSON, "log-json", false,
		"Write log lines as JSON.")
	c.flags.BoolVar(&c.json, "json", false,
		"Output the folded constant as JSON.")
	c.flags.BoolVar(&c.steps, "steps", false,
		"Output every folding step.")
	c.help = flags.Usage(help, c.flags)
}

// Write sends log lines to the error stream of the UI.
func (c *cmd) Write(p []byte) (n int, err error) {
	c.UI.Error(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

type output struct {
	Expression string   `json:"expression"`
	Value      string   `json:"value,omitempty"`
	Bits       string   `json:"bits,omitempty"`
	WellKnown  string   `json:"well_known,omitempty"`
	Relation   string   `json:"relation,omitempty"`
	Truth      *bool    `json:"truth,omitempty"`
	Steps      []string `json:"steps,omitempty"`
}

func (c *cmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	args = c.flags.Args()
	if len(args) == 0 {
		c.UI.Error("Missing EXPR argument")
		return 1
	}
	expr := strings.Join(args, " ")

	logger, err := logging.Setup(logging.Config{
		LogLevel: c.logLevel,
		LogJSON:  c.logJSON,
		Name:     "decconst",
	}, c)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	res, err := constexpr.NewFolder(logger).Fold(expr)
	if diags := constexpr.Diagnostics(err); len(diags) > 0 {
		for _, d := range diags {
			c.UI.Error(fmt.Sprintf("Error folding %q: %v", expr, d))
		}
		return 1
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error folding %q: %v", expr, err))
		return 1
	}

	out := output{Expression: expr}
	if c.steps {
		for _, s := range res.Steps {
			out.Steps = append(out.Steps, s.String())
		}
	}
	if res.IsRelation() {
		out.Relation = res.Relation.String()
		out.Truth = &res.Truth
	} else {
		out.Value = res.Value.String()
		out.Bits = res.Value.Bits().String()
		if w, ok := res.Value.WellKnown(); ok {
			out.WellKnown = w.String()
		}
	}

	if c.json {
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			c.UI.Error(fmt.Sprintf("Error encoding output: %s", err))
			return 1
		}
		c.UI.Output(string(b))
		return 0
	}

	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 0, 2, 6, ' ', 0)
	for i, s := range out.Steps {
		fmt.Fprintf(tw, "Step %d\t%s\n", i+1, s)
	}
	if out.Truth != nil {
		fmt.Fprintf(tw, "Relation\t%s\n", out.Relation)
		fmt.Fprintf(tw, "Result\t%t\n", *out.Truth)
	} else {
		fmt.Fprintf(tw, "Value\t%s\n", out.Value)
		fmt.Fprintf(tw, "Bits\t%s\n", out.Bits)
		fmt.Fprintf(tw, "Scale\t%d\n", res.Value.Scale())
		wellKnown := out.WellKnown
		if wellKnown == "" {
			wellKnown = "none"
		}
		fmt.Fprintf(tw, "WellKnown\t%s\n", wellKnown)
	}
	if err := tw.Flush(); err != nil {
		c.UI.Error(fmt.Sprintf("Error rendering output: %s", err))
		return 1
	}
	c.UI.Output(strings.TrimRight(b.String(), "\n"))
	return 0
}

func (c *cmd) Synopsis() string {
	return synopsis
}

func (c *cmd) Help() string {
	return c.help
}

const synopsis = "Folds a constant decimal expression"
const help = `
Usage: decconst eval [options] EXPR...

  Folds a constant expression of decimal literals written in prefix
  notation and prints the canonical value and its packed words.

  Operators are + - * / % for binary arithmetic, neg, plus, inc (++)
  and dec (--) for unary arithmetic, and == != < <= > >= for a
  comparison of two operands at the start of the expression.

  To fold 10 * (1.23 + 4.56):

    $ decconst eval '* 10 + 1.23 4.56'

  An expression that starts with a minus sign must follow "--":

    $ decconst eval -- -1.5

  Every failing literal or operation is reported, not only the first.
`
