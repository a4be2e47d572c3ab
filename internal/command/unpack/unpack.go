package unpack

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/govalues/decimal96"
	"github.com/govalues/decimal96/internal/command/flags"
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
	json bool
}

func (c *cmd) init() {
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.BoolVar(&c.json, "json", false,
		"Output the unpacked constant as JSON.")
	c.help = flags.Usage(help, c.flags)
}

type output struct {
	Value     string `json:"value"`
	Scale     int    `json:"scale"`
	Negative  bool   `json:"negative"`
	Flags     uint32 `json:"flags"`
	Hi        uint32 `json:"hi"`
	Mid       uint32 `json:"mid"`
	Lo        uint32 `json:"lo"`
	WellKnown string `json:"well_known,omitempty"`
}

func (c *cmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	args = c.flags.Args()
	switch len(args) {
	case 0:
		c.UI.Error("Missing BITS argument")
		return 1
	case 1:
	default:
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 1, got %d)", len(args)))
		return 1
	}

	b, err := decimal96.ParseBits(args[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error parsing %q: %s", args[0], err))
		return 1
	}
	d, err := decimal96.NewFromBits(b)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error unpacking %q: %s", args[0], err))
		return 1
	}

	out := output{
		Value:    d.String(),
		Scale:    b.Scale(),
		Negative: b.IsNeg(),
		Flags:    b.Flags,
		Hi:       b.Hi,
		Mid:      b.Mid,
		Lo:       b.Lo,
	}
	if w, ok := d.WellKnown(); ok {
		out.WellKnown = w.String()
	}

	if c.json {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			c.UI.Error(fmt.Sprintf("Error encoding output: %s", err))
			return 1
		}
		c.UI.Output(string(data))
		return 0
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 2, 6, ' ', 0)
	fmt.Fprintf(tw, "Value\t%s\n", out.Value)
	fmt.Fprintf(tw, "Scale\t%d\n", out.Scale)
	fmt.Fprintf(tw, "Negative\t%t\n", out.Negative)
	fmt.Fprintf(tw, "Words\tlo=0x%08x mid=0x%08x hi=0x%08x flags=0x%08x\n", out.Lo, out.Mid, out.Hi, out.Flags)
	if out.WellKnown != "" {
		fmt.Fprintf(tw, "WellKnown\t%s\n", out.WellKnown)
	}
	if err := tw.Flush(); err != nil {
		c.UI.Error(fmt.Sprintf("Error rendering output: %s", err))
		return 1
	}
	c.UI.Output(strings.TrimRight(buf.String(), "\n"))
	return 0
}

func (c *cmd) Synopsis() string {
	return synopsis
}

func (c *cmd) Help() string {
	return c.help
}

const synopsis = "Unpacks the words of a packed decimal"
const help = `
Usage: decconst unpack [options] BITS

  Unpacks a decimal from its four 32-bit words and prints its value.

  BITS is 32 hexadecimal digits holding the words lo, mid, hi and flags
  in that order, each as 8 big-endian digits, which is the order of the
  runtime's GetBits method and the output of "decconst eval".

  To unpack -1.712:

    $ decconst unpack 000006b0000000000000000080030000
`
