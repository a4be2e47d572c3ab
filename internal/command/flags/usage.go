// Package flags formats the help text of decconst commands.
package flags

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Usage returns txt followed by the options registered on flags.
func Usage(txt string, flags *flag.FlagSet) string {
	u := &Usager{
		Usage: txt,
		Flags: flags,
	}
	return u.String()
}

type Usager struct {
	Usage string
	Flags *flag.FlagSet
}

func (u *Usager) String() string {
	out := new(bytes.Buffer)
	out.WriteString(strings.TrimSpace(u.Usage))
	out.WriteString("\n")
	out.WriteString("\n")

	if u.Flags != nil {
		var hasFlags bool
		u.Flags.VisitAll(func(*flag.Flag) { hasFlags = true })
		if hasFlags {
			printTitle(out, "Command Options")
			u.Flags.VisitAll(func(f *flag.Flag) {
				printFlag(out, f)
			})
		}
	}

	return strings.TrimRight(out.String(), "\n")
}

// printTitle prints a consistently-formatted title to the given writer.
func printTitle(w io.Writer, s string) {
	fmt.Fprintf(w, "%s\n\n", s)
}

// printFlag prints a single flag to the given writer.
func printFlag(w io.Writer, f *flag.Flag) {
	example, _ := flag.UnquoteUsage(f)
	if example != "" {
		fmt.Fprintf(w, "  -%s=<%s>\n", f.Name, example)
	} else {
		fmt.Fprintf(w, "  -%s\n", f.Name)
	}

	fmt.Fprintf(w, "%s\n\n", indent(f.Usage, 5))
}

// indent prefixes every line of s with pad spaces.
func indent(s string, pad int) string {
	prefix := strings.Repeat(" ", pad)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = prefix + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
