// Package subcmd wraps flag.FlagSet with usage rendering that knows
// about positional arguments.
package subcmd

import (
	"flag"
	"fmt"
	"os"
)

const program = "gigography"

func New(name, doc string) *Subcommand {
	sc := &Subcommand{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	sc.FlagSet.Usage = func() {
		argSuffix := ""
		for _, arg := range sc.args {
			argSuffix += fmt.Sprintf(" <%s>", arg.name)
		}
		fmt.Fprintf(os.Stderr, "\n"+doc+"\n\n")
		fmt.Fprintf(os.Stderr, "  %s %s [flags]%s\n\n", program, name, argSuffix)
		fmt.Fprintf(os.Stderr, "flags:\n")
		sc.FlagSet.PrintDefaults()
		for _, arg := range sc.args {
			fmt.Fprintf(os.Stderr, "  <%s> %s\n", arg.name, arg.typename)
			fmt.Fprintf(os.Stderr, "  \t%s\n", arg.usage)
		}
	}
	return sc
}

type Subcommand struct {
	*flag.FlagSet
	args []arg
}

type arg struct {
	name     string
	typename string
	usage    string
}

// SetArg documents a positional argument. Call it once per argument,
// in order; parsing itself is still up to the caller via Args().
func (sc *Subcommand) SetArg(name, typname, usage string) *Subcommand {
	sc.args = append(sc.args, arg{name, typname, usage})
	return sc
}
