// Package maincmd wires the CLI surface onto the lang/* pipeline: argument
// parsing and sub-command dispatch via github.com/mna/mainer, the same shape
// as the teacher's own internal/maincmd.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "loxrun"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<command>] [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the loxrun scripting language.

With no <command>, 'run' is assumed: no <path> starts a REPL, one <path>
executes that file, more than one is a usage error.

The <command> can be one of:
       run                       Resolve and execute a script, or start a
                                 REPL if no path is given.
       tokenize                  Run the scanner phase and print the
                                 resulting tokens.
       parse                     Run the parser phase and print the
                                 resulting abstract syntax tree.
       resolve                   Run the parser and resolver phases and
                                 print the AST annotated with scope
                                 distances.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the loxrun CLI entry point, driven by mainer's reflection-based
// flag parser and sub-command dispatch.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

// Validate resolves the requested sub-command, defaulting to "run" when the
// first argument isn't a known command name (so `loxrun script.lox` and
// `loxrun` with no arguments both work without spelling out "run").
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	commands := buildCmds(c)

	cmdName := "run"
	cmdArgs := c.args
	if len(c.args) > 0 {
		if _, ok := commands[c.args[0]]; ok {
			cmdName = c.args[0]
			cmdArgs = c.args[1:]
		}
	}

	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if cmdName == "run" && len(cmdArgs) > 1 {
		return errors.New("run: at most one script path may be given")
	}
	if (cmdName == "tokenize" || cmdName == "parse" || cmdName == "resolve") && len(cmdArgs) == 0 {
		return fmt.Errorf("%s: at least one file must be provided", cmdName)
	}

	c.args = cmdArgs
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return exitUsageError
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args); err != nil {
		switch err.(type) {
		case usageError:
			return exitUsageError
		case dataError:
			return exitDataError
		case runtimeErrorKind:
			return exitRuntimeError
		default:
			return mainer.Failure
		}
	}
	return mainer.Success
}

// The original jlox CLI distinguishes usage errors (sysexits EX_USAGE, 64),
// data errors from a bad scan/parse/resolve phase (EX_DATAERR, 65) and
// runtime errors raised while executing an otherwise well-formed program
// (EX_SOFTWARE, 70). These wrapper types let Main recover that distinction
// from the single error each sub-command returns.
const (
	exitUsageError   mainer.ExitCode = 64
	exitDataError    mainer.ExitCode = 65
	exitRuntimeError mainer.ExitCode = 70
)

type usageError struct{ error }
type dataError struct{ error }
type runtimeErrorKind struct{ error }

func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
