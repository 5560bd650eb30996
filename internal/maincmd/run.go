package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mna/mainer"

	"github.com/loxrun/loxrun/internal/config"
	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/interp"
	"github.com/loxrun/loxrun/lang/parser"
	"github.com/loxrun/loxrun/lang/resolver"
	"github.com/loxrun/loxrun/lang/token"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return usageError{err}
	}
	if len(args) == 1 {
		return RunFile(stdio, cfg, args[0])
	}
	return RunREPL(ctx, stdio, cfg)
}

func wallClock() float64 { return float64(time.Now().UnixNano()) / 1e9 }

// RunFile resolves and executes a single script. Per spec.md §9's
// resolve-then-run open question, loxrun takes the stricter original jlox
// behavior: any resolver error aborts execution without running any part of
// the program (see DESIGN.md).
func RunFile(stdio mainer.Stdio, cfg config.Config, name string) error {
	src, err := os.ReadFile(name)
	if err != nil {
		return usageError{err}
	}

	stmts, perr := parser.Parse(name, src)
	if perr != nil {
		token.PrintError(stdio.Stderr, perr)
		return dataError{perr}
	}

	table, rerr := resolver.Resolve(name, stmts)
	if rerr != nil {
		token.PrintError(stdio.Stderr, rerr)
		return dataError{rerr}
	}

	it := interp.New(stdio.Stdout, name, table, wallClock)
	if err := it.Interpret(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return runtimeErrorKind{err}
	}
	return nil
}

// RunREPL reads one line at a time, resolving and executing each as its own
// program against a persistent interpreter, printing a runtime error to
// stderr and continuing on the next line rather than exiting — the original
// jlox's main.rs REPL loop behavior (see SPEC_FULL.md "REPL behavior").
func RunREPL(ctx context.Context, stdio mainer.Stdio, cfg config.Config) error {
	it := interp.New(stdio.Stdout, "<repl>", nil, wallClock)
	scanner := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		stmts, perr := parser.Parse("<repl>", []byte(line))
		if perr != nil {
			token.PrintError(stdio.Stderr, perr)
			continue
		}

		table, rerr := resolver.Resolve("<repl>", stmts)
		if rerr != nil {
			token.PrintError(stdio.Stderr, rerr)
			continue
		}
		it.SetTable(table)

		if cfg.EchoResolved {
			printer := ast.Printer{Output: stdio.Stdout, Resolved: table.Distance}
			_ = printer.Print(stmts)
		}

		if err := it.Interpret(stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			// continue the loop rather than aborting the session
		}
	}
}
