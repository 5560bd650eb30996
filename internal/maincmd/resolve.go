package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/parser"
	"github.com/loxrun/loxrun/lang/resolver"
	"github.com/loxrun/loxrun/lang/token"
)

func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFiles(stdio, args...)
}

// ResolveFiles parses and resolves each file and prints the AST annotated
// with each variable reference's scope distance.
func ResolveFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			continue
		}

		stmts, perr := parser.Parse(name, src)
		if perr != nil {
			// cannot resolve an AST that failed to parse
			token.PrintError(stdio.Stderr, perr)
			failed = true
			continue
		}

		table, rerr := resolver.Resolve(name, stmts)
		printer := ast.Printer{Output: stdio.Stdout}
		if table != nil {
			printer.Resolved = table.Distance
		}
		if err := printer.Print(stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		if rerr != nil {
			token.PrintError(stdio.Stderr, rerr)
			failed = true
		}
	}
	if failed {
		return dataError{fmt.Errorf("resolve: one or more files failed")}
	}
	return nil
}
