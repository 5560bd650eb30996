package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/parser"
	"github.com/loxrun/loxrun/lang/token"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(stdio, args...)
}

// ParseFiles parses each file and prints its AST.
func ParseFiles(stdio mainer.Stdio, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout}

	var failed bool
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			continue
		}
		stmts, perr := parser.Parse(name, src)
		if err := printer.Print(stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		if perr != nil {
			token.PrintError(stdio.Stderr, perr)
			failed = true
		}
	}
	if failed {
		return dataError{fmt.Errorf("parse: one or more files failed")}
	}
	return nil
}
