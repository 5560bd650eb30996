package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/loxrun/loxrun/lang/scanner"
	"github.com/loxrun/loxrun/lang/token"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

// TokenizeFiles scans each file and prints its token stream.
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			continue
		}
		toks, err := scanner.ScanSource(name, src)
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s %q\n", tok.Kind, tok.Lexeme)
		}
		if err != nil {
			token.PrintError(stdio.Stderr, err)
			failed = true
		}
	}
	if failed {
		return dataError{fmt.Errorf("tokenize: one or more files failed")}
	}
	return nil
}
