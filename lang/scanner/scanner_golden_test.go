package scanner_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loxrun/loxrun/internal/filetest"
	"github.com/loxrun/loxrun/lang/scanner"
)

var updateGolden = false

func TestScanGoldenFiles(t *testing.T) {
	const inDir = "testdata/in"
	const outDir = "testdata/out"

	for _, fi := range filetest.SourceFiles(t, inDir, ".lox") {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(inDir, fi.Name()))
			if err != nil {
				t.Fatal(err)
			}

			toks, _ := scanner.ScanSource(fi.Name(), src)

			var sb strings.Builder
			for _, tok := range toks {
				fmt.Fprintf(&sb, "%s %q\n", tok.Kind, tok.Lexeme)
			}

			filetest.DiffOutput(t, fi, sb.String(), outDir, &updateGolden)
		})
	}
}
