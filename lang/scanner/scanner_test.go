package scanner_test

import (
	"testing"

	"github.com/loxrun/loxrun/lang/scanner"
	"github.com/loxrun/loxrun/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanSourceBasic(t *testing.T) {
	toks, err := scanner.ScanSource("t.lox", []byte(`var a = 1 + 2.5; // comment
print a;`))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.VAR, token.IDENT, token.EQUAL, token.NUMBER, token.PLUS, token.NUMBER, token.SEMICOLON,
		token.PRINT, token.IDENT, token.SEMICOLON, token.EOF,
	}, kinds(toks))
	assert.Equal(t, 2.5, toks[5].Literal)
}

func TestScanSourceString(t *testing.T) {
	toks, err := scanner.ScanSource("t.lox", []byte(`"hello world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanSourceUnterminatedString(t *testing.T) {
	_, err := scanner.ScanSource("t.lox", []byte(`"unterminated`))
	require.Error(t, err)
	el, ok := err.(token.ErrorList)
	require.True(t, ok)
	require.Len(t, el, 1)
	assert.Contains(t, el[0].Msg, "unterminated string")
}

func TestScanSourceIllegalChar(t *testing.T) {
	toks, err := scanner.ScanSource("t.lox", []byte(`var a = 1 $ 2;`))
	require.Error(t, err)
	assert.Contains(t, kinds(toks), token.ILLEGAL)
}

func TestScanSourceKeywordsVsIdents(t *testing.T) {
	toks, err := scanner.ScanSource("t.lox", []byte(`and classy fun`))
	require.NoError(t, err)
	assert.Equal(t, token.AND, toks[0].Kind)
	assert.Equal(t, token.IDENT, toks[1].Kind, "classy must not be mistaken for class")
	assert.Equal(t, token.FUN, toks[2].Kind)
}
