package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	for lit, want := range keywords {
		t.Run(lit, func(t *testing.T) {
			assert.Equal(t, want, LookupIdent(lit))
		})
	}
	assert.Equal(t, IDENT, LookupIdent("notAKeyword"))
	assert.Equal(t, IDENT, LookupIdent(""))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "+", PLUS.String())
	assert.Equal(t, "'and'", AND.GoString())
	assert.Equal(t, "end of file", EOF.String())
	assert.Equal(t, "unknown token", Kind(127).String())
}

func TestPosRoundTrip(t *testing.T) {
	p := MakePos(42, 7)
	line, col := p.LineCol()
	require.Equal(t, 42, line)
	require.Equal(t, 7, col)
	assert.False(t, p.Unknown())
	assert.True(t, Pos(0).Unknown())
}

func TestErrorList(t *testing.T) {
	var el ErrorList
	assert.Nil(t, el.Err())

	el.Add(Position{Filename: "a.lox", Line: 2, Col: 1}, "second")
	el.Add(Position{Filename: "a.lox", Line: 1, Col: 3}, "first")
	el.Sort()

	require.NotNil(t, el.Err())
	assert.Equal(t, "first", el[0].Msg)
	assert.Equal(t, "second", el[1].Msg)
	assert.Len(t, el.Unwrap(), 2)
}
