package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponlisp/pon/lisp"
)

func parseOne(t *testing.T, src string) *lisp.LVal {
	t.Helper()
	vals, _, err := ParseLVal([]byte(src))
	require.NoError(t, err)
	require.Len(t, vals, 1)
	return vals[0]
}

func TestParseAtoms(t *testing.T) {
	v := parseOne(t, "42")
	require.Equal(t, lisp.LInt, v.Type)
	assert.Equal(t, 42, v.Int)

	v = parseOne(t, "-7")
	require.Equal(t, lisp.LInt, v.Type)
	assert.Equal(t, -7, v.Int)

	v = parseOne(t, "3.14")
	require.Equal(t, lisp.LFloat, v.Type)
	assert.Equal(t, 3.14, v.Float)

	v = parseOne(t, "-0.25")
	require.Equal(t, lisp.LFloat, v.Type)
	assert.Equal(t, -0.25, v.Float)

	v = parseOne(t, ".5")
	require.Equal(t, lisp.LFloat, v.Type)
	assert.Equal(t, 0.5, v.Float)

	v = parseOne(t, "abc")
	require.Equal(t, lisp.LSymbol, v.Type)
	assert.Equal(t, "abc", v.Sym)

	// anything that is not a number or a paren is a symbol
	for _, sym := range []string{"+", "-", "set!", "list?", "a->b"} {
		v = parseOne(t, sym)
		require.Equal(t, lisp.LSymbol, v.Type, "symbol %q", sym)
		assert.Equal(t, sym, v.Sym)
	}
}

func TestParseList(t *testing.T) {
	v := parseOne(t, "(+ 2 3)")
	require.Equal(t, lisp.LSExpr, v.Type)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, lisp.LSymbol, v.Cells[0].Type)
	assert.Equal(t, lisp.LInt, v.Cells[1].Type)
	assert.Equal(t, lisp.LInt, v.Cells[2].Type)

	v = parseOne(t, "()")
	require.Equal(t, lisp.LSExpr, v.Type)
	assert.Equal(t, 0, v.Len())

	v = parseOne(t, "( )")
	require.Equal(t, lisp.LSExpr, v.Type)
	assert.Equal(t, 0, v.Len())

	v = parseOne(t, "(a (b (c)) 1.5)")
	require.Equal(t, lisp.LSExpr, v.Type)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, lisp.LSExpr, v.Cells[1].Type)
	assert.Equal(t, 2, v.Cells[1].Len())
}

func TestParseRoundTrip(t *testing.T) {
	// reading then re-serializing a well formed expression is the identity
	// on its rendering
	for _, src := range []string{
		"(+ 2 3)",
		"(define square (lambda (x) (* x x)))",
		"(a (b (c)) 1.5 -2)",
		"()",
	} {
		v := parseOne(t, src)
		assert.Equal(t, src, v.String())
	}
}

func TestParseMultiple(t *testing.T) {
	vals, n, err := ParseLVal([]byte("1 2 (+ 1 2)"))
	require.NoError(t, err)
	assert.Equal(t, len("1 2 (+ 1 2)"), n)
	require.Len(t, vals, 3)
	assert.Equal(t, lisp.LInt, vals[0].Type)
	assert.Equal(t, lisp.LInt, vals[1].Type)
	assert.Equal(t, lisp.LSExpr, vals[2].Type)
}

func TestParseEmpty(t *testing.T) {
	vals, _, err := ParseLVal(nil)
	require.NoError(t, err)
	assert.Len(t, vals, 0)

	vals, _, err = ParseLVal([]byte("   \n\t  "))
	require.NoError(t, err)
	assert.Len(t, vals, 0)
}

func TestParseMalformed(t *testing.T) {
	// unbalanced parentheses are reported, not silently repaired
	_, _, err := ParseLVal([]byte("(+ 1"))
	assert.Error(t, err)

	_, _, err = ParseLVal([]byte(")"))
	assert.Error(t, err)

	vals, _, err := ParseLVal([]byte("(+ 1 2))"))
	assert.Error(t, err)
	// the well formed prefix is still returned
	require.Len(t, vals, 1)
	assert.Equal(t, "(+ 1 2)", vals[0].String())
}

func TestReader(t *testing.T) {
	r := NewReader()
	vals, err := r.Read("test", strings.NewReader("(display 1)\n(display 2)\n"))
	require.NoError(t, err)
	require.Len(t, vals, 2)

	_, err = r.Read("test", strings.NewReader("(oops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test:")
}
