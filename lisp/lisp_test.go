package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	for _, test := range []struct {
		v    *LVal
		want string
	}{
		{Nil(), "()"},
		{Int(3), "3"},
		{Int(-7), "-7"},
		{Float(3.5), "3.5"},
		{Float(1), "1"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Symbol("abc"), "abc"},
		{SExpr(nil), "()"},
		{SExpr([]*LVal{Symbol("+"), Int(2), Int(3)}), "(+ 2 3)"},
		{SExpr([]*LVal{SExpr([]*LVal{Int(1)}), Int(2)}), "((1) 2)"},
		{Lambda(
			SExpr([]*LVal{Symbol("x")}),
			SExpr([]*LVal{Symbol("*"), Symbol("x"), Symbol("x")}),
			NewEnv(nil),
		), "(lambda (x) (* x x))"},
		{Errorf("unbound symbol: %s", "a"), "unbound symbol: a"},
	} {
		assert.Equal(t, test.want, test.v.String())
	}
}

func TestLValEqual(t *testing.T) {
	assert.True(t, Int(1).Equal(Int(1)))
	assert.False(t, Int(1).Equal(Int(2)))
	// numeric subtypes never compare equal structurally
	assert.False(t, Int(1).Equal(Float(1)))
	assert.True(t, Symbol("a").Equal(Symbol("a")))
	assert.False(t, Symbol("a").Equal(Symbol("b")))
	assert.True(t, Nil().Equal(Nil()))
	assert.False(t, Nil().Equal(SExpr(nil)))

	a := SExpr([]*LVal{Int(1), SExpr([]*LVal{Symbol("x")})})
	b := SExpr([]*LVal{Int(1), SExpr([]*LVal{Symbol("x")})})
	c := SExpr([]*LVal{Int(1), SExpr([]*LVal{Symbol("y")})})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(SExpr([]*LVal{Int(1)})))
}

func TestLValPredicates(t *testing.T) {
	assert.True(t, Int(1).IsNumeric())
	assert.True(t, Float(1).IsNumeric())
	assert.False(t, Symbol("x").IsNumeric())

	// false is the only falsy value
	assert.True(t, Bool(false).IsFalse())
	assert.False(t, Bool(true).IsFalse())
	assert.False(t, Nil().IsFalse())
	assert.False(t, Int(0).IsFalse())
	assert.False(t, SExpr(nil).IsFalse())

	assert.True(t, Nil().IsNil())
	assert.False(t, SExpr(nil).IsNil())
}

func TestLTypeString(t *testing.T) {
	assert.Equal(t, "int", LInt.String())
	assert.Equal(t, "list", LSExpr.String())
	assert.Equal(t, "INVALID", LType(1000).String())
}
