package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvRoot(t *testing.T) {
	env := NewEnv(nil)
	vara := Symbol("a")
	varb := Symbol("b")
	env.Put(vara, Int(1))
	v := env.Get(vara)
	require.Equal(t, LInt, v.Type)
	assert.Equal(t, 1, v.Int)
	v = env.Get(varb)
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, "unbound symbol: b", v.String())
}

func TestEnvChain(t *testing.T) {
	root := NewEnv(nil)
	root.Put(Symbol("a"), Int(1))
	root.Put(Symbol("b"), Int(2))

	env := NewEnv(root)
	env.Put(Symbol("b"), Int(3))

	// local binding shadows the outer one
	v := env.Get(Symbol("b"))
	require.Equal(t, LInt, v.Type)
	assert.Equal(t, 3, v.Int)

	// absent locally, resolved through the parent
	v = env.Get(Symbol("a"))
	require.Equal(t, LInt, v.Type)
	assert.Equal(t, 1, v.Int)

	// the parent's binding is untouched by the child's shadow
	v = root.Get(Symbol("b"))
	require.Equal(t, LInt, v.Type)
	assert.Equal(t, 2, v.Int)
}

func TestEnvPutOverwrites(t *testing.T) {
	env := NewEnv(nil)
	env.Put(Symbol("x"), Int(1))
	env.Put(Symbol("x"), Int(2))
	v := env.Get(Symbol("x"))
	require.Equal(t, LInt, v.Type)
	assert.Equal(t, 2, v.Int)
}

func TestEnvUpdate(t *testing.T) {
	root := NewEnv(nil)
	root.Put(Symbol("x"), Int(1))
	env := NewEnv(root)

	// set! on a name bound only in an ancestor mutates the ancestor
	v := env.Update(Symbol("x"), Int(2))
	require.Equal(t, LInt, v.Type)
	assert.Equal(t, 2, root.Get(Symbol("x")).Int)
	assert.Equal(t, 2, env.Get(Symbol("x")).Int)
	_, ok := env.Scope["x"]
	assert.False(t, ok)

	// set! never creates a binding
	v = env.Update(Symbol("y"), Int(3))
	assert.Equal(t, LError, v.Type)
	_, ok = env.Scope["y"]
	assert.False(t, ok)
	_, ok = root.Scope["y"]
	assert.False(t, ok)
}

func TestEnvBindTruncates(t *testing.T) {
	root := NewEnv(nil)
	formals := SExpr([]*LVal{Symbol("x"), Symbol("y")})

	// more arguments than formals
	env := NewEnvBind(formals, SExpr([]*LVal{Int(1), Int(2), Int(3)}), root)
	assert.Equal(t, 1, env.Get(Symbol("x")).Int)
	assert.Equal(t, 2, env.Get(Symbol("y")).Int)

	// fewer arguments than formals
	env = NewEnvBind(formals, SExpr([]*LVal{Int(1)}), root)
	assert.Equal(t, 1, env.Get(Symbol("x")).Int)
	assert.Equal(t, LError, env.Get(Symbol("y")).Type)
}

func TestEnvNonSymbol(t *testing.T) {
	env := NewEnv(nil)
	assert.Equal(t, LError, env.Get(Int(1)).Type)
	assert.Equal(t, LError, env.Put(Int(1), Int(2)).Type)
	assert.Equal(t, LError, env.Update(Int(1), Int(2)).Type)
}

func TestInitializeUserEnv(t *testing.T) {
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env)
	require.NotEqual(t, LError, lerr.Type)

	// builtins resolve before the first evaluation
	v := env.Get(Symbol("+"))
	require.Equal(t, LFun, v.Type)

	// boolean constants are pre-bound
	v = env.Get(Symbol("true"))
	require.Equal(t, LBool, v.Type)
	assert.True(t, v.Bool)
	v = env.Get(Symbol("false"))
	require.Equal(t, LBool, v.Type)
	assert.False(t, v.Bool)
}
