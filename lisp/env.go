package lisp

import (
	"io"
	"os"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment, a frame of bindings with a reference to the
// enclosing frame.  The Parent pointer is used for lookup only; frames never
// reference their children so the chain contains no cycles and a captured
// frame lives as long as any closure or child frame that references it.
type LEnv struct {
	ID     uint
	Scope  map[string]*LVal
	Parent *LEnv

	// Stdout receives the output of the display builtin.  It is only
	// consulted on the root frame.
	Stdout io.Writer
}

// NewEnv initializes and returns a new LEnv enclosed by parent.  A nil
// parent creates a root environment.
func NewEnv(parent *LEnv) *LEnv {
	return &LEnv{
		ID:     getEnvID(),
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
}

// NewEnvBind returns a new LEnv enclosed by parent with formals bound
// positionally to args.  When the lengths differ the zip truncates to the
// shorter sequence.
func NewEnvBind(formals *LVal, args *LVal, parent *LEnv) *LEnv {
	env := NewEnv(parent)
	n := len(formals.Cells)
	if len(args.Cells) < n {
		n = len(args.Cells)
	}
	for i := 0; i < n; i++ {
		env.Put(formals.Cells[i], args.Cells[i])
	}
	return env
}

// Get takes a symbol k and returns the LVal it is bound to in the nearest
// frame, searching from env outward.  An unbound symbol produces an error
// value.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return Errorf("cannot lookup non-symbol: %v", k.Type)
	}
	v, ok := env.Scope[k.Sym]
	if ok {
		return v
	}
	if env.Parent != nil {
		return env.Parent.Get(k)
	}
	return Errorf("unbound symbol: %s", k.Sym)
}

// Put takes a symbol k and binds it to v in env's local frame, silently
// overwriting any previous local binding.  Put implements define.
func (env *LEnv) Put(k, v *LVal) *LVal {
	if k.Type != LSymbol {
		return Errorf("cannot bind non-symbol: %v", k.Type)
	}
	env.Scope[k.Sym] = v
	return v
}

// Update takes a symbol k and rebinds it to v in the nearest frame where k
// is already bound.  Update implements set! and never creates a binding; an
// unbound symbol produces an error value and leaves every frame untouched.
func (env *LEnv) Update(k, v *LVal) *LVal {
	if k.Type != LSymbol {
		return Errorf("cannot bind non-symbol: %v", k.Type)
	}
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.Scope[k.Sym]; ok {
			e.Scope[k.Sym] = v
			return v
		}
	}
	return Errorf("unbound symbol: %s", k.Sym)
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

func (env *LEnv) stdout() io.Writer {
	root := env.root()
	if root.Stdout != nil {
		return root.Stdout
	}
	return os.Stdout
}

// AddBuiltins binds the given funs to their names in env.  When called with
// no arguments AddBuiltins adds the DefaultBuiltins to env.  Builtins are
// ordinary bindings and may be shadowed by define or set!.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		env.Put(Symbol(f.Name()), Fun(f.Name(), f.Eval))
	}
}

// InitializeUserEnv installs the default builtins and constants into env and
// applies the given configuration options.  It must run before the first
// evaluation so that every builtin is resolvable.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddBuiltins()
	env.Put(Symbol(TrueSymbol), Bool(true))
	env.Put(Symbol(FalseSymbol), Bool(false))
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}
