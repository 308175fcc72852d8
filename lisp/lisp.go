package lisp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNil
	LInt
	LFloat
	LBool
	LSymbol
	LSExpr
	LFun
	LEnvironment
	LError

	numLTypes
)

var lvalTypeStrings = [numLTypes]string{
	LInvalid:     "INVALID",
	LNil:         "nil",
	LInt:         "int",
	LFloat:       "float",
	LBool:        "bool",
	LSymbol:      "symbol",
	LSExpr:       "list",
	LFun:         "function",
	LEnvironment: "environment",
	LError:       "error",
}

func (t LType) String() string {
	if t >= numLTypes {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a Go function that implements a lisp function.  Arguments are
// passed as the cells of a list and have been evaluated by the caller.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value.  Every AST node and every runtime value is an LVal;
// there is no value domain distinct from expressions.
type LVal struct {
	Type  LType
	Int   int
	Float float64
	Bool  bool
	Sym   string
	Err   error
	Cells []*LVal

	// Fields needed for function values.  Builtin is non-nil for builtin
	// functions while Formals, Body, and Env describe a lambda closure.
	Builtin LBuiltin
	FID     string
	Formals *LVal
	Body    *LVal
	Env     *LEnv
}

// Nil returns an LVal representing the absence of a value.  Nil is distinct
// from the empty list.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Int returns an LVal representing the integer x.
func Int(x int) *LVal {
	return &LVal{Type: LInt, Int: x}
}

// Float returns an LVal representing the floating point number x.
func Float(x float64) *LVal {
	return &LVal{Type: LFloat, Float: x}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{Type: LBool, Bool: b}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Sym: s}
}

// SExpr returns an LVal representing a list with the given cells.
func SExpr(cells []*LVal) *LVal {
	return &LVal{Type: LSExpr, Cells: cells}
}

// Fun returns an LVal representing the builtin function fn.
func Fun(fid string, fn LBuiltin) *LVal {
	return &LVal{Type: LFun, FID: fid, Builtin: fn}
}

// Lambda returns an LVal representing a closure over env with the given
// formal parameters and body.  The environment is captured by reference, not
// copied, so bindings mutated after capture remain visible to the closure.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LFun,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// EnvVal returns an LVal exposing env as a first class value for
// introspection.
func EnvVal(env *LEnv) *LVal {
	return &LVal{Type: LEnvironment, Env: env}
}

// Error returns an LVal representing the error err.
func Error(err error) *LVal {
	return &LVal{Type: LError, Err: err}
}

// Errorf returns an error LVal with a formatted message.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{Type: LError, Err: fmt.Errorf(format, v...)}
}

// berrf returns an error LVal attributed to the special form or builtin
// named bname.
func berrf(bname string, format string, v ...interface{}) *LVal {
	return Errorf("%s: %s", bname, fmt.Sprintf(format, v...))
}

// Len returns the number of cells in a list value.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// IsNumeric returns true if v is an int or a float.
func (v *LVal) IsNumeric() bool {
	return v.Type == LInt || v.Type == LFloat
}

// IsFalse returns true if v is the boolean false, the only falsy value.
// Anything else passes the test of an if form.
func (v *LVal) IsFalse() bool {
	return v.Type == LBool && !v.Bool
}

// IsNil returns true if v is the no-value result.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// Equal compares v and u structurally.  Numbers of differing subtypes are
// never equal.  Functions and environments are equal only when identical.
func (v *LVal) Equal(u *LVal) bool {
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case LNil:
		return true
	case LInt:
		return v.Int == u.Int
	case LFloat:
		return v.Float == u.Float
	case LBool:
		return v.Bool == u.Bool
	case LSymbol:
		return v.Sym == u.Sym
	case LSExpr:
		if len(v.Cells) != len(u.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(u.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return v == u
	}
}

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "()"
	case LInt:
		return strconv.Itoa(v.Int)
	case LFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case LBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case LSymbol:
		return v.Sym
	case LSExpr:
		return exprString(v, "(", ")")
	case LFun:
		if v.Builtin != nil {
			return fmt.Sprintf("<builtin ``%s''>", v.FID)
		}
		return fmt.Sprintf("(lambda %v %v)", v.Formals, v.Body)
	case LEnvironment:
		return envString(v.Env)
	case LError:
		return v.Err.Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}

// envString renders the local bindings of an environment in sorted order.
// Only the local frame is rendered, not the parent chain.
func envString(env *LEnv) string {
	keys := make([]string, 0, len(env.Scope))
	for k := range env.Scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var buf bytes.Buffer
	buf.WriteString("<environment")
	for _, k := range keys {
		fmt.Fprintf(&buf, " (%s %s)", k, env.Scope[k])
	}
	buf.WriteString(">")
	return buf.String()
}
