package lisp

import "fmt"

// LBuiltinDef is a builtin function definition.
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{">", builtinGT},
	{"<", builtinLT},
	{">=", builtinGEq},
	{"<=", builtinLEq},
	{"==", builtinEqNum},
	{"length", builtinLength},
	{"cons", builtinCons},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"append", builtinAppend},
	{"list", builtinList},
	{"list?", builtinIsList},
	{"symbol?", builtinIsSymbol},
	{"null?", builtinIsNull},
	{"not", builtinNot},
	{"display", builtinDisplay},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		funs[i] = langBuiltins[i]
	}
	return funs
}

func checkNumeric2(name string, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf(name, "two arguments expected (got %d)", len(args.Cells))
	}
	if !args.Cells[0].IsNumeric() {
		return berrf(name, "first argument is not a number: %v", args.Cells[0].Type)
	}
	if !args.Cells[1].IsNumeric() {
		return berrf(name, "second argument is not a number: %v", args.Cells[1].Type)
	}
	return nil
}

func bothInt(a, b *LVal) bool {
	return a.Type == LInt && b.Type == LInt
}

func toFloat(v *LVal) float64 {
	if v.Type == LInt {
		return float64(v.Int)
	}
	return v.Float
}

// Arithmetic operators take exactly two arguments.  The numeric subtype of
// the result follows the left operand: two ints stay in the int domain,
// anything else widens to float.

func builtinAdd(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2("+", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Int(a.Int + b.Int)
	}
	return Float(toFloat(a) + toFloat(b))
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2("-", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Int(a.Int - b.Int)
	}
	return Float(toFloat(a) - toFloat(b))
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2("*", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Int(a.Int * b.Int)
	}
	return Float(toFloat(a) * toFloat(b))
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2("/", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		if b.Int == 0 {
			return berrf("/", "division by zero")
		}
		return Int(a.Int / b.Int)
	}
	if toFloat(b) == 0 {
		return berrf("/", "division by zero")
	}
	return Float(toFloat(a) / toFloat(b))
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2(">", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Bool(a.Int > b.Int)
	}
	return Bool(toFloat(a) > toFloat(b))
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2("<", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Bool(a.Int < b.Int)
	}
	return Bool(toFloat(a) < toFloat(b))
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2(">=", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Bool(a.Int >= b.Int)
	}
	return Bool(toFloat(a) >= toFloat(b))
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2("<=", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Bool(a.Int <= b.Int)
	}
	return Bool(toFloat(a) <= toFloat(b))
}

func builtinEqNum(env *LEnv, args *LVal) *LVal {
	if lerr := checkNumeric2("==", args); lerr != nil {
		return lerr
	}
	a, b := args.Cells[0], args.Cells[1]
	if bothInt(a, b) {
		return Bool(a.Int == b.Int)
	}
	return Bool(toFloat(a) == toFloat(b))
}

func builtinLength(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("length", "one argument expected (got %d)", len(args.Cells))
	}
	lis := args.Cells[0]
	if lis.Type != LSExpr {
		return berrf("length", "argument is not a list: %v", lis.Type)
	}
	return Int(lis.Len())
}

func builtinCons(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("cons", "two arguments expected (got %d)", len(args.Cells))
	}
	if args.Cells[1].Type != LSExpr {
		return berrf("cons", "second argument is not a list: %v", args.Cells[1].Type)
	}
	cells := make([]*LVal, 0, 1+len(args.Cells[1].Cells))
	cells = append(cells, args.Cells[0])
	cells = append(cells, args.Cells[1].Cells...)
	return SExpr(cells)
}

func builtinCAR(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("car", "one argument expected (got %d)", len(args.Cells))
	}
	lis := args.Cells[0]
	if lis.Type != LSExpr {
		return berrf("car", "argument is not a list: %v", lis.Type)
	}
	if len(lis.Cells) == 0 {
		return berrf("car", "argument is empty")
	}
	return lis.Cells[0]
}

func builtinCDR(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("cdr", "one argument expected (got %d)", len(args.Cells))
	}
	lis := args.Cells[0]
	if lis.Type != LSExpr {
		return berrf("cdr", "argument is not a list: %v", lis.Type)
	}
	if len(lis.Cells) == 0 {
		return berrf("cdr", "argument is empty")
	}
	return SExpr(lis.Cells[1:])
}

func builtinAppend(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("append", "two arguments expected (got %d)", len(args.Cells))
	}
	a, b := args.Cells[0], args.Cells[1]
	if a.Type != LSExpr {
		return berrf("append", "first argument is not a list: %v", a.Type)
	}
	if b.Type != LSExpr {
		return berrf("append", "second argument is not a list: %v", b.Type)
	}
	cells := make([]*LVal, 0, len(a.Cells)+len(b.Cells))
	cells = append(cells, a.Cells...)
	cells = append(cells, b.Cells...)
	return SExpr(cells)
}

func builtinList(env *LEnv, args *LVal) *LVal {
	return SExpr(args.Cells)
}

func builtinIsList(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("list?", "one argument expected (got %d)", len(args.Cells))
	}
	return Bool(args.Cells[0].Type == LSExpr)
}

func builtinIsSymbol(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("symbol?", "one argument expected (got %d)", len(args.Cells))
	}
	return Bool(args.Cells[0].Type == LSymbol)
}

func builtinIsNull(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("null?", "one argument expected (got %d)", len(args.Cells))
	}
	v := args.Cells[0]
	return Bool(v.Type == LNil || (v.Type == LSExpr && len(v.Cells) == 0))
}

func builtinNot(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("not", "one argument expected (got %d)", len(args.Cells))
	}
	return Bool(args.Cells[0].IsFalse())
}

func builtinDisplay(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("display", "one argument expected (got %d)", len(args.Cells))
	}
	fmt.Fprintln(env.stdout(), args.Cells[0])
	return args.Cells[0]
}
