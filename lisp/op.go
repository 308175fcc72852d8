package lisp

// Special forms are dispatched by the evaluator on the operator symbol
// before generic application.  Unlike builtins they are not environment
// bindings and cannot be shadowed.  Each op receives the unevaluated tail of
// the form as the cells of args.
var specialOps map[string]LBuiltin

func init() {
	specialOps = map[string]LBuiltin{
		"quote":  opQuote,
		"define": opDefine,
		"set!":   opSet,
		"env":    opEnv,
		"if":     opIf,
		"lambda": opLambda,
		"begin":  opBegin,
	}
}

// opQuote returns the entire tail of the form as a list, unevaluated.  The
// quoted argument stays wrapped in one layer of list structure, so
// (quote (1 2 3)) yields ((1 2 3)); list? of a quote result is always true.
func opQuote(env *LEnv, args *LVal) *LVal {
	return SExpr(args.Cells)
}

// (define name expr)
func opDefine(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("define", "two arguments expected (got %d)", len(args.Cells))
	}
	k := args.Cells[0]
	if k.Type != LSymbol {
		return berrf("define", "first argument is not a symbol: %v", k.Type)
	}
	v := env.Eval(args.Cells[1])
	if v.Type == LError {
		return v
	}
	return env.Put(k, v)
}

// (set! name expr)
func opSet(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("set!", "two arguments expected (got %d)", len(args.Cells))
	}
	k := args.Cells[0]
	if k.Type != LSymbol {
		return berrf("set!", "first argument is not a symbol: %v", k.Type)
	}
	v := env.Eval(args.Cells[1])
	if v.Type == LError {
		return v
	}
	return env.Update(k, v)
}

// opEnv reifies the current environment for introspection.
func opEnv(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 0 {
		return berrf("env", "no arguments expected (got %d)", len(args.Cells))
	}
	return EnvVal(env)
}

// (if test-form then-form else-form)
func opIf(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 3 {
		return berrf("if", "three arguments expected (got %d)", len(args.Cells))
	}
	r := env.Eval(args.Cells[0])
	if r.Type == LError {
		return r
	}
	if r.IsFalse() {
		return env.Eval(args.Cells[2])
	}
	return env.Eval(args.Cells[1])
}

// (lambda formals body)
func opLambda(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("lambda", "two arguments expected (got %d)", len(args.Cells))
	}
	formals := args.Cells[0]
	if formals.Type != LSExpr {
		return berrf("lambda", "first argument is not a list: %v", formals.Type)
	}
	for _, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return berrf("lambda", "first argument contains a non-symbol: %v", sym.Type)
		}
	}
	return Lambda(formals, args.Cells[1], env)
}

// opBegin evaluates each form left to right in the same environment,
// threading side effects through, and returns the last value.  An empty
// begin yields the no-value result.
func opBegin(env *LEnv, args *LVal) *LVal {
	val := Nil()
	for _, c := range args.Cells {
		val = env.Eval(c)
		if val.Type == LError {
			return val
		}
	}
	return val
}
