package lisp

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Symbols resolve through the environment chain, lists dispatch
// through the special form table before generic application, and everything
// else is self-evaluating.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates the list expression s.  When the operator position
// holds a symbol naming a special form the form's fixed rule runs on the
// unevaluated tail.  Otherwise the operator and operands are all evaluated
// in order and the resulting function is applied.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return Errorf("not a list expression: %v", s.Type)
	}
	if len(s.Cells) == 0 {
		return Nil()
	}

	head := s.Cells[0]
	if head.Type == LSymbol {
		if op, ok := specialOps[head.Sym]; ok {
			return op(env, SExpr(s.Cells[1:]))
		}
	}

	f := env.Eval(head)
	if f.Type == LError {
		return f
	}
	args := SExpr(make([]*LVal, 0, len(s.Cells)-1))
	for _, c := range s.Cells[1:] {
		v := env.Eval(c)
		if v.Type == LError {
			return v
		}
		args.Cells = append(args.Cells, v)
	}
	if f.Type != LFun {
		return Errorf("first element of expression is not a function: %v", f)
	}
	return env.Call(f, args)
}

// Call invokes the function fun with the list of evaluated arguments args.
// A lambda is applied in a fresh frame enclosed by its captured environment;
// evaluation of its body recurses without tail call elimination.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}
	fenv := NewEnvBind(fun.Formals, args, fun.Env)
	return fenv.Eval(fun.Body)
}
