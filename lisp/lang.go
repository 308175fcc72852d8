package lisp

// TrueSymbol and FalseSymbol name the boolean constants pre-bound in the
// root environment.  The false value is the only falsy value in the
// language.
const (
	TrueSymbol  = "true"
	FalseSymbol = "false"
)
