package lisp

import "io"

// Config is a function that configures a root environment.
type Config func(env *LEnv) *LVal

// WithStdout returns a Config that makes the display builtin write to w
// instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.root().Stdout = w
		return Nil()
	}
}
