package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/ponlisp/pon/lisp"
	"github.com/ponlisp/pon/parser"
)

// RunRepl runs an interactive read-eval-print loop against a fresh root
// environment.  Each line is one evaluation cycle; expressions do not span
// lines.  Diagnostics are written to stderr without terminating the loop or
// corrupting the environment.
func RunRepl(prompt string) {
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env)
	if lerr.Type == lisp.LError {
		errln(lerr)
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		errln(err)
		return
	}
	defer rl.Close()

	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		if len(line) == 0 {
			continue
		}
		exprs, _, perr := parser.ParseLVal(line)
		if perr != nil {
			errln(perr)
			continue
		}
		for _, expr := range exprs {
			v := env.Eval(expr)
			if v.Type == lisp.LError {
				errln(v)
				break
			}
			fmt.Println(v)
		}
	}
	if err != io.EOF {
		errln(err)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
