// Package lisptest provides a table driven test runner for the interpreter.
// Tests are expressed as source text and expected renderings so they
// exercise the reader, the evaluator, and the printer together.
package lisptest

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ponlisp/pon/lisp"
	"github.com/ponlisp/pon/parser"
)

// TestStep evaluates one line of source and compares the rendering of its
// value with Result and anything printed by display with Output.
type TestStep struct {
	Expr   string
	Result string
	Output string
}

// TestSequence is a sequence of steps evaluated in order against a shared
// environment, so earlier definitions and mutations are visible to later
// steps.
type TestSequence []TestStep

// TestCase is a named TestSequence.
type TestCase struct {
	Name  string
	Steps TestSequence
}

// TestSuite is a set of independent test cases, each running in a fresh
// environment.
type TestSuite []TestCase

// Runner runs test suites.
type Runner struct {
	// Config is applied to each environment after the default builtins are
	// installed.
	Config []lisp.Config
}

// RunTestSuite runs each case in the suite as a subtest.
func (r *Runner) RunTestSuite(t *testing.T, suite TestSuite) {
	for i, test := range suite {
		test := test
		t.Run(fmt.Sprintf("%d-%s", i, test.Name), func(t *testing.T) {
			r.RunTest(t, test)
		})
	}
}

// RunTest evaluates the steps of test in order against one environment.
func (r *Runner) RunTest(t *testing.T, test TestCase) {
	var output bytes.Buffer
	env := lisp.NewEnv(nil)
	config := append([]lisp.Config{lisp.WithStdout(&output)}, r.Config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		t.Fatalf("environment initialization failure: %v", lerr)
	}
	for j, step := range test.Steps {
		output.Reset()
		got, ok := evalSource(env, step.Expr)
		if !ok {
			t.Errorf("expr %d: parse failure: %s", j, got)
			continue
		}
		if got != step.Result {
			t.Errorf("expr %d: %s\n\texpected result: %s\n\tgot: %s",
				j, step.Expr, step.Result, got)
		}
		if output.String() != step.Output {
			t.Errorf("expr %d: %s\n\texpected output: %q\n\tgot: %q",
				j, step.Expr, step.Output, output.String())
		}
	}
}

// evalSource parses and evaluates src, returning the renderings of the
// resulting values joined by newlines.  An error value terminates the
// sequence and renders as the result.
func evalSource(env *lisp.LEnv, src string) (string, bool) {
	exprs, _, err := parser.ParseLVal([]byte(src))
	if err != nil {
		return err.Error(), false
	}
	var renders []string
	for _, expr := range exprs {
		v := env.Eval(expr)
		renders = append(renders, v.String())
		if v.Type == lisp.LError {
			break
		}
	}
	return strings.Join(renders, "\n"), true
}
