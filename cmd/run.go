package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/ponlisp/pon/lisp"
	"github.com/ponlisp/pon/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		lerr := lisp.InitializeUserEnv(env)
		if lerr.Type == lisp.LError {
			fmt.Fprintln(os.Stderr, lerr)
			os.Exit(1)
		}
		for i := range exprs {
			vals, _, err := parser.ParseLVal(exprs[i])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, v := range vals {
				r := env.Eval(v)
				if r.Type == lisp.LError {
					fmt.Fprintln(os.Stderr, r)
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(r)
				}
			}
		}
	},
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
