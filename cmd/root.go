package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ponlisp/pon/repl"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pon",
	Short: "A minimal lisp interpreter",
	Long: `pon is a minimal lisp-family language with a reader, a tree-walking
evaluator with lexically scoped environments, and a small set of builtin
procedures.  Without arguments pon starts an interactive session.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("pon> ")
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
