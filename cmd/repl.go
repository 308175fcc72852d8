package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ponlisp/pon/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive interpreter",
	Long:  `Read expressions from the terminal and print their values, one line at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("pon> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
