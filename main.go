package main

import "github.com/ponlisp/pon/cmd"

func main() {
	cmd.Execute()
}
