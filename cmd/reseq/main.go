// Command reseq renumbers the files of a folder in sequence.
package main

import (
	"fmt"
	"io"
	"os"
)

// Entry point for the application
func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, errorText("Error: "+err.Error()))
		return 1
	}
	return 0
}
