// Package main is the entry point for the task-tracker CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/task-tracker/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command. The container is built by the root
// command itself so that --config is honored.
func run(args []string, stdout, stderr io.Writer) error {
	rootCmd := cli.NewRootCommand(nil, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
