// Package main is the entry point for the scala-cli-md-spec CLI.
//
// This binary verifies that runnable code examples embedded in markdown
// documentation actually compile/run and produce the documented output or
// errors. It delegates all functionality to the internal/cli package,
// which defines cobra commands.
package main

import (
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/cli"
)

// version, commit and date are set at build time via ldflags. During
// development they default to "dev", "none" and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
