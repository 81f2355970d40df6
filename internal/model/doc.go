// Package model defines the domain types and value objects for the
// scala-cli-md-spec CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Location, Fragment, Content, Strategy, RunOutcome,
// SuiteResult) are transient: they are derived from markdown documents and
// external toolchain runs at runtime — there are no persistent state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
