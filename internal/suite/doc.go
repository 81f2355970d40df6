// Package suite orchestrates the verification run: it groups fragments
// by document into suites, applies the name filter, writes each eligible
// fragment to its own scratch subdirectory, drives the external toolchain
// and tallies the verdicts.
//
// Execution is strictly sequential: fragments within a suite run one at a
// time in location order and suites run one at a time in document name
// order. Each fragment owns an exclusive slug-named scratch subdirectory,
// private between write and verify, so no locking is needed anywhere.
//
// A failing fragment never aborts sibling fragments or later suites; the
// aggregate verdict is computed only after all suites complete.
package suite
