// ansi.go strips ANSI escape sequences from captured toolchain output.
package toolchain

import "regexp"

// ansiRe matches CSI sequences (colors, cursor movement) and OSC
// sequences (terminal titles) emitted by scala-cli and the JVM tools it
// drives.
var ansiRe = regexp.MustCompile(`\x1b(\[[0-9;?]*[ -/]*[@-~]|\][^\x07\x1b]*(\x07|\x1b\\))`)

// StripANSI removes ANSI escape sequences from s. Captured run outcomes
// are always stored escape-free so expectation matching never has to
// account for terminal styling.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
