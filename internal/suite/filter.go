// filter.go implements the glob-style stable-name filter.
package suite

import (
	"regexp"
	"strings"
)

// MatchFilter reports whether a fragment's stable name matches pattern.
// The only metacharacter is `*`, matching any run of characters; the
// match covers the whole name. An empty pattern admits everything.
func MatchFilter(pattern, stableName string) bool {
	if pattern == "" {
		return true
	}

	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	re := regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")
	return re.MatchString(stableName)
}
