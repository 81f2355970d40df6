// write.go materializes a fragment's files under its scratch directory.
package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// testFileSuffixes mark files that put a fragment into the toolchain's
// test mode instead of run mode.
var testFileSuffixes = []string{".test.scala", ".test.sc"}

// WriteFragment writes f's files under scratchRoot/<slug>/ and returns
// the fragment directory plus whether the toolchain must run in test
// mode. Single content becomes one snippet.sc; multi-file content writes
// one file per declared name, creating parent directories for nested
// paths.
func WriteFragment(scratchRoot string, f model.Fragment) (dir string, test bool, err error) {
	dir = filepath.Join(scratchRoot, f.Location().Slug())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create fragment directory %s: %w", dir, err)
	}

	for _, file := range model.Files(f.Content) {
		path := filepath.Join(dir, filepath.FromSlash(file.Name))
		if parent := filepath.Dir(path); parent != dir {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return "", false, fmt.Errorf("failed to create directory %s: %w", parent, err)
			}
		}
		if err := os.WriteFile(path, []byte(file.Text+"\n"), 0o644); err != nil {
			return "", false, fmt.Errorf("failed to write %s: %w", path, err)
		}
		if isTestFile(file.Name) {
			test = true
		}
	}
	return dir, test, nil
}

// isTestFile reports whether name selects the toolchain's test mode.
func isTestFile(name string) bool {
	for _, suffix := range testFileSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
