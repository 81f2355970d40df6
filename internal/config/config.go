// Package config resolves the tool's configuration from defaults, an
// optional config file and command-line flags.
//
// Config files may be JSONC (JSON with comments, parsed via
// github.com/tidwall/jsonc before encoding/json) or YAML
// (gopkg.in/yaml.v3). Flags always override file values, and file values
// override defaults. A malformed configuration aborts the process before
// any suite runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// Runner kinds selectable via Config.Runner.
const (
	RunnerLocal  = "local"
	RunnerDocker = "docker"
)

// Report formats selectable via Config.ReportFormat.
const (
	ReportJSON = "json"
	ReportYAML = "yaml"
)

// Config is the fully resolved configuration for one invocation.
type Config struct {
	// DocsDir is the directory scanned for *.md documents.
	DocsDir string `json:"docsDir,omitempty" yaml:"docsDir,omitempty"`

	// ScratchDir is the root under which each fragment gets its own
	// slug-named subdirectory. Empty means a fresh directory under the
	// OS temp dir, created at startup.
	ScratchDir string `json:"scratchDir,omitempty" yaml:"scratchDir,omitempty"`

	// Filter restricts eligible fragments by stable name. `*` matches
	// any run of characters; an empty filter admits everything.
	Filter string `json:"filter,omitempty" yaml:"filter,omitempty"`

	// Extras are free-form arguments appended to every scala-cli
	// invocation.
	Extras []string `json:"extras,omitempty" yaml:"extras,omitempty"`

	// Runner selects the execution backend: "local" or "docker".
	Runner string `json:"runner,omitempty" yaml:"runner,omitempty"`

	// DockerImage is the image used by the docker runner. It must
	// provide scala-cli on its PATH.
	DockerImage string `json:"dockerImage,omitempty" yaml:"dockerImage,omitempty"`

	// Toolchain overrides the scala-cli binary path for the local
	// runner.
	Toolchain string `json:"toolchain,omitempty" yaml:"toolchain,omitempty"`

	// NoColor disables colored report output.
	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`

	// ReportPath, when set, is where the machine-readable suite
	// summary is written after all suites complete.
	ReportPath string `json:"reportPath,omitempty" yaml:"reportPath,omitempty"`

	// ReportFormat selects the summary encoding: "json" (default) or
	// "yaml".
	ReportFormat string `json:"reportFormat,omitempty" yaml:"reportFormat,omitempty"`
}

// Default returns the configuration used when neither file nor flags say
// otherwise.
func Default() Config {
	return Config{
		DocsDir:      "docs",
		Runner:       RunnerLocal,
		ReportFormat: ReportJSON,
	}
}

// fileNames are the config file names probed by Discover, in priority
// order. The JSONC variants come first, mirroring how devcontainer-style
// tooling prefers comment-tolerant JSON.
var fileNames = []string{
	".mdspec.jsonc",
	".mdspec.json",
	".mdspec.yaml",
	".mdspec.yml",
}

// Discover looks for a config file in dir and returns its path, or false
// when none of the known names exist.
func Discover(dir string) (string, bool) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// LoadFile reads and parses a config file. The extension picks the
// parser: .jsonc/.json go through jsonc.ToJSON then encoding/json,
// .yaml/.yml through yaml.v3. Unknown fields are silently ignored.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path),
			err,
		)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc", ".json":
		// jsonc.ToJSON strips // and /* */ comments plus trailing
		// commas, leaving plain JSON for the standard decoder.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("failed to parse config file %s", path),
				err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("failed to parse config file %s", path),
				err,
			)
		}
	default:
		return Config{}, model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("unsupported config file extension: %s (want .jsonc, .json, .yaml or .yml)", path),
		)
	}
	return cfg, nil
}

// Merge overlays nonzero fields of overlay onto c and returns the result.
// It implements flag-over-file precedence: callers put file values in c
// and explicitly set flags in overlay.
func (c Config) Merge(overlay Config) Config {
	if overlay.DocsDir != "" {
		c.DocsDir = overlay.DocsDir
	}
	if overlay.ScratchDir != "" {
		c.ScratchDir = overlay.ScratchDir
	}
	if overlay.Filter != "" {
		c.Filter = overlay.Filter
	}
	if len(overlay.Extras) > 0 {
		c.Extras = overlay.Extras
	}
	if overlay.Runner != "" {
		c.Runner = overlay.Runner
	}
	if overlay.DockerImage != "" {
		c.DockerImage = overlay.DockerImage
	}
	if overlay.Toolchain != "" {
		c.Toolchain = overlay.Toolchain
	}
	if overlay.NoColor {
		c.NoColor = true
	}
	if overlay.ReportPath != "" {
		c.ReportPath = overlay.ReportPath
	}
	if overlay.ReportFormat != "" {
		c.ReportFormat = overlay.ReportFormat
	}
	return c
}

// Validate checks the resolved configuration. It is called once, before
// any suite runs; a failure here aborts the whole invocation with
// ExitConfigError.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return model.NewCLIError(model.ExitConfigError, "docs directory must not be empty")
	}
	if info, err := os.Stat(c.DocsDir); err != nil || !info.IsDir() {
		return model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("docs directory %s does not exist or is not a directory", c.DocsDir),
		)
	}

	switch c.Runner {
	case RunnerLocal:
	case RunnerDocker:
		if c.DockerImage == "" {
			return model.NewCLIError(model.ExitConfigError, "docker runner requires a docker image")
		}
	default:
		return model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("invalid runner %q (valid: local, docker)", c.Runner),
		)
	}

	switch c.ReportFormat {
	case "", ReportJSON, ReportYAML:
	default:
		return model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("invalid report format %q (valid: json, yaml)", c.ReportFormat),
		)
	}
	return nil
}

// EnsureScratchDir resolves the scratch root: either the configured path
// (created if missing) or a fresh directory under the OS temp dir.
func (c *Config) EnsureScratchDir() (string, error) {
	if c.ScratchDir != "" {
		if err := os.MkdirAll(c.ScratchDir, 0o755); err != nil {
			return "", model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("failed to create scratch directory %s", c.ScratchDir),
				err,
			)
		}
		return c.ScratchDir, nil
	}

	dir, err := os.MkdirTemp("", "scala-cli-md-spec-")
	if err != nil {
		return "", model.WrapCLIError(model.ExitConfigError, "failed to create scratch directory", err)
	}
	c.ScratchDir = dir
	return dir, nil
}
