// Package cli — check.go implements the "scala-cli-md-spec check" command.
//
// The check command is the full verification run: it extracts fragments
// from every markdown document under the docs directory, writes each
// eligible fragment to its own scratch subdirectory, executes it through
// the configured runner and verifies the captured outcome. Any fragment
// failing verification makes the whole command exit with
// ExitVerificationFailed, but only after all suites have completed.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/config"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/suite"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/toolchain"
)

// checkFlags collects the check command's flag values before they are
// merged over the config file.
type checkFlags struct {
	configPath   string
	scratchDir   string
	filter       string
	runner       string
	dockerImage  string
	toolchainBin string
	reportPath   string
	reportFormat string
	extras       []string
}

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [docsDir]",
		Short: "Run and verify all documentation examples",
		Long: `Extract runnable fragments from every *.md file under the docs
directory, execute them through scala-cli and verify the captured
output or errors against the expectations embedded in the docs.

Examples:
  scala-cli-md-spec check
  scala-cli-md-spec check docs --filter 'usage.md#*'
  scala-cli-md-spec check --runner docker --docker-image virtuslab/scala-cli
  scala-cli-md-spec check --report results.yaml --report-format yaml`,

		// The docs directory is optional; it defaults from config.
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			docsDir := ""
			if len(args) == 1 {
				docsDir = args[0]
			}
			return runCheck(cmd.Context(), docsDir, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path (default: discovered .mdspec.jsonc/.yaml)")
	cmd.Flags().StringVar(&flags.scratchDir, "scratch-dir", "", "Scratch root for fragment directories (default: temp dir)")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "Glob filter on stable names, * matches any run of characters")
	cmd.Flags().StringVar(&flags.runner, "runner", "", "Execution backend: local or docker")
	cmd.Flags().StringVar(&flags.dockerImage, "docker-image", "", "Image for the docker runner (must provide scala-cli)")
	cmd.Flags().StringVar(&flags.toolchainBin, "toolchain", "", "Path to the scala-cli binary for the local runner")
	cmd.Flags().StringVar(&flags.reportPath, "report", "", "Write a machine-readable summary to this path")
	cmd.Flags().StringVar(&flags.reportFormat, "report-format", "", "Summary encoding: json or yaml")
	cmd.Flags().StringArrayVar(&flags.extras, "extra", nil, "Extra argument appended to every scala-cli invocation (repeatable)")

	return cmd
}

// runCheck is the main logic function for the check command.
func runCheck(ctx context.Context, docsDir string, flags *checkFlags) error {
	cfg, err := resolveConfig(docsDir, flags)
	if err != nil {
		return err
	}
	// Configuration problems abort before any suite runs.
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner, closeRunner, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRunner()

	checker := &suite.Checker{
		Config:  cfg,
		Runner:  runner,
		Verbose: VerboseLog,
	}
	if jsonOutput {
		// In JSON mode the progress report is suppressed; stdout
		// carries only the final document.
		checker.Out = os.Stderr
	}

	results, err := checker.Run(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(data))
	} else {
		suite.PrintTotals(os.Stdout, cfg.NoColor, results)
	}

	if cfg.ReportPath != "" {
		if err := suite.WriteReport(cfg.ReportPath, cfg.ReportFormat, results); err != nil {
			return err
		}
		VerboseLog("wrote report to %s", cfg.ReportPath)
	}

	if !suite.Ok(results) {
		return model.NewCLIError(model.ExitVerificationFailed, "one or more fragments failed verification")
	}
	return nil
}

// resolveConfig layers defaults, the (discovered or explicit) config file
// and flag values, in that order of precedence.
func resolveConfig(docsDir string, flags *checkFlags) (config.Config, error) {
	cfg := config.Default()

	path := flags.configPath
	if path == "" {
		if discovered, ok := config.Discover("."); ok {
			path = discovered
			VerboseLog("using config file %s", path)
		}
	}
	if path != "" {
		fileCfg, err := config.LoadFile(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	cfg = cfg.Merge(config.Config{
		DocsDir:      docsDir,
		ScratchDir:   flags.scratchDir,
		Filter:       flags.filter,
		Extras:       flags.extras,
		Runner:       flags.runner,
		DockerImage:  flags.dockerImage,
		Toolchain:    flags.toolchainBin,
		NoColor:      noColor,
		ReportPath:   flags.reportPath,
		ReportFormat: flags.reportFormat,
	})
	return cfg, nil
}

// buildRunner constructs the configured execution backend. The returned
// close function releases backend resources (the Docker client); for the
// local runner it is a no-op.
func buildRunner(ctx context.Context, cfg config.Config) (toolchain.Runner, func(), error) {
	switch cfg.Runner {
	case config.RunnerDocker:
		runner, err := toolchain.NewDockerRunner(ctx, cfg.DockerImage, cfg.Extras)
		if err != nil {
			return nil, nil, err
		}
		VerboseLog("using docker runner with image %s", cfg.DockerImage)
		return runner, func() { _ = runner.Close() }, nil

	default:
		runner, err := toolchain.NewLocalRunner(cfg.Toolchain, cfg.Extras)
		if err != nil {
			return nil, nil, err
		}
		VerboseLog("using local runner %s", runner.Binary)
		return runner, func() {}, nil
	}
}
