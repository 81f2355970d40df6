// report.go renders the human-readable progress report and writes the
// optional machine-readable summary file.
package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/config"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// printer renders per-fragment verdicts and per-suite tallies. Colors go
// through fatih/color so NO_COLOR and non-TTY output degrade gracefully.
type printer struct {
	out  io.Writer
	pass *color.Color
	fail *color.Color
	skip *color.Color
}

func newPrinter(out io.Writer, noColor bool) *printer {
	p := &printer{
		out:  out,
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
		skip: color.New(color.FgYellow),
	}
	if noColor {
		p.pass.DisableColor()
		p.fail.DisableColor()
		p.skip.DisableColor()
	}
	return p
}

func (p *printer) suiteHeader(name string, fragments int) {
	fmt.Fprintf(p.out, "\n%s (%d fragment(s))\n", name, fragments)
}

func (p *printer) passed(entry model.FragmentResult) {
	fmt.Fprintf(p.out, "  %s %s\n", p.pass.Sprint("PASS"), entry.StableName)
}

func (p *printer) failed(entry model.FragmentResult) {
	fmt.Fprintf(p.out, "  %s %s (%s): %s\n",
		p.fail.Sprint("FAIL"), entry.StableName, entry.Hint, entry.Detail)
	for _, want := range entry.Unmatched {
		// Expected strings may span lines; indent them as a block.
		fmt.Fprintf(p.out, "       missing: %s\n", strings.ReplaceAll(want, "\n", "\n                "))
	}
}

func (p *printer) skipped(entry model.FragmentResult) {
	fmt.Fprintf(p.out, "  %s %s (%s)\n", p.skip.Sprint("SKIP"), entry.StableName, entry.Detail)
}

func (p *printer) suiteFooter(result model.SuiteResult) {
	fmt.Fprintf(p.out, "  %s\n", result.Summary())
}

// PrintTotals writes the grand totals across all suites.
func PrintTotals(out io.Writer, noColor bool, results []model.SuiteResult) {
	var passed, failed, skipped int
	for _, r := range results {
		passed += len(r.Passed)
		failed += len(r.Failed)
		skipped += len(r.Skipped)
	}

	p := newPrinter(out, noColor)
	verdict := p.pass.Sprint("OK")
	if failed > 0 {
		verdict = p.fail.Sprint("FAILED")
	}
	fmt.Fprintf(out, "\n%s: %d suite(s), %d passed, %d failed, %d skipped\n",
		verdict, len(results), passed, failed, skipped)
}

// WriteReport writes the machine-readable summary of all suites to path,
// encoded per format (config.ReportJSON or config.ReportYAML).
func WriteReport(path, format string, results []model.SuiteResult) error {
	var data []byte
	var err error

	switch format {
	case config.ReportYAML:
		data, err = yaml.Marshal(results)
	case config.ReportJSON, "":
		data, err = json.MarshalIndent(results, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
