// suite.go drives the verification run end to end.
package suite

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/config"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/markdown"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/toolchain"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/verify"
)

// Checker runs all suites under one resolved configuration.
type Checker struct {
	// Config must already be validated.
	Config config.Config

	// Runner executes fragment directories. Required.
	Runner toolchain.Runner

	// Extractor supplies the extraction pipeline. The zero value uses
	// the default hooks (identity + multi-file grouping).
	Extractor markdown.Extractor

	// Out receives the human-readable progress report. Defaults to
	// os.Stdout.
	Out io.Writer

	// Verbose, when non-nil, receives trace lines.
	Verbose func(format string, args ...any)
}

// Run verifies every document under the configured docs directory and
// returns one SuiteResult per document, in document name order. The
// returned error covers infrastructure problems (unreadable docs
// directory, unwritable scratch space, toolchain invocation failures);
// verification failures are reported through the results, never as an
// error.
func (c *Checker) Run(ctx context.Context) ([]model.SuiteResult, error) {
	docs, err := markdown.ReadDir(c.Config.DocsDir)
	if err != nil {
		return nil, err
	}

	scratch, err := c.Config.EnsureScratchDir()
	if err != nil {
		return nil, err
	}
	c.verbose("using scratch directory %s", scratch)

	printer := newPrinter(c.out(), c.Config.NoColor)

	results := make([]model.SuiteResult, 0, len(docs))
	for _, doc := range docs {
		result, err := c.runSuite(ctx, doc, scratch, printer)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// runSuite verifies one document's fragments sequentially in location
// order.
func (c *Checker) runSuite(ctx context.Context, doc markdown.Document, scratch string, printer *printer) (model.SuiteResult, error) {
	result := model.SuiteResult{Name: doc.Name}

	fragments := c.Extractor.Fragments(doc)
	printer.suiteHeader(doc.Name, len(fragments))

	for _, fragment := range fragments {
		loc := fragment.Location()

		// The name filter decides eligibility before classification;
		// filtered-out fragments are not tallied at all.
		if !MatchFilter(c.Config.Filter, loc.StableName()) {
			c.verbose("filtered out %s", loc.StableName())
			continue
		}

		entry := model.FragmentResult{
			StableName: loc.StableName(),
			Hint:       loc.Hint(),
		}

		strategy := verify.Classify(fragment)
		if skip, ok := strategy.(model.SkipStrategy); ok {
			entry.Detail = skip.Reason
			result.Skipped = append(result.Skipped, entry)
			printer.skipped(entry)
			continue
		}

		dir, test, err := WriteFragment(scratch, fragment)
		if err != nil {
			return model.SuiteResult{}, err
		}
		c.verbose("running %s in %s (test=%v)", loc.StableName(), dir, test)

		outcome, err := c.Runner.Run(ctx, dir, test)
		if err != nil {
			// Failure to invoke the toolchain at all is an
			// infrastructure error and aborts the run.
			return model.SuiteResult{}, fmt.Errorf("failed to run %s: %w", loc.StableName(), err)
		}

		verdict := verify.Verify(strategy, outcome)
		if verdict.Passed {
			result.Passed = append(result.Passed, entry)
			printer.passed(entry)
			continue
		}
		entry.Detail = verdict.Detail
		entry.Unmatched = verdict.Unmatched
		result.Failed = append(result.Failed, entry)
		printer.failed(entry)
	}

	printer.suiteFooter(result)
	return result, nil
}

// Ok reports whether no fragment in any suite failed verification.
func Ok(results []model.SuiteResult) bool {
	for _, r := range results {
		if !r.Ok() {
			return false
		}
	}
	return true
}

func (c *Checker) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Checker) verbose(format string, args ...any) {
	if c.Verbose != nil {
		c.Verbose(format, args...)
	}
}
