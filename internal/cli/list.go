// Package cli — list.go implements the "scala-cli-md-spec list" command.
//
// The list command extracts and groups fragments exactly like check but
// never executes anything. It prints each fragment's stable name, source
// hint and the strategy the verifier would apply, which is the easiest
// way to discover names for the --filter flag.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/markdown"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/verify"
)

// listEntry is one row of the list output.
type listEntry struct {
	StableName string `json:"stableName"`
	Hint       string `json:"hint"`
	Files      int    `json:"files"`
	Strategy   string `json:"strategy"`
}

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [docsDir]",
		Short: "List extracted fragments without running them",
		Long: `Extract and group the runnable fragments of every *.md file under
the docs directory and print their stable names, source positions and
the strategy each would be verified with. Nothing is executed.

Examples:
  scala-cli-md-spec list
  scala-cli-md-spec list docs --json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			docsDir := "docs"
			if len(args) == 1 {
				docsDir = args[0]
			}
			return runList(docsDir)
		},
	}

	return cmd
}

// runList is the main logic function for the list command.
func runList(docsDir string) error {
	docs, err := markdown.ReadDir(docsDir)
	if err != nil {
		return err
	}

	var entries []listEntry
	extractor := markdown.Extractor{}
	for _, doc := range docs {
		for _, fragment := range extractor.Fragments(doc) {
			loc := fragment.Location()
			entries = append(entries, listEntry{
				StableName: loc.StableName(),
				Hint:       loc.Hint(),
				Files:      len(model.Files(fragment.Content)),
				Strategy:   verify.Classify(fragment).Describe(),
			})
		}
	}

	if jsonOutput {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode fragment list: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tHINT\tFILES\tSTRATEGY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.StableName, e.Hint, e.Files, e.Strategy)
	}
	return w.Flush()
}
