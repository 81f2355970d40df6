// document.go implements reading markdown documents from disk.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Document is one markdown file, split into lines. It is immutable once
// read; all later pipeline stages only ever look at it.
type Document struct {
	// Name is the simple file name, e.g. "usage.md".
	Name string

	// Lines holds the document's lines in order, without trailing
	// newline characters.
	Lines []string
}

// NewDocument builds a Document from a name and raw text. Useful for
// tests and for callers that already hold the content in memory.
func NewDocument(name, text string) Document {
	return Document{
		Name:  name,
		Lines: strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"),
	}
}

// ReadDocument reads one markdown file from disk. The document name is
// the base name of the path.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return NewDocument(filepath.Base(path), string(data)), nil
}

// ReadDir reads all *.md files directly under dir, sorted by file name.
// Subdirectories are not descended into: docs trees conventionally keep
// runnable examples in top-level pages, and recursing would make suite
// names ambiguous (two README.md files would collide).
func ReadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs directory %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		doc, err := ReadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	// Suite order is document name order.
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}
