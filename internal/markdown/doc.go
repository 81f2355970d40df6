// Package markdown turns markdown documentation into located, runnable
// code fragments.
//
// This package implements the front half of the verification pipeline:
//   - Document reading (one markdown file, immutable once read)
//   - Fragment extraction: a single forward pass over a document's lines
//     that recognizes section headers and fenced scala/java code blocks
//   - Content combination: merging two fragments' code, either by
//     concatenation or by filename-keyed union
//   - Multi-file grouping: reassembling fragments tagged with
//     `// file: <name> - part of <example>` headers into one fragment
//
// Parse anomalies (unterminated fences, unusual trailing fence tokens)
// are tolerated silently: the documents under inspection are not under
// this tool's control, so malformed markup is inert prose, never a hard
// failure.
package markdown
