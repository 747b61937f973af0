// Package diff renders line-oriented differences between two stylesheets.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares current against generated line by line and returns a
// unified-style diff, or "" when both are identical. Output beyond
// 10,000 lines is truncated with a marker.
func Unified(current, generated []byte, currentLabel, generatedLabel string) string {
	if bytes.Equal(current, generated) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(current), string(generated))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", currentLabel)
	fmt.Fprintf(&buf, "+++ %s\n", generatedLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(current), countLines(generated))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteString("\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String()
}

// Changed reports how many lines were removed and added.
func Changed(current, generated []byte) (removed, added int) {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(current), string(generated))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		}
	}
	return removed, added
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
