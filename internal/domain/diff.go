package domain

import (
	"strings"

	m "github.com/mouse-blink/remedy/internal/model"
)

// ComputeDiff compares two content snapshots line by line, by position.
// Unequal rows contribute a removed line (when the original row is
// non-empty) and an added line (when the fixed row is non-empty); equal rows
// contribute nothing. When the snapshots have different line counts the
// shorter side is padded with empty lines.
func ComputeDiff(original, fixed string) m.Diff {
	origLines := splitLines(original)
	fixedLines := splitLines(fixed)

	var diff m.Diff

	for i := 0; i < len(origLines) || i < len(fixedLines); i++ {
		var origLine, fixedLine string

		if i < len(origLines) {
			origLine = origLines[i]
		}

		if i < len(fixedLines) {
			fixedLine = fixedLines[i]
		}

		if origLine == fixedLine {
			continue
		}

		if origLine != "" {
			diff.Lines = append(diff.Lines, m.DiffLine{Kind: m.DiffRemoved, Row: i + 1, Text: origLine})
		}

		if fixedLine != "" {
			diff.Lines = append(diff.Lines, m.DiffLine{Kind: m.DiffAdded, Row: i + 1, Text: fixedLine})
		}
	}

	return diff
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
