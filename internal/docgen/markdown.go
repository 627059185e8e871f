// Package docgen composes the exported artifacts. Section content is the
// markdown-lite dialect the generation prompts ask for: paragraphs, -/* bullet
// lines with 2-space nesting, **bold** and _italic_ runs. Both renderers share
// the parser here.
package docgen

import "strings"

// Run is a span of text with uniform formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Line is one parsed content line.
type Line struct {
	Runs   []Run
	Bullet bool
	Indent int // nesting level, 0 for top level
}

// ParseContent splits section content into formatted lines.
// Blank lines are dropped; 2 leading spaces equal one indent level.
func ParseContent(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		leading := len(raw) - len(strings.TrimLeft(raw, " "))
		indent := leading / 2

		stripped := strings.TrimSpace(raw)
		line := Line{Indent: indent}
		if strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* ") {
			line.Bullet = true
			stripped = stripped[2:]
		} else {
			line.Indent = 0
		}

		line.Runs = parseRuns(stripped)
		lines = append(lines, line)
	}
	return lines
}

// parseRuns splits a line into runs: ** toggles bold, _ toggles italic.
// Odd-numbered segments of each split are inside the marker.
func parseRuns(s string) []Run {
	var runs []Run
	for i, boldPart := range strings.Split(s, "**") {
		bold := i%2 == 1
		for j, text := range strings.Split(boldPart, "_") {
			if text == "" {
				continue
			}
			runs = append(runs, Run{
				Text:   text,
				Bold:   bold,
				Italic: j%2 == 1,
			})
		}
	}
	return runs
}
