package docgen

import (
	"reflect"
	"testing"
)

func TestParseContent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Line
	}{
		{
			name: "plain paragraph",
			text: "A simple paragraph.",
			expected: []Line{
				{Runs: []Run{{Text: "A simple paragraph."}}},
			},
		},
		{
			name: "blank lines dropped",
			text: "First.\n\n\nSecond.",
			expected: []Line{
				{Runs: []Run{{Text: "First."}}},
				{Runs: []Run{{Text: "Second."}}},
			},
		},
		{
			name: "dash and star bullets",
			text: "- one\n* two",
			expected: []Line{
				{Runs: []Run{{Text: "one"}}, Bullet: true},
				{Runs: []Run{{Text: "two"}}, Bullet: true},
			},
		},
		{
			name: "nested bullet two spaces deep",
			text: "- top\n  - nested\n    - deeper",
			expected: []Line{
				{Runs: []Run{{Text: "top"}}, Bullet: true},
				{Runs: []Run{{Text: "nested"}}, Bullet: true, Indent: 1},
				{Runs: []Run{{Text: "deeper"}}, Bullet: true, Indent: 2},
			},
		},
		{
			name: "indented non-bullet resets to top level",
			text: "  plain but indented",
			expected: []Line{
				{Runs: []Run{{Text: "plain but indented"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseContent(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseContent(%q) = %+v, want %+v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestParseRuns(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Run
	}{
		{
			name:     "plain",
			text:     "no formatting",
			expected: []Run{{Text: "no formatting"}},
		},
		{
			name: "bold span",
			text: "use **bold** terms",
			expected: []Run{
				{Text: "use "},
				{Text: "bold", Bold: true},
				{Text: " terms"},
			},
		},
		{
			name: "italic span",
			text: "an _emphasized_ word",
			expected: []Run{
				{Text: "an "},
				{Text: "emphasized", Italic: true},
				{Text: " word"},
			},
		},
		{
			name: "italic inside bold",
			text: "**bold _and italic_**",
			expected: []Run{
				{Text: "bold ", Bold: true},
				{Text: "and italic", Bold: true, Italic: true},
			},
		},
		{
			name:     "unterminated marker still renders text",
			text:     "**dangling",
			expected: []Run{{Text: "dangling", Bold: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseRuns(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseRuns(%q) = %+v, want %+v", tt.text, got, tt.expected)
			}
		})
	}
}
