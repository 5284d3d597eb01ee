package code

import (
	"fmt"
	"strings"
)

// Compact modifier letters used in hyphenated strokes like "C-S-w".
// They apply only to non-terminal positions; the terminal "c" in "C-c"
// is still the letter key.
var compactModifiers = map[string]Code{
	"C": Ctrl,
	"A": Alt,
	"S": Shift,
	"M": Meta,
	"D": Meta,
}

// ParseStroke parses a stroke string into its codes: zero or more modifiers
// followed by one terminal code.
//
// Two notations are accepted:
//
//	"ctrl+shift+w"  full names joined by '+'
//	"C-S-w"         compact modifier letters joined by '-'
//
// The returned slice is never empty on success; the last element is the
// terminal code.
func ParseStroke(s string) ([]Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("parsing stroke: empty string")
	}

	var parts []string
	compact := false
	if strings.Contains(s, "+") {
		parts = strings.Split(s, "+")
	} else if strings.Contains(s, "-") && len(s) > 1 {
		parts = strings.Split(s, "-")
		compact = true
	} else {
		parts = []string{s}
	}

	codes := make([]Code, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("parsing stroke %q: empty component", s)
		}

		terminal := i == len(parts)-1
		if compact && !terminal {
			if mod, ok := compactModifiers[part]; ok {
				codes = append(codes, mod)
				continue
			}
		}

		c := FromName(part)
		if c == None {
			return nil, fmt.Errorf("parsing stroke %q: unknown code %q", s, part)
		}
		codes = append(codes, c)
	}

	return codes, nil
}

// FormatStroke renders codes in the full "ctrl+shift+w" notation.
func FormatStroke(codes []Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, "+")
}
