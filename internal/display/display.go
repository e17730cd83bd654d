package display

import (
	"strings"
)

// Pair is one displayed row: an environment variable or a reported field.
type Pair struct {
	Key   string
	Value string
}

// Printer is the log sink sections are written to. *githubactions.Action
// implements it, wrapping each section in a foldable ::group:: region.
type Printer interface {
	Group(title string)
	EndGroup()
	Infof(msg string, args ...any)
}

// separator sits between the padded key and the value.
const separator = " = "

// PrintVariables writes pairs as an aligned, foldable section.
// Nothing is written when pairs is empty.
func PrintVariables(p Printer, title string, pairs []Pair) {
	if len(pairs) == 0 {
		return
	}

	maxKeyLength := MaxKeyLength(pairs)
	continuation := strings.Repeat(" ", maxKeyLength+len(separator))

	p.Group(title)
	for _, pair := range pairs {
		lines := strings.Split(pair.Value, "\n")
		p.Infof("%s%s%s", padRight(pair.Key, maxKeyLength), separator, lines[0])
		// Continuation lines line up under the first line's value column
		for _, line := range lines[1:] {
			p.Infof("%s%s", continuation, line)
		}
	}
	p.Infof("")
	p.EndGroup()
}

// MaxKeyLength returns the alignment column width for pairs.
func MaxKeyLength(pairs []Pair) int {
	maxKeyLength := 0
	for _, pair := range pairs {
		maxKeyLength = max(maxKeyLength, len(pair.Key))
	}
	return maxKeyLength
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
