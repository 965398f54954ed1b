package textutil

import (
	"strings"

	"golang.org/x/text/width"
)

const ellipsis = "..."

var lineBreakReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Preview flattens line breaks and truncates text to at most maxCells terminal
// columns, counting East Asian wide and fullwidth runes as two columns. An
// ellipsis is appended when text was cut. maxCells <= 0 disables truncation.
func Preview(text string, maxCells int) string {
	flat := lineBreakReplacer.Replace(text)
	if maxCells <= 0 || DisplayWidth(flat) <= maxCells {
		return flat
	}
	var b strings.Builder
	used := 0
	for _, r := range flat {
		w := runeWidth(r)
		if used+w > maxCells {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + ellipsis
}

// DisplayWidth returns the number of terminal columns text occupies.
func DisplayWidth(text string) int {
	total := 0
	for _, r := range text {
		total += runeWidth(r)
	}
	return total
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
