package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapTitle splits a title into display lines no wider than width cells.
// Words wider than a whole line are broken across lines. A title with no
// words comes back unchanged as a single line.
func wrapTitle(title string, width int) []string {
	words := strings.Fields(title)
	if width <= 0 || len(words) == 0 {
		return []string{title}
	}
	var lines []string
	line := ""
	lineWidth := 0
	flush := func() {
		if line != "" {
			lines = append(lines, line)
		}
		line, lineWidth = "", 0
	}
	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			flush()
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// a single rune wider than the line
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		if word == "" {
			continue
		}
		wordWidth := runewidth.StringWidth(word)
		switch {
		case line == "":
			line, lineWidth = word, wordWidth
		case lineWidth+1+wordWidth > width:
			flush()
			line, lineWidth = word, wordWidth
		default:
			line += " " + word
			lineWidth += 1 + wordWidth
		}
	}
	flush()
	return lines
}
