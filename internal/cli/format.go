package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
)

// gray dims text when w is a color-capable terminal.
func gray(w io.Writer, text string) string {
	if !useColor(w) {
		return text
	}
	return colorGray + text + colorReset
}

func idTag(w io.Writer, id int) string {
	return gray(w, fmt.Sprintf("[%d]", id))
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
