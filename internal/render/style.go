package render

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Style controls terminal decoration.
type Style struct {
	Color bool
}

// StyleFor enables color when w is a terminal.
func StyleFor(w io.Writer) Style {
	return Style{Color: IsTerminal(w)}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type palette struct {
	ok      *color.Color
	fail    *color.Color
	header  *color.Color
	del     *color.Color
	ins     *color.Color
	dim     *color.Color
	enabled bool
}

func newPalette(s Style) palette {
	p := palette{
		ok:      color.New(color.FgGreen, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		header:  color.New(color.FgCyan),
		del:     color.New(color.FgRed),
		ins:     color.New(color.FgGreen),
		dim:     color.New(color.Faint),
		enabled: s.Color,
	}
	for _, c := range []*color.Color{p.ok, p.fail, p.header, p.del, p.ins, p.dim} {
		if s.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
