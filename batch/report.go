package batch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console prints one line per icon to w.
type Console struct {
	w       io.Writer
	ok      lipgloss.Style
	skip    lipgloss.Style
	done    lipgloss.Style
	hint    lipgloss.Style
	dimPath lipgloss.Style
}

// NewConsole styles output only when color is true; otherwise lines are plain.
func NewConsole(w io.Writer, color bool) *Console {
	c := &Console{w: w}
	if !color {
		return c
	}
	r := lipgloss.NewRenderer(w)
	c.ok = r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	c.skip = r.NewStyle().Foreground(lipgloss.Color("214"))
	c.done = r.NewStyle().Bold(true)
	c.hint = r.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	c.dimPath = r.NewStyle().Foreground(lipgloss.Color("252"))
	return c
}

func (c *Console) Created(out Output) {
	fmt.Fprintf(c.w, "%s %s\n", c.ok.Render("created"), c.dimPath.Render(out.Path))
}

func (c *Console) Skipped(size int, backend string) {
	fmt.Fprintf(c.w, "%s %dx%d icon (drawing backend %q unavailable)\n", c.skip.Render("skipped"), size, size, backend)
}

func (c *Console) Done(s Summary) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.done.Render(fmt.Sprintf("icon generation complete: %d created, %d skipped", len(s.Created), len(s.Skipped))))
}

func (c *Console) Hint(backend string) {
	fmt.Fprintln(c.w, c.hint.Render(fmt.Sprintf("drawing backend %q is not compiled in; rebuild without -tags nodraw", backend)))
}
