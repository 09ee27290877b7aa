package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console prints operator-facing lines. Colors are dropped automatically
// when the writer is not a terminal.
type Console struct {
	out     io.Writer
	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:     out,
		info:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (c *Console) Info(message string) {
	c.println(c.info.Render("ℹ️ " + message))
}

func (c *Console) Success(message string) {
	c.println(c.success.Render(message))
}

func (c *Console) Error(message string) {
	c.println(c.failure.Render(message))
}

func (c *Console) Plain(message string) {
	c.println(message)
}

func (c *Console) println(line string) {
	_, _ = fmt.Fprintln(c.out, line)
}
