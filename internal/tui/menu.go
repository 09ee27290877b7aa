package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceBackup
	ChoiceExit
)

type item struct {
	label  string
	choice Choice
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D9FF"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Menu is a single-select prompt: run a backup now or exit.
type Menu struct {
	title    string
	subtitle string
	items    []item
	cursor   int
	choice   Choice
	keys     KeyMap
}

func NewMenu(title, subtitle string) Menu {
	return Menu{
		title:    title,
		subtitle: subtitle,
		items: []item{
			{label: "📦 Backup Postgres now", choice: ChoiceBackup},
			{label: "🚪 Exit", choice: ChoiceExit},
		},
		keys: DefaultKeyMap(),
	}
}

func (m Menu) Choice() Choice {
	return m.choice
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.choice = ChoiceExit
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Select):
		m.choice = m.items[m.cursor].choice
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	}

	return m, nil
}

func (m Menu) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(subtitleStyle.Render(m.subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, it := range m.items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("» " + it.label))
		} else {
			b.WriteString("  " + it.label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s • %s • %s",
		m.keys.Up.Help().Key+"/"+m.keys.Down.Help().Key+" move",
		m.keys.Select.Help().Key+" select",
		m.keys.Quit.Help().Key+" exit",
	)))
	b.WriteString("\n")

	return b.String()
}

// Select runs the menu once and returns the operator's choice. A cancelled
// context counts as exit.
func Select(ctx context.Context, menu Menu, in io.Reader, out io.Writer) (Choice, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(menu, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return ChoiceExit, nil
	}
	if err != nil {
		return ChoiceExit, fmt.Errorf("menu: %w", err)
	}

	m, ok := final.(Menu)
	if !ok || m.choice == ChoiceNone {
		return ChoiceExit, nil
	}
	return m.choice, nil
}
