package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glotkit/ucbridge/transcode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	repairStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	input textinput.Model
}

func newInspectModel() inspectModel {
	ti := textinput.New()
	ti.Placeholder = "type text to inspect"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return inspectModel{input: ti}
}

func (m inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Encoding Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	s := m.input.Value()
	if s == "" {
		b.WriteString(helpStyle.Render("start typing • esc quit"))
		return b.String()
	}

	buf := transcode.FromUTF8(s)
	defer buf.Release()

	units := buf.Units()[:buf.Len()]
	points := transcode.ToUTF32(buf)

	rows := []struct {
		label string
		value string
	}{
		{"utf-8", fmt.Sprintf("% x", []byte(s))},
		{"utf-16", formatUnits(units)},
		{"utf-32", formatRunes(points)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%7s", row.label)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	if repaired := transcode.ToUTF8(buf); repaired != s {
		b.WriteString(repairStyle.Render(fmt.Sprintf("%7s  %s", "repair", repaired)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d bytes • %d code units • %d code points • esc quit",
		len(s), len(units), len(points))))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
