package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// paneBox is a bordered region with the title set into the top edge.
type paneBox struct {
	Title   string
	Content string
	Focused bool
}

func (p paneBox) render(width, height int) string {
	width = max(width, 6)
	height = max(height, 3)
	border := colorMuted
	prefix := "  "
	if p.Focused {
		border = colorFocus
		prefix = "● "
	}
	bs := lipgloss.NewStyle().Foreground(border)
	inner := width - 2
	contentWidth := inner - 2

	title := " " + ansi.Truncate(strings.TrimSpace(prefix+p.Title), max(1, inner-3), "") + " "
	dashes := max(0, inner-ansi.StringWidth(title))
	lead := min(1, dashes)
	rows := make([]string, 0, height)
	rows = append(rows, bs.Render("╭"+strings.Repeat("─", lead))+
		titleStyle.UnsetUnderline().Render(title)+
		bs.Render(strings.Repeat("─", dashes-lead)+"╮"))

	lines := strings.Split(p.Content, "\n")
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], contentWidth, "…")
		}
		rows = append(rows, bs.Render("│")+" "+padRightANSI(line, contentWidth)+" "+bs.Render("│"))
	}
	rows = append(rows, bs.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(rows, "\n")
}
