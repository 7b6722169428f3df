package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPopup centers a bordered card over base.
func renderPopup(base, popup string, border lipgloss.Color, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}
	canvas := fitCanvas(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Render(popup)
	lines := splitToLines(card, 0)
	cw, ch := maxLineWidth(lines), len(lines)
	if cw <= 0 || ch <= 0 {
		return canvas
	}
	return overlayAt(canvas, card, max(0, (width-cw)/2), max(0, (height-ch)/2), width, height)
}

// stackBottomRight places popups above each other in the bottom right
// corner, newest lowest.
func stackBottomRight(base string, popups []string, width, height int) string {
	if width <= 0 || height <= 0 || len(popups) == 0 {
		return base
	}
	canvas := fitCanvas(base, width, height)
	bottom := height - 2
	for i := len(popups) - 1; i >= 0; i-- {
		lines := splitToLines(popups[i], 0)
		y := bottom - len(lines)
		if y < 0 {
			break
		}
		x := max(0, width-maxLineWidth(lines)-1)
		canvas = overlayAt(canvas, popups[i], x, y, width, height)
		bottom = y
	}
	return canvas
}

func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		overlayLine := padRightANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
