package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/ui"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	filterWidth   = 32
	searchHeight  = 7
)

func (a *App) View() string {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}

	header := headerStyle.Width(w).Render(a.renderChrome())
	footer := footerStyle.Width(w).Render(a.renderHelp())
	banners := a.renderBanners()
	bodyHeight := max(6, h-2-searchHeight-lipgloss.Height(banners))

	filters := paneBox{Title: "Filters", Content: a.renderFilters(), Focused: a.focus == paneFilters}.
		render(filterWidth, bodyHeight)
	results := paneBox{Title: a.resultsTitle(), Content: a.renderResults(bodyHeight - 2), Focused: a.focus == paneResults}.
		render(w-filterWidth, bodyHeight)
	search := paneBox{Title: "Search", Content: a.renderSearch(), Focused: a.focus == paneSearch}.
		render(w, searchHeight)

	parts := []string{header, lipgloss.JoinHorizontal(lipgloss.Top, filters, results), search}
	if banners != "" {
		parts = append(parts, banners)
	}
	parts = append(parts, footer)
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)

	out = stackBottomRight(out, a.renderOverlays(), w, h)
	if a.alert != "" {
		out = renderPopup(out, alertStyle.Render(a.alert)+"\n\n"+helpDescStyle.Render("esc to dismiss"), colorError, w, h)
	}
	return out
}

func (a *App) renderChrome() string {
	var icons []string
	a.page.Chrome.Walk(func(n *ui.Node) {
		if n.Attr(ui.IconAttr) != "" {
			icons = append(icons, n.Text)
		}
	})
	brand := "Cruzr"
	if len(icons) > 0 {
		brand = icons[0] + " " + brand
	}
	s := a.page.Search
	trip := ""
	if s.Origin != "" || s.Pickup != "" || s.Dropoff != "" {
		trip = "  " + s.Label()
		if len(icons) >= 3 {
			trip = "  " + icons[1] + " " + icons[2] + " " + s.Label()
		}
	}
	return " " + brand + trip
}

func (a *App) resultsTitle() string {
	return fmt.Sprintf("Rides (%d)", len(a.cards()))
}

func (a *App) renderFilters() string {
	f := a.page.Filters
	var b strings.Builder
	b.WriteString(labelStyle.Render("Vehicle type") + "\n")
	for i, opt := range f.Types {
		box := "[ ]"
		if opt.Checked {
			box = "[x]"
		}
		b.WriteString(a.filterLine(i, box+" "+string(opt.Type)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(a.filterLine(a.priceRow(), "Max price  ◂ "+priceStyle.Render(a.page.PriceLabel.Text)+" ▸") + "\n")
	b.WriteString(a.filterLine(a.ratingRow(), "Min rating ◂ "+ratingLabel(f.Rating)+" ▸") + "\n")
	b.WriteString(a.filterLine(a.availabilityRow(), "Show       ◂ "+availabilityLabel(f.Availability)+" ▸") + "\n")
	b.WriteString("\n")
	b.WriteString(a.filterLine(a.resetRow(), "Reset filters"))
	return b.String()
}

func (a *App) filterLine(row int, text string) string {
	if a.focus == paneFilters && a.filterCursor == row {
		return cursorStyle.Render("▶ ") + text
	}
	return "  " + text
}

func ratingLabel(raw string) string {
	if criteria.Number(raw) == 0 {
		return "Any"
	}
	return raw + "+"
}

func availabilityLabel(raw string) string {
	if raw == criteria.AvailabilityAvailable {
		return "Available only"
	}
	return "All rides"
}

// renderResults projects the results region; cards scroll to keep the
// cursor visible.
func (a *App) renderResults(height int) string {
	root := a.page.Results.Root()
	if empty := root.Find("empty-state"); empty != nil {
		var lines []string
		for _, c := range empty.Children {
			if c.Tag == "h3" {
				lines = append(lines, titleStyle.Render(c.Text))
			} else {
				lines = append(lines, mutedStyle.Render(c.Text))
			}
		}
		return "\n" + strings.Join(lines, "\n")
	}
	cards := a.cards()
	blocks := make([]string, len(cards))
	for i, card := range cards {
		blocks[i] = a.renderCard(card, a.focus == paneResults && i == a.cardCursor)
	}
	const cardLines = 4
	perPage := max(1, height/cardLines)
	start := 0
	if a.cardCursor >= perPage {
		start = a.cardCursor - perPage + 1
	}
	end := min(len(blocks), start+perPage)
	return strings.Join(blocks[start:end], "\n")
}

func (a *App) renderCard(card *ui.Node, selected bool) string {
	text := func(class string) string {
		if n := card.Find(class); n != nil {
			return n.Text
		}
		return ""
	}
	marker := "  "
	if selected {
		marker = cursorStyle.Render("▶ ")
	}

	art := ""
	if ph := card.Find("booking-card__placeholder"); ph != nil {
		art = glyphStyle.Render(ph.Text) + " "
	} else if img := card.Find("booking-card__image-wrapper"); img != nil && len(img.Children) > 0 {
		art = glyphStyle.Render("[img]") + " "
	}

	rating := text("booking-card__rating")
	if r := card.Find("booking-card__rating"); r != nil && len(r.Children) > 0 {
		rating = r.Children[0].Text + " " + rating
	}

	badge := card.Find("badge--status")
	status := ""
	if badge != nil {
		st := okBadgeStyle
		if badge.Attr("data-status") != string(catalog.StatusAvailable) {
			st = offBadgeStyle
		}
		status = st.Render(badge.Text)
	}

	price := ""
	if p := card.Find("booking-card__price"); p != nil {
		price = priceStyle.Render(p.TextContent())
	}

	var features []string
	if ul := card.Find("booking-card__features"); ul != nil {
		for _, li := range ul.Children {
			features = append(features, li.Text)
		}
	}
	button := mutedStyle.Render("[" + text("btn--primary") + "]")
	if selected {
		button = keyStyle.Render("[" + text("btn--primary") + "]")
	}

	line1 := marker + art + titleStyle.UnsetUnderline().Render(text("booking-card__title")) +
		"  " + mutedStyle.Render(text("booking-card__type"))
	line2 := "    " + ratingStyle.Render(rating) + "  " + status + "  " + price
	line3 := "    " + mutedStyle.Render(strings.Join(features, " · ")) + "  " + button
	return line1 + "\n" + line2 + "\n" + line3 + "\n"
}

func (a *App) renderSearch() string {
	labels := []string{"From   ", "Pickup ", "Dropoff"}
	lines := make([]string, len(a.inputs))
	for i, in := range a.inputs {
		marker := "  "
		if a.focus == paneSearch && a.inputCursor == i {
			marker = cursorStyle.Render("▶ ")
		}
		lines[i] = marker + labelStyle.Render(labels[i]) + " " + inputStyle.Render(in.View())
	}
	return strings.Join(lines, "\n") + "\n" + helpDescStyle.Render("  enter on the last field searches")
}

func (a *App) renderBanners() string {
	var out []string
	for _, n := range a.page.Banners.Children() {
		var lines []string
		for _, c := range n.Children {
			switch {
			case c.Tag == "strong":
				lines = append(lines, bannerStyle.Bold(true).Render(c.Text))
			case c.HasClass("search-confirmation__hint"):
				lines = append(lines, hintStyle.Render(c.Text))
			default:
				lines = append(lines, bannerStyle.Render(c.Text))
			}
		}
		out = append(out, " "+strings.Join(lines, "  "))
	}
	return strings.Join(out, "\n")
}

func (a *App) renderOverlays() []string {
	var out []string
	for _, n := range a.page.Overlays.Children() {
		art, label := "", ""
		for _, c := range n.Children {
			if c.Tag == "span" {
				label = c.Text
			} else {
				art = c.Text
			}
		}
		st := textStyle
		border := colorInfo
		if n.HasClass("booking-animation--done") {
			st = doneStyle
			border = colorSuccess
		}
		out = append(out, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(glyphStyle.Render(art)+" "+st.Render(label)))
	}
	return out
}

func (a *App) renderHelp() string {
	var parts []string
	for _, b := range a.keys.help(a.focus) {
		h := b.Help()
		parts = append(parts, keyStyle.Render("["+h.Key+"]")+" "+helpDescStyle.Render(h.Desc))
	}
	return " " + strings.Join(parts, "  ")
}
