package render

import (
	"strconv"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/ui"
	"github.com/cruzr/cruzr/internal/workflow"
)

const (
	EmptyTitle = "No matches found"
	EmptyHint  = "Adjust your filters or try a different search."
	BookLabel  = "Book now"
)

// BookFunc receives the booking snapshot captured when a card was built.
type BookFunc func(workflow.Booking)

// Pipeline projects vehicle lists into cards on a mount point it owns.
type Pipeline struct {
	Icons ui.IconRenderer
	Book  BookFunc
}

// Render replaces the content of target with one card per vehicle, or with
// the empty state when vehicles is empty. It returns the number of cards.
func (p *Pipeline) Render(target *ui.MountPoint, vehicles []catalog.Vehicle) int {
	target.Clear()
	if len(vehicles) == 0 {
		target.Append(emptyState())
		return 0
	}
	for _, v := range vehicles {
		target.Append(p.card(v))
	}
	if p.Icons != nil {
		p.Icons.CreateIcons(target.Root())
	}
	return len(vehicles)
}

func emptyState() *ui.Node {
	return ui.El("div", "empty-state").Append(
		ui.El("h3").SetText(EmptyTitle),
		ui.El("p").SetText(EmptyHint),
	)
}

func (p *Pipeline) card(v catalog.Vehicle) *ui.Node {
	card := ui.El("article", "booking-card").
		SetAttr("data-id", v.ID).
		SetAttr("data-type", string(v.Type))

	features := ui.El("ul", "booking-card__features")
	for _, f := range v.Features {
		features.Append(ui.El("li").SetText(f))
	}

	book := ui.El("button", "btn", "btn--primary").SetText(BookLabel)
	snapshot := workflow.Booking{VehicleID: v.ID, Name: v.Name, Status: v.Status}
	if p.Book != nil {
		fn := p.Book
		book.OnActivate(func() { fn(snapshot) })
	}

	card.Append(
		media(v),
		ui.El("div", "booking-card__body").Append(
			ui.El("h3", "booking-card__title").SetText(v.Name),
			ui.El("span", "booking-card__type").SetText(string(v.Type)),
			ui.El("span", "booking-card__rating").SetText(FormatRating(v.Rating, v.Reviews)).
				Append(ui.El("i").SetAttr(ui.IconAttr, "star")),
			ui.El("span", "badge", "badge--status").
				SetAttr("data-status", string(v.Status)).
				SetText(v.Status.Label()),
			features,
		),
		ui.El("div", "booking-card__footer").Append(
			ui.El("p", "booking-card__price").Append(
				ui.El("strong").SetText(FormatPrice(v.PricePerDay)),
				ui.El("span").SetText("/day"),
			),
			book,
		),
	)
	return card
}

func media(v catalog.Vehicle) *ui.Node {
	wrapper := ui.El("div", "booking-card__image-wrapper")
	if v.HasMedia() {
		return wrapper.Append(ui.El("img", "booking-card__image").
			SetAttr("src", v.Media.Ref).
			SetAttr("alt", v.Media.Alt))
	}
	g := GlyphFor(v.Type)
	placeholder := ui.El("div", "booking-card__placeholder").
		SetAttr("data-glyph", g.Name).
		SetText(g.Art)
	placeholder.Markup = g.Markup
	return wrapper.Append(placeholder)
}

// FormatRating renders "{rating} ({reviews})" using the stored rating as is.
func FormatRating(rating float64, reviews int) string {
	return strconv.FormatFloat(rating, 'f', -1, 64) + " (" + strconv.Itoa(reviews) + ")"
}

// FormatPrice renders the stored daily price with a dollar sign and no
// rounding.
func FormatPrice(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}
