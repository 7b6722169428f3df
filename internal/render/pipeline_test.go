package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/filter"
	"github.com/cruzr/cruzr/internal/ui"
	"github.com/cruzr/cruzr/internal/workflow"
)

func newPipeline() (*Pipeline, *ui.Icons, *[]workflow.Booking) {
	var booked []workflow.Booking
	icons := ui.NewIcons()
	return &Pipeline{
		Icons: icons,
		Book:  func(b workflow.Booking) { booked = append(booked, b) },
	}, icons, &booked
}

func TestRenderGolden(t *testing.T) {
	g := goldie.New(t)
	p, _, _ := newPipeline()
	target := ui.NewMountPoint("results")

	c := filter.Criteria{
		Types:        filter.NewTypeSet(catalog.SUV),
		MaxPrice:     100,
		MinRating:    4.5,
		Availability: filter.AvailableOnly,
	}
	require.Equal(t, 1, p.Render(target, filter.Apply(catalog.Default(), c)))
	g.Assert(t, "honda_card", []byte(target.String()))

	c.MaxPrice = 10
	require.Zero(t, p.Render(target, filter.Apply(catalog.Default(), c)))
	g.Assert(t, "empty_state", []byte(target.String()))
}

func TestRenderIsIdempotent(t *testing.T) {
	p, _, _ := newPipeline()
	target := ui.NewMountPoint("results")
	p.Render(target, catalog.Default())
	first := target.String()
	p.Render(target, catalog.Default())
	require.Equal(t, first, target.String())
	require.Len(t, target.Children(), 5)
}

func TestRenderUnavailableBadge(t *testing.T) {
	p, _, _ := newPipeline()
	target := ui.NewMountPoint("results")
	c := filter.Criteria{Types: filter.NewTypeSet(catalog.Luxury), MaxPrice: 300, Availability: filter.All}
	require.Equal(t, 1, p.Render(target, filter.Apply(catalog.Default(), c)))

	badge := target.Root().Find("badge--status")
	require.NotNil(t, badge)
	require.Equal(t, "Fully Booked", badge.Text)
	require.Equal(t, "unavailable", badge.Attr("data-status"))
}

func TestRenderCardsKeepOrderAndFeatures(t *testing.T) {
	p, _, _ := newPipeline()
	target := ui.NewMountPoint("results")
	vehicles := catalog.Default()
	p.Render(target, vehicles)

	cards := target.Root().FindAll("booking-card")
	require.Len(t, cards, len(vehicles))
	for i, card := range cards {
		require.Equal(t, vehicles[i].ID, card.Attr("data-id"))
		items := card.Find("booking-card__features").Children
		require.Len(t, items, len(vehicles[i].Features))
		for j, li := range items {
			require.Equal(t, vehicles[i].Features[j], li.Text)
		}
	}
	require.Equal(t, "4.95 (98)", cards[3].Find("booking-card__rating").Text)
	require.Equal(t, "$240", cards[3].Find("booking-card__price").Children[0].Text)
}

func TestRenderBookButtonCapturesSnapshot(t *testing.T) {
	p, _, booked := newPipeline()
	target := ui.NewMountPoint("results")
	vehicles := catalog.Default()
	p.Render(target, vehicles)

	// Mutating the input after rendering must not leak into the handler.
	vehicles[1].Name = "changed"
	vehicles[1].Status = catalog.StatusUnavailable

	buttons := target.Root().FindAll("btn--primary")
	require.Len(t, buttons, 5)
	require.True(t, buttons[1].Activate())
	require.True(t, buttons[3].Activate())
	require.Equal(t, []workflow.Booking{
		{VehicleID: "crzr-002", Name: "BMW X5 M Sport", Status: catalog.StatusAvailable},
		{VehicleID: "crzr-004", Name: "Mercedes S-Class Chauffeur", Status: catalog.StatusUnavailable},
	}, *booked)
}

func TestRenderMediaAndFallbackGlyph(t *testing.T) {
	p, _, _ := newPipeline()
	target := ui.NewMountPoint("results")
	p.Render(target, []catalog.Vehicle{
		{ID: "a", Name: "Van", Type: catalog.VehicleType("Minivan"), Status: catalog.StatusAvailable},
		{ID: "b", Name: "Prius", Type: catalog.Sedan, Media: &catalog.Media{Ref: "prius.jpg", Alt: "Silver Toyota Prius"}},
		{ID: "c", Name: "Blank", Type: catalog.Electric, Media: &catalog.Media{Ref: "  "}},
	})
	cards := target.Children()

	van := cards[0].Find("booking-card__placeholder")
	require.Equal(t, "sedan", van.Attr("data-glyph"))
	require.Equal(t, GlyphFor(catalog.Sedan).Markup, van.Markup)

	img := cards[1].Find("booking-card__image")
	require.NotNil(t, img)
	require.Equal(t, "prius.jpg", img.Attr("src"))
	require.Equal(t, "Silver Toyota Prius", img.Attr("alt"))
	require.Nil(t, cards[1].Find("booking-card__placeholder"))

	require.Equal(t, "electric", cards[2].Find("booking-card__placeholder").Attr("data-glyph"))
}

func TestRenderCallsIconsOnlyForCards(t *testing.T) {
	p, icons, _ := newPipeline()
	target := ui.NewMountPoint("results")
	p.Render(target, nil)
	require.Zero(t, icons.Calls())
	p.Render(target, catalog.Default()[:1])
	require.Equal(t, 1, icons.Calls())
}

func TestGlyphForIsTotal(t *testing.T) {
	seen := map[string]bool{}
	for _, tp := range catalog.KnownTypes {
		g := GlyphFor(tp)
		require.NotEmpty(t, g.Markup)
		require.NotEmpty(t, g.Art)
		seen[g.Name] = true
	}
	require.Len(t, seen, 4)
	require.Equal(t, GlyphFor(catalog.Sedan), GlyphFor(""))
	require.Equal(t, GlyphFor(catalog.Sedan), GlyphFor("Hovercraft"))
}

func TestFormatters(t *testing.T) {
	require.Equal(t, "4.9 (212)", FormatRating(4.9, 212))
	require.Equal(t, "5 (0)", FormatRating(5, 0))
	require.Equal(t, "$189", FormatPrice(189))
	require.Equal(t, "$92.5", FormatPrice(92.5))
	require.Equal(t, "$0", FormatPrice(0))
}
