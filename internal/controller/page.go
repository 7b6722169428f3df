package controller

import (
	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/ui"
)

// Page holds the form controls the controller reads from and the regions it
// writes to. The frontend edits the forms and then dispatches the matching
// event source.
type Page struct {
	// Chrome carries the static page iconography.
	Chrome     *ui.Node
	Filters    *criteria.Form
	Search     *criteria.Search
	PriceLabel *ui.Node
	Results    *ui.MountPoint
	Overlays   *ui.Container
	Banners    *ui.Container
}

// NewPage builds a page whose filter form sits at its defaults.
func NewPage(types []catalog.VehicleType, d criteria.Defaults) *Page {
	form := d.Form(types)
	return &Page{
		Chrome: ui.El("header", "page-chrome").Append(
			ui.El("i", "brand").SetAttr(ui.IconAttr, "car"),
			ui.El("i", "origin").SetAttr(ui.IconAttr, "map-pin"),
			ui.El("i", "dates").SetAttr(ui.IconAttr, "calendar"),
			ui.El("i", "submit").SetAttr(ui.IconAttr, "search"),
		),
		Filters:    &form,
		Search:     &criteria.Search{},
		PriceLabel: ui.El("span").SetAttr("id", "priceRangeValue").SetText(priceLabel(form.PriceRange)),
		Results:    ui.NewMountPoint("results"),
		Overlays:   ui.NewContainer("overlays"),
		Banners:    ui.NewContainer("banners"),
	}
}

func priceLabel(raw string) string {
	return "$" + raw
}
