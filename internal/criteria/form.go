package criteria

import (
	"math"
	"strconv"
	"strings"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/filter"
)

// Availability control values.
const (
	AvailabilityAll       = "all"
	AvailabilityAvailable = "available"
)

// TypeOption is one checkbox in the type group.
type TypeOption struct {
	Type    catalog.VehicleType
	Checked bool
}

// Form holds the raw control values of the filter form. Values are strings
// because that is what the controls hand over.
type Form struct {
	Types        []TypeOption
	PriceRange   string
	Rating       string
	Availability string
}

// Checked returns the checked types in control order.
func (f Form) Checked() []catalog.VehicleType {
	var out []catalog.VehicleType
	for _, o := range f.Types {
		if o.Checked {
			out = append(out, o.Type)
		}
	}
	return out
}

// Read derives a fresh Criteria snapshot from the form. Malformed or missing
// numbers read as 0.
func Read(f Form) filter.Criteria {
	mode := filter.AvailableOnly
	if f.Availability == AvailabilityAll {
		mode = filter.All
	}
	return filter.Criteria{
		Types:        filter.NewTypeSet(f.Checked()...),
		MaxPrice:     Number(f.PriceRange),
		MinRating:    Number(f.Rating),
		Availability: mode,
	}
}

// Number coerces a control value to a finite float, 0 when it is not one.
func Number(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatNumber renders n the way a control would echo it back.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
