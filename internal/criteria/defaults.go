package criteria

import (
	"fmt"
	"sort"

	"github.com/cruzr/cruzr/internal/catalog"
)

// Defaults are the documented control defaults and bounds.
type Defaults struct {
	MaxPrice      float64
	PriceMin      float64
	PriceMax      float64
	PriceStep     float64
	RatingOptions []string
}

// NewDefaults returns the stock form defaults.
func NewDefaults() Defaults {
	return Defaults{
		MaxPrice:      150,
		PriceMin:      50,
		PriceMax:      300,
		PriceStep:     5,
		RatingOptions: []string{"0", "4", "4.5", "4.8"},
	}
}

// Validate checks the bounds are coherent.
func (d Defaults) Validate() error {
	switch {
	case d.PriceMin > d.PriceMax:
		return fmt.Errorf("price min %v above max %v", d.PriceMin, d.PriceMax)
	case d.MaxPrice < d.PriceMin || d.MaxPrice > d.PriceMax:
		return fmt.Errorf("default max price %v outside [%v,%v]", d.MaxPrice, d.PriceMin, d.PriceMax)
	case d.PriceStep <= 0:
		return fmt.Errorf("price step must be positive, got %v", d.PriceStep)
	case len(d.RatingOptions) == 0:
		return fmt.Errorf("at least one rating option is required")
	}
	return nil
}

// RatingFloor is the lowest rating option, the control's minimum.
func (d Defaults) RatingFloor() string {
	if len(d.RatingOptions) == 0 {
		return "0"
	}
	opts := append([]string(nil), d.RatingOptions...)
	sort.SliceStable(opts, func(i, j int) bool { return Number(opts[i]) < Number(opts[j]) })
	return opts[0]
}

// Form builds a form at its defaults for the given type checkboxes.
func (d Defaults) Form(types []catalog.VehicleType) Form {
	f := Form{Types: make([]TypeOption, len(types))}
	for i, t := range types {
		f.Types[i] = TypeOption{Type: t}
	}
	return Reset(f, d)
}

// Reset restores every control to its default: all types checked, price at
// the default ceiling, rating at its floor, availability all.
func Reset(f Form, d Defaults) Form {
	out := Form{Types: make([]TypeOption, len(f.Types))}
	for i, o := range f.Types {
		out.Types[i] = TypeOption{Type: o.Type, Checked: true}
	}
	out.PriceRange = FormatNumber(d.MaxPrice)
	out.Rating = d.RatingFloor()
	out.Availability = AvailabilityAll
	return out
}
