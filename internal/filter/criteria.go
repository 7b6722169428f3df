package filter

import "github.com/cruzr/cruzr/internal/catalog"

// Mode selects whether unavailable vehicles stay in the result.
type Mode int

const (
	All Mode = iota
	AvailableOnly
)

func (m Mode) String() string {
	if m == AvailableOnly {
		return "available"
	}
	return "all"
}

// TypeSet is the set of selected vehicle types. An empty set matches nothing.
type TypeSet map[catalog.VehicleType]struct{}

// NewTypeSet builds a set from types.
func NewTypeSet(types ...catalog.VehicleType) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

func (s TypeSet) Has(t catalog.VehicleType) bool {
	_, ok := s[t]
	return ok
}

// Criteria is one snapshot of the filter form. Snapshots are replaced, never edited.
type Criteria struct {
	Types        TypeSet
	MaxPrice     float64
	MinRating    float64
	Availability Mode
}

// Matches reports whether v satisfies every predicate.
func (c Criteria) Matches(v catalog.Vehicle) bool {
	return c.Types.Has(v.Type) &&
		v.PricePerDay <= c.MaxPrice &&
		v.Rating >= c.MinRating &&
		(c.Availability == All || v.Status == catalog.StatusAvailable)
}
