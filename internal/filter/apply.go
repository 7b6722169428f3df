package filter

import "github.com/cruzr/cruzr/internal/catalog"

// Apply returns the vehicles matching c, preserving catalog order.
func Apply(vehicles []catalog.Vehicle, c Criteria) []catalog.Vehicle {
	out := make([]catalog.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if c.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
