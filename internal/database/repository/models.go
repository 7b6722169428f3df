package repository

import "github.com/cruzr/cruzr/internal/catalog"

// Vehicle represents a vehicles row with its ordered features.
type Vehicle struct {
	ID          string
	Name        string
	Type        string
	Location    string
	Rating      float64
	Reviews     int
	PricePerDay float64
	Status      string
	MediaRef    *string
	MediaAlt    *string
	SortOrder   int
	Features    []string
}

// FromCatalog converts a catalog record into a row placed at sortOrder.
func FromCatalog(v catalog.Vehicle, sortOrder int) Vehicle {
	row := Vehicle{
		ID:          v.ID,
		Name:        v.Name,
		Type:        string(v.Type),
		Location:    v.Location,
		Rating:      v.Rating,
		Reviews:     v.Reviews,
		PricePerDay: v.PricePerDay,
		Status:      string(v.Status),
		SortOrder:   sortOrder,
		Features:    append([]string(nil), v.Features...),
	}
	if v.Media != nil {
		ref, alt := v.Media.Ref, v.Media.Alt
		row.MediaRef = &ref
		row.MediaAlt = &alt
	}
	return row
}

// ToCatalog converts a row back into a catalog record.
func (r Vehicle) ToCatalog() catalog.Vehicle {
	v := catalog.Vehicle{
		ID:          r.ID,
		Name:        r.Name,
		Type:        catalog.ParseType(r.Type),
		Location:    r.Location,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		PricePerDay: r.PricePerDay,
		Status:      catalog.ParseStatus(r.Status),
		Features:    append([]string(nil), r.Features...),
	}
	if r.MediaRef != nil && *r.MediaRef != "" {
		m := catalog.Media{Ref: *r.MediaRef}
		if r.MediaAlt != nil {
			m.Alt = *r.MediaAlt
		}
		v.Media = &m
	}
	return v
}
