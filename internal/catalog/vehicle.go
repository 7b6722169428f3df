package catalog

import "strings"

// VehicleType is the catalog's vehicle class. The known set drives placeholder
// art; values outside it are kept verbatim.
type VehicleType string

const (
	Electric VehicleType = "Electric"
	SUV      VehicleType = "SUV"
	Sedan    VehicleType = "Sedan"
	Luxury   VehicleType = "Luxury"
)

// KnownTypes lists the vehicle types in filter-form order.
var KnownTypes = []VehicleType{Electric, SUV, Sedan, Luxury}

// ParseType maps a loosely cased name onto a known type. Unknown names are
// returned trimmed but otherwise unchanged.
func ParseType(s string) VehicleType {
	s = strings.TrimSpace(s)
	for _, t := range KnownTypes {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return VehicleType(s)
}

// Known reports whether t is one of KnownTypes.
func (t VehicleType) Known() bool {
	for _, k := range KnownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Status gates bookability.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// ParseStatus treats anything other than "available" as unavailable.
func ParseStatus(s string) Status {
	if strings.EqualFold(strings.TrimSpace(s), string(StatusAvailable)) {
		return StatusAvailable
	}
	return StatusUnavailable
}

// Label is the badge copy shown for a status.
func (s Status) Label() string {
	if s == StatusAvailable {
		return "Available"
	}
	return "Fully Booked"
}

// Media references a real image for a vehicle.
type Media struct {
	Ref string `yaml:"ref"`
	Alt string `yaml:"alt"`
}

// Vehicle is one rentable catalog record.
type Vehicle struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Type        VehicleType `yaml:"type"`
	Location    string      `yaml:"location"`
	Rating      float64     `yaml:"rating"`
	Reviews     int         `yaml:"reviews"`
	PricePerDay float64     `yaml:"price_per_day"`
	Status      Status      `yaml:"status"`
	Features    []string    `yaml:"features"`
	Media       *Media      `yaml:"media,omitempty"`
}

// Bookable reports whether the vehicle may enter the booking workflow.
func (v Vehicle) Bookable() bool {
	return v.Status == StatusAvailable
}

// HasMedia reports whether a real image reference is present.
func (v Vehicle) HasMedia() bool {
	return v.Media != nil && strings.TrimSpace(v.Media.Ref) != ""
}

func (v Vehicle) clone() Vehicle {
	out := v
	if v.Features != nil {
		out.Features = append([]string(nil), v.Features...)
	}
	if v.Media != nil {
		m := *v.Media
		out.Media = &m
	}
	return out
}
