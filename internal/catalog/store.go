package catalog

import (
	"fmt"
	"strings"
)

// ValidationError collects every problem found while building a Store.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid catalog: " + strings.Join(e.Problems, "; ")
}

// Store is the session catalog. It is never mutated after construction.
type Store struct {
	vehicles []Vehicle
	byID     map[string]int
}

// NewStore validates vehicles and freezes them in the given order.
func NewStore(vehicles []Vehicle) (*Store, error) {
	s := &Store{
		vehicles: make([]Vehicle, 0, len(vehicles)),
		byID:     make(map[string]int, len(vehicles)),
	}
	var problems []string
	for i, v := range vehicles {
		id := strings.TrimSpace(v.ID)
		switch {
		case id == "":
			problems = append(problems, fmt.Sprintf("vehicle %d: missing id", i))
			continue
		case s.has(id):
			problems = append(problems, fmt.Sprintf("vehicle %q: duplicate id", id))
			continue
		}
		if v.Rating < 0 || v.Rating > 5 {
			problems = append(problems, fmt.Sprintf("vehicle %q: rating %v outside [0,5]", id, v.Rating))
		}
		if v.Reviews < 0 {
			problems = append(problems, fmt.Sprintf("vehicle %q: negative review count", id))
		}
		if v.PricePerDay < 0 {
			problems = append(problems, fmt.Sprintf("vehicle %q: negative price", id))
		}
		if v.Status == "" {
			v.Status = StatusUnavailable
		}
		v.ID = id
		s.byID[id] = len(s.vehicles)
		s.vehicles = append(s.vehicles, v.clone())
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return s, nil
}

func (s *Store) has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// All returns a copy of the catalog in catalog order.
func (s *Store) All() []Vehicle {
	out := make([]Vehicle, len(s.vehicles))
	for i, v := range s.vehicles {
		out[i] = v.clone()
	}
	return out
}

// Get looks a vehicle up by id.
func (s *Store) Get(id string) (Vehicle, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Vehicle{}, false
	}
	return s.vehicles[idx].clone(), true
}

func (s *Store) Len() int {
	return len(s.vehicles)
}

// Types returns the distinct vehicle types in first-seen order.
func (s *Store) Types() []VehicleType {
	seen := make(map[VehicleType]bool)
	var out []VehicleType
	for _, v := range s.vehicles {
		if seen[v.Type] {
			continue
		}
		seen[v.Type] = true
		out = append(out, v.Type)
	}
	return out
}

// Locations returns the distinct non-empty pickup locations in first-seen order.
func (s *Store) Locations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range s.vehicles {
		loc := strings.TrimSpace(v.Location)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		out = append(out, loc)
	}
	return out
}
