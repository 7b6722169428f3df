package criteria

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Search holds the search form values.
type Search struct {
	Origin  string
	Pickup  string
	Dropoff string
}

// Label is the banner line for a submitted search.
func (s Search) Label() string {
	return fmt.Sprintf("%s | %s → %s", s.Origin, s.Pickup, s.Dropoff)
}

// Validate reports date problems. It is advisory; a search is never refused.
func (s Search) Validate() error {
	var problems []string
	start, errStart := parseDate(s.Pickup)
	end, errEnd := parseDate(s.Dropoff)
	if errStart != nil {
		problems = append(problems, "pickup date must be YYYY-MM-DD")
	}
	if errEnd != nil {
		problems = append(problems, "dropoff date must be YYYY-MM-DD")
	}
	if errStart == nil && errEnd == nil && end.Before(start) {
		problems = append(problems, "dropoff date is before pickup date")
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

// Nights is the rental length for valid dates, 0 otherwise.
func (s Search) Nights() int {
	start, err := parseDate(s.Pickup)
	if err != nil {
		return 0
	}
	end, err := parseDate(s.Dropoff)
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}
