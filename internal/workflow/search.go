package workflow

import (
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/ui"
)

const (
	SearchSlot    = "search"
	SearchHeading = "Searching available rides..."
)

// Query is a submitted search plus advisory hints shown on its banner.
type Query struct {
	criteria.Search
	Suggestion string
}

// SearchSpec describes the search banner: shown, then removed after a single
// delay.
func SearchSpec(container *ui.Container, t Timings) Spec[Query] {
	return Spec[Query]{
		Name:      SearchSlot,
		Container: container,
		Pending:   t.SearchBanner,
		Label: func(q Query) string {
			return q.Label()
		},
		Build: func(q Query, label string) *ui.Node {
			n := ui.El("div", "search-confirmation").Append(
				ui.El("strong").SetText(SearchHeading),
				ui.El("p").SetText(label),
			)
			if err := q.Validate(); err != nil {
				n.Append(ui.El("p", "search-confirmation__hint").SetText(err.Error()))
			}
			if q.Suggestion != "" && q.Suggestion != q.Origin {
				n.Append(ui.El("p", "search-confirmation__suggestion").
					SetText("Pickup near " + q.Suggestion))
			}
			return n
		},
	}
}
