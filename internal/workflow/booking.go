package workflow

import (
	"fmt"
	"time"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/ui"
)

const (
	BookingSlot         = "booking"
	BookingConfirmed    = "Booking confirmed!"
	bookingClass        = "booking-animation"
	bookingDoneClass    = "booking-animation--done"
	bookingSuccessClass = "booking-animation--success"
	bookingArt          = "»━━»"
	bookingMarkup       = `<svg viewBox="0 0 64 32" width="64" height="32"><rect x="4" y="12" width="48" height="12" rx="6" fill="url(#grad)"></rect><circle cx="18" cy="26" r="6" fill="#0052cc"></circle><circle cx="38" cy="26" r="6" fill="#00b8d9"></circle></svg>`
)

// Booking is the vehicle snapshot a card captures when it is rendered.
type Booking struct {
	VehicleID string
	Name      string
	Status    catalog.Status
}

// UnbookableError rejects a booking for a vehicle that is not available.
type UnbookableError struct {
	VehicleID string
	Name      string
}

func (e *UnbookableError) Error() string {
	return fmt.Sprintf("%s is currently unavailable. Please choose another option.", e.Name)
}

// Timings are the workflow delays.
type Timings struct {
	BookingPending  time.Duration
	BookingResolved time.Duration
	SearchBanner    time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		BookingPending:  1300 * time.Millisecond,
		BookingResolved: 1500 * time.Millisecond,
		SearchBanner:    2600 * time.Millisecond,
	}
}

// BookingSpec describes the booking overlay: pending, then a success state,
// then gone.
func BookingSpec(container *ui.Container, t Timings) Spec[Booking] {
	return Spec[Booking]{
		Name:      BookingSlot,
		Container: container,
		Pending:   t.BookingPending,
		Resolved:  t.BookingResolved,
		Guard: func(b Booking) error {
			if b.Status != catalog.StatusAvailable {
				return &UnbookableError{VehicleID: b.VehicleID, Name: b.Name}
			}
			return nil
		},
		Label: func(b Booking) string {
			return fmt.Sprintf("Booking %s...", b.Name)
		},
		Build: func(b Booking, label string) *ui.Node {
			art := ui.El("div", bookingClass+"__art").SetText(bookingArt)
			art.Markup = bookingMarkup
			return ui.El("div", bookingClass).
				SetAttr("data-vehicle", b.VehicleID).
				Append(art, ui.El("span").SetText(label))
		},
		Resolve: func(n *ui.Node) string {
			n.AddClass(bookingDoneClass, bookingSuccessClass)
			if span := firstTag(n, "span"); span != nil {
				span.SetText(BookingConfirmed)
			}
			return BookingConfirmed
		},
	}
}

func firstTag(n *ui.Node, tag string) *ui.Node {
	var found *ui.Node
	n.Walk(func(c *ui.Node) {
		if found == nil && c != n && c.Tag == tag {
			found = c
		}
	})
	return found
}
