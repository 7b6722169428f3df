package workflow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/testutil"
	"github.com/cruzr/cruzr/internal/ui"
	"github.com/cruzr/cruzr/internal/workflow"
)

type transition struct {
	id       string
	from, to workflow.Phase
}

func newBookingSlot(t *testing.T) (*workflow.Slot[workflow.Booking], *ui.Container, *testutil.ManualScheduler, *[]transition) {
	t.Helper()
	sched := testutil.NewManualScheduler()
	overlays := ui.NewContainer("overlays")
	var seen []transition
	slot, err := workflow.NewSlot(workflow.BookingSpec(overlays, workflow.DefaultTimings()), sched, workflow.Hooks{
		Transition: func(slot, id string, from, to workflow.Phase) {
			require.Equal(t, workflow.BookingSlot, slot)
			seen = append(seen, transition{id: id, from: from, to: to})
		},
	})
	require.NoError(t, err)
	return slot, overlays, sched, &seen
}

var honda = workflow.Booking{VehicleID: "crzr-005", Name: "Honda CR-V Comfort", Status: catalog.StatusAvailable}

func TestBookingPhasesRespectDelays(t *testing.T) {
	slot, overlays, sched, seen := newBookingSlot(t)

	inst, err := slot.Trigger(honda)
	require.NoError(t, err)
	node := inst.Node()
	require.Equal(t, workflow.Pending, inst.State().Phase)
	require.Equal(t, "Booking Honda CR-V Comfort...", inst.State().Label)
	require.Equal(t, sched.Now(), inst.State().CreatedAt)
	require.Equal(t, 1, overlays.Len())
	require.True(t, node.HasClass("booking-animation"))
	require.Equal(t, "crzr-005", node.Attr("data-vehicle"))

	sched.Advance(1299 * time.Millisecond)
	require.Equal(t, workflow.Pending, inst.State().Phase)
	require.False(t, node.HasClass("booking-animation--success"))

	sched.Advance(time.Millisecond)
	require.Equal(t, workflow.Resolved, inst.State().Phase)
	require.True(t, node.HasClass("booking-animation--done"))
	require.True(t, node.HasClass("booking-animation--success"))
	require.Contains(t, node.TextContent(), workflow.BookingConfirmed)
	require.Equal(t, workflow.BookingConfirmed, inst.State().Label)

	sched.Advance(1499 * time.Millisecond)
	require.True(t, node.Attached())
	require.Equal(t, 1, slot.Len())

	sched.Advance(time.Millisecond)
	require.False(t, node.Attached())
	require.Zero(t, overlays.Len())
	require.Zero(t, slot.Len())
	require.Equal(t, workflow.Idle, inst.State().Phase)
	require.Zero(t, sched.Pending())

	require.Equal(t, []transition{
		{inst.ID(), workflow.Idle, workflow.Pending},
		{inst.ID(), workflow.Pending, workflow.Resolved},
		{inst.ID(), workflow.Resolved, workflow.Idle},
	}, *seen)
}

func TestBookingGuardRejectsUnavailable(t *testing.T) {
	slot, overlays, sched, seen := newBookingSlot(t)

	inst, err := slot.Trigger(workflow.Booking{
		VehicleID: "crzr-004",
		Name:      "Mercedes S-Class Chauffeur",
		Status:    catalog.StatusUnavailable,
	})
	require.Nil(t, inst)
	var unbookable *workflow.UnbookableError
	require.True(t, errors.As(err, &unbookable))
	require.Equal(t, "crzr-004", unbookable.VehicleID)
	require.Equal(t, "Mercedes S-Class Chauffeur is currently unavailable. Please choose another option.", err.Error())
	require.Zero(t, slot.Len())
	require.Zero(t, overlays.Len())
	require.Zero(t, sched.Pending())
	require.Empty(t, *seen)
}

func TestRapidBookingsStackIndependently(t *testing.T) {
	slot, overlays, sched, _ := newBookingSlot(t)

	first, err := slot.Trigger(honda)
	require.NoError(t, err)
	sched.Advance(1000 * time.Millisecond)
	second, err := slot.Trigger(honda)
	require.NoError(t, err)
	require.NotEqual(t, first.ID(), second.ID())
	require.Equal(t, 2, overlays.Len())
	require.Equal(t, []*workflow.Instance[workflow.Booking]{first, second}, slot.Live())

	// first resolves at 1300, second still pending
	sched.Advance(300 * time.Millisecond)
	require.Equal(t, workflow.Resolved, first.State().Phase)
	require.Equal(t, workflow.Pending, second.State().Phase)
	require.False(t, second.Node().HasClass("booking-animation--success"))

	// first unmounts at 2800, second resolved at 2300
	sched.Advance(1500 * time.Millisecond)
	require.False(t, first.Node().Attached())
	require.True(t, second.Node().Attached())
	require.Equal(t, workflow.Resolved, second.State().Phase)
	require.Equal(t, 1, overlays.Len())

	sched.Advance(1000 * time.Millisecond)
	require.False(t, second.Node().Attached())
	require.Zero(t, overlays.Len())
}

func TestSearchBannerSinglePhase(t *testing.T) {
	sched := testutil.NewManualScheduler()
	banners := ui.NewContainer("banners")
	var phases []workflow.Phase
	slot, err := workflow.NewSlot(workflow.SearchSpec(banners, workflow.DefaultTimings()), sched, workflow.Hooks{
		Transition: func(_, _ string, _, to workflow.Phase) { phases = append(phases, to) },
	})
	require.NoError(t, err)

	inst, err := slot.Trigger(workflow.Query{
		Search:     criteria.Search{Origin: "San Fransisco", Pickup: "2025-11-15", Dropoff: "2025-11-20"},
		Suggestion: "San Francisco",
	})
	require.NoError(t, err)
	node := inst.Node()
	require.Equal(t, "San Fransisco | 2025-11-15 → 2025-11-20", inst.State().Label)
	require.Equal(t, workflow.SearchHeading, node.Children[0].Text)
	require.Equal(t, "San Fransisco | 2025-11-15 → 2025-11-20", node.Children[1].Text)
	require.Nil(t, node.Find("search-confirmation__hint"))
	require.Equal(t, "Pickup near San Francisco", node.Find("search-confirmation__suggestion").Text)

	sched.Advance(2599 * time.Millisecond)
	require.True(t, node.Attached())
	sched.Advance(time.Millisecond)
	require.False(t, node.Attached())
	require.Equal(t, []workflow.Phase{workflow.Pending, workflow.Idle}, phases)
}

func TestSearchBannerShowsDateHint(t *testing.T) {
	sched := testutil.NewManualScheduler()
	banners := ui.NewContainer("banners")
	slot, err := workflow.NewSlot(workflow.SearchSpec(banners, workflow.DefaultTimings()), sched, workflow.Hooks{})
	require.NoError(t, err)

	inst, err := slot.Trigger(workflow.Query{Search: criteria.Search{Origin: "LA", Pickup: "2025-11-20", Dropoff: "2025-11-15"}})
	require.NoError(t, err)
	require.Equal(t, "dropoff date is before pickup date", inst.Node().Find("search-confirmation__hint").Text)
}

func TestCloseCancelsTimersAndUnmounts(t *testing.T) {
	slot, overlays, sched, _ := newBookingSlot(t)
	a, err := slot.Trigger(honda)
	require.NoError(t, err)
	_, err = slot.Trigger(honda)
	require.NoError(t, err)

	slot.Close()
	require.Zero(t, overlays.Len())
	require.Zero(t, slot.Len())
	require.Zero(t, sched.Pending())
	require.Equal(t, workflow.Idle, a.State().Phase)

	sched.Advance(10 * time.Second)
	require.False(t, a.Node().HasClass("booking-animation--success"))
}

func TestNewSlotValidatesSpec(t *testing.T) {
	sched := testutil.NewManualScheduler()
	c := ui.NewContainer("c")

	_, err := workflow.NewSlot(workflow.Spec[int]{Name: "x", Container: c, Pending: time.Second}, sched, workflow.Hooks{})
	require.ErrorContains(t, err, "build func is required")

	build := func(int, string) *ui.Node { return ui.El("div") }
	_, err = workflow.NewSlot(workflow.Spec[int]{Name: "x", Container: c, Build: build, Pending: time.Second, Resolved: time.Second}, sched, workflow.Hooks{})
	require.ErrorContains(t, err, "resolve func is required")

	_, err = workflow.NewSlot(workflow.Spec[int]{Name: "x", Container: c, Build: build}, sched, workflow.Hooks{})
	require.ErrorContains(t, err, "pending delay must be positive")

	_, err = workflow.NewSlot(workflow.Spec[int]{Name: "x", Container: c, Build: build, Pending: time.Second}, nil, workflow.Hooks{})
	require.ErrorContains(t, err, "scheduler is required")

	slot, err := workflow.NewSlot(workflow.Spec[int]{Name: "x", Container: c, Build: build, Pending: time.Second}, sched, workflow.Hooks{})
	require.NoError(t, err)
	require.Equal(t, "x", slot.Name())
}
