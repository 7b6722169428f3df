package controller_test

import (
	"errors"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/controller"
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/metrics"
	"github.com/cruzr/cruzr/internal/testutil"
	"github.com/cruzr/cruzr/internal/ui"
	"github.com/cruzr/cruzr/internal/workflow"
)

type harness struct {
	ctrl    *controller.Controller
	page    *controller.Page
	bus     *ui.Bus
	sched   *testutil.ManualScheduler
	icons   *ui.Icons
	metrics *metrics.Metrics
	alerts  []string
}

func newHarness(t *testing.T, d criteria.Defaults) *harness {
	t.Helper()
	store, err := catalog.NewStore(catalog.Default())
	require.NoError(t, err)

	h := &harness{
		page:    controller.NewPage(catalog.KnownTypes, d),
		bus:     ui.NewBus(),
		sched:   testutil.NewManualScheduler(),
		icons:   ui.NewIcons(),
		metrics: metrics.New(),
	}
	h.ctrl, err = controller.New(controller.Options{
		Store:     store,
		Page:      h.page,
		Defaults:  d,
		Timings:   workflow.DefaultTimings(),
		Scheduler: h.sched,
		Icons:     h.icons,
		Notifier:  controller.NotifierFunc(func(msg string) { h.alerts = append(h.alerts, msg) }),
		Metrics:   h.metrics,
	})
	require.NoError(t, err)
	require.NoError(t, h.ctrl.Bind(h.bus))
	h.ctrl.Start()
	return h
}

func (h *harness) cardNames() []string {
	var out []string
	for _, card := range h.page.Results.Root().FindAll("booking-card") {
		out = append(out, card.Find("booking-card__title").Text)
	}
	return out
}

func (h *harness) setTypes(types ...catalog.VehicleType) {
	want := map[catalog.VehicleType]bool{}
	for _, tp := range types {
		want[tp] = true
	}
	for i := range h.page.Filters.Types {
		h.page.Filters.Types[i].Checked = want[h.page.Filters.Types[i].Type]
	}
}

func (h *harness) cardFor(t *testing.T, id string) *ui.Node {
	t.Helper()
	for _, card := range h.page.Results.Root().FindAll("booking-card") {
		if card.Attr("data-id") == id {
			return card
		}
	}
	t.Fatalf("no card for %s", id)
	return nil
}

func TestStartShowsWholeCatalog(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	require.Len(t, h.cardNames(), 5)
	require.Equal(t, 2, h.icons.Calls(), "page chrome once plus the first render")
	require.Equal(t, "⌕", h.page.Chrome.Find("submit").Text)
	require.Equal(t, "$150", h.page.PriceLabel.Text)
}

func TestBindOnlyOnce(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	err := h.ctrl.Bind(ui.NewBus())
	require.True(t, errors.Is(err, ui.ErrAlreadyBound))
	for _, src := range []ui.Source{ui.FilterChange, ui.PriceInput, ui.ResetFilters, ui.SearchSubmit} {
		require.True(t, h.bus.Bound(src), src)
	}
}

func TestFilterChangeSUVScenario(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	h.setTypes(catalog.SUV)
	h.page.Filters.PriceRange = "100"
	h.page.Filters.Rating = "4.5"
	h.page.Filters.Availability = criteria.AvailabilityAvailable
	require.True(t, h.bus.Dispatch(ui.FilterChange))

	require.Equal(t, []string{"Honda CR-V Comfort"}, h.cardNames())
	require.Equal(t, 100.0, h.ctrl.Criteria().MaxPrice)
}

func TestFilterChangeLuxuryShowsFullyBooked(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	h.setTypes(catalog.Luxury)
	h.page.Filters.PriceRange = "300"
	h.page.Filters.Rating = "0"
	h.page.Filters.Availability = criteria.AvailabilityAll
	h.bus.Dispatch(ui.FilterChange)

	require.Equal(t, []string{"Mercedes S-Class Chauffeur"}, h.cardNames())
	require.Equal(t, "Fully Booked", h.page.Results.Root().Find("badge--status").Text)
}

func TestNoTypesOrMalformedPriceShowsEmptyState(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	h.setTypes()
	h.bus.Dispatch(ui.FilterChange)
	require.Empty(t, h.cardNames())
	require.NotNil(t, h.page.Results.Root().Find("empty-state"))

	h.setTypes(catalog.KnownTypes...)
	h.page.Filters.PriceRange = "cheap"
	h.bus.Dispatch(ui.PriceInput)
	require.Empty(t, h.cardNames())
	require.Equal(t, "$cheap", h.page.PriceLabel.Text)
	require.Zero(t, h.ctrl.Criteria().MaxPrice)
}

func TestPriceInputUpdatesLabelAndFilters(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	h.page.Filters.PriceRange = "80"
	h.bus.Dispatch(ui.PriceInput)
	require.Equal(t, "$80", h.page.PriceLabel.Text)
	require.Equal(t, []string{"Toyota Prius Hybrid"}, h.cardNames())
}

func TestResetRestoresDefaults(t *testing.T) {
	d := criteria.NewDefaults()
	d.MaxPrice = 300
	h := newHarness(t, d)

	h.setTypes(catalog.Electric)
	h.page.Filters.PriceRange = "60"
	h.page.Filters.Rating = "4.8"
	h.page.Filters.Availability = criteria.AvailabilityAvailable
	h.bus.Dispatch(ui.PriceInput)
	require.Empty(t, h.cardNames())

	h.bus.Dispatch(ui.ResetFilters)
	require.Equal(t, "300", h.page.Filters.PriceRange)
	require.Equal(t, "$300", h.page.PriceLabel.Text)
	require.Equal(t, "0", h.page.Filters.Rating)
	require.Equal(t, criteria.AvailabilityAll, h.page.Filters.Availability)
	require.Len(t, h.page.Filters.Checked(), 4)
	require.Len(t, h.cardNames(), 5)
}

func TestResetWithStockDefaultsAppliesPriceCeiling(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	h.bus.Dispatch(ui.ResetFilters)
	require.Equal(t, 150.0, h.ctrl.Criteria().MaxPrice)
	require.Equal(t, []string{"Toyota Prius Hybrid", "Honda CR-V Comfort"}, h.cardNames())
}

func TestBookingUnavailableIsRejected(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	before := h.page.Results.String()

	require.True(t, h.cardFor(t, "crzr-004").Find("btn--primary").Activate())

	require.Equal(t, []string{"Mercedes S-Class Chauffeur is currently unavailable. Please choose another option."}, h.alerts)
	require.Zero(t, h.page.Overlays.Len())
	require.Zero(t, h.ctrl.LiveBookings())
	require.Zero(t, h.sched.Pending())
	require.Equal(t, before, h.page.Results.String())
	require.Equal(t, 1.0, prom.ToFloat64(h.metrics.Bookings.WithLabelValues(metrics.OutcomeRejected)))
}

func TestBookingAvailableRunsOverlay(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	before := h.page.Results.String()

	h.cardFor(t, "crzr-001").Find("btn--primary").Activate()
	require.Empty(t, h.alerts)
	require.Equal(t, 1, h.page.Overlays.Len())
	overlay := h.page.Overlays.Children()[0]
	require.Contains(t, overlay.TextContent(), "Booking Tesla Model Y Performance...")
	require.Equal(t, 1.0, prom.ToFloat64(h.metrics.LiveInstances.WithLabelValues(workflow.BookingSlot)))

	h.sched.Advance(1300 * time.Millisecond)
	require.True(t, overlay.HasClass("booking-animation--success"))
	require.Equal(t, 1.0, prom.ToFloat64(h.metrics.Bookings.WithLabelValues(metrics.OutcomeConfirmed)))

	h.sched.Advance(1500 * time.Millisecond)
	require.Zero(t, h.page.Overlays.Len())
	require.Zero(t, prom.ToFloat64(h.metrics.LiveInstances.WithLabelValues(workflow.BookingSlot)))
	require.Equal(t, before, h.page.Results.String())
}

func TestOverlaysSurviveRerender(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	h.cardFor(t, "crzr-005").Find("btn--primary").Activate()
	h.cardFor(t, "crzr-005").Find("btn--primary").Activate()

	h.setTypes(catalog.Luxury)
	h.bus.Dispatch(ui.FilterChange)
	require.Equal(t, 2, h.page.Overlays.Len())
	require.Equal(t, 2, h.ctrl.LiveBookings())

	h.sched.Advance(2800 * time.Millisecond)
	require.Zero(t, h.page.Overlays.Len())
}

func TestSearchSubmitShowsBannerAndRefilters(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	*h.page.Search = criteria.Search{Origin: "san jose", Pickup: "2025-11-15", Dropoff: "2025-11-20"}
	h.bus.Dispatch(ui.SearchSubmit)

	require.Equal(t, 1, h.page.Banners.Len())
	banner := h.page.Banners.Children()[0]
	require.Equal(t, "san jose | 2025-11-15 → 2025-11-20", banner.Children[1].Text)
	require.Equal(t, "Pickup near San Jose", banner.Find("search-confirmation__suggestion").Text)
	require.Equal(t, []string{"Toyota Prius Hybrid", "Honda CR-V Comfort"}, h.cardNames())
	require.Equal(t, 1.0, prom.ToFloat64(h.metrics.Searches))

	h.sched.Advance(2600 * time.Millisecond)
	require.Zero(t, h.page.Banners.Len())
	require.Zero(t, h.ctrl.LiveSearches())
}

func TestCloseClearsTransientNodes(t *testing.T) {
	h := newHarness(t, criteria.NewDefaults())
	h.cardFor(t, "crzr-002").Find("btn--primary").Activate()
	h.bus.Dispatch(ui.SearchSubmit)
	h.ctrl.Close()
	require.Zero(t, h.page.Overlays.Len())
	require.Zero(t, h.page.Banners.Len())
	require.Zero(t, h.sched.Pending())
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := controller.New(controller.Options{})
	require.ErrorContains(t, err, "store is required")
}
