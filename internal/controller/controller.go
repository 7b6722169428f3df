package controller

import (
	"errors"
	"fmt"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/filter"
	"github.com/cruzr/cruzr/internal/log"
	"github.com/cruzr/cruzr/internal/metrics"
	"github.com/cruzr/cruzr/internal/render"
	"github.com/cruzr/cruzr/internal/ui"
	"github.com/cruzr/cruzr/internal/workflow"
)

// Notifier shows a blocking notice to the user.
type Notifier interface {
	Alert(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Alert(msg string) { f(msg) }

// Options wires a Controller. Store, Page and Scheduler are required.
type Options struct {
	Store     *catalog.Store
	Page      *Page
	Defaults  criteria.Defaults
	Timings   workflow.Timings
	Scheduler workflow.Scheduler
	Icons     ui.IconRenderer
	Notifier  Notifier
	Logger    log.Logger
	Metrics   *metrics.Metrics
}

// Controller owns the session state and is the only component that turns
// page events into filter passes, renders and workflow triggers.
type Controller struct {
	store    *catalog.Store
	page     *Page
	defaults criteria.Defaults
	icons    ui.IconRenderer
	notifier Notifier
	logger   log.Logger
	metrics  *metrics.Metrics

	pipeline *render.Pipeline
	booking  *workflow.Slot[workflow.Booking]
	searches *workflow.Slot[workflow.Query]

	bound    bool
	lastSeen filter.Criteria
}

func New(opts Options) (*Controller, error) {
	switch {
	case opts.Store == nil:
		return nil, errors.New("controller: store is required")
	case opts.Page == nil:
		return nil, errors.New("controller: page is required")
	case opts.Scheduler == nil:
		return nil, errors.New("controller: scheduler is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	if opts.Notifier == nil {
		opts.Notifier = NotifierFunc(func(string) {})
	}

	c := &Controller{
		store:    opts.Store,
		page:     opts.Page,
		defaults: opts.Defaults,
		icons:    opts.Icons,
		notifier: opts.Notifier,
		logger:   opts.Logger.WithName("controller"),
		metrics:  opts.Metrics,
	}
	c.pipeline = &render.Pipeline{Icons: opts.Icons, Book: c.Book}

	hooks := workflow.Hooks{Transition: c.onTransition}
	var err error
	c.booking, err = workflow.NewSlot(workflow.BookingSpec(opts.Page.Overlays, opts.Timings), opts.Scheduler, hooks)
	if err != nil {
		return nil, fmt.Errorf("booking slot: %w", err)
	}
	c.searches, err = workflow.NewSlot(workflow.SearchSpec(opts.Page.Banners, opts.Timings), opts.Scheduler, hooks)
	if err != nil {
		return nil, fmt.Errorf("search slot: %w", err)
	}
	return c, nil
}

// Bind subscribes every form-level source on bus. It may be called once.
func (c *Controller) Bind(bus *ui.Bus) error {
	if c.bound {
		return fmt.Errorf("controller: %w", ui.ErrAlreadyBound)
	}
	bindings := []struct {
		src ui.Source
		fn  func()
	}{
		{ui.FilterChange, c.onFilterChange},
		{ui.PriceInput, c.onPriceInput},
		{ui.ResetFilters, c.onReset},
		{ui.SearchSubmit, c.onSearchSubmit},
	}
	for _, b := range bindings {
		if err := bus.Bind(b.src, b.fn); err != nil {
			return err
		}
	}
	c.bound = true
	return nil
}

// Start materializes the page icons once and shows the whole catalog.
func (c *Controller) Start() {
	if c.icons != nil {
		c.icons.CreateIcons(c.page.Chrome)
	}
	c.show(c.store.All())
	c.logger.Info("session started", "vehicles", c.store.Len())
}

// Close unmounts every live overlay and banner.
func (c *Controller) Close() {
	c.booking.Close()
	c.searches.Close()
	c.metrics.SetLive(workflow.BookingSlot, 0)
	c.metrics.SetLive(workflow.SearchSlot, 0)
}

// Book runs the guarded booking trigger for a card snapshot.
func (c *Controller) Book(b workflow.Booking) {
	inst, err := c.booking.Trigger(b)
	if err != nil {
		var unbookable *workflow.UnbookableError
		if errors.As(err, &unbookable) {
			c.logger.Info("booking rejected", "vehicle", b.VehicleID, "status", string(b.Status))
			c.metrics.ObserveBooking(metrics.OutcomeRejected)
			c.notifier.Alert(unbookable.Error())
			return
		}
		c.logger.Error(err, "booking trigger failed", "vehicle", b.VehicleID)
		return
	}
	c.metrics.ObserveBooking(metrics.OutcomeStarted)
	c.logger.Info("booking started", "vehicle", b.VehicleID, "instance", inst.ID())
}

// Criteria is the snapshot used by the most recent filter pass.
func (c *Controller) Criteria() filter.Criteria { return c.lastSeen }

func (c *Controller) Page() *Page { return c.page }

// LiveBookings and LiveSearches count live workflow instances.
func (c *Controller) LiveBookings() int { return c.booking.Len() }
func (c *Controller) LiveSearches() int { return c.searches.Len() }

func (c *Controller) onFilterChange() {
	c.refilter()
}

func (c *Controller) onPriceInput() {
	c.page.PriceLabel.SetText(priceLabel(c.page.Filters.PriceRange))
	c.refilter()
}

func (c *Controller) onReset() {
	*c.page.Filters = criteria.Reset(*c.page.Filters, c.defaults)
	c.page.PriceLabel.SetText(priceLabel(c.page.Filters.PriceRange))
	c.logger.Debug("filters reset", "max_price", c.page.Filters.PriceRange)
	c.refilter()
}

func (c *Controller) onSearchSubmit() {
	s := *c.page.Search
	q := workflow.Query{Search: s}
	if loc, ok := catalog.NearestLocation(s.Origin, c.store.Locations()); ok {
		q.Suggestion = loc
	}
	if _, err := c.searches.Trigger(q); err != nil {
		c.logger.Error(err, "search banner failed")
	}
	c.metrics.ObserveSearch()
	c.logger.Info("search submitted", "origin", s.Origin, "pickup", s.Pickup, "dropoff", s.Dropoff, "nights", s.Nights())
	c.refilter()
}

func (c *Controller) refilter() {
	c.lastSeen = criteria.Read(*c.page.Filters)
	c.show(filter.Apply(c.store.All(), c.lastSeen))
}

func (c *Controller) show(vehicles []catalog.Vehicle) {
	n := c.pipeline.Render(c.page.Results, vehicles)
	c.metrics.ObserveRender(n)
	c.logger.Debug("results rendered", "cards", n)
}

func (c *Controller) onTransition(slot, id string, from, to workflow.Phase) {
	c.logger.Debug("workflow transition", "slot", slot, "instance", id, "from", string(from), "to", string(to))
	switch slot {
	case workflow.BookingSlot:
		if to == workflow.Resolved {
			c.metrics.ObserveBooking(metrics.OutcomeConfirmed)
		}
		c.metrics.SetLive(slot, c.booking.Len())
	case workflow.SearchSlot:
		c.metrics.SetLive(slot, c.searches.Len())
	}
}
