package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/controller"
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/log"
	"github.com/cruzr/cruzr/internal/metrics"
	"github.com/cruzr/cruzr/internal/ui"
	"github.com/cruzr/cruzr/internal/workflow"
)

type pane int

const (
	paneFilters pane = iota
	paneResults
	paneSearch
	paneCount
)

// Options wires an App.
type Options struct {
	Store    *catalog.Store
	Defaults criteria.Defaults
	Timings  workflow.Timings
	Logger   log.Logger
	Metrics  *metrics.Metrics
}

// App is the terminal frontend: it owns the filter and search controls,
// turns keys into page events and projects the page regions.
type App struct {
	ctrl     *controller.Controller
	page     *controller.Page
	bus      *ui.Bus
	sched    *TickScheduler
	defaults criteria.Defaults
	keys     keyMap
	logger   log.Logger

	focus        pane
	filterCursor int
	cardCursor   int
	inputs       []textinput.Model
	inputCursor  int
	alert        string
	width        int
	height       int
}

const (
	inputOrigin = iota
	inputPickup
	inputDropoff
)

func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	a := &App{
		page:     controller.NewPage(formTypes(opts.Store), opts.Defaults),
		bus:      ui.NewBus(),
		sched:    NewTickScheduler(),
		defaults: opts.Defaults,
		keys:     defaultKeyMap(),
		logger:   opts.Logger.WithName("tui"),
		focus:    paneResults,
		inputs:   newSearchInputs(),
	}
	ctrl, err := controller.New(controller.Options{
		Store:     opts.Store,
		Page:      a.page,
		Defaults:  opts.Defaults,
		Timings:   opts.Timings,
		Scheduler: a.sched,
		Icons:     ui.NewIcons(),
		Notifier:  a,
		Logger:    opts.Logger,
		Metrics:   opts.Metrics,
	})
	if err != nil {
		return nil, err
	}
	if err := ctrl.Bind(a.bus); err != nil {
		return nil, err
	}
	a.ctrl = ctrl
	ctrl.Start()
	return a, nil
}

// formTypes lists the known types first, then any extra types the catalog
// carries, so every vehicle can be selected.
func formTypes(store *catalog.Store) []catalog.VehicleType {
	out := append([]catalog.VehicleType(nil), catalog.KnownTypes...)
	if store == nil {
		return out
	}
	for _, t := range store.Types() {
		if !t.Known() {
			out = append(out, t)
		}
	}
	return out
}

func newSearchInputs() []textinput.Model {
	placeholders := []string{"Pickup location", "Pickup date (YYYY-MM-DD)", "Dropoff date (YYYY-MM-DD)"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 64
		in.Prompt = ""
		inputs[i] = in
	}
	return inputs
}

// Alert shows msg in a modal until dismissed.
func (a *App) Alert(msg string) {
	a.alert = msg
}

// Close unmounts transient nodes; call it after the program exits.
func (a *App) Close() {
	a.ctrl.Close()
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case timerFiredMsg:
		a.sched.Fire(m.id)
	case tea.KeyMsg:
		var quit bool
		quit, cmd = a.handleKey(m)
		if quit {
			return a, tea.Quit
		}
	}
	return a, tea.Batch(cmd, a.sched.Drain())
}

func (a *App) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if a.alert != "" {
		if key.Matches(msg, a.keys.Close) {
			a.alert = ""
		}
		return false, nil
	}
	if msg.String() == "ctrl+c" {
		return true, nil
	}
	switch {
	case key.Matches(msg, a.keys.Next):
		a.setFocus((a.focus + 1) % paneCount)
		return false, nil
	case key.Matches(msg, a.keys.Prev):
		a.setFocus((a.focus + paneCount - 1) % paneCount)
		return false, nil
	}
	if a.focus == paneSearch {
		return false, a.handleSearchKey(msg)
	}
	switch {
	case key.Matches(msg, a.keys.Quit):
		return true, nil
	case key.Matches(msg, a.keys.Search):
		a.setFocus(paneSearch)
		return false, nil
	case key.Matches(msg, a.keys.Reset):
		a.bus.Dispatch(ui.ResetFilters)
		a.clampCardCursor()
		return false, nil
	}
	if a.focus == paneFilters {
		a.handleFilterKey(msg)
	} else {
		a.handleResultsKey(msg)
	}
	return false, nil
}

func (a *App) setFocus(p pane) {
	a.focus = p
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	if p == paneSearch {
		a.inputs[a.inputCursor].Focus()
	}
}

// filter rows: one per type, then price, rating, availability, reset.
func (a *App) filterRows() int { return len(a.page.Filters.Types) + 4 }

func (a *App) priceRow() int        { return len(a.page.Filters.Types) }
func (a *App) ratingRow() int       { return a.priceRow() + 1 }
func (a *App) availabilityRow() int { return a.priceRow() + 2 }
func (a *App) resetRow() int        { return a.priceRow() + 3 }

func (a *App) handleFilterKey(msg tea.KeyMsg) {
	f := a.page.Filters
	row := a.filterCursor
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.filterCursor > 0 {
			a.filterCursor--
		}
		return
	case key.Matches(msg, a.keys.Down):
		if a.filterCursor < a.filterRows()-1 {
			a.filterCursor++
		}
		return
	case key.Matches(msg, a.keys.Toggle), key.Matches(msg, a.keys.Activate):
		switch {
		case row < a.priceRow():
			f.Types[row].Checked = !f.Types[row].Checked
			a.bus.Dispatch(ui.FilterChange)
		case row == a.availabilityRow():
			a.toggleAvailability()
		case row == a.ratingRow():
			a.stepRating(1)
		case row == a.resetRow():
			a.bus.Dispatch(ui.ResetFilters)
		}
	case key.Matches(msg, a.keys.Left), key.Matches(msg, a.keys.Right):
		dir := 1
		if key.Matches(msg, a.keys.Left) {
			dir = -1
		}
		switch row {
		case a.priceRow():
			a.stepPrice(dir)
		case a.ratingRow():
			a.stepRating(dir)
		case a.availabilityRow():
			a.toggleAvailability()
		}
	}
	a.clampCardCursor()
}

func (a *App) stepPrice(dir int) {
	f := a.page.Filters
	v := criteria.Number(f.PriceRange) + float64(dir)*a.defaults.PriceStep
	if v < a.defaults.PriceMin {
		v = a.defaults.PriceMin
	}
	if v > a.defaults.PriceMax {
		v = a.defaults.PriceMax
	}
	f.PriceRange = criteria.FormatNumber(v)
	a.bus.Dispatch(ui.PriceInput)
}

func (a *App) stepRating(dir int) {
	f := a.page.Filters
	opts := a.defaults.RatingOptions
	if len(opts) == 0 {
		return
	}
	idx := 0
	for i, o := range opts {
		if o == f.Rating {
			idx = i
		}
	}
	f.Rating = opts[(idx+dir+len(opts))%len(opts)]
	a.bus.Dispatch(ui.FilterChange)
}

func (a *App) toggleAvailability() {
	f := a.page.Filters
	if f.Availability == criteria.AvailabilityAll {
		f.Availability = criteria.AvailabilityAvailable
	} else {
		f.Availability = criteria.AvailabilityAll
	}
	a.bus.Dispatch(ui.FilterChange)
}

func (a *App) cards() []*ui.Node {
	return a.page.Results.Root().FindAll("booking-card")
}

func (a *App) clampCardCursor() {
	n := len(a.cards())
	if a.cardCursor >= n {
		a.cardCursor = n - 1
	}
	if a.cardCursor < 0 {
		a.cardCursor = 0
	}
}

func (a *App) handleResultsKey(msg tea.KeyMsg) {
	cards := a.cards()
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cardCursor > 0 {
			a.cardCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cardCursor < len(cards)-1 {
			a.cardCursor++
		}
	case key.Matches(msg, a.keys.Activate):
		if a.cardCursor < len(cards) {
			if btn := cards[a.cardCursor].Find("btn--primary"); btn != nil {
				btn.Activate()
			}
		}
	}
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.setFocus(paneResults)
		return nil
	case "up":
		a.moveInput(-1)
		return nil
	case "down":
		a.moveInput(1)
		return nil
	case "enter":
		if a.inputCursor < len(a.inputs)-1 {
			a.moveInput(1)
			return nil
		}
		a.submitSearch()
		return nil
	}
	var cmd tea.Cmd
	a.inputs[a.inputCursor], cmd = a.inputs[a.inputCursor].Update(msg)
	return cmd
}

func (a *App) moveInput(dir int) {
	next := a.inputCursor + dir
	if next < 0 || next >= len(a.inputs) {
		return
	}
	a.inputs[a.inputCursor].Blur()
	a.inputCursor = next
	a.inputs[a.inputCursor].Focus()
}

func (a *App) submitSearch() {
	*a.page.Search = criteria.Search{
		Origin:  a.inputs[inputOrigin].Value(),
		Pickup:  a.inputs[inputPickup].Value(),
		Dropoff: a.inputs[inputDropoff].Value(),
	}
	a.bus.Dispatch(ui.SearchSubmit)
	a.clampCardCursor()
	a.logger.Debug("search form submitted", "origin", a.page.Search.Origin)
}
