package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"github.com/cruzr/cruzr/internal/ui"
)

// Phase is the state of one workflow instance.
type Phase string

const (
	Idle     Phase = "idle"
	Pending  Phase = "pending"
	Resolved Phase = "resolved"
)

const (
	eventTrigger = "trigger"
	eventResolve = "resolve"
	eventExpire  = "expire"
)

// TransientState is the observable state of an instance.
type TransientState struct {
	Phase     Phase
	Label     string
	CreatedAt time.Time
}

// Spec parametrizes a slot.
type Spec[S any] struct {
	Name      string
	Container *ui.Container
	// Pending is the phase-1 delay.
	Pending time.Duration
	// Resolved is the phase-2 delay. Zero means the instance goes from
	// pending straight back to idle.
	Resolved time.Duration

	Guard   func(S) error
	Label   func(S) string
	Build   func(subject S, label string) *ui.Node
	Resolve func(n *ui.Node) string
}

func (s Spec[S]) validate() error {
	switch {
	case s.Name == "":
		return errors.New("workflow spec: name is required")
	case s.Container == nil:
		return fmt.Errorf("workflow %s: container is required", s.Name)
	case s.Build == nil:
		return fmt.Errorf("workflow %s: build func is required", s.Name)
	case s.Pending <= 0:
		return fmt.Errorf("workflow %s: pending delay must be positive", s.Name)
	case s.Resolved < 0:
		return fmt.Errorf("workflow %s: resolved delay must not be negative", s.Name)
	case s.Resolved > 0 && s.Resolve == nil:
		return fmt.Errorf("workflow %s: resolve func is required with a resolved delay", s.Name)
	}
	return nil
}

// Hooks observe instance lifecycles.
type Hooks struct {
	Transition func(slot, id string, from, to Phase)
}

// Slot hosts every live instance of one workflow. Instances stack: a new
// trigger never touches the timers or node of an older one.
type Slot[S any] struct {
	spec  Spec[S]
	sched Scheduler
	hooks Hooks

	live  map[string]*Instance[S]
	order []string
}

func NewSlot[S any](spec Spec[S], sched Scheduler, hooks Hooks) (*Slot[S], error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, fmt.Errorf("workflow %s: scheduler is required", spec.Name)
	}
	return &Slot[S]{
		spec:  spec,
		sched: sched,
		hooks: hooks,
		live:  make(map[string]*Instance[S]),
	}, nil
}

func (s *Slot[S]) Name() string { return s.spec.Name }

// Trigger starts a new instance for subject. A guard rejection returns the
// guard's error and leaves no trace in the slot.
func (s *Slot[S]) Trigger(subject S) (*Instance[S], error) {
	inst := &Instance[S]{
		id:      uuid.NewString(),
		subject: subject,
		slot:    s,
		state:   TransientState{Phase: Idle},
	}
	var rejected error
	inst.machine = fsm.NewFSM(
		string(Idle),
		fsm.Events{
			{Name: eventTrigger, Src: []string{string(Idle)}, Dst: string(Pending)},
			{Name: eventResolve, Src: []string{string(Pending)}, Dst: string(Resolved)},
			{Name: eventExpire, Src: []string{string(Pending), string(Resolved)}, Dst: string(Idle)},
		},
		fsm.Callbacks{
			"before_" + eventTrigger: func(_ context.Context, e *fsm.Event) {
				if s.spec.Guard == nil {
					return
				}
				if err := s.spec.Guard(subject); err != nil {
					rejected = err
					e.Cancel(err)
				}
			},
			"enter_" + string(Pending):  func(context.Context, *fsm.Event) { inst.enterPending() },
			"enter_" + string(Resolved): func(context.Context, *fsm.Event) { inst.enterResolved() },
			"enter_" + string(Idle):     func(context.Context, *fsm.Event) { inst.enterIdle() },
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if s.hooks.Transition != nil {
					s.hooks.Transition(s.spec.Name, inst.id, Phase(e.Src), Phase(e.Dst))
				}
			},
		},
	)
	if err := inst.machine.Event(context.Background(), eventTrigger); err != nil {
		if rejected != nil {
			return nil, rejected
		}
		return nil, fmt.Errorf("workflow %s: trigger: %w", s.spec.Name, err)
	}
	return inst, nil
}

// Live returns the live instances, oldest first.
func (s *Slot[S]) Live() []*Instance[S] {
	out := make([]*Instance[S], 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.live[id])
	}
	return out
}

func (s *Slot[S]) Len() int { return len(s.order) }

// Close cancels every pending timer and unmounts every live node. It is
// meant for application shutdown.
func (s *Slot[S]) Close() {
	for _, inst := range s.Live() {
		if inst.task != nil {
			inst.task.Cancel()
		}
		s.spec.Container.Remove(inst.node)
		inst.state.Phase = Idle
	}
	s.live = make(map[string]*Instance[S])
	s.order = nil
}

func (s *Slot[S]) add(inst *Instance[S]) {
	s.live[inst.id] = inst
	s.order = append(s.order, inst.id)
}

func (s *Slot[S]) drop(id string) {
	delete(s.live, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Instance is one live run of a slot's workflow. It owns its node and its
// timer; nothing else writes either.
type Instance[S any] struct {
	id      string
	subject S
	slot    *Slot[S]
	machine *fsm.FSM
	node    *ui.Node
	task    Task
	state   TransientState
}

func (i *Instance[S]) ID() string            { return i.id }
func (i *Instance[S]) Subject() S            { return i.subject }
func (i *Instance[S]) Node() *ui.Node        { return i.node }
func (i *Instance[S]) State() TransientState { return i.state }

func (i *Instance[S]) enterPending() {
	spec := i.slot.spec
	label := ""
	if spec.Label != nil {
		label = spec.Label(i.subject)
	}
	i.state = TransientState{Phase: Pending, Label: label, CreatedAt: i.slot.sched.Now()}
	i.node = spec.Build(i.subject, label)
	spec.Container.Append(i.node)
	i.slot.add(i)

	next := eventExpire
	if spec.Resolved > 0 {
		next = eventResolve
	}
	i.task = i.slot.sched.Schedule(spec.Pending, func() { i.fire(next) })
}

func (i *Instance[S]) enterResolved() {
	i.state.Phase = Resolved
	i.state.Label = i.slot.spec.Resolve(i.node)
	i.task = i.slot.sched.Schedule(i.slot.spec.Resolved, func() { i.fire(eventExpire) })
}

func (i *Instance[S]) enterIdle() {
	i.state.Phase = Idle
	i.task = nil
	i.slot.spec.Container.Remove(i.node)
	i.slot.drop(i.id)
}

func (i *Instance[S]) fire(event string) {
	// A closed slot has already unmounted the instance.
	if _, ok := i.slot.live[i.id]; !ok {
		return
	}
	_ = i.machine.Event(context.Background(), event)
}
