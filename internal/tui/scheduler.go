package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cruzr/cruzr/internal/workflow"
)

// timerFiredMsg carries a scheduled callback back into the Update loop.
type timerFiredMsg struct{ id int }

// TickScheduler runs workflow callbacks on the Bubble Tea loop. Schedule
// queues a tea.Tick; the callback runs when its message reaches Update, so
// callbacks never race with key handling.
type TickScheduler struct {
	seq    int
	tasks  map[int]*tickTask
	queued []tea.Cmd
}

var _ workflow.Scheduler = (*TickScheduler)(nil)

type tickTask struct {
	id    int
	fn    func()
	owner *TickScheduler
}

func (t *tickTask) Cancel() bool {
	if _, ok := t.owner.tasks[t.id]; !ok {
		return false
	}
	delete(t.owner.tasks, t.id)
	return true
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{tasks: make(map[int]*tickTask)}
}

func (s *TickScheduler) Now() time.Time { return time.Now() }

func (s *TickScheduler) Schedule(d time.Duration, fn func()) workflow.Task {
	s.seq++
	id := s.seq
	t := &tickTask{id: id, fn: fn, owner: s}
	s.tasks[id] = t
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return t
}

// Drain hands the ticks queued since the last call to the runtime.
func (s *TickScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for id unless it was cancelled or already ran.
func (s *TickScheduler) Fire(id int) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	t.fn()
	return true
}

// Pending counts callbacks still waiting for their tick.
func (s *TickScheduler) Pending() int { return len(s.tasks) }
