package testutil

import (
	"sort"
	"time"

	"github.com/cruzr/cruzr/internal/workflow"
)

// ManualScheduler is a virtual clock for workflow tests. Callbacks only run
// inside Advance, in due-time order, ties broken by scheduling order.
type ManualScheduler struct {
	now   time.Time
	seq   int
	tasks []*manualTask
}

var _ workflow.Scheduler = (*ManualScheduler)(nil)

type manualTask struct {
	due       time.Time
	seq       int
	fn        func()
	done      bool
	cancelled bool
}

func (t *manualTask) Cancel() bool {
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// NewManualScheduler starts the clock at a fixed instant.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{now: time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)}
}

func (s *ManualScheduler) Now() time.Time { return s.now }

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) workflow.Task {
	s.seq++
	t := &manualTask{due: s.now.Add(d), seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way. Callbacks scheduled while advancing run too if they fall
// due before the target.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.done = true
		next.fn()
	}
	s.now = target
	s.compact()
}

// Pending counts callbacks that have neither run nor been cancelled.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) nextDue(limit time.Time) *manualTask {
	var due []*manualTask
	for _, t := range s.tasks {
		if !t.done && !t.cancelled && !t.due.After(limit) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].due.Equal(due[j].due) {
			return due[i].due.Before(due[j].due)
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (s *ManualScheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}
