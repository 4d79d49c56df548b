// Package timer schedules deferred and repeating callbacks against a
// caller-driven clock.
package timer

import (
	"container/heap"
	"time"
)

// TaskID identifies a scheduled task. The zero value never identifies a task.
type TaskID uint64

type task struct {
	id       TaskID
	due      time.Duration
	interval time.Duration // zero for one-shot tasks
	seq      uint64        // scheduling order, breaks ties on due
	fn       func()
	index    int
}

// taskQueue is a min-heap ordered by due time, then scheduling order.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs callbacks when its clock passes their due time. The clock
// only moves through Advance, so a scheduler is deterministic and is not
// safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	nextID TaskID
	queue  taskQueue
	byID   map[TaskID]*task
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{byID: make(map[TaskID]*task)}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// After runs fn once when delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	return s.schedule(s.now+max(delay, 0), 0, fn)
}

// Every runs fn each time interval elapses, first after one interval.
// A non-positive interval schedules fn once, on the next Advance.
func (s *Scheduler) Every(interval time.Duration, fn func()) TaskID {
	if interval <= 0 {
		return s.schedule(s.now, 0, fn)
	}
	return s.schedule(s.now+interval, interval, fn)
}

func (s *Scheduler) schedule(due, interval time.Duration, fn func()) TaskID {
	s.nextID++
	s.seq++
	t := &task{id: s.nextID, due: due, interval: interval, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending task. It reports false if the task already ran
// (one-shot) or was cancelled before.
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Advance moves the clock forward by dt and runs every task that falls due,
// in due order. A repeating task is rescheduled from its previous due time,
// so it may run several times in one call. Callbacks may schedule or cancel
// tasks. Advance returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + max(dt, 0)
	ran := 0
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*task)
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			s.seq++
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.byID, t.id)
		}
		t.fn()
		ran++
	}
	s.now = target
	return ran
}
