// Package progress tracks named, countable units of work across a vendor
// pull so a CLI or other frontend can render progress bars without the
// crawling code knowing anything about rendering. It mirrors the bookkeeping
// half of original_source/src/sc_crawler/logger.py's VendorProgressTracker
// (start_task/advance_task/hide_task/tasks) while dropping the rich-based
// terminal rendering, which is out of scope.
package progress

import "sync"

// Task is a single named unit of work: Total items expected, Current
// completed so far, and whether it has been hidden (finished and collapsed
// out of an active display).
type Task struct {
	Name    string
	Total   int
	Current int
	Hidden  bool
}

// Done reports whether the task has reached its declared total.
func (t Task) Done() bool {
	return t.Total > 0 && t.Current >= t.Total
}

// Tracker records task progress for one vendor pull. The zero value is
// ready to use. Safe for concurrent use, since fetch/validate/upsert stages
// may advance tasks from multiple goroutines during a fan-out.
type Tracker struct {
	mu      sync.Mutex
	tasks   []string // insertion order
	byName  map[string]*Task
	current string
}

// StartTask registers (or resets) a task named name with n expected units
// and makes it the current task that a bare AdvanceTask/HideTask call
// applies to, mirroring start_task(name=..., n=...).
func (t *Tracker) StartTask(name string, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.byName == nil {
		t.byName = map[string]*Task{}
	}
	if _, exists := t.byName[name]; !exists {
		t.tasks = append(t.tasks, name)
	}
	t.byName[name] = &Task{Name: name, Total: n}
	t.current = name
}

// AdvanceTask increments the current task's progress, by by[0] units if
// given, or by 1 otherwise (advance_task() vs advance_task(by=len(chunk))
// in the Python call sites). It is a no-op if no task is current.
func (t *Tracker) AdvanceTask(by ...int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	task := t.byName[t.current]
	if task == nil {
		return
	}
	step := 1
	if len(by) > 0 {
		step = by[0]
	}
	task.Current += step
}

// AdvanceNamedTask increments a specific task by name without changing
// which task is current, for callers juggling more than one concurrently.
func (t *Tracker) AdvanceNamedTask(name string, by int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if task := t.byName[name]; task != nil {
		task.Current += by
	}
}

// HideTask marks the current task hidden, mirroring hide_task() called
// once a stage's work is done and its bar should disappear.
func (t *Tracker) HideTask() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if task := t.byName[t.current]; task != nil {
		task.Hidden = true
	}
}

// Tasks returns a snapshot of every task started so far, in start order.
func (t *Tracker) Tasks() []Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Task, 0, len(t.tasks))
	for _, name := range t.tasks {
		out = append(out, *t.byName[name])
	}
	return out
}
