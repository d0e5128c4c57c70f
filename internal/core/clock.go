package core

import "time"

// StepDuration converts a ticks-per-second rate into the duration of a single
// tick. Non-positive rates fall back to 60 TPS.
func StepDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// Clock is a virtual timeline advanced explicitly by the frame loop. Tasks
// scheduled on it run on the caller's goroutine from inside Advance, so
// callbacks never race with input handlers or rendering.
type Clock struct {
	now   time.Duration
	tasks []*Task
	seq   uint64
}

// Task is a one-shot callback scheduled on a Clock.
type Task struct {
	clock *Clock
	due   time.Duration
	seq   uint64
	fn    func()
	done  bool
}

// NewClock returns a clock positioned at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current virtual time. While a task callback runs, Now
// reports the task's due time.
func (c *Clock) Now() time.Duration { return c.now }

// Pending returns the number of scheduled tasks that have not fired or been
// cancelled.
func (c *Clock) Pending() int { return len(c.tasks) }

// AfterFunc schedules fn to run once the clock has advanced by d. A
// non-positive d fires on the next Advance call.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Task{clock: c, due: c.now + d, seq: c.seq, fn: fn}
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves the clock forward by dt, running every task that becomes due
// in due-time order. Tasks scheduled by a callback run in the same call when
// they fall inside the window. It returns the number of tasks fired.
func (c *Clock) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt
	fired := 0
	for {
		idx := c.nextDue(target)
		if idx < 0 {
			break
		}
		t := c.tasks[idx]
		c.remove(idx)
		t.done = true
		c.now = t.due
		fired++
		if t.fn != nil {
			t.fn()
		}
	}
	c.now = target
	return fired
}

func (c *Clock) nextDue(limit time.Duration) int {
	best := -1
	for i, t := range c.tasks {
		if t.due > limit {
			continue
		}
		if best < 0 || t.due < c.tasks[best].due || (t.due == c.tasks[best].due && t.seq < c.tasks[best].seq) {
			best = i
		}
	}
	return best
}

func (c *Clock) remove(idx int) {
	last := len(c.tasks) - 1
	c.tasks[idx] = c.tasks[last]
	c.tasks[last] = nil
	c.tasks = c.tasks[:last]
}

// Cancel prevents the task from running. It reports whether the task was
// still pending.
func (t *Task) Cancel() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	c := t.clock
	for i, other := range c.tasks {
		if other == t {
			c.remove(i)
			break
		}
	}
	return true
}

// Pending reports whether the task is still waiting to fire.
func (t *Task) Pending() bool { return t != nil && !t.done }

// Due returns the virtual time at which the task fires.
func (t *Task) Due() time.Duration {
	if t == nil {
		return 0
	}
	return t.due
}
