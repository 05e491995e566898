package synth

import "sort"

// TaskID identifies a scheduled task. The zero value is never issued.
type TaskID int

type task struct {
	id       TaskID
	due      float64
	interval float64 // 0 for one-shot tasks
	fn       func()
}

// Scheduler runs callbacks after a delay measured in frame time. It is
// driven by Advance from the game loop, so paused frames do not count.
// Not safe for concurrent use.
type Scheduler struct {
	now    float64
	nextID TaskID
	tasks  map[TaskID]*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[TaskID]*task)}
}

// After runs fn once, delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) TaskID {
	return s.add(delay, 0, fn)
}

// Every runs fn each interval seconds, first after one interval. A
// non-positive interval is treated as a one-shot After(0).
func (s *Scheduler) Every(interval float64, fn func()) TaskID {
	if interval <= 0 {
		return s.add(0, 0, fn)
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval float64, fn func()) TaskID {
	s.nextID++
	s.tasks[s.nextID] = &task{
		id:       s.nextID,
		due:      s.now + max(delay, 0),
		interval: interval,
		fn:       fn,
	}
	return s.nextID
}

// Cancel removes a task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Pending returns the number of scheduled tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Now returns the scheduler clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Advance moves the clock forward by dt and runs every task that came due,
// earliest first. A repeating task fires at most once per Advance. Tasks
// added or cancelled by a callback take effect immediately.
func (s *Scheduler) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.now += dt

	var due []*task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	for _, t := range due {
		if _, ok := s.tasks[t.id]; !ok {
			continue
		}
		if t.interval > 0 {
			t.due += t.interval
			if t.due <= s.now {
				t.due = s.now + t.interval
			}
		} else {
			delete(s.tasks, t.id)
		}
		t.fn()
	}
}

// Reset cancels every task and rewinds the clock.
func (s *Scheduler) Reset() {
	s.now = 0
	clear(s.tasks)
}
