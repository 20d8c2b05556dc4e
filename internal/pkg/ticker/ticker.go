package ticker

import (
	"sync"
	"time"
)

// Task is a cancellable repeating job backed by one goroutine.
type Task struct {
	stop chan struct{}
	once sync.Once
	done chan struct{}
}

// Repeat calls fn every interval until fn returns false or Stop is called.
func Repeat(interval time.Duration, fn func() bool) *Task {
	t := &Task{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go t.run(interval, fn)
	return t
}

func (t *Task) run(interval time.Duration, fn func() bool) {
	defer close(t.done)

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
			select {
			case <-t.stop:
				return
			default:
			}
			if !fn() {
				return
			}
		}
	}
}

// Stop cancels the task. It is safe to call more than once and from fn itself.
func (t *Task) Stop() {
	t.once.Do(func() {
		close(t.stop)
	})
}

// Done is closed once the task goroutine has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
