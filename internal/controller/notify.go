package controller

import (
	"sync"
	"time"
)

// Level tells success notifications from failures
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "success"
}

// Notification is a transient message shown after a fetch or a mutation
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier receives transient notifications
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Toaster keeps at most one visible notification and dismisses it after a
// fixed delay. Every shown and dismissed notification is reported on Events.
type Toaster struct {
	delay time.Duration

	mu      sync.Mutex
	current *Notification
	seq     uint64
	timer   *time.Timer
	events  chan ToastEvent
	closed  bool
}

// ToastEvent reports a notification being shown or dismissed
type ToastEvent struct {
	Notification Notification
	Dismissed    bool
}

// NewToaster creates a Toaster dismissing after delay. buffer bounds the
// number of undelivered events; once full, new events are dropped.
func NewToaster(delay time.Duration, buffer int) *Toaster {
	if delay <= 0 {
		delay = DefaultToastDelay
	}
	return &Toaster{
		delay:  delay,
		events: make(chan ToastEvent, buffer),
	}
}

// Events returns the stream of shown and dismissed notifications
func (t *Toaster) Events() <-chan ToastEvent {
	return t.events
}

// Notify shows n, replacing any visible notification
func (t *Toaster) Notify(n Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	id := t.seq
	t.current = &n
	t.emit(ToastEvent{Notification: n})

	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.closed || t.current == nil || t.seq != id {
			return
		}
		t.current = nil
		t.emit(ToastEvent{Notification: n, Dismissed: true})
	})
}

// Dismiss hides the visible notification early
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil || t.closed {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	n := *t.current
	t.current = nil
	t.emit(ToastEvent{Notification: n, Dismissed: true})
}

// Current returns the visible notification, if any
func (t *Toaster) Current() (Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Notification{}, false
	}
	return *t.current, true
}

// Close stops the timer and closes Events
func (t *Toaster) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.current = nil
	close(t.events)
}

// emit must be called with mu held
func (t *Toaster) emit(ev ToastEvent) {
	select {
	case t.events <- ev:
	default:
	}
}
