// Package feedback provides the transient user feedback of the portal: a single-slot toast
// notification and a busy indicator.
package feedback

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultToastDuration is how long a notification stays visible
const DefaultToastDuration = 3 * time.Second

// Severity classifies a notification
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is one visible toast message
type Notification struct {
	ID       uuid.UUID
	Message  string
	Severity Severity
	ShownAt  time.Time
}

// Timer is a pending dismissal
type Timer interface {
	Stop() bool
}

// Clock schedules dismissals. The real clock uses time.AfterFunc.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Toast shows at most one notification at a time. A new notification replaces the visible
// one and restarts the dismiss timer.
type Toast struct {
	mu       sync.Mutex
	clock    Clock
	duration time.Duration
	current  *Notification
	timer    Timer
	onChange func()
}

// ToastOption is a functional option for Toast
type ToastOption func(*Toast)

// WithClock sets the clock used to schedule dismissals
func WithClock(c Clock) ToastOption {
	return func(t *Toast) {
		t.clock = c
	}
}

// WithDuration sets how long notifications stay visible
func WithDuration(d time.Duration) ToastOption {
	return func(t *Toast) {
		if d > 0 {
			t.duration = d
		}
	}
}

// WithToastChange registers a callback run after the visible notification changes. It runs
// outside the toast's lock, possibly on a timer goroutine.
func WithToastChange(f func()) ToastOption {
	return func(t *Toast) {
		t.onChange = f
	}
}

// NewToast creates an empty toast
func NewToast(opts ...ToastOption) *Toast {
	t := &Toast{
		clock:    realClock{},
		duration: DefaultToastDuration,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Notify shows message, replacing whatever is visible
func (t *Toast) Notify(message string, severity Severity) Notification {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	n := Notification{
		ID:       uuid.New(),
		Message:  message,
		Severity: severity,
		ShownAt:  t.clock.Now(),
	}
	t.current = &n
	id := n.ID
	t.timer = t.clock.AfterFunc(t.duration, func() { t.expire(id) })
	t.mu.Unlock()

	t.changed()
	return n
}

// Info shows an informational notification
func (t *Toast) Info(message string) Notification {
	return t.Notify(message, SeverityInfo)
}

// Error shows an error notification
func (t *Toast) Error(message string) Notification {
	return t.Notify(message, SeverityError)
}

// Current returns the visible notification
func (t *Toast) Current() (Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Notification{}, false
	}
	return *t.current, true
}

// Dismiss hides the visible notification immediately
func (t *Toast) Dismiss() {
	t.mu.Lock()
	if t.current == nil {
		t.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.current = nil
	t.mu.Unlock()

	t.changed()
}

// expire hides notification id if it is still the visible one. A timer that was stopped
// too late to prevent firing must not hide its successor.
func (t *Toast) expire(id uuid.UUID) {
	t.mu.Lock()
	if t.current == nil || t.current.ID != id {
		t.mu.Unlock()
		return
	}
	t.current = nil
	t.timer = nil
	t.mu.Unlock()

	t.changed()
}

func (t *Toast) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}
