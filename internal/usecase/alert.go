package usecase

import (
	"sync"
	"time"

	"eiffel-bike-client/internal/pkg/clock"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Alert is a user-visible message. All workflow outcomes the user must see
// route through one Notifier so the UI has a single place to watch.
type Alert struct {
	Message  string
	Severity Severity
	At       time.Time
}

// Notifier holds at most one visible alert and auto-dismisses it after a
// fixed interval.
type Notifier struct {
	mu      sync.Mutex
	current *Alert
	timer   *time.Timer
	ttl     time.Duration
	clock   clock.Clock
}

func NewNotifier(ttl time.Duration, clk clock.Clock) *Notifier {
	return &Notifier{ttl: ttl, clock: clk}
}

func (n *Notifier) Show(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	alert := &Alert{Message: message, Severity: severity, At: n.clock.Now()}
	n.current = alert

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() {
		n.dismiss(alert)
	})
}

// Current returns the visible alert, or nil once dismissed.
func (n *Notifier) Current() *Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// dismiss clears only the alert it was armed for; a newer alert wins.
func (n *Notifier) dismiss(alert *Alert) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == alert {
		n.current = nil
	}
}
