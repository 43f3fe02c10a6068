package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mythoslab/mythos-backend/internal/pkg/metrics"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 4 * time.Second

// Severity of a user-facing notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Notification is a transient user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier is the outcome-reporting contract consumed by services.
// Callers fire and forget; nothing waits on notification lifecycle.
type Notifier interface {
	Notify(message string, severity Severity) Notification
}

// Center holds the live notification list. Each notification carries its own
// removal timer; a timer only ever removes its own message by identity, so
// firing order does not matter.
type Center struct {
	mu    sync.Mutex
	ttl   time.Duration
	items []Notification
}

// NewCenter returns a Center whose notifications expire after ttl.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Notify appends a notification and schedules its timed removal.
func (c *Center) Notify(message string, severity Severity) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	metrics.NotificationsEmitted.WithLabelValues(string(severity)).Inc()

	time.AfterFunc(c.ttl, func() {
		c.remove(n.ID)
	})

	return n
}

// Active returns a copy of the currently visible notifications.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Center) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
