package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/reckon/internal/calc"
)

// Observer receives a notification after each successful calculation.
type Observer interface {
	Update(c *calc.Calculation) error
}

// Logger is the subset of the application logger used by this package.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// Bus notifies registered observers of successful calculations, in
// registration order.
type Bus struct {
	observers []Observer
	logger    Logger
}

// NewBus creates a bus. The logger may be nil.
func NewBus(logger Logger) *Bus {
	return &Bus{logger: logger}
}

// Add registers an observer. Duplicates are allowed and notified once
// per registration.
func (b *Bus) Add(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}
	b.observers = append(b.observers, o)
	return nil
}

// Remove drops the first occurrence of the observer, if present.
func (b *Bus) Remove(o Observer) {
	for i, existing := range b.observers {
		if existing == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered observers.
func (b *Bus) Len() int { return len(b.observers) }

// Notify invokes each observer synchronously in registration order. The
// first error aborts the remaining notifications and is returned.
func (b *Bus) Notify(c *calc.Calculation) error {
	if b.logger != nil {
		b.logger.Debug("notifying observers",
			"event_id", uuid.NewString(),
			"observers", len(b.observers),
			"at", time.Now().Format(time.RFC3339Nano))
	}

	for _, o := range b.observers {
		if err := o.Update(c); err != nil {
			return err
		}
	}
	return nil
}
