package engine

import (
	"github.com/shopspring/decimal"

	"github.com/dshills/reckon/internal/config"
	"github.com/dshills/reckon/internal/event"
	"github.com/dshills/reckon/internal/operation"
	"github.com/dshills/reckon/internal/store"
)

// Default configuration values, shared with the config package so a
// calculator built without options behaves like one built from default
// settings.
const (
	DefaultMaxHistorySize = config.DefaultMaxHistorySize
)

// Option configures a Calculator during creation.
type Option func(*Calculator)

// WithRegistry sets the operation registry.
func WithRegistry(reg *operation.Registry) Option {
	return func(c *Calculator) {
		if reg != nil {
			c.reg = reg
		}
	}
}

// WithStore sets the history store.
func WithStore(s store.Store) Option {
	return func(c *Calculator) {
		if s != nil {
			c.store = s
		}
	}
}

// WithBus sets the observer bus.
func WithBus(b *event.Bus) Option {
	return func(c *Calculator) {
		if b != nil {
			c.bus = b
		}
	}
}

// WithMaxHistorySize caps the number of retained calculations.
func WithMaxHistorySize(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.maxHistory = n
		}
	}
}

// WithMaxInputValue caps the magnitude of accepted operands.
func WithMaxInputValue(max decimal.Decimal) Option {
	return func(c *Calculator) {
		if max.Sign() > 0 {
			c.maxInput = max
		}
	}
}

// WithAutoSave sets the auto-save flag read by the auto-save observer.
func WithAutoSave(enabled bool) Option {
	return func(c *Calculator) {
		c.autoSave = enabled
	}
}
