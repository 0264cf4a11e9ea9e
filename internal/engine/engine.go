package engine

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dshills/reckon/internal/calc"
	"github.com/dshills/reckon/internal/calc/history"
	"github.com/dshills/reckon/internal/config"
	"github.com/dshills/reckon/internal/event"
	"github.com/dshills/reckon/internal/operation"
	"github.com/dshills/reckon/internal/store"
)

// Calculator is the main facade. It owns the history, the selected
// operation, the memento stacks, and the persistence store.
type Calculator struct {
	mu sync.Mutex

	reg   *operation.Registry
	bus   *event.Bus
	store store.Store
	stack *history.Stack

	history []calc.Calculation
	current string

	maxHistory int
	maxInput   decimal.Decimal
	autoSave   bool
}

// New creates a Calculator with the given options. Without options it
// uses the built-in operations, an in-memory store, and a bus with no
// observers.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		maxHistory: DefaultMaxHistorySize,
		maxInput:   config.DefaultMaxInputValue,
		autoSave:   true,
		stack:      history.NewStack(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reg == nil {
		c.reg = operation.NewDefaultRegistry()
	}
	if c.store == nil {
		c.store = store.NewMemStore()
	}
	if c.bus == nil {
		c.bus = event.NewBus(nil)
	}
	return c
}

// Registry returns the operation registry, for listing and extension.
func (c *Calculator) Registry() *operation.Registry { return c.reg }

// SetOperation selects the operation used by PerformOperation. The
// name is case-insensitive.
func (c *Calculator) SetOperation(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, err := c.reg.Create(name); err != nil {
		return err
	}

	c.mu.Lock()
	c.current = name
	c.mu.Unlock()
	return nil
}

// CurrentOperation returns the selected operation name, or "" if none
// has been set.
func (c *Calculator) CurrentOperation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// PerformOperation parses the operands, executes the selected
// operation, and commits the result to history: a memento of the
// pre-append history goes onto the undo stack, the redo stack is
// cleared, and the oldest entries are evicted past the history cap.
// Nothing mutates on a parse, validation, or execution failure.
// Observers are notified after the commit; their errors propagate.
func (c *Calculator) PerformOperation(a, b string) (calc.Calculation, error) {
	rec, err := c.perform(a, b)
	if err != nil {
		return calc.Calculation{}, err
	}
	if err := c.bus.Notify(&rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (c *Calculator) perform(aStr, bStr string) (calc.Calculation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == "" {
		return calc.Calculation{}, ErrNoOperation
	}

	a, err := calc.ParseOperand(aStr, c.maxInput)
	if err != nil {
		return calc.Calculation{}, err
	}
	b, err := calc.ParseOperand(bStr, c.maxInput)
	if err != nil {
		return calc.Calculation{}, err
	}

	rec, err := calc.New(c.reg, c.current, a, b)
	if err != nil {
		return calc.Calculation{}, err
	}

	c.stack.Push(c.history)
	c.history = append(c.history, rec)
	c.evictLocked()
	return rec, nil
}

// evictLocked drops the oldest entries past the history cap.
func (c *Calculator) evictLocked() {
	if over := len(c.history) - c.maxHistory; over > 0 {
		c.history = append([]calc.Calculation(nil), c.history[over:]...)
	}
}

// Undo restores the previous history snapshot. It returns false when
// there is nothing to undo.
func (c *Calculator) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	restored, ok := c.stack.Undo(c.history)
	if !ok {
		return false
	}
	c.history = restored
	return true
}

// Redo reverses the most recent undo. It returns false when there is
// nothing to redo.
func (c *Calculator) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	restored, ok := c.stack.Redo(c.history)
	if !ok {
		return false
	}
	c.history = restored
	return true
}

// CanUndo reports whether undo is available.
func (c *Calculator) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.CanUndo()
}

// CanRedo reports whether redo is available.
func (c *Calculator) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.CanRedo()
}

// ClearHistory empties the history and both memento stacks.
func (c *Calculator) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
	c.stack.Clear()
}

// Len returns the number of calculations in the history.
func (c *Calculator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

// History returns a copy of the history, oldest first.
func (c *Calculator) History() []calc.Calculation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]calc.Calculation, len(c.history))
	copy(out, c.history)
	return out
}

// ShowHistory renders the history one line per calculation, oldest
// first.
func (c *Calculator) ShowHistory() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]string, len(c.history))
	for i, rec := range c.history {
		lines[i] = rec.String()
	}
	return lines
}

// SaveHistory persists the current history through the store.
func (c *Calculator) SaveHistory() error {
	c.mu.Lock()
	snapshot := make([]calc.Calculation, len(c.history))
	copy(snapshot, c.history)
	c.mu.Unlock()

	return c.store.Save(snapshot)
}

// LoadHistory replaces the history with the store's contents. The
// replaced history is pushed onto the undo stack, so a load can be
// undone. A missing or empty store yields an empty history.
func (c *Calculator) LoadHistory() error {
	loaded, err := c.store.Load()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack.Push(c.history)
	c.history = loaded
	c.evictLocked()
	return nil
}

// AutoSave reports whether history should be persisted after each
// calculation. The auto-save observer reads this.
func (c *Calculator) AutoSave() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoSave
}

// AddObserver registers an observer for calculation notifications.
func (c *Calculator) AddObserver(o event.Observer) error {
	return c.bus.Add(o)
}

// RemoveObserver drops a previously registered observer.
func (c *Calculator) RemoveObserver(o event.Observer) {
	c.bus.Remove(o)
}

// UpdateLimits applies new limits, typically after a settings reload.
// A smaller history cap evicts the oldest entries immediately.
func (c *Calculator) UpdateLimits(maxHistory int, maxInput decimal.Decimal, autoSave bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if maxHistory > 0 {
		c.maxHistory = maxHistory
		c.evictLocked()
	}
	if maxInput.Sign() > 0 {
		c.maxInput = maxInput
	}
	c.autoSave = autoSave
}
