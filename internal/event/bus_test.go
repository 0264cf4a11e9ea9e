package event

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dshills/reckon/internal/calc"
	"github.com/dshills/reckon/internal/operation"
)

type testLogger struct {
	debugs []string
	infos  []string
}

func (l *testLogger) Debug(msg string, args ...any) { l.debugs = append(l.debugs, msg) }
func (l *testLogger) Info(msg string, args ...any)  { l.infos = append(l.infos, msg) }

type countingObserver struct {
	calls int
	err   error
}

func (o *countingObserver) Update(c *calc.Calculation) error {
	o.calls++
	return o.err
}

func newTestCalc(t *testing.T) *calc.Calculation {
	t.Helper()
	reg := operation.NewDefaultRegistry()
	c, err := calc.New(reg, "add", decimal.NewFromInt(2), decimal.NewFromInt(3))
	if err != nil {
		t.Fatal(err)
	}
	return &c
}

func TestBusNotifyInOrder(t *testing.T) {
	bus := NewBus(nil)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		if err := bus.Add(observerFunc(func(*calc.Calculation) error {
			order = append(order, i)
			return nil
		})); err != nil {
			t.Fatal(err)
		}
	}

	if err := bus.Notify(newTestCalc(t)); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("notification order = %v, want [0 1 2]", order)
	}
}

// observerFunc adapts a function to the Observer interface for tests.
type observerFunc func(*calc.Calculation) error

func (f observerFunc) Update(c *calc.Calculation) error { return f(c) }

func TestBusAddNil(t *testing.T) {
	bus := NewBus(nil)
	if err := bus.Add(nil); !errors.Is(err, ErrNilObserver) {
		t.Errorf("Add(nil) = %v, want ErrNilObserver", err)
	}
}

func TestBusDuplicateRegistration(t *testing.T) {
	bus := NewBus(nil)
	obs := &countingObserver{}
	if err := bus.Add(obs); err != nil {
		t.Fatal(err)
	}
	if err := bus.Add(obs); err != nil {
		t.Fatal(err)
	}

	if err := bus.Notify(newTestCalc(t)); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if obs.calls != 2 {
		t.Errorf("duplicate registration: calls = %d, want 2", obs.calls)
	}

	// Remove drops a single occurrence.
	bus.Remove(obs)
	obs.calls = 0
	if err := bus.Notify(newTestCalc(t)); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if obs.calls != 1 {
		t.Errorf("after Remove: calls = %d, want 1", obs.calls)
	}
}

func TestBusErrorAbortsRemaining(t *testing.T) {
	bus := NewBus(nil)
	boom := errors.New("boom")
	first := &countingObserver{err: boom}
	second := &countingObserver{}
	if err := bus.Add(first); err != nil {
		t.Fatal(err)
	}
	if err := bus.Add(second); err != nil {
		t.Fatal(err)
	}

	err := bus.Notify(newTestCalc(t))
	if !errors.Is(err, boom) {
		t.Errorf("Notify error = %v, want boom", err)
	}
	if second.calls != 0 {
		t.Errorf("later observer was notified after a failure: calls = %d", second.calls)
	}
}

func TestLoggingObserver(t *testing.T) {
	if _, err := NewLoggingObserver(nil); !errors.Is(err, ErrNilLogger) {
		t.Errorf("NewLoggingObserver(nil) = %v, want ErrNilLogger", err)
	}

	logger := &testLogger{}
	obs, err := NewLoggingObserver(logger)
	if err != nil {
		t.Fatal(err)
	}

	if err := obs.Update(nil); !errors.Is(err, ErrNilCalculation) {
		t.Errorf("Update(nil) = %v, want ErrNilCalculation", err)
	}

	if err := obs.Update(newTestCalc(t)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(logger.infos) != 1 {
		t.Errorf("log entries = %d, want 1", len(logger.infos))
	}
}

type fakeSaver struct {
	autoSave bool
	saves    int
	err      error
}

func (s *fakeSaver) AutoSave() bool { return s.autoSave }
func (s *fakeSaver) SaveHistory() error {
	s.saves++
	return s.err
}

func TestAutoSaveObserver(t *testing.T) {
	if _, err := NewAutoSaveObserver(nil, nil); !errors.Is(err, ErrNilSaver) {
		t.Errorf("NewAutoSaveObserver(nil) = %v, want ErrNilSaver", err)
	}

	saver := &fakeSaver{autoSave: true}
	obs, err := NewAutoSaveObserver(saver, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := obs.Update(nil); !errors.Is(err, ErrNilCalculation) {
		t.Errorf("Update(nil) = %v, want ErrNilCalculation", err)
	}

	if err := obs.Update(newTestCalc(t)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1", saver.saves)
	}

	saver.autoSave = false
	if err := obs.Update(newTestCalc(t)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1 (auto-save disabled)", saver.saves)
	}

	saver.autoSave = true
	saver.err = errors.New("disk full")
	if err := obs.Update(newTestCalc(t)); !errors.Is(err, saver.err) {
		t.Errorf("Update = %v, want save failure to propagate", err)
	}
}
