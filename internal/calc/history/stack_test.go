package history

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dshills/reckon/internal/calc"
	"github.com/dshills/reckon/internal/operation"
)

func newCalc(t *testing.T, op, a, b string) calc.Calculation {
	t.Helper()
	reg := operation.NewDefaultRegistry()
	da, err := decimal.NewFromString(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		t.Fatal(err)
	}
	c, err := calc.New(reg, op, da, db)
	if err != nil {
		t.Fatalf("calc.New(%s, %s, %s): %v", op, a, b, err)
	}
	return c
}

func TestMementoIsDeepCopy(t *testing.T) {
	c1 := newCalc(t, "add", "1", "1")
	c2 := newCalc(t, "add", "2", "2")
	history := []calc.Calculation{c1}

	m := NewMemento(history)
	history[0] = c2

	restored := m.Restore()
	if len(restored) != 1 || !restored[0].Equal(c1) {
		t.Error("memento shares backing storage with the snapshotted slice")
	}
	if m.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestUndoEmptyStack(t *testing.T) {
	s := NewStack()

	if _, ok := s.Undo(nil); ok {
		t.Error("Undo on empty stack should return false")
	}
	if _, ok := s.Redo(nil); ok {
		t.Error("Redo on empty stack should return false")
	}
}

func TestUndoRedoAreInverses(t *testing.T) {
	s := NewStack()
	c1 := newCalc(t, "add", "1", "1")
	c2 := newCalc(t, "add", "2", "2")

	// Simulate: perform c1, perform c2.
	s.Push(nil)
	h1 := []calc.Calculation{c1}
	s.Push(h1)
	h2 := []calc.Calculation{c1, c2}

	// Undo back to h1.
	restored, ok := s.Undo(h2)
	if !ok {
		t.Fatal("Undo failed")
	}
	if len(restored) != 1 || !restored[0].Equal(c1) {
		t.Fatalf("Undo restored %v, want [c1]", restored)
	}

	// Redo back to h2.
	redone, ok := s.Redo(restored)
	if !ok {
		t.Fatal("Redo failed")
	}
	if len(redone) != 2 || !redone[0].Equal(c1) || !redone[1].Equal(c2) {
		t.Fatalf("Redo restored %v, want [c1 c2]", redone)
	}
}

func TestPushClearsRedo(t *testing.T) {
	s := NewStack()
	c1 := newCalc(t, "add", "1", "1")

	s.Push(nil)
	if _, ok := s.Undo([]calc.Calculation{c1}); !ok {
		t.Fatal("Undo failed")
	}
	if s.RedoCount() != 1 {
		t.Fatalf("RedoCount = %d, want 1", s.RedoCount())
	}

	s.Push(nil)
	if s.RedoCount() != 0 {
		t.Errorf("RedoCount after Push = %d, want 0", s.RedoCount())
	}
	if s.UndoCount() != 1 {
		t.Errorf("UndoCount after Push = %d, want 1", s.UndoCount())
	}
}

func TestClear(t *testing.T) {
	s := NewStack()
	s.Push(nil)
	s.Push([]calc.Calculation{newCalc(t, "add", "1", "1")})
	if _, ok := s.Undo(nil); !ok {
		t.Fatal("Undo failed")
	}

	s.Clear()
	if s.CanUndo() || s.CanRedo() {
		t.Error("Clear should drop both stacks")
	}
}

func TestStacksAreUncapped(t *testing.T) {
	s := NewStack()
	for i := 0; i < 2000; i++ {
		s.Push(nil)
	}
	// Push clears redo each time, so only undo grows.
	if s.UndoCount() != 2000 {
		t.Errorf("UndoCount = %d, want 2000 (stacks are not capped)", s.UndoCount())
	}
}
