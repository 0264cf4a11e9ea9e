package history

import (
	"time"

	"github.com/dshills/reckon/internal/calc"
)

// Memento is a snapshot of the calculator history at a point in time.
type Memento struct {
	History   []calc.Calculation
	Timestamp time.Time
}

// NewMemento snapshots the given history. The slice is copied;
// Calculation values are immutable once constructed.
func NewMemento(history []calc.Calculation) Memento {
	return Memento{
		History:   copyHistory(history),
		Timestamp: time.Now(),
	}
}

// Restore returns a copy of the snapshotted history.
func (m Memento) Restore() []calc.Calculation {
	return copyHistory(m.History)
}

// Stack holds the undo and redo stacks of mementos.
type Stack struct {
	undoStack []Memento
	redoStack []Memento
}

// NewStack creates empty undo/redo stacks.
func NewStack() *Stack {
	return &Stack{}
}

// Push records a snapshot of the current history onto the undo stack and
// clears the redo stack: any new action invalidates redo history.
func (s *Stack) Push(current []calc.Calculation) {
	s.undoStack = append(s.undoStack, NewMemento(current))
	s.redoStack = nil
}

// Undo pops the most recent memento, pushing a snapshot of the current
// history onto the redo stack. It returns the restored history and true,
// or nil and false if there is nothing to undo.
func (s *Stack) Undo(current []calc.Calculation) ([]calc.Calculation, bool) {
	if len(s.undoStack) == 0 {
		return nil, false
	}

	m := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, NewMemento(current))
	return m.Restore(), true
}

// Redo pops the most recent redo memento, pushing a snapshot of the
// current history onto the undo stack. It returns the restored history
// and true, or nil and false if there is nothing to redo.
func (s *Stack) Redo(current []calc.Calculation) ([]calc.Calculation, bool) {
	if len(s.redoStack) == 0 {
		return nil, false
	}

	m := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = append(s.undoStack, NewMemento(current))
	return m.Restore(), true
}

// CanUndo returns true if undo is available.
func (s *Stack) CanUndo() bool { return len(s.undoStack) > 0 }

// CanRedo returns true if redo is available.
func (s *Stack) CanRedo() bool { return len(s.redoStack) > 0 }

// UndoCount returns the number of undo snapshots held.
func (s *Stack) UndoCount() int { return len(s.undoStack) }

// RedoCount returns the number of redo snapshots held.
func (s *Stack) RedoCount() int { return len(s.redoStack) }

// Clear drops both stacks.
func (s *Stack) Clear() {
	s.undoStack = nil
	s.redoStack = nil
}

func copyHistory(history []calc.Calculation) []calc.Calculation {
	if history == nil {
		return nil
	}
	out := make([]calc.Calculation, len(history))
	copy(out, history)
	return out
}
