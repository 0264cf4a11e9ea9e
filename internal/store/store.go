package store

import "github.com/dshills/reckon/internal/calc"

// Store loads and saves calculation history. Save replaces the stored
// history wholesale; Load returns the stored history oldest first.
type Store interface {
	Load() ([]calc.Calculation, error)
	Save(history []calc.Calculation) error
}
