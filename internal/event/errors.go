package event

import "errors"

// Errors returned by the bus and built-in observers.
var (
	// ErrNilCalculation indicates an observer was notified with a nil record.
	ErrNilCalculation = errors.New("event: calculation is nil")

	// ErrNilObserver indicates an attempt to register a nil observer.
	ErrNilObserver = errors.New("event: observer is nil")

	// ErrNilLogger indicates a logging observer constructed without a logger.
	ErrNilLogger = errors.New("event: logger is nil")

	// ErrNilSaver indicates an auto-save observer constructed without a
	// save collaborator.
	ErrNilSaver = errors.New("event: saver is nil")
)
