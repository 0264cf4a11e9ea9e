package event

import "github.com/dshills/reckon/internal/calc"

// LoggingObserver writes each calculation to the application log.
type LoggingObserver struct {
	logger Logger
}

// NewLoggingObserver creates a logging observer. The logger is required.
func NewLoggingObserver(logger Logger) (*LoggingObserver, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &LoggingObserver{logger: logger}, nil
}

// Update logs the calculation. A nil calculation is an error.
func (o *LoggingObserver) Update(c *calc.Calculation) error {
	if c == nil {
		return ErrNilCalculation
	}
	o.logger.Info("calculation performed",
		"operation", c.Operation,
		"operand1", c.Operand1.String(),
		"operand2", c.Operand2.String(),
		"result", c.Result.String())
	return nil
}

// Saver is the collaborator an AutoSaveObserver triggers: it must expose
// the auto-save flag and a way to persist history. The calculator
// satisfies this.
type Saver interface {
	AutoSave() bool
	SaveHistory() error
}

// AutoSaveObserver persists history after each calculation when the
// collaborator's auto-save flag is set.
type AutoSaveObserver struct {
	saver  Saver
	logger Logger
}

// NewAutoSaveObserver creates an auto-save observer bound to the given
// collaborator. It fails fast if the collaborator is missing. The logger
// may be nil.
func NewAutoSaveObserver(saver Saver, logger Logger) (*AutoSaveObserver, error) {
	if saver == nil {
		return nil, ErrNilSaver
	}
	return &AutoSaveObserver{saver: saver, logger: logger}, nil
}

// Update triggers a save if auto-save is enabled. Save failures
// propagate to the notifier.
func (o *AutoSaveObserver) Update(c *calc.Calculation) error {
	if c == nil {
		return ErrNilCalculation
	}
	if !o.saver.AutoSave() {
		return nil
	}
	if err := o.saver.SaveHistory(); err != nil {
		return err
	}
	if o.logger != nil {
		o.logger.Info("history auto-saved")
	}
	return nil
}
