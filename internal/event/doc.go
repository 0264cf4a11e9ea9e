// Package event provides the observer bus the calculator notifies after
// each successful calculation.
//
// Observers are held in registration order and notified synchronously.
// Registration does not enforce uniqueness: adding an observer twice
// yields two notifications, and Remove drops a single occurrence. There
// is no failure isolation: the first observer to return an error aborts
// the remaining notifications and the error propagates to the caller of
// the calculation.
//
// Two built-in observers are provided: LoggingObserver writes each
// calculation to the application log, and AutoSaveObserver persists
// history after each calculation when auto-save is enabled.
package event
