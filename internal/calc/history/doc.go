// Package history provides memento-based undo/redo for the calculator's
// history list.
//
// Every successful calculation pushes a full-history snapshot (a Memento)
// onto the undo stack and clears the redo stack; undo and redo exchange
// snapshots between the two stacks, so they are exact inverses. Snapshots
// are full copies, not deltas, which is acceptable for the small bounded
// history the calculator keeps.
//
// The stacks themselves are uncapped: snapshots accumulate until popped
// or cleared. That mirrors the persisted-history contract rather than a
// resource bound.
package history
