// Package engine hosts the Calculator, the facade that ties the
// operation registry, calculation history, undo/redo stacks, observer
// bus, and persistence store into one API.
//
// State mutations are serialized by a single mutex. Observer
// notification happens after the mutation commits and outside the
// lock, so observers may call back into the calculator (the auto-save
// observer does).
package engine
