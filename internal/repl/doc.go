// Package repl implements the line-oriented calculator front-end.
//
// Commands are a fixed set (help, history, clear, undo, redo, save,
// load, exit) plus every registered operation name. Operations accept
// their two operands inline ("add 2 3") or prompt for them one at a
// time; entering "cancel" at a prompt aborts the operation. Errors
// from the calculator are printed and the loop continues.
package repl
