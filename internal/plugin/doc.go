// Package plugin loads user-defined operations from Lua scripts.
//
// Each .lua file in the plugin directory defines one operation through
// four globals:
//
//	name        -- string, the registry name (required)
//	description -- string, help text (optional)
//	execute     -- function(a, b) -> number|string (required)
//	validate    -- function(a, b) -> ok, message (optional)
//
// Operands are passed to Lua as decimal strings so scripts can choose
// between tonumber and exact string handling. Scripts run in a
// sandboxed state with only the base, table, string, and math
// libraries open; io, os, debug, and package are never available.
//
// A script that fails to load is skipped with a warning so one broken
// plugin cannot keep the calculator from starting.
package plugin
