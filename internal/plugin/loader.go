package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/reckon/internal/operation"
)

// Logger receives plugin load diagnostics.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Loader discovers Lua scripts in a directory and registers them as
// operations. It owns the Lua states of everything it loads.
type Loader struct {
	dir    string
	logger Logger
	ops    []*luaOperation
}

// NewLoader returns a loader for the given plugin directory.
func NewLoader(dir string, logger Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// LoadInto loads every .lua file in the plugin directory, in name
// order, and registers the operations it finds. A missing directory is
// not an error. Scripts that fail to load are skipped with a warning.
// It returns the number of operations registered.
func (l *Loader) LoadInto(reg *operation.Registry) (int, error) {
	entries, err := os.ReadDir(l.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", ErrLoadFailed, l.dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	loaded := 0
	for _, fname := range names {
		path := filepath.Join(l.dir, fname)
		op, err := loadScript(path)
		if err != nil {
			l.warn("skipping plugin", "file", path, "error", err.Error())
			continue
		}
		if err := reg.Register(op.Name(), func() operation.Operation { return op }); err != nil {
			op.close()
			l.warn("skipping plugin", "file", path, "error", err.Error())
			continue
		}
		l.ops = append(l.ops, op)
		loaded++
		l.info("loaded plugin operation", "name", op.Name(), "file", fname)
	}
	return loaded, nil
}

// Close releases the Lua states of all loaded operations. Operations
// registered from this loader must not be used afterwards.
func (l *Loader) Close() {
	for _, op := range l.ops {
		op.close()
	}
	l.ops = nil
}

// loadScript runs one script in a fresh sandboxed state and checks the
// globals it is required to define.
func loadScript(path string) (*luaOperation, error) {
	L := newState()

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	name, ok := L.GetGlobal("name").(lua.LString)
	if !ok || name == "" {
		L.Close()
		return nil, fmt.Errorf("%w: global name must be a non-empty string", ErrLoadFailed)
	}
	execute, ok := L.GetGlobal("execute").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: global execute must be a function", ErrLoadFailed)
	}

	op := &luaOperation{
		name:    strings.ToLower(string(name)),
		state:   L,
		execute: execute,
	}
	if desc, ok := L.GetGlobal("description").(lua.LString); ok {
		op.description = string(desc)
	}
	if v, ok := L.GetGlobal("validate").(*lua.LFunction); ok {
		op.validate = v
	}
	return op, nil
}

// newState creates a Lua state with only safe libraries open. io, os,
// debug, and package stay closed.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}

func (l *Loader) info(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

func (l *Loader) warn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
