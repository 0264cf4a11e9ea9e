package plugin

import (
	"fmt"
	"math"
	"sync"

	"github.com/shopspring/decimal"
	lua "github.com/yuin/gopher-lua"
)

// luaOperation adapts a loaded script to the operation interface. The
// underlying Lua state is not goroutine-safe, so calls are serialized.
type luaOperation struct {
	name        string
	description string

	mu       sync.Mutex
	state    *lua.LState
	execute  *lua.LFunction
	validate *lua.LFunction
}

func (o *luaOperation) Name() string        { return o.name }
func (o *luaOperation) Description() string { return o.description }

// Validate calls the script's validate function when one is defined.
// The function returns ok plus an optional message.
func (o *luaOperation) Validate(a, b decimal.Decimal) error {
	if o.validate == nil {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.state.CallByParam(lua.P{Fn: o.validate, NRet: 2, Protect: true},
		lua.LString(a.String()), lua.LString(b.String())); err != nil {
		return fmt.Errorf("%w: %s validate: %v", ErrExecFailed, o.name, err)
	}
	msg := o.state.Get(-1)
	ok := o.state.Get(-2)
	o.state.Pop(2)

	if lua.LVAsBool(ok) {
		return nil
	}
	reason := "operands rejected"
	if s, isStr := msg.(lua.LString); isStr && s != "" {
		reason = string(s)
	}
	return fmt.Errorf("%w: %s: %s", ErrOperandRejected, o.name, reason)
}

// Execute validates the operands, then calls the script's execute
// function. The script may return a Lua number or a decimal string.
func (o *luaOperation) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := o.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.state.CallByParam(lua.P{Fn: o.execute, NRet: 1, Protect: true},
		lua.LString(a.String()), lua.LString(b.String())); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %v", ErrExecFailed, o.name, err)
	}
	ret := o.state.Get(-1)
	o.state.Pop(1)

	return toDecimal(o.name, ret)
}

func (o *luaOperation) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Close()
}

// toDecimal converts a script return value to a decimal.
func toDecimal(name string, v lua.LValue) (decimal.Decimal, error) {
	switch v := v.(type) {
	case lua.LNumber:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, fmt.Errorf("%w: %s returned %v", ErrExecFailed, name, f)
		}
		return decimal.NewFromFloat(f), nil
	case lua.LString:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %s returned %q: %v", ErrExecFailed, name, string(v), err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %s returned %s, want number or string", ErrExecFailed, name, v.Type())
	}
}
