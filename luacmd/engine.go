package luacmd

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Errors for script compilation and execution.
var (
	// ErrEngineClosed is returned when compiling on a closed engine.
	ErrEngineClosed = errors.New("lua engine is closed")

	// ErrNotAString is returned when a script yields a non-string value.
	ErrNotAString = errors.New("script did not return a string")
)

// safeModules may be required by scripts. Everything else is rejected.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// Engine compiles Lua scripts into commands. It owns one sandboxed Lua
// state shared by every script it compiles.
type Engine struct {
	l      *lua.LState
	closed bool
}

// NewEngine creates an engine with the sandbox installed. Only the
// base, package, table, string, and math libraries are opened; io, os,
// and debug never exist in the state.
func NewEngine() *Engine {
	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage}, // must be opened first
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := l.CallByParam(lua.P{
			Fn:      l.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			panic(fmt.Sprintf("luacmd: opening %s: %v", lib.name, err))
		}
	}
	e := &Engine{l: l}
	e.installSandbox()
	return e
}

// installSandbox removes the escape hatches left in the opened
// libraries: functions that load code from disk, the module search
// paths, and require access to anything outside the whitelist.
func (e *Engine) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		e.l.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := e.l.GetGlobal("package").(*lua.LTable); ok {
		e.l.SetField(pkg, "path", lua.LString(""))
		e.l.SetField(pkg, "cpath", lua.LString(""))
	}

	originalRequire := e.l.GetGlobal("require")
	e.l.SetGlobal("require", e.l.NewFunction(func(l *lua.LState) int {
		name := l.CheckString(1)
		if !safeModules[name] {
			l.RaiseError("module %q is not available", name)
			return 0
		}
		l.Push(originalRequire)
		l.Push(lua.LString(name))
		l.Call(1, 1)
		return 1
	}))
}

// Compile turns Lua source into a script command. The chunk is compiled
// once; Apply calls it with the state as its vararg.
func (e *Engine) Compile(name, source string) (*Script, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}
	fn, err := e.l.LoadString(source)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return &Script{engine: e, name: name, fn: fn}, nil
}

// Close releases the Lua state. Scripts from this engine must not be
// applied afterwards.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.l.Close()
}

// Script is a compiled Lua chunk usable as a command over a string
// state.
type Script struct {
	engine *Engine
	name   string
	fn     *lua.LFunction
}

// Apply runs the script on state. A runtime error or a non-string
// result leaves the state unchanged; since scripts are deterministic,
// the same outcome recurs on replay.
func (s *Script) Apply(state string) string {
	next, err := s.run(state)
	if err != nil {
		return state
	}
	return next
}

// Run is Apply with the error surfaced, for use with a cursor's TryEdit
// or for validating a script before recording it.
func (s *Script) Run(state string) (string, error) {
	next, err := s.run(state)
	if err != nil {
		return state, err
	}
	return next, nil
}

func (s *Script) run(state string) (string, error) {
	if s.engine.closed {
		return "", ErrEngineClosed
	}
	l := s.engine.l
	l.Push(s.fn)
	l.Push(lua.LString(state))
	if err := l.PCall(1, 1, nil); err != nil {
		return "", fmt.Errorf("run %s: %w", s.name, err)
	}
	ret := l.Get(-1)
	l.Pop(1)
	str, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%s: %w (got %s)", s.name, ErrNotAString, ret.Type())
	}
	return string(str), nil
}

// Description names the script in history listings.
func (s *Script) Description() string { return "lua: " + s.name }
