// Package luacmd compiles Lua source into commands over a string state,
// so edit scripts can be loaded at runtime and still replay through a
// rewind cursor.
//
// A script receives the current state as its only argument and must
// return the next state:
//
//	local s = ...
//	return s .. "!"
//
// Scripts run inside a sandbox with the io, os, and debug modules
// removed and loading from disk disabled. A script must be a pure
// function of its input; scripts that read the clock or other ambient
// state will not replay to the same result.
//
// An Engine owns a single Lua state, which is not goroutine-safe. Use
// each Engine, and every cursor holding its scripts, from one goroutine.
package luacmd
