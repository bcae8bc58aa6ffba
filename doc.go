// Package rewind provides undo/redo for an arbitrary application state by
// regeneration: instead of storing a full copy of the state at every past
// instant, it keeps a log of the commands that were applied plus a sparse
// set of full-state snapshots, and reconstructs any past instant by
// restoring the nearest earlier snapshot and replaying the commands in
// between.
//
// # Commands
//
// A Command is a pure transformation from one state value to the next.
// Commands are recorded and re-applied during replay, so they must be
// deterministic: the same input state must always produce the same output.
// Commands that cannot guarantee this (I/O, randomness) go through
// Cursor.TryEdit, which captures a snapshot instead of relying on replay.
//
// # Cursor
//
// The Cursor owns the live state, the command log, and the snapshot store:
//
//	cur := rewind.NewFunc(func(s string) string { return s }).Build("My")
//
//	cur.EditFunc(func(s string) string { return s + "State" })
//	// cur.Current() == "MyState"
//
//	cur.Undo() // "My"
//	cur.Redo() // "MyState"
//
// # Snapshot policies
//
// Snapshot density is the single tunable knob: more snapshots mean faster
// undo (less replay) and more memory. The policy decides after each edit
// whether to capture; predefined policies live in the policy subpackage:
//
//	cur := rewind.New[Doc]().
//		WithPolicy(policy.ByDistance(10)).
//		Build(initial)
//
// The default policy never snapshots beyond the base, trading maximal
// replay cost for minimal memory.
//
// # Concurrency
//
// A Cursor is not safe for concurrent use. It exclusively owns its state
// and history; mutating the state or calling methods from another
// goroutine during a call is undefined behavior. Hosts that need shared
// access must serialize externally.
package rewind
