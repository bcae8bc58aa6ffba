// Package main walks through the regeneration machinery with an
// instrumented state: cloning and command application print, showing
// when snapshots are captured and how much replay each undo and redo
// costs.
package main

import (
	"fmt"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/policy"
)

// counter is an integer state that announces its own duplication.
type counter struct {
	n int
}

func (c counter) Clone() counter {
	fmt.Printf("state %d: take a snapshot\n", c.n)
	return c
}

// increment announces each application, including re-application during
// replay.
type increment struct{}

func (increment) Apply(c counter) counter {
	next := counter{n: c.n + 1}
	fmt.Printf("state %d -> %d: apply command\n", c.n, next.n)
	return next
}

func (increment) Description() string { return "increment" }

func main() {
	fmt.Println("# INITIALIZE #")
	cur := rewind.New[counter]().
		WithPolicy(policy.ByDistance(3)).
		Build(counter{})

	fmt.Println("\n# EDIT 10 TIMES #")
	for i := 0; i < 10; i++ {
		fmt.Printf("## Edit(%d) ##\n", i)
		cur.Edit(increment{})
	}

	fmt.Println("\n# UNDO 10 TIMES #")
	for i := 0; i < 10; i++ {
		fmt.Printf("## Undo(%d) ##\n", i)
		cur.Undo()
	}

	fmt.Println("\n# REDO 10 TIMES #")
	for i := 0; i < 10; i++ {
		fmt.Printf("## Redo(%d) ##\n", i)
		cur.Redo()
	}

	fmt.Println("\n# HISTORY #")
	for _, e := range cur.History() {
		mark := " "
		if e.Snapshotted {
			mark = "*"
		}
		fmt.Printf("%s %3d  %s\n", mark, e.Position, e.Description)
	}
	fmt.Printf("snapshots retained: %d\n", cur.SnapshotCount())
}
