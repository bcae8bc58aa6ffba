// Package main is an undo demonstration over array shuffling and
// sorting. Shuffling draws from a random source and cannot replay, so
// it goes through TryEdit; sorting is deterministic and replays.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/rewind"
)

const commandHelp = `COMMANDS
 :h          | Print command help.
 :i SIZE     | Initialize (reset) the array by SIZE.
 :t          | Shuffle the array.
 :s          | Sort the array.
 :u [COUNT]  | Undo COUNT changes.
 :r [COUNT]  | Redo COUNT changes.
 :q          | Quit the program.`

// array is the undoable state.
type array struct {
	values []uint32
}

func newArray(size int) array {
	values := make([]uint32, size)
	for i := range values {
		values[i] = uint32(i)
	}
	return array{values: values}
}

func (a array) Clone() array {
	return array{values: slices.Clone(a.values)}
}

func (a array) String() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// sortCommand is deterministic and safe to replay.
type sortCommand struct{}

func (sortCommand) Apply(a array) array {
	slices.Sort(a.values)
	return a
}

func (sortCommand) Description() string { return "sort" }

type app struct {
	data *rewind.Cursor[array]
	rng  *rand.Rand
}

func newApp() *app {
	return &app{
		data: rewind.New[array]().Build(newArray(10)),
		rng:  rand.New(rand.NewSource(rand.Int63())),
	}
}

func (a *app) reset(size int) {
	a.data = rewind.New[array]().Build(newArray(size))
}

func (a *app) shuffle() {
	// The rng makes the result non-reproducible, so the new state is
	// pinned instead of replayed.
	_, _ = a.data.TryEdit(func(arr array) (array, error) {
		a.rng.Shuffle(len(arr.values), func(i, j int) {
			arr.values[i], arr.values[j] = arr.values[j], arr.values[i]
		})
		return arr, nil
	})
}

func (a *app) sort() {
	a.data.Edit(sortCommand{})
}

func main() {
	fmt.Printf("[Undo demonstration] Array shuffling and sorting.\n\n%s\n", commandHelp)

	a := newApp()
	stdin := bufio.NewScanner(os.Stdin)

	fmt.Printf("Data: %s\n", a.data.Current())
	for {
		fmt.Print(":")
		if !stdin.Scan() {
			return
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case ":h", "h":
			fmt.Println(commandHelp)
		case ":q", "q":
			return
		case ":i", "i":
			size, err := parseCount(fields, 10)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			a.reset(size)
			fmt.Printf("Data: %s\n", a.data.Current())
		case ":t", "t":
			a.shuffle()
			fmt.Printf("Data: %s\n", a.data.Current())
		case ":s", "s":
			a.sort()
			fmt.Printf("Data: %s\n", a.data.Current())
		case ":u", "u":
			count, err := parseCount(fields, 1)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if _, ok := a.data.UndoMulti(count); !ok {
				fmt.Printf("Cannot undo %d changes.\n", count)
				continue
			}
			fmt.Printf("Data: %s\n", a.data.Current())
		case ":r", "r":
			count, err := parseCount(fields, 1)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if _, ok := a.data.RedoMulti(count); !ok {
				fmt.Printf("Cannot redo %d changes.\n", count)
				continue
			}
			fmt.Printf("Data: %s\n", a.data.Current())
		default:
			fmt.Printf("Unknown command %q; :h for help.\n", fields[0])
		}
	}
}

func parseCount(fields []string, fallback int) (int, error) {
	if len(fields) < 2 {
		return fallback, nil
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", fields[1])
	}
	return n, nil
}
