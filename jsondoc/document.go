package jsondoc

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is an immutable JSON value. Commands produce new Documents;
// the underlying text is never mutated in place, so Clone is a copy of
// the string header only.
type Document struct {
	raw string
}

// New returns a Document over raw JSON text.
func New(raw string) Document { return Document{raw: raw} }

// Empty returns the empty object document.
func Empty() Document { return Document{raw: "{}"} }

// Raw returns the JSON text.
func (d Document) Raw() string { return d.raw }

// Clone satisfies the duplication contract expected by a rewind cursor.
func (d Document) Clone() Document { return d }

// Get reads the value at a gjson path.
func (d Document) Get(path string) gjson.Result { return gjson.Get(d.raw, path) }

// SetCommand writes Value at Path.
type SetCommand struct {
	Path  string
	Value any
}

// Apply returns the document with the path set. An unrepresentable value
// leaves the document unchanged; path syntax is caller responsibility.
func (c SetCommand) Apply(d Document) Document {
	out, err := sjson.Set(d.raw, c.Path, c.Value)
	if err != nil {
		return d
	}
	return Document{raw: out}
}

func (c SetCommand) Description() string {
	return fmt.Sprintf("set %s = %v", c.Path, c.Value)
}

// DeleteCommand removes the value at Path. Deleting a missing path is a
// no-op.
type DeleteCommand struct {
	Path string
}

func (c DeleteCommand) Apply(d Document) Document {
	out, err := sjson.Delete(d.raw, c.Path)
	if err != nil {
		return d
	}
	return Document{raw: out}
}

func (c DeleteCommand) Description() string {
	return "delete " + c.Path
}
