// Package jsondoc provides a JSON document state ready to use with a
// rewind cursor, plus data-carrying commands for path-based mutation.
//
// Document keeps the raw JSON text; Set and Delete rewrite it through
// sjson paths, so commands are plain values that replay deterministically.
package jsondoc
