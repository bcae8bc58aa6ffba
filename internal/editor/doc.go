// Package editor implements the demo text editor built on a rewind
// cursor: a line buffer state, data-carrying edit commands, a file
// watcher for the external-modification indicator, and the terminal
// application loop.
package editor
