package editor

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("file watcher is closed")

// FileWatch reports external modifications to a single file. Events
// from the editor's own saves are indistinguishable from external ones;
// the caller suppresses them around a save.
type FileWatch struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
	done    chan struct{}
}

// NewFileWatch watches path. The watched directory is the file's parent
// so the watch survives rename-and-replace saves from other programs.
func NewFileWatch(path string) (*FileWatch, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &FileWatch{
		watcher: fsw,
		path:    absPath,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.processLoop()
	return w, nil
}

// Changes delivers one token per burst of modifications to the file.
func (w *FileWatch) Changes() <-chan struct{} { return w.changes }

// Close stops the watcher.
func (w *FileWatch) Close() error {
	select {
	case <-w.done:
		return ErrWatcherClosed
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

func (w *FileWatch) processLoop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
