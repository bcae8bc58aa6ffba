package editor

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/internal/config"
)

// App is the terminal editor: one file, one history cursor, one screen.
type App struct {
	screen tcell.Screen
	cur    *rewind.Cursor[Buffer]
	log    *Logger
	watch  *FileWatch

	path     string
	dirty    bool
	external bool
	saving   bool
	status   string
}

// NewApp loads path (missing files start empty) and builds the history
// cursor from the configuration.
func NewApp(path string, cfg config.Config, log *Logger) (*App, error) {
	text := ""
	if data, err := os.ReadFile(path); err == nil {
		text = string(data)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pol, err := cfg.History.BuildPolicy()
	if err != nil {
		return nil, err
	}

	cur := rewind.New[Buffer]().
		WithPolicy(pol).
		WithSnapshotCapacity(cfg.History.SnapshotCapacity).
		WithLogCapacity(cfg.History.LogCapacity).
		Build(NewBuffer(text))

	app := &App{
		cur:  cur,
		log:  log.WithField("file", path),
		path: path,
	}

	if cfg.Editor.WatchFile {
		watch, err := NewFileWatch(path)
		if err != nil {
			log.Warn("file watch unavailable: %v", err)
		} else {
			app.watch = watch
		}
	}
	return app, nil
}

// Run owns the terminal until the user quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	a.screen = screen
	defer screen.Fini()
	if a.watch != nil {
		defer a.watch.Close()
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	a.log.Info("editor started")
	a.draw()

	var changes <-chan struct{}
	if a.watch != nil {
		changes = a.watch.Changes()
	}

	for {
		select {
		case <-changes:
			if a.saving {
				a.saving = false
			} else {
				a.external = true
				a.log.Warn("file changed outside the editor")
			}
			a.draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				a.draw()
			case *tcell.EventKey:
				if done := a.handleKey(ev); done {
					a.log.Info("editor exiting")
					return nil
				}
				a.draw()
			}
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	buf := a.cur.Current()

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return true
	case tcell.KeyCtrlS:
		a.save()
	case tcell.KeyCtrlZ:
		if _, ok := a.cur.Undo(); ok {
			a.dirty = true
			a.status = "undo"
		} else {
			a.status = "nothing to undo"
		}
	case tcell.KeyCtrlY:
		if _, ok := a.cur.Redo(); ok {
			a.dirty = true
			a.status = "redo"
		} else {
			a.status = "nothing to redo"
		}
	case tcell.KeyLeft:
		if at := prevRune(buf.Text(), buf.Caret()); at != buf.Caret() {
			a.cur.Edit(MoveCommand{At: at})
		}
	case tcell.KeyRight:
		if at := nextRune(buf.Text(), buf.Caret()); at != buf.Caret() {
			a.cur.Edit(MoveCommand{At: at})
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := buf.Caret() - prevRune(buf.Text(), buf.Caret()); n > 0 {
			a.cur.Edit(DeleteCommand{At: buf.Caret(), N: n})
			a.dirty = true
		}
	case tcell.KeyEnter:
		a.cur.Edit(InsertCommand{At: buf.Caret(), Text: "\n"})
		a.dirty = true
	case tcell.KeyRune:
		a.cur.Edit(InsertCommand{At: buf.Caret(), Text: string(ev.Rune())})
		a.dirty = true
	}
	return false
}

func (a *App) save() {
	a.saving = true
	if err := os.WriteFile(a.path, []byte(a.cur.Current().Text()), 0o644); err != nil {
		a.saving = false
		a.status = "save failed: " + err.Error()
		a.log.Error("save failed: %v", err)
		return
	}
	a.dirty = false
	a.external = false
	a.status = "saved"
	a.log.Info("saved %d bytes", len(a.cur.Current().Text()))
}

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	if height < 2 {
		a.screen.Show()
		return
	}

	buf := a.cur.Current()
	style := tcell.StyleDefault

	x, y := 0, 0
	for i, r := range buf.Text() {
		if i == buf.Caret() {
			a.screen.ShowCursor(x, y)
		}
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		if y >= height-1 {
			break
		}
		if x < width {
			a.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	if buf.Caret() == len(buf.Text()) {
		a.screen.ShowCursor(x, y)
	}

	a.drawStatus(width, height-1)
	a.screen.Show()
}

func (a *App) drawStatus(width, row int) {
	marks := ""
	if a.dirty {
		marks += " [+]"
	}
	if a.external {
		marks += " [changed on disk]"
	}
	left := fmt.Sprintf(" %s%s  pos %d/%d  snapshots %d",
		a.path, marks, a.cur.Position(), a.cur.Horizon(), a.cur.SnapshotCount())
	if a.status != "" {
		left += "  " + a.status
	}
	left = padLine(left, width)

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range left {
		if col >= width {
			break
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// padLine pads s with spaces to width columns, counting runes the same
// way the draw loop advances them. Byte length would over-pad non-ASCII
// paths.
func padLine(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// prevRune returns the offset of the rune boundary before at.
func prevRune(s string, at int) int {
	if at <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:at])
	return at - size
}

// nextRune returns the offset of the rune boundary after at.
func nextRune(s string, at int) int {
	if at >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[at:])
	return at + size
}
