// Package term runs a game straight on a tcell screen, without Bubble Tea.
// The driver runs its own ticker; a second goroutine polls tcell events
// into the driver's sampler.
package term

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/keys"
)

// Terminal shows one driver on one tcell screen.
type Terminal struct {
	screen tcell.Screen
	driver *loop.Driver
	keys   *keys.Map
	logger *log.Logger

	// size holds a resize seen by the event goroutine, packed w<<32|h, for
	// the driver goroutine to apply after the current frame.
	size atomic.Uint64
}

// New binds d to screen. A nil screen opens the real terminal; km nil picks
// keys.For(d.Game()).
func New(screen tcell.Screen, d *loop.Driver, km *keys.Map, logger *log.Logger) (*Terminal, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		screen = s
	}
	if km == nil {
		km = keys.For(d.Game())
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Terminal{screen: screen, driver: d, keys: km, logger: logger}, nil
}

// Run initialises the screen, runs the driver until it stops or ctx is done,
// then restores the terminal.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	defer t.screen.Fini()
	t.screen.EnableFocus()
	t.screen.HideCursor()

	w, h := t.screen.Size()
	t.driver.Resize(w, h)
	t.driver.AddObserver(loop.ObserverFunc(t.present))

	go t.poll()
	return t.driver.Run(ctx)
}

// present copies a finished frame to the terminal.
func (t *Terminal) present(f loop.Frame) {
	Draw(t.screen, f.Screen)
	t.screen.Show()

	if packed := t.size.Swap(0); packed != 0 {
		t.driver.Resize(int(packed>>32), int(packed&0xffffffff))
		t.screen.Sync()
	}
}

// poll feeds terminal events to the driver until the screen is finalised.
func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.handle(ev)
		if t.driver.Stopped() {
			return
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.keys.Press(t.driver.Input(), KeyName(ev))
	case *tcell.EventResize:
		w, h := ev.Size()
		t.size.Store(uint64(w)<<32 | uint64(h))
	case *tcell.EventFocus:
		if !ev.Focused {
			t.driver.Input().Blur()
			t.logger.Debug("focus lost, input cleared")
		}
	}
}

// KeyName names a tcell key the way the shared key map expects.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// Draw copies src onto dst cell by cell.
func Draw(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			style := tcell.StyleDefault
			if n := cell.Color.Palette(); n >= 0 {
				style = style.Foreground(tcell.PaletteColor(n))
			}
			dst.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}
