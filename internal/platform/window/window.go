// Package window runs a game in a desktop window through ebiten. ebiten
// owns the loop: every Update polls the keyboard into the sampler and runs
// one driver frame, and Draw paints the last frame with the debug font.
package window

import (
	"errors"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/keys"
)

// Debug font cell size in pixels.
const (
	cellW = 6
	cellH = 16
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// The debug font is ASCII only.
var glyphs = map[rune]rune{
	'█': '#', '▓': '#', '▒': '%', '░': '.', '▀': '"', '▄': '_',
	'▌': '|', '▐': '|', '│': '|', '┃': '|', '─': '-', '━': '-',
	'┌': '+', '┐': '+', '└': '+', '┘': '+', '╔': '+', '╗': '+', '╚': '+', '╝': '+',
	'═': '=', '║': '|', '·': '.', '•': 'o', '●': 'O', '○': 'o', '¦': ':',
	'▲': 'A', '▼': 'V', '◄': '<', '►': '>', '←': '<', '→': '>', '↑': '^', '↓': 'v',
	'♥': '*', '★': '*', '☼': '*',
}

// glyph returns an ASCII stand-in for r.
func glyph(r rune) rune {
	if r < 0x80 {
		return r
	}
	if g, ok := glyphs[r]; ok {
		return g
	}
	return '?'
}

// Window adapts a driver to ebiten.Game.
type Window struct {
	driver *loop.Driver
	keys   *keys.Map
	logger *log.Logger

	focused bool
	names   []string
	pressed []ebiten.Key
	layer   *ebiten.Image
}

// New wraps d. km nil picks keys.For(d.Game()). The driver's sampler should
// have no hold window, since ebiten reports held keys directly.
func New(d *loop.Driver, km *keys.Map, logger *log.Logger) *Window {
	if km == nil {
		km = keys.For(d.Game())
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Window{driver: d, keys: km, logger: logger, focused: true}
}

// Update polls input and runs one frame.
func (w *Window) Update() error {
	if !ebiten.IsFocused() {
		if w.focused {
			w.driver.Input().Blur()
			w.logger.Debug("focus lost, input cleared")
		}
		w.focused = false
	} else {
		w.focused = true
		w.pressed = inpututil.AppendPressedKeys(w.pressed[:0])
		w.names = w.names[:0]
		for _, k := range w.pressed {
			if name := KeyName(k); name != "" {
				w.names = append(w.names, name)
			}
		}
		w.driver.Input().Set(w.keys.Held(w.names))
	}

	if _, ok := w.driver.Frame(); !ok {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the last frame, one tinted layer per color.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	bounds := screen.Bounds()
	if w.layer == nil || w.layer.Bounds() != bounds {
		w.layer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	for c, lines := range Layers(w.driver.Screen()) {
		w.layer.Clear()
		for y, line := range lines {
			ebitenutil.DebugPrintAt(w.layer, line, 0, y*cellH)
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(palette[c])
		screen.DrawImage(w.layer, op)
	}
}

// Layout fixes the logical size to the driver's screen.
func (w *Window) Layout(_, _ int) (int, int) {
	s := w.driver.Screen()
	return s.Width() * cellW, s.Height() * cellH
}

// Layers splits src by color. Each layer holds the ASCII text of the cells
// in that color, with every other cell blank, so tinting the debug font
// once per layer colors the whole screen.
func Layers(src *core.Screen) map[core.Color][]string {
	out := make(map[core.Color][]string)
	rows := make(map[core.Color][]rune)
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			if _, ok := palette[cell.Color]; !ok {
				cell.Color = core.ColorDefault
			}
			row, ok := rows[cell.Color]
			if !ok {
				row = []rune(strings.Repeat(" ", src.Width()))
				rows[cell.Color] = row
			}
			row[x] = glyph(cell.Rune)
		}
		for c, row := range rows {
			lines := out[c]
			for len(lines) < y {
				lines = append(lines, "")
			}
			out[c] = append(lines, strings.TrimRight(string(row), " "))
			for i := range row {
				row[i] = ' '
			}
		}
	}
	return out
}

// KeyName names an ebiten key the way the shared key map expects.
func KeyName(k ebiten.Key) string {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return string(rune('a' + k - ebiten.KeyA))
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return string(rune('0' + k - ebiten.KeyDigit0))
	}
	switch k {
	case ebiten.KeyArrowLeft:
		return "left"
	case ebiten.KeyArrowRight:
		return "right"
	case ebiten.KeyArrowUp:
		return "up"
	case ebiten.KeyArrowDown:
		return "down"
	case ebiten.KeySpace:
		return " "
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	case ebiten.KeyEscape:
		return "esc"
	case ebiten.KeyTab:
		return "tab"
	case ebiten.KeyBackspace:
		return "backspace"
	case ebiten.KeyComma:
		return ","
	case ebiten.KeyPeriod:
		return "."
	case ebiten.KeySlash:
		return "/"
	}
	return ""
}

// Options configures the window.
type Options struct {
	Title string
	Scale int // window pixels per logical pixel
}

// Run opens a window and plays d until the player quits or closes it.
func Run(d *loop.Driver, opts Options, logger *log.Logger) error {
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	if opts.Title == "" {
		opts.Title = d.Game().Title()
	}
	w := New(d, nil, logger)
	lw, lh := w.Layout(0, 0)
	ebiten.SetWindowSize(lw*opts.Scale, lh*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(d.Config().TickRate)

	err := ebiten.RunGame(w)
	d.Stop()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
