package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

// Palette holds the styles for one output. Local programs use the default
// renderer; each SSH session gets one bound to its own terminal so color
// detection follows the client, not the server.
type Palette struct {
	r      *lipgloss.Renderer
	colors map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Box      lipgloss.Style
}

// NewPalette builds styles for r. A nil r means the default renderer.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		r:      r,
		colors: make(map[core.Color]lipgloss.Style),
	}
	for _, c := range core.Colors() {
		st := r.NewStyle()
		if n := c.Palette(); n >= 0 {
			st = st.Foreground(lipgloss.Color(strconv.Itoa(n)))
		}
		p.colors[c] = st
	}

	p.Title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	p.Accent = r.NewStyle().Foreground(lipgloss.Color("14"))
	p.Muted = r.NewStyle().Foreground(lipgloss.Color("241"))
	p.Selected = r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	p.Box = r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	return p
}

// Renderer returns the renderer the palette was built for.
func (p *Palette) Renderer() *lipgloss.Renderer { return p.r }

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.colors[color]
			if !ok {
				style = p.colors[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
