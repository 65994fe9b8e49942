package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkondratev/pocket-arcade/internal/camera"
	"github.com/vkondratev/pocket-arcade/internal/geom"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

// Cell is one character of the screen buffer with its foreground color.
type Cell struct {
	Rune  rune
	Color string // Hex color, empty for the terminal default
}

// Screen is a 2D cell buffer the render queue is projected onto.
// It decouples the simulation's world units from the terminal, with the
// platform owning actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the screen dimensions.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, color string) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text, color string) {
	for i, r := range text {
		s.Set(x+i, y, r, color)
	}
}

// fillRect fills a screen-space rectangle with the given rune.
func (s *Screen) fillRect(x, y, w, h int, r rune, color string) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.Set(x+dx, y+dy, r, color)
		}
	}
}

// minOpacity is the cutoff below which an item is not worth a cell.
const minOpacity = 0.15

// cullMargin is the world-unit slack around the viewport before an
// item is dropped without drawing.
const cullMargin = 2.0

// Project draws the sorted queue items through the camera transform.
// Items are drawn in queue order, so later layers overwrite earlier
// ones cell by cell. Items entirely outside the viewport are culled
// before any cells are touched.
func (s *Screen) Project(items []render.Item, cam *camera.Camera) {
	for _, item := range items {
		if item.Opacity < minOpacity {
			continue
		}
		if !visible(item, cam) {
			continue
		}
		sx, sy := cam.WorldToScreen(item.X, item.Y)

		switch item.Kind {
		case render.KindText:
			s.DrawText(int(sx), int(sy), item.Text, item.Color)

		case render.KindSprite:
			w, h := int(item.Width*cam.Zoom), int(item.Height*cam.Zoom)
			if w < 1 {
				w = 1
			}
			if h < 1 {
				h = 1
			}
			s.fillRect(int(sx), int(sy), w, h, item.Glyph, item.Color)

		case render.KindShape:
			s.projectShape(item, sx, sy, cam.Zoom)
		}
	}
}

// visible reports whether any part of the item can reach the viewport.
// Text culls on its start point widened by its own length since the
// queue carries no text metrics.
func visible(item render.Item, cam *camera.Camera) bool {
	switch item.Kind {
	case render.KindText:
		return cam.IsVisible(item.X, item.Y, cullMargin+float64(len(item.Text)))
	case render.KindShape:
		if item.Shape == render.ShapeCircle {
			box := geom.NewAABB(item.X-item.Radius, item.Y-item.Radius,
				item.Radius*2, item.Radius*2)
			return cam.IsAABBVisible(box, cullMargin)
		}
	}
	return cam.IsAABBVisible(geom.NewAABB(item.X, item.Y, item.Width, item.Height), cullMargin)
}

func (s *Screen) projectShape(item render.Item, sx, sy, zoom float64) {
	fill := shapeRune(item.Opacity)

	if item.Shape == render.ShapeCircle {
		// Small circles collapse to a single cell; anything larger is
		// approximated by its bounding square.
		d := int(item.Radius * 2 * zoom)
		if d <= 1 {
			s.Set(int(sx), int(sy), fill, item.Color)
			return
		}
		s.fillRect(int(sx-item.Radius*zoom), int(sy-item.Radius*zoom), d, d, fill, item.Color)
		return
	}

	w, h := int(item.Width*zoom), int(item.Height*zoom)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.fillRect(int(sx), int(sy), w, h, fill, item.Color)
}

// shapeRune picks a block character by opacity so fading particles
// visibly thin out.
func shapeRune(opacity float64) rune {
	switch {
	case opacity >= 0.75:
		return '█'
	case opacity >= 0.5:
		return '▓'
	case opacity >= 0.3:
		return '▒'
	default:
		return '░'
	}
}

// String converts the buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI
// escape sequences.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*2 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.width {
			startColor := s.cells[y][x].Color

			var run strings.Builder
			for x < s.width && s.cells[y][x].Color == startColor {
				run.WriteRune(s.cells[y][x].Rune)
				x++
			}

			if startColor == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(startColor)).Render(run.String()))
		}
	}
	return sb.String()
}
