package ui

import (
	"strings"

	"go-robo/internal/geom"
	"go-robo/internal/level"

	"github.com/charmbracelet/lipgloss"
)

// CellSize is the number of canvas pixels covered by one terminal cell. Each
// cell is drawn two columns wide so boxes keep their proportions.
const CellSize = 25

const emptyGlyph = " ·"

var (
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	canvasFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// namedColors maps the colour names used in level files to ANSI colours.
var namedColors = map[string]string{
	"black":   "236",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

type cell struct {
	set   bool
	color string
	glyph string
}

// Canvas is a terminal renderer: boxes are rasterised onto a grid of cells
// and later boxes paint over earlier ones.
type Canvas struct {
	cols, rows int
	cells      []cell
}

func NewCanvas(size geom.Size) *Canvas {
	c := &Canvas{}
	c.Resize(size)
	return c
}

// Resize adapts the grid to a new canvas size and clears it.
func (c *Canvas) Resize(size geom.Size) {
	c.cols = max((size.Width+CellSize-1)/CellSize, 1)
	c.rows = max((size.Height+CellSize-1)/CellSize, 1)
	c.cells = make([]cell, c.cols*c.rows)
}

func (c *Canvas) Dimensions() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) Clear() {
	clear(c.cells)
}

// DrawBox fills every cell the box touches. The label, if any, is written
// across the first row of the box.
func (c *Canvas) DrawBox(b geom.Box, style level.Style) {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	col0 := geom.Clamp(b.X/CellSize, 0, c.cols-1)
	row0 := geom.Clamp(b.Y/CellSize, 0, c.rows-1)
	col1 := geom.Clamp((b.Right()-1)/CellSize, 0, c.cols-1)
	row1 := geom.Clamp((b.Bottom()-1)/CellSize, 0, c.rows-1)

	label := []rune(style.Label)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			glyph := "  "
			if row == row0 {
				i := (col - col0) * 2
				if i < len(label) {
					glyph = string(label[i:min(i+2, len(label))])
					if len([]rune(glyph)) == 1 {
						glyph += " "
					}
				}
			}
			c.cells[row*c.cols+col] = cell{set: true, color: style.Color, glyph: glyph}
		}
	}
}

// At returns the colour and glyph of a cell and whether anything was drawn
// there since the last Clear.
func (c *Canvas) At(col, row int) (color, glyph string, ok bool) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return "", "", false
	}
	cl := c.cells[row*c.cols+col]
	return cl.color, cl.glyph, cl.set
}

// View renders the grid inside a rounded frame.
func (c *Canvas) View() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if !cl.set {
				b.WriteString(gridStyle.Render(emptyGlyph))
				continue
			}
			style := lipgloss.NewStyle().Background(colorFor(cl.color)).Foreground(lipgloss.Color("15")).Bold(true)
			b.WriteString(style.Render(cl.glyph))
		}
	}
	return canvasFrame.Render(b.String())
}

func colorFor(name string) lipgloss.Color {
	if c, ok := namedColors[strings.ToLower(name)]; ok {
		return lipgloss.Color(c)
	}
	if name == "" {
		return lipgloss.Color("7")
	}
	return lipgloss.Color(name)
}
