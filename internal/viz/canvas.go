// Package viz renders body positions and trails onto a braille
// character canvas for the terminal frontends.
package viz

import (
	"math"
	"strings"
)

// Braille patterns: 2x4 dots per character cell.
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Sub-pixel dimensions: each cell is 2 dots wide and 4 tall.
func (c *Canvas) PixelWidth() int  { return c.Width * 2 }
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// Set lights the dot at sub-pixel coordinates (x, y). Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Project maps world coordinates to sub-pixel canvas coordinates: the
// origin lands at the canvas center and the world Y axis points up.
func (c *Canvas) Project(x, y, scale float64) (int, int) {
	sx := float64(c.PixelWidth())/2 + x*scale
	sy := float64(c.PixelHeight())/2 - y*scale
	return int(math.Round(sx)), int(math.Round(sy))
}

// SetWorld lights the dot under a world coordinate.
func (c *Canvas) SetWorld(x, y, scale float64) {
	px, py := c.Project(x, y, scale)
	c.Set(px, py)
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawWorldLine draws a line between two world coordinates.
func (c *Canvas) DrawWorldLine(x0, y0, x1, y1, scale float64) {
	px0, py0 := c.Project(x0, y0, scale)
	px1, py1 := c.Project(x1, y1, scale)
	c.DrawLine(px0, py0, px1, py1)
}

// FillWorldCircle fills a disc centered on a world coordinate. The
// radius is in world units.
func (c *Canvas) FillWorldCircle(x, y, radius, scale float64) {
	cx, cy := c.Project(x, y, scale)
	r := int(math.Round(radius * scale))
	if r < 1 {
		c.Set(cx, cy)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
