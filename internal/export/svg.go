// Package export converts rendered canvases to standalone files.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/kalder/gravlab/internal/viz"
)

// CanvasToSVG converts a braille canvas to an SVG document, one circle
// per lit dot. scale is the SVG pixel size of a canvas sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#c8c8ff">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	for row, cells := range canvas.Grid {
		for col, cell := range cells {
			bits := int(cell) - 0x2800
			if bits <= 0 {
				continue
			}
			for subY := 0; subY < 4; subY++ {
				for subX := 0; subX < 2; subX++ {
					if bits&pixelMap[subY][subX] == 0 {
						continue
					}
					cx := (float64(col*2+subX) + 0.5) * scale
					cy := (float64(row*4+subY) + 0.5) * scale
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>`, cx, cy, scale*0.45))
					sb.WriteString("\n")
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteSVG renders a canvas to an SVG file.
func WriteSVG(path string, canvas *viz.Canvas, scale float64) error {
	return os.WriteFile(path, []byte(CanvasToSVG(canvas, scale)), 0644)
}
