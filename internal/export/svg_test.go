package export

import (
	"strings"
	"testing"

	"github.com/kalder/gravlab/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.Set(1, 1)

	svg := CanvasToSVG(c, 10)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("lit dot did not produce a circle")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("document not closed")
	}
}

func TestCanvasToSVGEmpty(t *testing.T) {
	if CanvasToSVG(nil, 10) != "" {
		t.Error("nil canvas should produce empty output")
	}

	svg := CanvasToSVG(viz.NewCanvas(4, 4), 10)
	if strings.Contains(svg, "<circle") {
		t.Error("empty canvas should not contain circles")
	}
}
