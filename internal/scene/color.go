package scene

import "fmt"

// ParseHexColor parses a "#rrggbb" display color. Anything else falls
// back to the default body color.
func ParseHexColor(hex string) (r, g, b uint8) {
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return r, g, b
		}
	}
	return 0xc8, 0xc8, 0xff
}
