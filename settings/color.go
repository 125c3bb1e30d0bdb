package settings

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parseColor accepts "#rrggbb", "#rrggbbaa", [r, g, b] or [r, g, b, a].
func parseColor(field string, v any) (color.NRGBA, error) {
	switch c := v.(type) {
	case string:
		return hexToNRGBA(field, c)
	case []any:
		if len(c) != 3 && len(c) != 4 {
			return color.NRGBA{}, invalid(field, "color needs 3 or 4 components, got %d", len(c))
		}
		out := color.NRGBA{A: 255}
		ch := []*uint8{&out.R, &out.G, &out.B, &out.A}
		for i, comp := range c {
			n, ok := toInt(comp)
			if !ok || n < 0 || n > 255 {
				return color.NRGBA{}, invalid(field, "component %d must be an integer in 0..255", i)
			}
			*ch[i] = uint8(n)
		}
		return out, nil
	case nil:
		return color.NRGBA{}, missing(field)
	}
	return color.NRGBA{}, invalid(field, "unsupported color value %v", v)
}

func hexToNRGBA(field, hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, invalid(field, "invalid hex color: %s", hex)
	}
	var parts [4]uint8
	parts[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, invalid(field, "invalid hex color: %s", hex)
		}
		parts[i] = uint8(n)
	}
	return color.NRGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}

// FormatColor renders c the way it is written in a settings file.
func FormatColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
