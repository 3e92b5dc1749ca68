package ly

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color. A Color is either an indexed color, holding a
// 3-bit code with one bit per channel, or a true color holding three 8-bit
// channels. The zero value represents the terminal's default foreground or
// background color.
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// The eight indexed colors. Bit 0 is red, bit 1 green and bit 2 blue.
const (
	Black  = indexed | 0b000
	Red    = indexed | 0b001
	Green  = indexed | 0b010
	Yellow = indexed | 0b011
	Blue   = indexed | 0b100
	Purple = indexed | 0b101
	Cyan   = indexed | 0b110
	White  = indexed | 0b111
)

var colorNames = map[string]Color{
	"black":  Black,
	"red":    Red,
	"green":  Green,
	"yellow": Yellow,
	"blue":   Blue,
	"purple": Purple,
	"cyan":   Cyan,
	"white":  White,
}

// IndexColor returns the indexed color for code. Only the low three bits are
// used.
func IndexColor(code uint8) Color {
	return indexed | Color(code&0b111)
}

// RGBColor returns a true color
func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

// HexColor creates a true color from a hex value such as 0x00AABB
func HexColor(hex uint32) Color {
	return Color(hex&0xFFFFFF) | rgb
}

// ParseColor parses a color name ("red", "default", ...) or a "#rrggbb"
// hex string
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "default" || s == "" {
		return 0, nil
	}
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return HexColor(uint32(v)), nil
	}
	return 0, fmt.Errorf("invalid color %q", s)
}

// IsIndexed reports whether c is one of the 3-bit indexed colors
func (c Color) IsIndexed() bool {
	return c&indexed != 0
}

// IsRGB reports whether c is a true color
func (c Color) IsRGB() bool {
	return c&rgb != 0
}

// Params returns the SGR parameters for the color: the 3-bit code for an
// indexed color, the three channels for a true color, or an empty slice if
// the color is the default color
func (c Color) Params() []uint8 {
	switch {
	case c&indexed != 0:
		return []uint8{uint8(c & 0b111)}
	case c&rgb != 0:
		r := uint8(c >> 16)
		g := uint8(c >> 8)
		b := uint8(c)
		return []uint8{r, g, b}
	}
	return []uint8{}
}

// EncodeFg returns the escape sequence which sets c as the foreground color
func (c Color) EncodeFg() string {
	ps := c.Params()
	switch len(ps) {
	case 1:
		return fmt.Sprintf(fgSet, ps[0])
	case 3:
		return fmt.Sprintf(fgRGBSet, ps[0], ps[1], ps[2])
	}
	return fgReset
}

// EncodeBg returns the escape sequence which sets c as the background color
func (c Color) EncodeBg() string {
	ps := c.Params()
	switch len(ps) {
	case 1:
		return fmt.Sprintf(bgSet, ps[0])
	case 3:
		return fmt.Sprintf(bgRGBSet, ps[0], ps[1], ps[2])
	}
	return bgReset
}

func (c Color) String() string {
	ps := c.Params()
	switch len(ps) {
	case 1:
		for name, nc := range colorNames {
			if nc == c {
				return name
			}
		}
	case 3:
		return fmt.Sprintf("#%02x%02x%02x", ps[0], ps[1], ps[2])
	}
	return "default"
}
