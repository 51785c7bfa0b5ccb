package ansi

import (
	"image/color"
	"strconv"
)

// ColorName is one of the eight canonical 3-bit color keys.
type ColorName uint8

// The canonical colors, in SGR code order.
const (
	Black ColorName = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

func (name ColorName) String() string {
	if int(name) < len(colorNames) {
		return colorNames[name]
	}
	return "ColorName(" + strconv.Itoa(int(name)) + ")"
}

// colorKind discriminates the ColorSpec variants. The set is closed: every
// representable spec has a defined foreground and background encoding.
type colorKind uint8

const (
	colorDefault colorKind = iota
	colorNamed
	colorBright
	colorIndexed
	colorRGB
)

// ColorSpec selects one SGR color encoding: the terminal default, one of the
// eight named colors (normal or bright), an 8-bit palette index, or a 24-bit
// RGB triple. The zero value selects the terminal default color.
type ColorSpec struct {
	kind    colorKind
	name    ColorName
	index   uint8
	r, g, b uint8
}

// Default returns the spec selecting the terminal's default color.
func Default() ColorSpec { return ColorSpec{} }

// Named returns the spec for one of the eight canonical colors
// (SGR 30-37 foreground, 40-47 background).
func Named(name ColorName) ColorSpec {
	return ColorSpec{kind: colorNamed, name: name}
}

// BrightNamed returns the spec for the high-intensity variant of a canonical
// color (SGR 90-97 foreground, 100-107 background).
func BrightNamed(name ColorName) ColorSpec {
	return ColorSpec{kind: colorBright, name: name}
}

// Indexed returns the spec for an 8-bit palette color
// (SGR 38;5;n / 48;5;n).
func Indexed(n uint8) ColorSpec {
	return ColorSpec{kind: colorIndexed, index: n}
}

// RGB returns the spec for a 24-bit color (SGR 38;2;r;g;b / 48;2;r;g;b).
func RGB(r, g, b uint8) ColorSpec {
	return ColorSpec{kind: colorRGB, r: r, g: g, b: b}
}

// Opaque adapts any color.Color into a 24-bit spec by decomposing it into
// 8-bit red, green, and blue channels.
func Opaque(c color.Color) ColorSpec {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGBA implements the color.Color interface, resolving named and indexed
// specs through Palette8. The default spec resolves to opaque black.
func (spec ColorSpec) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := spec.rgb()
	r = uint32(r8)
	g = uint32(g8)
	b = uint32(b8)
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func (spec ColorSpec) rgb() (r, g, b uint8) {
	switch spec.kind {
	case colorNamed:
		c := Palette8[spec.name]
		return c.R, c.G, c.B
	case colorBright:
		c := Palette8[8+int(spec.name)]
		return c.R, c.G, c.B
	case colorIndexed:
		c := Palette8[spec.index]
		return c.R, c.G, c.B
	}
	return spec.r, spec.g, spec.b
}

// FG returns the SGR parameter selecting this color as the foreground.
func (spec ColorSpec) FG() Param {
	switch spec.kind {
	case colorNamed:
		return Code(30 + int(spec.name))
	case colorBright:
		return Code(90 + int(spec.name))
	case colorIndexed:
		return Param("38;5;" + strconv.Itoa(int(spec.index)))
	case colorRGB:
		return Param("38;2;" + rgbParams(spec.r, spec.g, spec.b))
	}
	return DefaultForeground
}

// BG returns the SGR parameter selecting this color as the background.
func (spec ColorSpec) BG() Param {
	switch spec.kind {
	case colorNamed:
		return Code(40 + int(spec.name))
	case colorBright:
		return Code(100 + int(spec.name))
	case colorIndexed:
		return Param("48;5;" + strconv.Itoa(int(spec.index)))
	case colorRGB:
		return Param("48;2;" + rgbParams(spec.r, spec.g, spec.b))
	}
	return DefaultBackground
}

func rgbParams(r, g, b uint8) string {
	return strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b))
}

// Foreground encodes an SGR sequence selecting the foreground color. With no
// spec it selects the terminal default (code 39). Extra specs beyond the
// first are ignored.
func Foreground(spec ...ColorSpec) string {
	if len(spec) == 0 {
		return SetGraphicRendition(DefaultForeground)
	}
	return SetGraphicRendition(spec[0].FG())
}

// Background encodes an SGR sequence selecting the background color. With no
// spec it selects the terminal default (code 49).
func Background(spec ...ColorSpec) string {
	if len(spec) == 0 {
		return SetGraphicRendition(DefaultBackground)
	}
	return SetGraphicRendition(spec[0].BG())
}
