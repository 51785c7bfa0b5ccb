package ansi

import "image/color"

// Palette is an indexed terminal color palette.
type Palette []color.RGBA

// Index returns the index of the palette color closest to c in Euclidean
// R,G,B space.
func (p Palette) Index(c color.Color) int {
	cr, cg, cb, _ := c.RGBA()
	ret, bestSum := 0, uint32(1<<32-1)
	for i := range p {
		sum := sqDiff(uint8(cr>>8), p[i].R) + sqDiff(uint8(cg>>8), p[i].G) + sqDiff(uint8(cb>>8), p[i].B)
		if sum == 0 {
			return i
		}
		if sum < bestSum {
			ret, bestSum = i, sum
		}
	}
	return ret
}

// Convert returns the Indexed spec for the palette color closest to c.
func (p Palette) Convert(c color.Color) ColorSpec {
	return Indexed(uint8(p.Index(c)))
}

// sqDiff borrowed from image/color
func sqDiff(x, y uint8) uint32 {
	d := uint32(x) - uint32(y)
	return (d * d) >> 2
}

// Palette8 is the 256 color terminal palette. The first 8 entries
// correspond to SGR 30-37 foreground and 40-47 background; the next 8 to
// the bright variants 90-97 and 100-107; then a 6x6x6 RGB cube and 24
// shades of gray.
var Palette8 = Palette{
	{0, 0, 0, 255}, // the 16 base colors
	{128, 0, 0, 255},
	{0, 128, 0, 255},
	{128, 128, 0, 255},
	{0, 0, 128, 255},
	{128, 0, 128, 255},
	{0, 128, 128, 255},
	{192, 192, 192, 255},
	{128, 128, 128, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{255, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
	{255, 255, 255, 255},
	{0, 0, 0, 255}, // 6x6x6 color cube
	{0, 0, 95, 255},
	{0, 0, 135, 255},
	{0, 0, 175, 255},
	{0, 0, 215, 255},
	{0, 0, 255, 255},
	{0, 95, 0, 255},
	{0, 95, 95, 255},
	{0, 95, 135, 255},
	{0, 95, 175, 255},
	{0, 95, 215, 255},
	{0, 95, 255, 255},
	{0, 135, 0, 255},
	{0, 135, 95, 255},
	{0, 135, 135, 255},
	{0, 135, 175, 255},
	{0, 135, 215, 255},
	{0, 135, 255, 255},
	{0, 175, 0, 255},
	{0, 175, 95, 255},
	{0, 175, 135, 255},
	{0, 175, 175, 255},
	{0, 175, 215, 255},
	{0, 175, 255, 255},
	{0, 215, 0, 255},
	{0, 215, 95, 255},
	{0, 215, 135, 255},
	{0, 215, 175, 255},
	{0, 215, 215, 255},
	{0, 215, 255, 255},
	{0, 255, 0, 255},
	{0, 255, 95, 255},
	{0, 255, 135, 255},
	{0, 255, 175, 255},
	{0, 255, 215, 255},
	{0, 255, 255, 255},
	{95, 0, 0, 255},
	{95, 0, 95, 255},
	{95, 0, 135, 255},
	{95, 0, 175, 255},
	{95, 0, 215, 255},
	{95, 0, 255, 255},
	{95, 95, 0, 255},
	{95, 95, 95, 255},
	{95, 95, 135, 255},
	{95, 95, 175, 255},
	{95, 95, 215, 255},
	{95, 95, 255, 255},
	{95, 135, 0, 255},
	{95, 135, 95, 255},
	{95, 135, 135, 255},
	{95, 135, 175, 255},
	{95, 135, 215, 255},
	{95, 135, 255, 255},
	{95, 175, 0, 255},
	{95, 175, 95, 255},
	{95, 175, 135, 255},
	{95, 175, 175, 255},
	{95, 175, 215, 255},
	{95, 175, 255, 255},
	{95, 215, 0, 255},
	{95, 215, 95, 255},
	{95, 215, 135, 255},
	{95, 215, 175, 255},
	{95, 215, 215, 255},
	{95, 215, 255, 255},
	{95, 255, 0, 255},
	{95, 255, 95, 255},
	{95, 255, 135, 255},
	{95, 255, 175, 255},
	{95, 255, 215, 255},
	{95, 255, 255, 255},
	{135, 0, 0, 255},
	{135, 0, 95, 255},
	{135, 0, 135, 255},
	{135, 0, 175, 255},
	{135, 0, 215, 255},
	{135, 0, 255, 255},
	{135, 95, 0, 255},
	{135, 95, 95, 255},
	{135, 95, 135, 255},
	{135, 95, 175, 255},
	{135, 95, 215, 255},
	{135, 95, 255, 255},
	{135, 135, 0, 255},
	{135, 135, 95, 255},
	{135, 135, 135, 255},
	{135, 135, 175, 255},
	{135, 135, 215, 255},
	{135, 135, 255, 255},
	{135, 175, 0, 255},
	{135, 175, 95, 255},
	{135, 175, 135, 255},
	{135, 175, 175, 255},
	{135, 175, 215, 255},
	{135, 175, 255, 255},
	{135, 215, 0, 255},
	{135, 215, 95, 255},
	{135, 215, 135, 255},
	{135, 215, 175, 255},
	{135, 215, 215, 255},
	{135, 215, 255, 255},
	{135, 255, 0, 255},
	{135, 255, 95, 255},
	{135, 255, 135, 255},
	{135, 255, 175, 255},
	{135, 255, 215, 255},
	{135, 255, 255, 255},
	{175, 0, 0, 255},
	{175, 0, 95, 255},
	{175, 0, 135, 255},
	{175, 0, 175, 255},
	{175, 0, 215, 255},
	{175, 0, 255, 255},
	{175, 95, 0, 255},
	{175, 95, 95, 255},
	{175, 95, 135, 255},
	{175, 95, 175, 255},
	{175, 95, 215, 255},
	{175, 95, 255, 255},
	{175, 135, 0, 255},
	{175, 135, 95, 255},
	{175, 135, 135, 255},
	{175, 135, 175, 255},
	{175, 135, 215, 255},
	{175, 135, 255, 255},
	{175, 175, 0, 255},
	{175, 175, 95, 255},
	{175, 175, 135, 255},
	{175, 175, 175, 255},
	{175, 175, 215, 255},
	{175, 175, 255, 255},
	{175, 215, 0, 255},
	{175, 215, 95, 255},
	{175, 215, 135, 255},
	{175, 215, 175, 255},
	{175, 215, 215, 255},
	{175, 215, 255, 255},
	{175, 255, 0, 255},
	{175, 255, 95, 255},
	{175, 255, 135, 255},
	{175, 255, 175, 255},
	{175, 255, 215, 255},
	{175, 255, 255, 255},
	{215, 0, 0, 255},
	{215, 0, 95, 255},
	{215, 0, 135, 255},
	{215, 0, 175, 255},
	{215, 0, 215, 255},
	{215, 0, 255, 255},
	{215, 95, 0, 255},
	{215, 95, 95, 255},
	{215, 95, 135, 255},
	{215, 95, 175, 255},
	{215, 95, 215, 255},
	{215, 95, 255, 255},
	{215, 135, 0, 255},
	{215, 135, 95, 255},
	{215, 135, 135, 255},
	{215, 135, 175, 255},
	{215, 135, 215, 255},
	{215, 135, 255, 255},
	{215, 175, 0, 255},
	{215, 175, 95, 255},
	{215, 175, 135, 255},
	{215, 175, 175, 255},
	{215, 175, 215, 255},
	{215, 175, 255, 255},
	{215, 215, 0, 255},
	{215, 215, 95, 255},
	{215, 215, 135, 255},
	{215, 215, 175, 255},
	{215, 215, 215, 255},
	{215, 215, 255, 255},
	{215, 255, 0, 255},
	{215, 255, 95, 255},
	{215, 255, 135, 255},
	{215, 255, 175, 255},
	{215, 255, 215, 255},
	{215, 255, 255, 255},
	{255, 0, 0, 255},
	{255, 0, 95, 255},
	{255, 0, 135, 255},
	{255, 0, 175, 255},
	{255, 0, 215, 255},
	{255, 0, 255, 255},
	{255, 95, 0, 255},
	{255, 95, 95, 255},
	{255, 95, 135, 255},
	{255, 95, 175, 255},
	{255, 95, 215, 255},
	{255, 95, 255, 255},
	{255, 135, 0, 255},
	{255, 135, 95, 255},
	{255, 135, 135, 255},
	{255, 135, 175, 255},
	{255, 135, 215, 255},
	{255, 135, 255, 255},
	{255, 175, 0, 255},
	{255, 175, 95, 255},
	{255, 175, 135, 255},
	{255, 175, 175, 255},
	{255, 175, 215, 255},
	{255, 175, 255, 255},
	{255, 215, 0, 255},
	{255, 215, 95, 255},
	{255, 215, 135, 255},
	{255, 215, 175, 255},
	{255, 215, 215, 255},
	{255, 215, 255, 255},
	{255, 255, 0, 255},
	{255, 255, 95, 255},
	{255, 255, 135, 255},
	{255, 255, 175, 255},
	{255, 255, 215, 255},
	{255, 255, 255, 255},
	{8, 8, 8, 255}, // grayscale ramp
	{18, 18, 18, 255},
	{28, 28, 28, 255},
	{38, 38, 38, 255},
	{48, 48, 48, 255},
	{58, 58, 58, 255},
	{68, 68, 68, 255},
	{78, 78, 78, 255},
	{88, 88, 88, 255},
	{98, 98, 98, 255},
	{108, 108, 108, 255},
	{118, 118, 118, 255},
	{128, 128, 128, 255},
	{138, 138, 138, 255},
	{148, 148, 148, 255},
	{158, 158, 158, 255},
	{168, 168, 168, 255},
	{178, 178, 178, 255},
	{188, 188, 188, 255},
	{198, 198, 198, 255},
	{208, 208, 208, 255},
	{218, 218, 218, 255},
	{228, 228, 228, 255},
	{238, 238, 238, 255},
}
