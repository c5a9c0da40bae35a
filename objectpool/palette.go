package objectpool

// RGBA is a resolved palette colour, 8 bits per channel.
type RGBA struct {
	R, G, B, A uint8
}

// standardPalette is the 256-entry VT standard colour palette (spec §6).
// Indices 0-15 carry the fixed VT colours; 16-231 are a 6x6x6 RGB cube
// over the levels {0x00, 0x33, 0x66, 0x99, 0xCC, 0xFF}; 232-255 are
// reserved and rendered black.
var standardPalette = buildStandardPalette()

var cubeLevels = [6]uint8{0x00, 0x33, 0x66, 0x99, 0xCC, 0xFF}

var fixedPalette = [16]RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
	{0x00, 0x99, 0x00, 0xFF}, // green
	{0x00, 0x99, 0x99, 0xFF}, // teal
	{0x99, 0x00, 0x00, 0xFF}, // red
	{0x99, 0x00, 0x99, 0xFF}, // magenta
	{0x99, 0x99, 0x00, 0xFF}, // orange/brown
	{0xCC, 0xCC, 0xCC, 0xFF}, // light grey
	{0x99, 0x99, 0x99, 0xFF}, // grey
	{0x00, 0x00, 0x99, 0xFF}, // blue
	{0x00, 0xFF, 0x00, 0xFF}, // light green
	{0x00, 0xFF, 0xFF, 0xFF}, // light cyan
	{0xFF, 0x00, 0x00, 0xFF}, // light red
	{0xFF, 0x00, 0xFF, 0xFF}, // light magenta
	{0xFF, 0xFF, 0x00, 0xFF}, // yellow
	{0x00, 0x00, 0xFF, 0xFF}, // light blue
}

func buildStandardPalette() [256]RGBA {
	var p [256]RGBA
	copy(p[0:16], fixedPalette[:])
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx] = RGBA{R: cubeLevels[r], G: cubeLevels[g], B: cubeLevels[b], A: 0xFF}
				idx++
			}
		}
	}
	for i := 232; i < 256; i++ {
		p[i] = RGBA{0, 0, 0, 0xFF}
	}
	return p
}

// ColourByIndex resolves a Colour through the standard palette. A
// Pool-local ColourPalette or ColourMap object, when present, takes
// priority over this table (Pool.ColourByIndex applies that override).
func ColourByIndex(c Colour) RGBA { return standardPalette[c] }
