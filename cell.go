package ly

// Cell is one screen position: a grapheme and its colors
type Cell struct {
	// Glyph is a single extended grapheme cluster. The empty string marks
	// the second column of a wide grapheme which starts in the cell to the
	// left
	Glyph      string
	Foreground Color
	Background Color
}

// blank returns a space with the given colors
func blank(fg Color, bg Color) Cell {
	return Cell{
		Glyph:      " ",
		Foreground: fg,
		Background: bg,
	}
}
