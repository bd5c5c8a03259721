package boxprogress

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Skin is the set of glyphs a bar is drawn with.
type Skin struct {
	CornerTL   rune
	CornerTR   rune
	CornerBL   rune
	CornerBR   rune
	Top        rune
	Down       rune
	LeftRight  rune
	Unfinished rune
	Finished   rune
}

// DefaultSkin is a double-cornered box with a solid block fill.
var DefaultSkin = Skin{
	CornerTL:   '╔',
	CornerTR:   '╗',
	CornerBL:   '╚',
	CornerBR:   '╝',
	Top:        '-',
	Down:       '-',
	LeftRight:  '|',
	Unfinished: ' ',
	Finished:   '█',
}

// Box drawing and block glyphs are East Asian ambiguous; measure them narrow
// regardless of locale.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Validate checks that every glyph is set and occupies exactly one cell.
func (s Skin) Validate() error {
	glyphs := []struct {
		name string
		r    rune
	}{
		{"cornerTL", s.CornerTL},
		{"cornerTR", s.CornerTR},
		{"cornerBL", s.CornerBL},
		{"cornerBR", s.CornerBR},
		{"top", s.Top},
		{"down", s.Down},
		{"leftRight", s.LeftRight},
		{"unfinished", s.Unfinished},
		{"finished", s.Finished},
	}

	for _, g := range glyphs {
		if g.r == 0 {
			return fmt.Errorf("%w: %s glyph not set", ErrInvalidSkin, g.name)
		}
		if w := cellWidth.RuneWidth(g.r); w != 1 {
			return fmt.Errorf("%w: %s glyph %q is %d cells wide", ErrInvalidSkin, g.name, g.r, w)
		}
	}

	return nil
}
