package boxprogress

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultHeight is the height of a bar with a single interior row.
	DefaultHeight = 3

	// Smallest box that still has a border and one interior row.
	minHeight = 3
	minWidth  = 3

	// Share of the terminal width taken by a bar of default width.
	defaultWidthPercent = 80
)

type (
	// Geometry is the character grid of a bar: a one cell border around a
	// single fill row. The border never changes after construction; only the
	// fill row is written to while rendering.
	Geometry struct {
		width  int
		height int
		skin   Skin
		cells  []rune // height*width, row major
	}

	geometryConfig struct {
		skin   Skin
		height int
		width  int // zero means derive from the terminal width
	}

	geometryOption func(*geometryConfig)
)

// WithSkin sets the glyphs the bar is drawn with (default DefaultSkin).
func WithSkin(s Skin) geometryOption {
	return func(c *geometryConfig) {
		c.skin = s
	}
}

// WithHeight sets the bar height including the border (default 3).
func WithHeight(h int) geometryOption {
	return func(c *geometryConfig) {
		c.height = h
	}
}

// WithWidth sets the bar width including the border. Even widths are
// rounded down to the nearest odd number. The default is 80% of the
// terminal columns, rounded down to odd.
func WithWidth(w int) geometryOption {
	return func(c *geometryConfig) {
		c.width = w
	}
}

// FloorToOdd rounds n down to an integer and then, if that integer is even,
// down once more.
func FloorToOdd(n float64) int {
	floored := int(math.Floor(n))
	if floored%2 == 0 {
		floored--
	}
	return floored
}

// NewGeometry builds the grid for a bar sized against the probed metrics.
func NewGeometry(m TerminalMetrics, opts ...geometryOption) (*Geometry, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	cfg := geometryConfig{
		skin:   DefaultSkin,
		height: DefaultHeight,
	}

	for _, o := range opts {
		o(&cfg)
	}

	if err := cfg.skin.Validate(); err != nil {
		return nil, err
	}

	width := FloorToOdd(defaultWidthPercent * float64(m.Columns) / 100)
	if cfg.width != 0 {
		width = FloorToOdd(float64(cfg.width))
	}

	if cfg.height < minHeight {
		return nil, fmt.Errorf("%w: height %d is below %d", ErrDegenerateGeometry, cfg.height, minHeight)
	}
	if width < minWidth {
		return nil, fmt.Errorf("%w: width %d is below %d", ErrDegenerateGeometry, width, minWidth)
	}

	g := &Geometry{
		width:  width,
		height: cfg.height,
		skin:   cfg.skin,
		cells:  make([]rune, width*cfg.height),
	}
	g.layout()

	return g, nil
}

// layout draws the border and blanks the fill row. Interior rows other than
// the fill row are left as the zero rune.
func (g *Geometry) layout() {
	s := g.skin
	last, bottom := g.width-1, g.height-1
	fill := g.FillRow()

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			var r rune
			switch {
			case y == 0 && x == 0:
				r = s.CornerTL
			case y == 0 && x == last:
				r = s.CornerTR
			case y == bottom && x == 0:
				r = s.CornerBL
			case y == bottom && x == last:
				r = s.CornerBR
			case y == 0:
				r = s.Top
			case y == bottom:
				r = s.Down
			case x == 0 || x == last:
				r = s.LeftRight
			case y == fill:
				r = s.Unfinished
			default:
				continue
			}
			g.set(y, x, r)
		}
	}
}

func (g *Geometry) set(y, x int, r rune) {
	g.cells[y*g.width+x] = r
}

// Width is the bar width including the border. It is always odd.
func (g *Geometry) Width() int { return g.width }

// Height is the bar height including the border.
func (g *Geometry) Height() int { return g.height }

// Skin returns the glyphs the bar is drawn with.
func (g *Geometry) Skin() Skin { return g.skin }

// FillRow is the index of the one row that shows progress.
func (g *Geometry) FillRow() int { return g.height / 2 }

// At returns the glyph at row y, column x.
func (g *Geometry) At(y, x int) rune {
	return g.cells[y*g.width+x]
}

// Row renders row y as text. Cells never written hold the zero rune and
// render as a space.
func (g *Geometry) Row(y int) string {
	row := g.cells[y*g.width : (y+1)*g.width]

	var b strings.Builder
	b.Grow(len(row))
	for _, r := range row {
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// String renders the whole grid, one line per row.
func (g *Geometry) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.WriteString(g.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

// FillExtent is the last fill row column covered at the given percentage,
// clamped so the right border is never overwritten. Zero means nothing is
// filled yet.
func (g *Geometry) FillExtent(percent float64) int {
	x := int(math.Floor(percent * float64(g.width) / 100))
	switch {
	case x < 0:
		return 0
	case x > g.width-2:
		return g.width - 2
	}
	return x
}

// fill writes the finished glyph into fill row columns 1 through the extent
// for percent. Previously filled cells are left alone.
func (g *Geometry) fill(percent float64) int {
	x := g.FillExtent(percent)
	row := g.FillRow()
	for col := 1; col <= x; col++ {
		g.set(row, col, g.skin.Finished)
	}
	return x
}
