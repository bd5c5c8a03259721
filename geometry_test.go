package boxprogress

import (
	"errors"
	"math"
	"strings"
	"testing"
)

var testMetrics = TerminalMetrics{Columns: 100, Rows: 30}

func TestFloorToOdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int
	}{
		{80, 79},
		{79, 79},
		{79.9, 79},
		{80.8, 79},
		{3, 3},
		{4, 3},
		{2.5, 1},
		{1, 1},
		{0, -1},
		{-2.5, -3},
	}

	for _, tt := range tests {
		if got := FloorToOdd(tt.in); got != tt.want {
			t.Errorf("FloorToOdd(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFloorToOdd_Bounds(t *testing.T) {
	t.Parallel()

	for n := -50.0; n <= 50; n += 0.25 {
		got := FloorToOdd(n)
		floor := int(math.Floor(n))
		if got%2 == 0 {
			t.Errorf("FloorToOdd(%v) = %d, want odd", n, got)
		}
		if got > floor || got < floor-1 {
			t.Errorf("FloorToOdd(%v) = %d, want within [%d, %d]", n, got, floor-1, floor)
		}
	}
}

func TestNewGeometry_DefaultWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns int
		want    int
	}{
		{name: "100 columns", columns: 100, want: 79},
		{name: "101 columns", columns: 101, want: 79},
		{name: "120 columns", columns: 120, want: 95},
		{name: "10 columns", columns: 10, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGeometry(TerminalMetrics{Columns: tt.columns, Rows: 24})
			if err != nil {
				t.Fatalf("NewGeometry() unexpected error: %v", err)
			}
			if g.Width() != tt.want {
				t.Errorf("Width() = %d, want %d", g.Width(), tt.want)
			}
			if g.Height() != DefaultHeight {
				t.Errorf("Height() = %d, want %d", g.Height(), DefaultHeight)
			}
		})
	}
}

func TestNewGeometry_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		metrics TerminalMetrics
		opts    []geometryOption
		want    error
	}{
		{name: "unprobed metrics", metrics: TerminalMetrics{}, want: ErrMetricsUninitialized},
		{name: "rows missing", metrics: TerminalMetrics{Columns: 80}, want: ErrMetricsUninitialized},
		{name: "height 2", metrics: testMetrics, opts: []geometryOption{WithHeight(2)}, want: ErrDegenerateGeometry},
		{name: "width 2", metrics: testMetrics, opts: []geometryOption{WithWidth(2)}, want: ErrDegenerateGeometry},
		{name: "negative width", metrics: testMetrics, opts: []geometryOption{WithWidth(-7)}, want: ErrDegenerateGeometry},
		{name: "tiny terminal", metrics: TerminalMetrics{Columns: 3, Rows: 1}, want: ErrDegenerateGeometry},
		{name: "bad skin", metrics: testMetrics, opts: []geometryOption{WithSkin(Skin{})}, want: ErrInvalidSkin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGeometry(tt.metrics, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewGeometry() error = %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Errorf("NewGeometry() returned geometry alongside error")
			}
		})
	}
}

func TestNewGeometry_EvenWidthRoundsDown(t *testing.T) {
	t.Parallel()

	g, err := NewGeometry(testMetrics, WithWidth(22))
	if err != nil {
		t.Fatalf("NewGeometry() unexpected error: %v", err)
	}
	if g.Width() != 21 {
		t.Errorf("Width() = %d, want 21", g.Width())
	}
}

// distinct returns a skin where every glyph differs, so cells can be told apart.
func distinct() Skin {
	return Skin{
		CornerTL:   'a',
		CornerTR:   'b',
		CornerBL:   'c',
		CornerBR:   'd',
		Top:        't',
		Down:       'v',
		LeftRight:  'l',
		Unfinished: '.',
		Finished:   '#',
	}
}

func TestNewGeometry_Layout(t *testing.T) {
	t.Parallel()

	s := distinct()
	for _, height := range []int{3, 4, 5, 8} {
		for _, width := range []int{3, 5, 21} {
			g, err := NewGeometry(testMetrics, WithSkin(s), WithHeight(height), WithWidth(width))
			if err != nil {
				t.Fatalf("NewGeometry(%dx%d) unexpected error: %v", height, width, err)
			}

			last, bottom := width-1, height-1
			corners := map[[2]int]rune{
				{0, 0}:         s.CornerTL,
				{0, last}:      s.CornerTR,
				{bottom, 0}:    s.CornerBL,
				{bottom, last}: s.CornerBR,
			}
			for pos, want := range corners {
				if got := g.At(pos[0], pos[1]); got != want {
					t.Errorf("%dx%d At(%d, %d) = %q, want %q", height, width, pos[0], pos[1], got, want)
				}
			}

			for x := 1; x < last; x++ {
				if got := g.At(0, x); got != s.Top {
					t.Errorf("%dx%d top At(0, %d) = %q, want %q", height, width, x, got, s.Top)
				}
				if got := g.At(bottom, x); got != s.Down {
					t.Errorf("%dx%d bottom At(%d, %d) = %q, want %q", height, width, bottom, x, got, s.Down)
				}
			}

			unfinishedRows := 0
			for y := 1; y < bottom; y++ {
				if g.At(y, 0) != s.LeftRight || g.At(y, last) != s.LeftRight {
					t.Errorf("%dx%d row %d side border = %q %q", height, width, y, g.At(y, 0), g.At(y, last))
				}

				interior := []rune(g.Row(y))[1:last]
				if strings.Count(string(interior), string(s.Unfinished)) == len(interior) {
					unfinishedRows++
					if y != g.FillRow() {
						t.Errorf("%dx%d row %d initialised, want only fill row %d", height, width, y, g.FillRow())
					}
				}
			}
			if unfinishedRows != 1 {
				t.Errorf("%dx%d has %d unfinished rows, want 1", height, width, unfinishedRows)
			}
		}
	}
}

func TestNewGeometry_ExtraRowsStayBlank(t *testing.T) {
	t.Parallel()

	g, err := NewGeometry(testMetrics, WithSkin(distinct()), WithHeight(5), WithWidth(7))
	if err != nil {
		t.Fatalf("NewGeometry() unexpected error: %v", err)
	}

	want := "atttttb\n" +
		"l     l\n" +
		"l.....l\n" +
		"l     l\n" +
		"cvvvvvd\n"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if g.At(1, 3) != 0 {
		t.Errorf("At(1, 3) = %q, want zero rune", g.At(1, 3))
	}
}

func TestNewGeometry_Idempotent(t *testing.T) {
	t.Parallel()

	a, err := NewGeometry(testMetrics, WithHeight(4), WithWidth(31))
	if err != nil {
		t.Fatalf("NewGeometry() unexpected error: %v", err)
	}
	b, err := NewGeometry(testMetrics, WithHeight(4), WithWidth(31))
	if err != nil {
		t.Fatalf("NewGeometry() unexpected error: %v", err)
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(y, x) != b.At(y, x) {
				t.Fatalf("At(%d, %d) differs: %q vs %q", y, x, a.At(y, x), b.At(y, x))
			}
		}
	}
}

func TestGeometry_FillExtentMonotonic(t *testing.T) {
	t.Parallel()

	g, err := NewGeometry(testMetrics, WithWidth(21))
	if err != nil {
		t.Fatalf("NewGeometry() unexpected error: %v", err)
	}

	const max = 200.0
	prev := 0
	for p := 0.0; p <= max; p++ {
		x := g.FillExtent(100 * p / max)
		if x < prev {
			t.Fatalf("FillExtent at p=%v = %d, below previous %d", p, x, prev)
		}
		if x < 0 || x > g.Width()-2 {
			t.Fatalf("FillExtent at p=%v = %d, outside [0, %d]", p, x, g.Width()-2)
		}
		prev = x
	}

	if prev != g.Width()-2 {
		t.Errorf("FillExtent(100) = %d, want %d", prev, g.Width()-2)
	}
	if x := g.FillExtent(250); x != g.Width()-2 {
		t.Errorf("FillExtent(250) = %d, want %d", x, g.Width()-2)
	}
	if x := g.FillExtent(-10); x != 0 {
		t.Errorf("FillExtent(-10) = %d, want 0", x)
	}
}

func TestGeometry_FillHalf(t *testing.T) {
	t.Parallel()

	g, err := NewGeometry(testMetrics, WithWidth(21))
	if err != nil {
		t.Fatalf("NewGeometry() unexpected error: %v", err)
	}

	if x := g.fill(100 * 100 / 200.0); x != 10 {
		t.Fatalf("fill(50) = %d, want 10", x)
	}

	row := g.FillRow()
	for x := 1; x <= 10; x++ {
		if g.At(row, x) != DefaultSkin.Finished {
			t.Errorf("At(%d, %d) = %q, want finished", row, x, g.At(row, x))
		}
	}
	for x := 11; x < g.Width()-1; x++ {
		if g.At(row, x) != DefaultSkin.Unfinished {
			t.Errorf("At(%d, %d) = %q, want unfinished", row, x, g.At(row, x))
		}
	}
	if g.At(row, 0) != DefaultSkin.LeftRight || g.At(row, 20) != DefaultSkin.LeftRight {
		t.Errorf("fill overwrote the side border: %q", g.Row(row))
	}
}

func TestGeometry_FillFullKeepsBorder(t *testing.T) {
	t.Parallel()

	g, err := NewGeometry(testMetrics, WithWidth(9))
	if err != nil {
		t.Fatalf("NewGeometry() unexpected error: %v", err)
	}

	g.fill(99.9)
	g.fill(100)

	want := "|███████|"
	if got := g.Row(g.FillRow()); got != want {
		t.Errorf("Row(fill) = %q, want %q", got, want)
	}
}
