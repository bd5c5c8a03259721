package boxprogress

import (
	"fmt"
	"os"
)

// TerminalMetrics is a snapshot of the visible terminal window. It is taken
// once by Probe; call Probe again to recalculate.
type TerminalMetrics struct {
	Columns int
	Rows    int
}

// Probe queries the terminal attached to f for its visible columns and rows.
func Probe(f *os.File) (TerminalMetrics, error) {
	if f == nil || !isatty(f.Fd()) {
		return TerminalMetrics{}, ErrNoTerminal
	}

	cols, rows, err := terminalSize(f.Fd())
	if err != nil {
		return TerminalMetrics{}, fmt.Errorf("%w: %s: %w", ErrNoTerminal, f.Name(), err)
	}

	m := TerminalMetrics{Columns: cols, Rows: rows}
	if m.Validate() != nil {
		return TerminalMetrics{}, fmt.Errorf("%w: %s reports a %dx%d window", ErrNoTerminal, f.Name(), cols, rows)
	}

	return m, nil
}

// ProbeStdout probes the terminal attached to standard output.
func ProbeStdout() (TerminalMetrics, error) {
	return Probe(os.Stdout)
}

// Validate reports ErrMetricsUninitialized unless both values are populated.
func (m TerminalMetrics) Validate() error {
	if m.Columns <= 0 {
		return fmt.Errorf("%w: columns uncalculated", ErrMetricsUninitialized)
	}
	if m.Rows <= 0 {
		return fmt.Errorf("%w: rows uncalculated", ErrMetricsUninitialized)
	}
	return nil
}
