package boxprogress

import "errors"

var (
	// ErrNoTerminal is returned by Probe when the file is not an interactive terminal.
	ErrNoTerminal = errors.New("no interactive terminal")

	// ErrMetricsUninitialized is returned when geometry is requested against
	// a TerminalMetrics value that was never probed.
	ErrMetricsUninitialized = errors.New("terminal metrics not initialized")

	// ErrDegenerateGeometry is returned when the requested box cannot hold a
	// border plus one fill row.
	ErrDegenerateGeometry = errors.New("degenerate bar geometry")

	// ErrInvalidSkin is returned when a skin glyph is missing or not one cell wide.
	ErrInvalidSkin = errors.New("invalid bar skin")

	// ErrInvalidMax is returned when the maximum progress value is not a positive number.
	ErrInvalidMax = errors.New("invalid maximum progress value")

	// ErrAlreadyStarted is returned when Start is called on a bar that has
	// already been started.
	ErrAlreadyStarted = errors.New("progress bar already started")
)
