package life

import "fmt"

// ConfigurationError reports an invalid grid construction or rule string,
// per spec.md §7. It is returned from NewGrid and ParseRule; it is never
// produced by Step.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "life: configuration: " + e.Msg
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// BoundsError reports an out-of-range cell access. It is a programmer
// error in the sense of spec.md §7 ("caller guarantees bounds"), so
// Get/Set panic with a *BoundsError rather than returning one.
type BoundsError struct {
	I, J          int
	Height, Width int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("life: (%d, %d) out of bounds for %d x %d grid", e.I, e.J, e.Height, e.Width)
}
