package heap

import "log/slog"

// Config controls heap construction.
type Config struct {
	// MaxSegments bounds the arena reservation backing the heap.
	MaxSegments int

	// SanityScrub enables diagnostic scrubbing during sweep: freed
	// segments and dead blocks of partial segments are zeroed so that
	// use-after-free and stale-pointer bugs surface early. A diagnostic
	// aid, not a correctness requirement; off in normal operation.
	SanityScrub bool

	// Logger receives Debug-level summaries of sweep passes. A nil
	// logger disables logging.
	Logger *slog.Logger
}

// DefaultConfig is used when New is given a nil config.
var DefaultConfig = Config{
	MaxSegments: 1024,
}
