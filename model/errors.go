package model

import "errors"

// Sentinel errors shared by iw and sbfws for configuration failures detected
// at construction time (spec.md §7: "Configuration error (fatal at
// construction)"). Both packages wrap these with errors.Is-compatible
// context via fmt.Errorf("%w: ...", ...) where a specific value is useful.
var (
	// ErrUnsupportedMaxWidth is returned when a caller requests an
	// IWEngine max width outside {1, 2}.
	ErrUnsupportedMaxWidth = errors.New("model: unsupported max width (must be 1 or 2)")

	// ErrUnsupportedNoveltyLevels is returned when a caller overrides
	// SBFWS's novelty_levels with a value outside {2, 3}.
	ErrUnsupportedNoveltyLevels = errors.New("model: unsupported novelty levels (must be 2 or 3)")

	// ErrGenOrderOverflow indicates the per-engine generation counter
	// exceeded its 2^32 bound (spec.md §7 overflow guard).
	ErrGenOrderOverflow = errors.New("model: generation order counter overflowed")
)
