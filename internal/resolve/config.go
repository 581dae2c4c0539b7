package resolve

import "github.com/abhisek/tutorstate/internal/trust"

// Config holds the scalar knobs for one resolution pass.
type Config struct {
	// HighThreshold and LowThreshold band effective target values for
	// downstream consumers.
	HighThreshold float64
	LowThreshold  float64

	// MemoriesPerCategory caps the deduplicated memory set per category.
	MemoriesPerCategory int

	// MasteryConfirmationThreshold is the numeric attribute bar for
	// confirmed module mastery.
	MasteryConfirmationThreshold float64

	// TrustBar is the provenance level counted by the trust-weighted
	// progress track.
	TrustBar trust.Level
}

// DefaultConfig returns sensible defaults for resolution.
func DefaultConfig() Config {
	return Config{
		HighThreshold:                0.7,
		LowThreshold:                 0.3,
		MemoriesPerCategory:          5,
		MasteryConfirmationThreshold: 0.7,
		TrustBar:                     trust.LevelVerified,
	}
}
