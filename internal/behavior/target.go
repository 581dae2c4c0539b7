package behavior

import "time"

// Parameter is a single behavioral dial the agent can be steered on.
// Immutable reference data.
type Parameter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HighMeaning string `json:"high_meaning,omitempty"`
	LowMeaning  string `json:"low_meaning,omitempty"`
	Group       string `json:"group,omitempty"`
}

// DefaultTargetValue is the neutral setting consumers should assume for
// parameters absent from the resolved map.
const DefaultTargetValue = 0.5

// Target is a scoped behavioral target. Multiple targets may exist for
// the same parameter across scopes; at most one is active per
// (parameter, scope, entity) tuple.
type Target struct {
	ParameterID string     `json:"parameter_id"`
	Scope       Scope      `json:"scope"`
	EntityID    string     `json:"entity_id,omitempty"`
	Value       float64    `json:"value"`
	Confidence  float64    `json:"confidence"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Active reports whether the target is non-expired at the given time.
func (t Target) Active(now time.Time) bool {
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}

// CallerTarget is a personalized override learned from one caller's
// interaction history. It always outranks scoped targets for the same
// parameter.
type CallerTarget struct {
	CallerID          string    `json:"caller_id"`
	ParameterID       string    `json:"parameter_id"`
	Value             float64   `json:"value"`
	Confidence        float64   `json:"confidence"`
	CallsUsed         int       `json:"calls_used"`
	DecayHalfLifeDays float64   `json:"decay_half_life_days,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Band classifies a target value against the high/low thresholds.
type Band string

const (
	BandHigh     Band = "high"
	BandModerate Band = "moderate"
	BandLow      Band = "low"
)

// BandFor returns the band for a value given the configured thresholds.
func BandFor(value, highThreshold, lowThreshold float64) Band {
	switch {
	case value >= highThreshold:
		return BandHigh
	case value <= lowThreshold:
		return BandLow
	default:
		return BandModerate
	}
}

// Effective is the single resolved value for one parameter after
// cascade resolution.
type Effective struct {
	ParameterID string  `json:"parameter_id"`
	Value       float64 `json:"value"`
	Confidence  float64 `json:"confidence"`
	Source      Scope   `json:"source"`
	Band        Band    `json:"band"`
}
