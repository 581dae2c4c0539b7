// Package memory normalizes and deduplicates loosely-keyed factual
// memory records accumulated about a caller.
package memory

import "time"

// Record is a single remembered fact about a caller. Multiple records
// may describe the same fact with differing casing or spacing in Key.
type Record struct {
	Category   string     `json:"category"`
	Key        string     `json:"key"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
	Evidence   string     `json:"evidence,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// Active reports whether the record is non-expired at the given time.
func (r Record) Active(now time.Time) bool {
	return r.ExpiresAt == nil || now.Before(*r.ExpiresAt)
}
