package curriculum

import (
	"encoding/json"
	"fmt"
	"time"
)

// ValueKind tags the concrete type held by a Value.
type ValueKind string

const (
	KindString     ValueKind = "string"
	KindNumber     ValueKind = "number"
	KindBool       ValueKind = "bool"
	KindStructured ValueKind = "structured"
)

// Value is a tagged variant over the four attribute value types. Exactly
// one payload field is meaningful, selected by Kind.
type Value struct {
	Kind       ValueKind
	Str        string
	Num        float64
	Bool       bool
	Structured map[string]any
}

// StringValue wraps a string payload.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// NumberValue wraps a numeric payload.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// BoolValue wraps a boolean payload.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// StructuredValue wraps a structured payload.
func StructuredValue(m map[string]any) Value { return Value{Kind: KindStructured, Structured: m} }

// MarshalJSON emits the bare payload; the kind is recoverable from the
// JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindStructured:
		return json.Marshal(v.Structured)
	default:
		return nil, fmt.Errorf("marshal attribute value: unknown kind %q", v.Kind)
	}
}

// UnmarshalJSON infers the kind from the JSON type of the payload.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal attribute value: %w", err)
	}
	switch t := raw.(type) {
	case string:
		*v = StringValue(t)
	case float64:
		*v = NumberValue(t)
	case bool:
		*v = BoolValue(t)
	case map[string]any:
		*v = StructuredValue(t)
	default:
		return fmt.Errorf("unmarshal attribute value: unsupported JSON type %T", raw)
	}
	return nil
}

// confirmsMastery reports whether the value counts as a mastery signal:
// boolean true, or a number at or above the threshold. String and
// structured values never confirm mastery.
func (v Value) confirmsMastery(threshold float64) bool {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num >= threshold
	case KindString, KindStructured:
		return false
	default:
		return false
	}
}

// Attribute is a generic typed fact about a caller. Mastery and
// completion are inferred from attributes whose keys embed a module slug.
type Attribute struct {
	CallerID   string     `json:"caller_id"`
	Key        string     `json:"key"`
	Scope      string     `json:"scope,omitempty"`
	Domain     string     `json:"domain,omitempty"`
	Value      Value      `json:"value"`
	Confidence float64    `json:"confidence"`
	SourceID   string     `json:"source_id,omitempty"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// ValidAt reports whether the attribute's validity window covers the
// given time.
func (a Attribute) ValidAt(now time.Time) bool {
	if a.ValidFrom != nil && now.Before(*a.ValidFrom) {
		return false
	}
	if a.ValidUntil != nil && !now.Before(*a.ValidUntil) {
		return false
	}
	return true
}
