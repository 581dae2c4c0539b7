package behavior

// Scope identifies the configuration tier a behavior target belongs to.
type Scope string

const (
	ScopeSystem             Scope = "SYSTEM"
	ScopeDomain             Scope = "DOMAIN"
	ScopePlaybook           Scope = "PLAYBOOK"
	ScopeCallerSegment      Scope = "CALLER_SEGMENT"
	ScopeCallerPersonalized Scope = "CALLER_PERSONALIZED"
)

// Priority returns the cascade rank for a scope. Higher wins. Unknown
// scopes rank below SYSTEM so malformed input can never shadow a real
// target.
func (s Scope) Priority() int {
	switch s {
	case ScopeCallerPersonalized:
		return 5
	case ScopeCallerSegment:
		return 4
	case ScopePlaybook:
		return 3
	case ScopeDomain:
		return 2
	case ScopeSystem:
		return 1
	default:
		return 0
	}
}

// Label returns a human-readable name for the scope.
func (s Scope) Label() string {
	switch s {
	case ScopeSystem:
		return "System default"
	case ScopeDomain:
		return "Domain"
	case ScopePlaybook:
		return "Playbook"
	case ScopeCallerSegment:
		return "Caller segment"
	case ScopeCallerPersonalized:
		return "Personalized"
	default:
		return string(s)
	}
}
