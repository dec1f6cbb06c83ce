package session

import "time"

// Principal is an unlocked admin capability. Mutating use cases take it as an
// explicit parameter instead of consulting ambient state; a zero Principal
// carries no rights.
type Principal struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (p Principal) IsZero() bool {
	return p.Token == ""
}

func (p Principal) ExpiredAt(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && !p.ExpiresAt.After(now)
}
