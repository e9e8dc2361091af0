package triage

import (
	"fmt"
	"strings"
)

// Urgency is a totally ordered severity: Low < Medium < High. The zero value
// is Low.
type Urgency int

const (
	Low Urgency = iota
	Medium
	High
)

var urgencyNames = [...]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

var urgencyGuidance = [...]string{
	Low:    "Common pregnancy symptom",
	Medium: "Monitor your symptoms",
	High:   "Contact your doctor soon",
}

func (u Urgency) Valid() bool {
	return u >= Low && u <= High
}

func (u Urgency) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Urgency(%d)", int(u))
	}
	return urgencyNames[u]
}

// Guidance is the one-line call to action shown with the urgency badge.
func (u Urgency) Guidance() string {
	if !u.Valid() {
		return urgencyGuidance[Low]
	}
	return urgencyGuidance[u]
}

// ParseUrgency accepts "low", "medium" or "high" in any case.
func ParseUrgency(s string) (Urgency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range urgencyNames {
		if name == s {
			return Urgency(i), nil
		}
	}
	return Low, fmt.Errorf("invalid urgency: %q", s)
}

// MaxUrgency returns the higher of a and b.
func MaxUrgency(a, b Urgency) Urgency {
	if b > a {
		return b
	}
	return a
}

func (u Urgency) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid urgency: %d", int(u))
	}
	return []byte(urgencyNames[u]), nil
}

func (u *Urgency) UnmarshalText(text []byte) error {
	parsed, err := ParseUrgency(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
