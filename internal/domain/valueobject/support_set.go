package valueobject

import "strings"

// Wildcard marks universal support in a SupportSet.
const Wildcard = "*"

// SupportSet is a set of uppercase currency or country codes. A set containing
// the "*" wildcard supports every code. Membership checks uppercase their
// input, so matching is case-insensitive end to end.
type SupportSet struct {
	codes    map[string]struct{}
	wildcard bool
}

// NewSupportSet creates a SupportSet, normalizing all codes to uppercase.
func NewSupportSet(codes []string) SupportSet {
	s := SupportSet{codes: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		if code == Wildcard {
			s.wildcard = true
			continue
		}
		s.codes[strings.ToUpper(code)] = struct{}{}
	}
	return s
}

// Contains reports whether the set supports the given code.
func (s SupportSet) Contains(code string) bool {
	if s.wildcard {
		return true
	}
	_, ok := s.codes[strings.ToUpper(code)]
	return ok
}

// Universal reports whether the set contains the wildcard.
func (s SupportSet) Universal() bool {
	return s.wildcard
}

// Codes returns the explicit codes in the set, plus the wildcard when present.
// The result order is unspecified.
func (s SupportSet) Codes() []string {
	out := make([]string, 0, len(s.codes)+1)
	for code := range s.codes {
		out = append(out, code)
	}
	if s.wildcard {
		out = append(out, Wildcard)
	}
	return out
}
