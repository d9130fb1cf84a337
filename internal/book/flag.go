package book

import "strings"

// Flag is a boolean filter parsed from a query string value.
type Flag int

const (
	// FlagUnset means the filter was not supplied.
	FlagUnset Flag = iota
	// FlagTrue matches records whose flag is true.
	FlagTrue
	// FlagFalse matches records whose flag is false.
	FlagFalse
	// FlagInvalid was supplied but could not be parsed; it matches nothing.
	FlagInvalid
)

// ParseFlag accepts "1", "0", "true" and "false" (any case).
// An empty string is FlagUnset; anything else is FlagInvalid.
func ParseFlag(s string) Flag {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FlagUnset
	case "1", "true":
		return FlagTrue
	case "0", "false":
		return FlagFalse
	default:
		return FlagInvalid
	}
}

// IsSet reports whether the flag was supplied at all.
func (f Flag) IsSet() bool {
	return f != FlagUnset
}

// Matches reports whether v satisfies the flag.
func (f Flag) Matches(v bool) bool {
	switch f {
	case FlagTrue:
		return v
	case FlagFalse:
		return !v
	default:
		return false
	}
}
