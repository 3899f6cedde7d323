// Package vehicle provides the occupant-tag vocabulary used by CLIs,
// examples, and tests. The core allocator treats tags as opaque strings;
// this package mints and classifies them.
package vehicle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the class of vehicle behind a tag.
type Kind int

const (
	// Unknown is the zero value, reported for tags this package did not mint.
	Unknown Kind = iota

	// Car is a standard passenger vehicle.
	Car

	// Motorcycle is a two-wheeler.
	Motorcycle
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Car:
		return "car"
	case Motorcycle:
		return "motorcycle"
	default:
		return "unknown"
	}
}

// ParseKind maps a name to its Kind. Matching is case-insensitive and
// accepts "bike" as an alias for motorcycle.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car":
		return Car, nil
	case "motorcycle", "bike":
		return Motorcycle, nil
	default:
		return Unknown, fmt.Errorf("vehicle: unknown kind %q (valid: car, motorcycle)", s)
	}
}

// NewTag mints an occupant tag such as "car-3f82c1d4": the kind name plus
// a short random suffix, so concurrent demo traffic stays distinguishable.
func NewTag(k Kind) string {
	return k.String() + "-" + uuid.NewString()[:8]
}

// KindOf recovers the kind from a minted tag. Tags minted elsewhere
// report Unknown.
func KindOf(tag string) Kind {
	name, _, found := strings.Cut(tag, "-")
	if !found {
		name = tag
	}
	k, err := ParseKind(name)
	if err != nil {
		return Unknown
	}
	return k
}
