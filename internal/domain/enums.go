package domain

import (
	"fmt"
	"strings"
)

// Tier is the cost classification of the city a project runs in.
type Tier string

const (
	TierLow  Tier = "low"
	TierHigh Tier = "high"
)

// Tiers lists every recognised tier in ascending priority.
var Tiers = []Tier{TierLow, TierHigh}

// Valid reports whether t is one of the recognised tiers.
func (t Tier) Valid() bool {
	return t == TierLow || t == TierHigh
}

// Priority orders tiers for overlap resolution. Higher wins.
// Returns -1 for an unrecognised tier.
func (t Tier) Priority() int {
	switch t {
	case TierHigh:
		return 1
	case TierLow:
		return 0
	default:
		return -1
	}
}

// ParseTier converts a raw tier tag into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// DayType classifies a scheduled day. The zero value means unclassified.
type DayType string

const (
	DayTravel DayType = "travel"
	DayFull   DayType = "full"
)

// DayTypes lists every classified day type.
var DayTypes = []DayType{DayTravel, DayFull}

// Valid reports whether d is a classified day type.
func (d DayType) Valid() bool {
	return d == DayTravel || d == DayFull
}
