package shadowrun

import "math"

// HasAttribute reports whether the snapshot carries the attribute.
//
// MAG and RES are only present on awakened or emerged characters; callers must
// check presence rather than infer it from a zero total.
func HasAttribute(c Character, code AttributeCode) bool {
	_, ok := c.Attributes[code]
	return ok
}

// TotalOf returns base plus flat bonus, never negative.
// An absent attribute yields 0.
func TotalOf(c Character, code AttributeCode) int {
	attr, ok := c.Attributes[code]
	if !ok {
		return 0
	}
	return max(0, attr.Base+attr.Bonus)
}

// IsWithinLimits reports whether min <= value <= max.
// Malformed limits (min > max) are never satisfied.
func IsWithinLimits(value int, limits Limits) bool {
	if limits.Min > limits.Max {
		return false
	}
	return value >= limits.Min && value <= limits.Max
}

// EffectiveAttribute returns the total plus every aggregated quality bonus.
func EffectiveAttribute(c Character, mods Modifiers, code AttributeCode) int {
	return max(0, TotalOf(c, code)+mods.AttributeBonus[code])
}

// EffectiveLimits applies quality floors, ceilings and ceiling deltas to the
// stored limits of an attribute.
//
// The natural maximum is raised by any ceiling delta and then capped by the
// tightest ceiling override; the minimum is raised by the highest floor.
func EffectiveLimits(limits Limits, mods Modifiers, code AttributeCode) Limits {
	out := limits
	delta := mods.AttributeCeilingDelta[code]
	out.Max += delta
	out.Aug += delta
	if ceiling, ok := mods.AttributeCeiling[code]; ok && ceiling < out.Max {
		out.Max = ceiling
	}
	if floor, ok := mods.AttributeFloor[code]; ok && floor > out.Min {
		out.Min = floor
	}
	return out
}

// MagicCeiling returns the effective maximum for MAG or RES.
//
// When essence has dropped below the species maximum the ceiling becomes
// min(declared, floor(essence)).
func MagicCeiling(declared int, essence, maxEssence float64) int {
	if essence >= maxEssence {
		return declared
	}
	return min(declared, int(math.Floor(max(essence, 0))))
}
