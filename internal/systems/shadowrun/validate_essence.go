package shadowrun

import (
	"math"
	"strconv"
)

// essenceTolerance absorbs two-decimal rounding in recorded essence.
const essenceTolerance = 0.005

func checkEssence(v validation, issues *issueList) {
	c := v.c
	if c.Essence < 0 {
		issues.add(IssueEssenceNegative, formatEssence(c.Essence), map[string]string{
			"Essence": formatEssence(c.Essence),
		})
	}

	expected := roundEssence(v.rs.MaxEssence - EssenceCost(c, v.mods, v.rs))
	if math.Abs(c.Essence-expected) > essenceTolerance {
		issues.add(IssueEssenceMismatch, formatEssence(expected), map[string]string{
			"Essence":  formatEssence(c.Essence),
			"Expected": formatEssence(expected),
		})
	}

	if c.Magic != nil {
		checkEssenceCeiling(v, issues, AttrMagic, IssueMagicAboveEssence)
	}
	if c.Resonance != nil {
		checkEssenceCeiling(v, issues, AttrResonance, IssueResonanceAboveEssence)
	}
}

// checkEssenceCeiling reports a special attribute above the ceiling lost
// essence leaves it.
func checkEssenceCeiling(v validation, issues *issueList, code AttributeCode, issue IssueCode) {
	attr, ok := v.c.Attributes[code]
	if !ok || v.c.Essence >= v.rs.MaxEssence {
		return
	}
	declared := EffectiveLimits(attr.Limits, v.mods, code).Max
	ceiling := MagicCeiling(declared, v.c.Essence, v.rs.MaxEssence)
	if total := TotalOf(v.c, code); total > ceiling {
		issues.add(issue, itoa(ceiling), map[string]string{
			"Attribute": string(code),
			"Value":     itoa(total),
			"Ceiling":   itoa(ceiling),
			"Essence":   formatEssence(v.c.Essence),
		})
	}
}

func formatEssence(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
