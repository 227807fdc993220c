package shadowrun

import "math"

// DrainResistance returns Willpower plus the tradition's drain attribute plus
// any drain_resistance bonus. Mundane characters resist no drain.
func DrainResistance(c Character, mods Modifiers, rs Ruleset) int {
	if c.Magic == nil {
		return 0
	}
	return EffectiveAttribute(c, mods, AttrWillpower) +
		EffectiveAttribute(c, mods, rs.DrainAttribute(c.Magic.Tradition)) +
		mods.Stat(StatDrainResistance)
}

// FadingResistance returns Willpower plus Resonance for emerged characters.
func FadingResistance(c Character, mods Modifiers) int {
	if c.Resonance == nil {
		return 0
	}
	return EffectiveAttribute(c, mods, AttrWillpower) + EffectiveAttribute(c, mods, AttrResonance)
}

// AstralInitiative returns Intuition x2 for awakened characters.
func AstralInitiative(c Character, mods Modifiers) (score, dice int) {
	if c.Magic == nil {
		return 0, 0
	}
	return EffectiveAttribute(c, mods, AttrIntuition) * 2, AstralInitiativeDice
}

// MatrixInitiative returns the hot-sim initiative of an emerged character.
func MatrixInitiative(c Character, mods Modifiers, rs Ruleset) (score, dice int) {
	if c.Resonance == nil {
		return 0, 0
	}
	return EffectiveAttribute(c, mods, AttrIntuition) * 2, rs.HotSimDice
}

// PowerPointsSpent sums adept power costs.
func PowerPointsSpent(section *MagicSection) float64 {
	if section == nil {
		return 0
	}
	total := 0.0
	for _, power := range section.Powers {
		total += power.Cost
	}
	return roundEssence(total)
}

// EssenceCost totals the essence spent on augmentations after grade and
// quality multipliers. Unknown grades cost the listed essence.
func EssenceCost(c Character, mods Modifiers, rs Ruleset) float64 {
	total := 0.0
	for _, aug := range c.Augmentations {
		grade, _ := rs.GradeMultiplier(aug.Grade)
		factor := 1.0
		switch aug.Kind {
		case Cyberware:
			factor = mods.CyberwareEssenceMultiplier
		case Bioware:
			factor = mods.BiowareEssenceMultiplier
		}
		total += max(0, aug.Essence) * grade * factor
	}
	return roundEssence(total)
}

// roundEssence rounds to two decimals, the precision essence is tracked in.
func roundEssence(value float64) float64 {
	return math.Round(value*100) / 100
}
