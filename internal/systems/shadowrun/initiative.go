package shadowrun

// FamilyRatings returns, per augmentation family, the highest rating held
// across cyberware, bioware and adept powers. Items without a family are not
// initiative boosters and are ignored.
func FamilyRatings(c Character) map[string]int {
	out := map[string]int{}
	for _, aug := range c.Augmentations {
		if aug.Family == "" {
			continue
		}
		keepMax(out, aug.Family, aug.Rating)
	}
	if c.Magic != nil {
		for _, power := range c.Magic.Powers {
			if power.Family == "" {
				continue
			}
			keepMax(out, power.Family, power.Rating)
		}
	}
	return out
}

// InitiativeBonus is the highest single booster rating held. Boosters never
// stack, within a family or across families.
func InitiativeBonus(c Character) int {
	best := 0
	for _, rating := range FamilyRatings(c) {
		best = max(best, rating)
	}
	return best
}

// Initiative returns reaction + intuition + augmentation bonus + quality bonus.
func Initiative(c Character, mods Modifiers) int {
	return EffectiveAttribute(c, mods, AttrReaction) +
		EffectiveAttribute(c, mods, AttrIntuition) +
		InitiativeBonus(c) +
		mods.Stat(StatInitiative)
}

// InitiativeDice is one die plus the same best booster rating that
// InitiativeBonus uses; quality passes add on top and the result is capped by
// the ruleset.
func InitiativeDice(c Character, mods Modifiers, rs Ruleset) int {
	dice := 1 + InitiativeBonus(c)
	dice += mods.Stat(StatInitiativePasses)
	if rs.MaxInitiativeDice > 0 {
		dice = min(dice, rs.MaxInitiativeDice)
	}
	return max(1, dice)
}
