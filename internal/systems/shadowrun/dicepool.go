package shadowrun

// DicePoolResult is the computed pool for one named test.
type DicePoolResult struct {
	Name      string        `json:"name"`
	Skill     string        `json:"skill"`
	Attribute AttributeCode `json:"attribute"`
	Pool      int           `json:"pool"`
	Defaulted bool          `json:"defaulted"`
	// Available is false when the skill is absent and defaulting is not allowed.
	Available bool `json:"available"`
}

// WoundModifier returns the dice penalty for marked damage: -1 per full three
// boxes on each monitor.
func WoundModifier(cond Condition) int {
	return -(max(0, cond.PhysicalDamage)/WoundBoxesPerModifier + max(0, cond.StunDamage)/WoundBoxesPerModifier)
}

// DicePool computes the pool for a test.
//
// A held skill rolls rating + governing attribute + skill bonus + aggregated
// bonuses + wound modifier. An absent or unrated skill defaults to
// attribute - 1 + wound modifier when the test allows it and no flag forbids
// defaulting in the skill's category. Pools never drop below zero.
func DicePool(c Character, mods Modifiers, test StandardTest, wound int) DicePoolResult {
	result := DicePoolResult{
		Name:      test.Name,
		Skill:     test.Skill,
		Attribute: test.Attribute,
	}
	skill, ok := c.FindSkill(test.Skill)
	if ok && skill.Rating > 0 {
		if skill.Attribute != "" {
			result.Attribute = skill.Attribute
		}
		pool := skill.Rating +
			EffectiveAttribute(c, mods, result.Attribute) +
			skill.Bonus +
			mods.SkillDiceBonus(skill) +
			wound
		result.Pool = max(0, pool)
		result.Available = true
		return result
	}

	category := test.Category
	if ok && skill.Category != "" {
		category = skill.Category
	}
	if !test.AllowDefault || DefaultingBlocked(mods, category) {
		return result
	}
	result.Pool = max(0, EffectiveAttribute(c, mods, result.Attribute)-1+wound)
	result.Defaulted = true
	result.Available = true
	return result
}

// DefaultingBlocked reports whether a quality flag forbids defaulting on
// skills of the category.
func DefaultingBlocked(mods Modifiers, category SkillCategory) bool {
	switch category {
	case SkillCategoryTechnical, SkillCategoryAcademic:
		return mods.HasFlag(FlagUneducated)
	case SkillCategorySocial:
		return mods.HasFlag(FlagUncouth)
	case SkillCategoryPhysical:
		return mods.HasFlag(FlagInfirm)
	default:
		return false
	}
}

// SkillPools computes a pool for every held skill, in list order, followed by
// every standard test not already covered.
func SkillPools(c Character, mods Modifiers, rs Ruleset, wound int) []DicePoolResult {
	pools := make([]DicePoolResult, 0, len(c.Skills)+len(rs.StandardTests))
	covered := make(map[string]struct{}, len(c.Skills))
	for _, skill := range c.Skills {
		if _, dup := covered[skill.Name]; dup {
			continue
		}
		covered[skill.Name] = struct{}{}
		pools = append(pools, DicePool(c, mods, StandardTest{
			Name:         skill.Name,
			Skill:        skill.Name,
			Attribute:    skill.Attribute,
			Category:     skill.Category,
			AllowDefault: true,
		}, wound))
	}
	for _, test := range rs.StandardTests {
		if _, dup := covered[test.Skill]; dup {
			continue
		}
		covered[test.Skill] = struct{}{}
		pools = append(pools, DicePool(c, mods, test, wound))
	}
	return pools
}
