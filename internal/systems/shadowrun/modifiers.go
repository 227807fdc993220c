package shadowrun

import (
	"maps"
	"slices"
)

// Modifiers is the folded result of every active quality's effects.
//
// A Modifiers value is freshly allocated by Aggregate and never shared with
// the accumulator that built it.
type Modifiers struct {
	AttributeBonus        map[AttributeCode]int `json:"attribute_bonus"`
	AttributeFloor        map[AttributeCode]int `json:"attribute_floor"`
	AttributeCeiling      map[AttributeCode]int `json:"attribute_ceiling"`
	AttributeCeilingDelta map[AttributeCode]int `json:"attribute_ceiling_delta"`

	SkillBonus         map[string]int        `json:"skill_bonus"`
	SkillCeiling       map[string]int        `json:"skill_ceiling"`
	SkillCeilingDelta  map[string]int        `json:"skill_ceiling_delta"`
	SkillGroupBonus    map[string]int        `json:"skill_group_bonus"`
	SkillCategoryBonus map[SkillCategory]int `json:"skill_category_bonus"`

	Stats    map[Stat]int          `json:"stats"`
	Percents map[PercentTarget]int `json:"percents"`

	CyberwareEssenceMultiplier float64 `json:"cyberware_essence_multiplier"`
	BiowareEssenceMultiplier   float64 `json:"bioware_essence_multiplier"`

	Unlocks         []string `json:"unlocks"`
	FlySpeed        int      `json:"fly_speed"`
	SkillwireRating int      `json:"skillwire_rating"`
	Flags           []Flag   `json:"flags"`
}

// NewModifiers returns the identity value: zero sums, unit multipliers, empty
// sets and cleared flags.
func NewModifiers() Modifiers {
	return newAccumulator().freeze()
}

// Stat returns the summed bonus for a scalar stat.
func (m Modifiers) Stat(stat Stat) int {
	return m.Stats[stat]
}

// Percent returns the summed percentage for a target.
func (m Modifiers) Percent(target PercentTarget) int {
	return m.Percents[target]
}

// HasFlag reports whether any quality set the flag.
func (m Modifiers) HasFlag(flag Flag) bool {
	_, found := slices.BinarySearch(m.Flags, flag)
	return found
}

// HasUnlock reports whether any quality unlocked the feature.
func (m Modifiers) HasUnlock(feature string) bool {
	_, found := slices.BinarySearch(m.Unlocks, feature)
	return found
}

// SkillCeilingFor returns the maximum rating for a skill: the default raised
// by every additive delta, then capped by the tightest override.
func (m Modifiers) SkillCeilingFor(skill string, defaultMax int) int {
	ceiling := defaultMax + m.SkillCeilingDelta[skill]
	if limit, ok := m.SkillCeiling[skill]; ok && limit < ceiling {
		ceiling = limit
	}
	return ceiling
}

// SkillDiceBonus returns every aggregated bonus that applies to a skill.
func (m Modifiers) SkillDiceBonus(skill Skill) int {
	bonus := m.SkillBonus[skill.Name]
	if skill.Group != "" {
		bonus += m.SkillGroupBonus[skill.Group]
	}
	if skill.Category != "" {
		bonus += m.SkillCategoryBonus[skill.Category]
	}
	return bonus
}

// accumulator is the scratch structure Aggregate folds effects into.
type accumulator struct {
	attrBonus        map[AttributeCode]int
	attrFloor        map[AttributeCode]int
	attrCeiling      map[AttributeCode]int
	attrCeilingDelta map[AttributeCode]int

	skillBonus        map[string]int
	skillCeiling      map[string]int
	skillCeilingDelta map[string]int
	groupBonus        map[string]int
	categoryBonus     map[SkillCategory]int

	stats    map[Stat]int
	percents map[PercentTarget]int

	multipliers map[MultiplierTarget][]float64

	unlocks   map[string]struct{}
	flySpeed  int
	skillwire int
	flags     map[Flag]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		attrBonus:         map[AttributeCode]int{},
		attrFloor:         map[AttributeCode]int{},
		attrCeiling:       map[AttributeCode]int{},
		attrCeilingDelta:  map[AttributeCode]int{},
		skillBonus:        map[string]int{},
		skillCeiling:      map[string]int{},
		skillCeilingDelta: map[string]int{},
		groupBonus:        map[string]int{},
		categoryBonus:     map[SkillCategory]int{},
		stats:             map[Stat]int{},
		percents:          map[PercentTarget]int{},
		multipliers:       map[MultiplierTarget][]float64{},
		unlocks:           map[string]struct{}{},
		flags:             map[Flag]struct{}{},
	}
}

// freeze copies the accumulator into an independent Modifiers value.
func (a *accumulator) freeze() Modifiers {
	return Modifiers{
		AttributeBonus:             maps.Clone(a.attrBonus),
		AttributeFloor:             maps.Clone(a.attrFloor),
		AttributeCeiling:           maps.Clone(a.attrCeiling),
		AttributeCeilingDelta:      maps.Clone(a.attrCeilingDelta),
		SkillBonus:                 maps.Clone(a.skillBonus),
		SkillCeiling:               maps.Clone(a.skillCeiling),
		SkillCeilingDelta:          maps.Clone(a.skillCeilingDelta),
		SkillGroupBonus:            maps.Clone(a.groupBonus),
		SkillCategoryBonus:         maps.Clone(a.categoryBonus),
		Stats:                      maps.Clone(a.stats),
		Percents:                   maps.Clone(a.percents),
		CyberwareEssenceMultiplier: product(a.multipliers[MultiplierCyberware]),
		BiowareEssenceMultiplier:   product(a.multipliers[MultiplierBioware]),
		Unlocks:                    sortedKeys(a.unlocks),
		FlySpeed:                   a.flySpeed,
		SkillwireRating:            a.skillwire,
		Flags:                      sortedKeys(a.flags),
	}
}

// product multiplies factors in ascending order so the result does not depend
// on the order qualities were selected in.
func product(factors []float64) float64 {
	sorted := slices.Clone(factors)
	slices.Sort(sorted)
	result := 1.0
	for _, factor := range sorted {
		result *= factor
	}
	return result
}

func sortedKeys[K ~string](in map[K]struct{}) []K {
	out := make([]K, 0, len(in))
	for key := range in {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}
