package shadowrun

import (
	"fmt"
	"strings"
)

// Ruleset defaults for the reference sprawl ruleset.
const (
	// Build budget
	DefaultBuildPoints        = 400
	DefaultAttributeBPCap     = 200
	DefaultNuyenBPCap         = 50
	DefaultPositiveQualityCap = 35
	DefaultNegativeQualityCap = 35

	// Ceilings
	DefaultSkillMax        = 6
	DefaultMaxAvailability = 12
	SpeciesMaxEssence      = 6
	ContactRatingMin       = 1
	ContactRatingMax       = 6

	// Condition monitors
	ConditionMonitorBase    = 8
	WoundBoxesPerModifier   = 3
	DefaultMaxInitiativeDie = 5

	// Movement, in meters per agility point
	DefaultWalkMultiplier = 2
	DefaultRunMultiplier  = 4

	// Secondary initiatives
	AstralInitiativeDice = 2
	DefaultHotSimDice    = 3

	// DefaultDrainAttribute pairs with Willpower for drain when the declared
	// tradition is not one the ruleset names.
	DefaultDrainAttribute = AttrLogic
)

// LimitKind identifies an inherent limit.
type LimitKind string

const (
	LimitPhysical LimitKind = "physical"
	LimitMental   LimitKind = "mental"
	LimitSocial   LimitKind = "social"
)

// LimitTriple names the primary, secondary and tertiary attribute of a limit.
//
// A tertiary of "ESS" is read as floor(essence).
type LimitTriple struct {
	Primary   AttributeCode
	Secondary AttributeCode
	Tertiary  AttributeCode
}

// EssenceCode stands in for essence in limit triples.
const EssenceCode AttributeCode = "ESS"

// StandardTest is a named test computed even when the character lacks the skill.
type StandardTest struct {
	Name         string
	Skill        string
	Attribute    AttributeCode
	Category     SkillCategory
	AllowDefault bool
}

// Ruleset carries every tunable constant the engine reads.
//
// A Ruleset is a value; callers substitute alternate rulesets by passing a
// different value rather than patching package state.
type Ruleset struct {
	BuildPoints        int
	AttributeBPCap     int
	NuyenBPCap         int
	PositiveQualityCap int
	NegativeQualityCap int

	SkillMax          int
	MaxAvailability   int
	MaxEssence        float64
	MaxInitiativeDice int
	HotSimDice        int

	WalkMultiplier int
	RunMultiplier  int

	LimitTriples  map[LimitKind]LimitTriple
	StandardTests []StandardTest

	// TraditionDrain maps lower-cased tradition names to the attribute paired
	// with Willpower for drain resistance.
	TraditionDrain        map[string]AttributeCode
	DefaultDrainAttribute AttributeCode

	// GradeEssence maps lower-cased augmentation grades to essence multipliers.
	GradeEssence map[string]float64

	// MagicUnlock and ResonanceUnlock name the features a quality must unlock
	// before a magic or resonance section is legal.
	MagicUnlock     string
	ResonanceUnlock string

	// Locale selects the message catalog used for issue messages.
	Locale string
}

// DefaultRuleset returns the reference ruleset.
func DefaultRuleset() Ruleset {
	return Ruleset{
		BuildPoints:        DefaultBuildPoints,
		AttributeBPCap:     DefaultAttributeBPCap,
		NuyenBPCap:         DefaultNuyenBPCap,
		PositiveQualityCap: DefaultPositiveQualityCap,
		NegativeQualityCap: DefaultNegativeQualityCap,
		SkillMax:           DefaultSkillMax,
		MaxAvailability:    DefaultMaxAvailability,
		MaxEssence:         SpeciesMaxEssence,
		MaxInitiativeDice:  DefaultMaxInitiativeDie,
		HotSimDice:         DefaultHotSimDice,
		WalkMultiplier:     DefaultWalkMultiplier,
		RunMultiplier:      DefaultRunMultiplier,
		LimitTriples: map[LimitKind]LimitTriple{
			LimitPhysical: {Primary: AttrStrength, Secondary: AttrBody, Tertiary: AttrReaction},
			LimitMental:   {Primary: AttrLogic, Secondary: AttrIntuition, Tertiary: AttrWillpower},
			LimitSocial:   {Primary: AttrCharisma, Secondary: AttrWillpower, Tertiary: EssenceCode},
		},
		StandardTests: []StandardTest{
			{Name: "Perception", Skill: "Perception", Attribute: AttrIntuition, Category: SkillCategoryPhysical, AllowDefault: true},
			{Name: "Dodge", Skill: "Dodge", Attribute: AttrReaction, Category: SkillCategoryCombat, AllowDefault: true},
			{Name: "Unarmed Combat", Skill: "Unarmed Combat", Attribute: AttrAgility, Category: SkillCategoryCombat, AllowDefault: true},
			{Name: "Etiquette", Skill: "Etiquette", Attribute: AttrCharisma, Category: SkillCategorySocial, AllowDefault: true},
			{Name: "Hacking", Skill: "Hacking", Attribute: AttrLogic, Category: SkillCategoryTechnical, AllowDefault: true},
		},
		TraditionDrain: map[string]AttributeCode{
			"hermetic": AttrLogic,
			"shamanic": AttrCharisma,
			"chaos":    AttrIntuition,
			"wuxing":   AttrLogic,
		},
		DefaultDrainAttribute: DefaultDrainAttribute,
		GradeEssence: map[string]float64{
			"":         1,
			"standard": 1,
			"used":     1.25,
			"alpha":    0.8,
			"beta":     0.7,
			"delta":    0.5,
		},
		MagicUnlock:     "magic",
		ResonanceUnlock: "resonance",
		Locale:          "en-US",
	}
}

// Validate reports a malformed ruleset.
func (r Ruleset) Validate() error {
	if r.BuildPoints <= 0 {
		return fmt.Errorf("build points must be positive, got %d", r.BuildPoints)
	}
	if r.SkillMax <= 0 {
		return fmt.Errorf("skill max must be positive, got %d", r.SkillMax)
	}
	if r.MaxEssence <= 0 {
		return fmt.Errorf("max essence must be positive, got %v", r.MaxEssence)
	}
	if r.MaxInitiativeDice < 1 {
		return fmt.Errorf("max initiative dice must be at least 1, got %d", r.MaxInitiativeDice)
	}
	for _, kind := range []LimitKind{LimitPhysical, LimitMental, LimitSocial} {
		if _, ok := r.LimitTriples[kind]; !ok {
			return fmt.Errorf("limit %s is not defined", kind)
		}
	}
	if strings.TrimSpace(string(r.DefaultDrainAttribute)) == "" {
		return fmt.Errorf("default drain attribute is required")
	}
	return nil
}

// DrainAttribute returns the attribute paired with Willpower for a tradition.
func (r Ruleset) DrainAttribute(tradition string) AttributeCode {
	if code, ok := r.TraditionDrain[strings.ToLower(strings.TrimSpace(tradition))]; ok {
		return code
	}
	return r.DefaultDrainAttribute
}

// GradeMultiplier returns the essence multiplier for a grade and whether the
// grade is known.
func (r Ruleset) GradeMultiplier(grade string) (float64, bool) {
	factor, ok := r.GradeEssence[strings.ToLower(strings.TrimSpace(grade))]
	if !ok {
		return 1, false
	}
	return factor, true
}
