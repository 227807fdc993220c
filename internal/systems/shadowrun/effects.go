package shadowrun

import "strings"

// EffectKind is the tag of a bonus effect variant.
type EffectKind string

const (
	EffectAttributeBonus     EffectKind = "attribute_bonus"
	EffectAttributeFloor     EffectKind = "attribute_floor"
	EffectAttributeCeiling   EffectKind = "attribute_ceiling"
	EffectSelectAttribute    EffectKind = "select_attribute"
	EffectSkillBonus         EffectKind = "skill_bonus"
	EffectSkillCeiling       EffectKind = "skill_ceiling"
	EffectSkillCeilingDelta  EffectKind = "skill_ceiling_delta"
	EffectSelectSkill        EffectKind = "select_skill"
	EffectSkillGroupBonus    EffectKind = "skill_group_bonus"
	EffectSkillCategoryBonus EffectKind = "skill_category_bonus"
	EffectStatBonus          EffectKind = "stat_bonus"
	EffectPercent            EffectKind = "percent"
	EffectEssenceMultiplier  EffectKind = "essence_multiplier"
	EffectUnlock             EffectKind = "unlock"
	EffectFlySpeed           EffectKind = "fly_speed"
	EffectSkillwire          EffectKind = "skillwire"
	EffectFlag               EffectKind = "flag"
)

// Policy is how colliding effects of one kind combine.
type Policy int

const (
	PolicyAdditive Policy = iota
	PolicyMax
	PolicyMin
	PolicyProduct
	PolicyUnion
	PolicyOr
)

func (p Policy) String() string {
	switch p {
	case PolicyAdditive:
		return "additive"
	case PolicyMax:
		return "max"
	case PolicyMin:
		return "min"
	case PolicyProduct:
		return "product"
	case PolicyUnion:
		return "union"
	case PolicyOr:
		return "or"
	default:
		return "unknown"
	}
}

// Stat names a scalar bonus target.
type Stat string

const (
	StatInitiative                Stat = "initiative"
	StatInitiativePasses          Stat = "initiative_passes"
	StatPhysicalCM                Stat = "physical_cm"
	StatStunCM                    Stat = "stun_cm"
	StatComposure                 Stat = "composure"
	StatJudgeIntentions           Stat = "judge_intentions"
	StatDamageResistance          Stat = "damage_resistance"
	StatDrainResistance           Stat = "drain_resistance"
	StatNotoriety                 Stat = "notoriety"
	StatReach                     Stat = "reach"
	StatUnarmedDamage             Stat = "unarmed_damage"
	StatRestrictedItemCount       Stat = "restricted_item_count"
	StatFreePositiveQualityPoints Stat = "free_positive_quality_points"
	StatFreeNegativeQualityPoints Stat = "free_negative_quality_points"
	StatNuyenBPCeiling            Stat = "nuyen_bp_ceiling"
)

// PercentTarget names a percentage modifier target.
type PercentTarget string

const (
	PercentLifestyleCost PercentTarget = "lifestyle_cost"
	PercentMovement      PercentTarget = "movement"
	PercentSwim          PercentTarget = "swim"
)

// MultiplierTarget names an essence-cost multiplier target.
type MultiplierTarget string

const (
	MultiplierCyberware MultiplierTarget = "cyberware"
	MultiplierBioware   MultiplierTarget = "bioware"
)

// Flag names a sticky boolean restriction or perk.
type Flag string

const (
	FlagUneducated          Flag = "uneducated"
	FlagUncouth             Flag = "uncouth"
	FlagInfirm              Flag = "infirm"
	FlagSensitiveSystem     Flag = "sensitive_system"
	FlagBlackMarketDiscount Flag = "black_market_discount"
)

// Effect is one bonus declared by a quality definition.
//
// The variant set is closed: every implementation lives in this file and
// declares its own combination policy.
type Effect interface {
	Kind() EffectKind
	Policy() Policy
	apply(acc *accumulator, sel QualitySelection)
}

// AttributeBonus adds a flat bonus to an attribute.
type AttributeBonus struct {
	Attribute AttributeCode
	Value     int
}

func (AttributeBonus) Kind() EffectKind { return EffectAttributeBonus }
func (AttributeBonus) Policy() Policy   { return PolicyAdditive }
func (e AttributeBonus) apply(acc *accumulator, _ QualitySelection) {
	acc.attrBonus[e.Attribute] += e.Value
}

// AttributeFloor raises an attribute minimum; the highest floor wins.
type AttributeFloor struct {
	Attribute AttributeCode
	Value     int
}

func (AttributeFloor) Kind() EffectKind { return EffectAttributeFloor }
func (AttributeFloor) Policy() Policy   { return PolicyMax }
func (e AttributeFloor) apply(acc *accumulator, _ QualitySelection) {
	keepMax(acc.attrFloor, e.Attribute, e.Value)
}

// AttributeCeiling caps an attribute maximum; the lowest ceiling wins.
type AttributeCeiling struct {
	Attribute AttributeCode
	Value     int
}

func (AttributeCeiling) Kind() EffectKind { return EffectAttributeCeiling }
func (AttributeCeiling) Policy() Policy   { return PolicyMin }
func (e AttributeCeiling) apply(acc *accumulator, _ QualitySelection) {
	keepMin(acc.attrCeiling, e.Attribute, e.Value)
}

// SelectAttribute grants a bonus and a ceiling delta to the attribute chosen
// when the quality was taken.
type SelectAttribute struct {
	Value        int
	CeilingDelta int
}

func (SelectAttribute) Kind() EffectKind { return EffectSelectAttribute }
func (SelectAttribute) Policy() Policy   { return PolicyAdditive }
func (e SelectAttribute) apply(acc *accumulator, sel QualitySelection) {
	code := AttributeCode(strings.ToUpper(strings.TrimSpace(sel.Selected)))
	if code == "" {
		return
	}
	if e.Value != 0 {
		acc.attrBonus[code] += e.Value
	}
	if e.CeilingDelta != 0 {
		acc.attrCeilingDelta[code] += e.CeilingDelta
	}
}

// SkillBonus adds dice to one skill.
type SkillBonus struct {
	Skill string
	Value int
}

func (SkillBonus) Kind() EffectKind { return EffectSkillBonus }
func (SkillBonus) Policy() Policy   { return PolicyAdditive }
func (e SkillBonus) apply(acc *accumulator, _ QualitySelection) {
	acc.skillBonus[e.Skill] += e.Value
}

// SkillCeiling is a hard cap on a skill rating.
type SkillCeiling struct {
	Skill string
	Value int
}

func (SkillCeiling) Kind() EffectKind { return EffectSkillCeiling }
func (SkillCeiling) Policy() Policy   { return PolicyMin }
func (e SkillCeiling) apply(acc *accumulator, _ QualitySelection) {
	keepMin(acc.skillCeiling, e.Skill, e.Value)
}

// SkillCeilingDelta raises a skill's maximum rating.
type SkillCeilingDelta struct {
	Skill string
	Value int
}

func (SkillCeilingDelta) Kind() EffectKind { return EffectSkillCeilingDelta }
func (SkillCeilingDelta) Policy() Policy   { return PolicyAdditive }
func (e SkillCeilingDelta) apply(acc *accumulator, _ QualitySelection) {
	acc.skillCeilingDelta[e.Skill] += e.Value
}

// SelectSkill grants a bonus and a ceiling delta to the skill chosen when the
// quality was taken.
type SelectSkill struct {
	Value        int
	CeilingDelta int
}

func (SelectSkill) Kind() EffectKind { return EffectSelectSkill }
func (SelectSkill) Policy() Policy   { return PolicyAdditive }
func (e SelectSkill) apply(acc *accumulator, sel QualitySelection) {
	skill := strings.TrimSpace(sel.Selected)
	if skill == "" {
		return
	}
	if e.Value != 0 {
		acc.skillBonus[skill] += e.Value
	}
	if e.CeilingDelta != 0 {
		acc.skillCeilingDelta[skill] += e.CeilingDelta
	}
}

// SkillGroupBonus adds dice to every skill of a group.
type SkillGroupBonus struct {
	Group string
	Value int
}

func (SkillGroupBonus) Kind() EffectKind { return EffectSkillGroupBonus }
func (SkillGroupBonus) Policy() Policy   { return PolicyAdditive }
func (e SkillGroupBonus) apply(acc *accumulator, _ QualitySelection) {
	acc.groupBonus[e.Group] += e.Value
}

// SkillCategoryBonus adds dice to every skill of a category.
type SkillCategoryBonus struct {
	Category SkillCategory
	Value    int
}

func (SkillCategoryBonus) Kind() EffectKind { return EffectSkillCategoryBonus }
func (SkillCategoryBonus) Policy() Policy   { return PolicyAdditive }
func (e SkillCategoryBonus) apply(acc *accumulator, _ QualitySelection) {
	acc.categoryBonus[e.Category] += e.Value
}

// StatBonus adds to a scalar stat.
type StatBonus struct {
	Stat  Stat
	Value int
}

func (StatBonus) Kind() EffectKind { return EffectStatBonus }
func (StatBonus) Policy() Policy   { return PolicyAdditive }
func (e StatBonus) apply(acc *accumulator, _ QualitySelection) {
	acc.stats[e.Stat] += e.Value
}

// PercentModifier adjusts a rate by a percentage; percentages sum.
type PercentModifier struct {
	Target  PercentTarget
	Percent int
}

func (PercentModifier) Kind() EffectKind { return EffectPercent }
func (PercentModifier) Policy() Policy   { return PolicyAdditive }
func (e PercentModifier) apply(acc *accumulator, _ QualitySelection) {
	acc.percents[e.Target] += e.Percent
}

// EssenceMultiplier scales the essence cost of cyberware or bioware.
type EssenceMultiplier struct {
	Target MultiplierTarget
	Factor float64
}

func (EssenceMultiplier) Kind() EffectKind { return EffectEssenceMultiplier }
func (EssenceMultiplier) Policy() Policy   { return PolicyProduct }
func (e EssenceMultiplier) apply(acc *accumulator, _ QualitySelection) {
	acc.multipliers[e.Target] = append(acc.multipliers[e.Target], e.Factor)
}

// Unlock enables a feature such as a magic or resonance tab.
type Unlock struct {
	Feature string
}

func (Unlock) Kind() EffectKind { return EffectUnlock }
func (Unlock) Policy() Policy   { return PolicyUnion }
func (e Unlock) apply(acc *accumulator, _ QualitySelection) {
	if e.Feature == "" {
		return
	}
	acc.unlocks[e.Feature] = struct{}{}
}

// FlySpeed grants a flight speed; the fastest wins.
type FlySpeed struct {
	Value int
}

func (FlySpeed) Kind() EffectKind { return EffectFlySpeed }
func (FlySpeed) Policy() Policy   { return PolicyMax }
func (e FlySpeed) apply(acc *accumulator, _ QualitySelection) {
	acc.flySpeed = max(acc.flySpeed, e.Value)
}

// Skillwire grants a skillwire rating; the highest wins.
type Skillwire struct {
	Rating int
}

func (Skillwire) Kind() EffectKind { return EffectSkillwire }
func (Skillwire) Policy() Policy   { return PolicyMax }
func (e Skillwire) apply(acc *accumulator, _ QualitySelection) {
	acc.skillwire = max(acc.skillwire, e.Rating)
}

// FlagEffect sets a sticky flag.
type FlagEffect struct {
	Flag Flag
}

func (FlagEffect) Kind() EffectKind { return EffectFlag }
func (FlagEffect) Policy() Policy   { return PolicyOr }
func (e FlagEffect) apply(acc *accumulator, _ QualitySelection) {
	if e.Flag == "" {
		return
	}
	acc.flags[e.Flag] = struct{}{}
}

// NeedsSelection reports whether an effect reads the quality's stored choice.
func NeedsSelection(e Effect) bool {
	switch e.Kind() {
	case EffectSelectAttribute, EffectSelectSkill:
		return true
	default:
		return false
	}
}

func keepMax[K comparable](m map[K]int, key K, value int) {
	if current, ok := m[key]; ok && current >= value {
		return
	}
	m[key] = value
}

func keepMin[K comparable](m map[K]int, key K, value int) {
	if current, ok := m[key]; ok && current <= value {
		return
	}
	m[key] = value
}
