package shadowrun

import "math"

// DerivedStats is every secondary value a sheet displays, recomputed wholesale
// on each call.
type DerivedStats struct {
	PhysicalCM    int `json:"physical_cm"`
	StunCM        int `json:"stun_cm"`
	Overflow      int `json:"overflow"`
	WoundModifier int `json:"wound_modifier"`

	Initiative           int `json:"initiative"`
	InitiativeDice       int `json:"initiative_dice"`
	AstralInitiative     int `json:"astral_initiative"`
	AstralInitiativeDice int `json:"astral_initiative_dice"`
	MatrixInitiative     int `json:"matrix_initiative"`
	MatrixInitiativeDice int `json:"matrix_initiative_dice"`

	PhysicalLimit int `json:"physical_limit"`
	MentalLimit   int `json:"mental_limit"`
	SocialLimit   int `json:"social_limit"`

	Composure       int `json:"composure"`
	JudgeIntentions int `json:"judge_intentions"`
	Memory          int `json:"memory"`
	LiftCarry       int `json:"lift_carry"`

	Walk int `json:"walk"`
	Run  int `json:"run"`
	Swim int `json:"swim"`
	Fly  int `json:"fly"`

	Ballistic        int `json:"ballistic"`
	Impact           int `json:"impact"`
	DamageResistance int `json:"damage_resistance"`

	DrainResistance  int `json:"drain_resistance"`
	FadingResistance int `json:"fading_resistance"`

	Reach         int     `json:"reach"`
	UnarmedDamage int     `json:"unarmed_damage"`
	EssenceCost   float64 `json:"essence_cost"`

	DicePools []DicePoolResult `json:"dice_pools"`
}

// CalculateAll derives every secondary statistic from the snapshot and the
// aggregated modifiers. Absent sections yield zero values; it never fails.
func CalculateAll(c Character, mods Modifiers, rs Ruleset) DerivedStats {
	body := EffectiveAttribute(c, mods, AttrBody)
	agility := EffectiveAttribute(c, mods, AttrAgility)
	strength := EffectiveAttribute(c, mods, AttrStrength)
	charisma := EffectiveAttribute(c, mods, AttrCharisma)
	intuition := EffectiveAttribute(c, mods, AttrIntuition)
	logic := EffectiveAttribute(c, mods, AttrLogic)
	willpower := EffectiveAttribute(c, mods, AttrWillpower)

	wound := WoundModifier(c.Condition)
	ballistic := ArmorTotal(c.Armor, ArmorBallistic)

	stats := DerivedStats{
		PhysicalCM:    ConditionMonitor(body) + mods.Stat(StatPhysicalCM),
		StunCM:        ConditionMonitor(willpower) + mods.Stat(StatStunCM),
		Overflow:      body,
		WoundModifier: wound,

		Initiative:     Initiative(c, mods),
		InitiativeDice: InitiativeDice(c, mods, rs),

		PhysicalLimit: Limit(c, mods, rs.LimitTriples[LimitPhysical]),
		MentalLimit:   Limit(c, mods, rs.LimitTriples[LimitMental]),
		SocialLimit:   Limit(c, mods, rs.LimitTriples[LimitSocial]),

		Composure:       charisma + willpower + mods.Stat(StatComposure),
		JudgeIntentions: charisma + intuition + mods.Stat(StatJudgeIntentions),
		Memory:          logic + willpower,
		LiftCarry:       body + strength,

		Fly: mods.FlySpeed,

		Ballistic:        ballistic,
		Impact:           ArmorTotal(c.Armor, ArmorImpact),
		DamageResistance: body + ballistic + mods.Stat(StatDamageResistance),

		DrainResistance:  DrainResistance(c, mods, rs),
		FadingResistance: FadingResistance(c, mods),

		Reach:         mods.Stat(StatReach),
		UnarmedDamage: ceilDiv(strength, 2) + mods.Stat(StatUnarmedDamage),
		EssenceCost:   EssenceCost(c, mods, rs),

		DicePools: SkillPools(c, mods, rs, wound),
	}
	stats.AstralInitiative, stats.AstralInitiativeDice = AstralInitiative(c, mods)
	stats.MatrixInitiative, stats.MatrixInitiativeDice = MatrixInitiative(c, mods, rs)

	walk := agility * rs.WalkMultiplier
	stats.Walk = scalePercent(walk, mods.Percent(PercentMovement))
	stats.Run = scalePercent(agility*rs.RunMultiplier, mods.Percent(PercentMovement))
	stats.Swim = scalePercent(walk/2, mods.Percent(PercentSwim))
	return stats
}

// ConditionMonitor returns the box count for a monitor driven by attribute.
func ConditionMonitor(attribute int) int {
	return ceilDiv(max(0, attribute), 2) + ConditionMonitorBase
}

// Limit returns ceil((primary*2 + secondary + tertiary) / 3) for a triple.
func Limit(c Character, mods Modifiers, triple LimitTriple) int {
	total := limitTerm(c, mods, triple.Primary)*2 +
		limitTerm(c, mods, triple.Secondary) +
		limitTerm(c, mods, triple.Tertiary)
	return ceilDiv(total, 3)
}

func limitTerm(c Character, mods Modifiers, code AttributeCode) int {
	switch code {
	case "":
		return 0
	case EssenceCode:
		return int(math.Floor(max(0, c.Essence)))
	default:
		return EffectiveAttribute(c, mods, code)
	}
}

// scalePercent applies a summed percentage, rounding down and never below zero.
func scalePercent(value, percent int) int {
	return max(0, value*(100+percent)/100)
}

// ceilDiv divides non-negative n by d rounding up.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
