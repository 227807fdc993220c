package shadowrun

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
)

var (
	// ErrUnknownEffectKind indicates an effect tag outside the closed variant set.
	ErrUnknownEffectKind = apperrors.New(apperrors.CodeContentUnknownEffect, "unknown effect kind")
	// ErrInvalidEffect indicates an effect record is missing a required field.
	ErrInvalidEffect = apperrors.New(apperrors.CodeContentInvalidEffect, "invalid effect")
)

// effectRecord is the flat wire shape of every effect variant.
type effectRecord struct {
	Kind         EffectKind    `json:"kind"`
	Attribute    AttributeCode `json:"attribute,omitempty"`
	Skill        string        `json:"skill,omitempty"`
	Group        string        `json:"group,omitempty"`
	Category     SkillCategory `json:"category,omitempty"`
	Stat         Stat          `json:"stat,omitempty"`
	Target       string        `json:"target,omitempty"`
	Feature      string        `json:"feature,omitempty"`
	Flag         Flag          `json:"flag,omitempty"`
	Value        int           `json:"value,omitempty"`
	CeilingDelta int           `json:"ceiling_delta,omitempty"`
	Factor       float64       `json:"factor,omitempty"`
}

var knownStats = map[Stat]struct{}{
	StatInitiative: {}, StatInitiativePasses: {}, StatPhysicalCM: {}, StatStunCM: {},
	StatComposure: {}, StatJudgeIntentions: {}, StatDamageResistance: {},
	StatDrainResistance: {}, StatNotoriety: {}, StatReach: {}, StatUnarmedDamage: {},
	StatRestrictedItemCount: {}, StatFreePositiveQualityPoints: {},
	StatFreeNegativeQualityPoints: {}, StatNuyenBPCeiling: {},
}

var knownFlags = map[Flag]struct{}{
	FlagUneducated: {}, FlagUncouth: {}, FlagInfirm: {}, FlagSensitiveSystem: {},
	FlagBlackMarketDiscount: {},
}

// DecodeEffect parses one tagged effect record.
func DecodeEffect(data []byte) (Effect, error) {
	var rec effectRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidEffect, "decode effect", err)
	}
	return rec.toEffect()
}

// DecodeEffects parses a JSON array of tagged effect records.
func DecodeEffects(data []byte) ([]Effect, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidEffect, "decode effects", err)
	}
	effects := make([]Effect, 0, len(raws))
	for i, raw := range raws {
		effect, err := DecodeEffect(raw)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		effects = append(effects, effect)
	}
	return effects, nil
}

// EncodeEffects renders effects in the tagged wire shape.
func EncodeEffects(effects []Effect) ([]byte, error) {
	records := make([]effectRecord, 0, len(effects))
	for i, effect := range effects {
		if effect == nil {
			return nil, fmt.Errorf("effect %d: %w", i, ErrInvalidEffect)
		}
		rec, err := recordOf(effect)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

func (r effectRecord) toEffect() (Effect, error) {
	switch r.Kind {
	case EffectAttributeBonus:
		if r.Attribute == "" {
			return nil, invalidEffect(r.Kind, "attribute")
		}
		return AttributeBonus{Attribute: r.Attribute, Value: r.Value}, nil
	case EffectAttributeFloor:
		if r.Attribute == "" {
			return nil, invalidEffect(r.Kind, "attribute")
		}
		return AttributeFloor{Attribute: r.Attribute, Value: r.Value}, nil
	case EffectAttributeCeiling:
		if r.Attribute == "" {
			return nil, invalidEffect(r.Kind, "attribute")
		}
		return AttributeCeiling{Attribute: r.Attribute, Value: r.Value}, nil
	case EffectSelectAttribute:
		return SelectAttribute{Value: r.Value, CeilingDelta: r.CeilingDelta}, nil
	case EffectSkillBonus:
		if r.Skill == "" {
			return nil, invalidEffect(r.Kind, "skill")
		}
		return SkillBonus{Skill: r.Skill, Value: r.Value}, nil
	case EffectSkillCeiling:
		if r.Skill == "" {
			return nil, invalidEffect(r.Kind, "skill")
		}
		return SkillCeiling{Skill: r.Skill, Value: r.Value}, nil
	case EffectSkillCeilingDelta:
		if r.Skill == "" {
			return nil, invalidEffect(r.Kind, "skill")
		}
		return SkillCeilingDelta{Skill: r.Skill, Value: r.Value}, nil
	case EffectSelectSkill:
		return SelectSkill{Value: r.Value, CeilingDelta: r.CeilingDelta}, nil
	case EffectSkillGroupBonus:
		if r.Group == "" {
			return nil, invalidEffect(r.Kind, "group")
		}
		return SkillGroupBonus{Group: r.Group, Value: r.Value}, nil
	case EffectSkillCategoryBonus:
		if r.Category == "" {
			return nil, invalidEffect(r.Kind, "category")
		}
		return SkillCategoryBonus{Category: r.Category, Value: r.Value}, nil
	case EffectStatBonus:
		if _, ok := knownStats[r.Stat]; !ok {
			return nil, invalidEffect(r.Kind, "stat")
		}
		return StatBonus{Stat: r.Stat, Value: r.Value}, nil
	case EffectPercent:
		switch target := PercentTarget(r.Target); target {
		case PercentLifestyleCost, PercentMovement, PercentSwim:
			return PercentModifier{Target: target, Percent: r.Value}, nil
		default:
			return nil, invalidEffect(r.Kind, "target")
		}
	case EffectEssenceMultiplier:
		target := MultiplierTarget(r.Target)
		if target != MultiplierCyberware && target != MultiplierBioware {
			return nil, invalidEffect(r.Kind, "target")
		}
		if r.Factor <= 0 {
			return nil, invalidEffect(r.Kind, "factor")
		}
		return EssenceMultiplier{Target: target, Factor: r.Factor}, nil
	case EffectUnlock:
		if r.Feature == "" {
			return nil, invalidEffect(r.Kind, "feature")
		}
		return Unlock{Feature: r.Feature}, nil
	case EffectFlySpeed:
		return FlySpeed{Value: r.Value}, nil
	case EffectSkillwire:
		return Skillwire{Rating: r.Value}, nil
	case EffectFlag:
		if _, ok := knownFlags[r.Flag]; !ok {
			return nil, invalidEffect(r.Kind, "flag")
		}
		return FlagEffect{Flag: r.Flag}, nil
	default:
		return nil, apperrors.WithMetadata(
			apperrors.CodeContentUnknownEffect,
			fmt.Sprintf("unknown effect kind %q", r.Kind),
			map[string]string{"Kind": string(r.Kind)},
		)
	}
}

func recordOf(effect Effect) (effectRecord, error) {
	rec := effectRecord{Kind: effect.Kind()}
	switch e := effect.(type) {
	case AttributeBonus:
		rec.Attribute, rec.Value = e.Attribute, e.Value
	case AttributeFloor:
		rec.Attribute, rec.Value = e.Attribute, e.Value
	case AttributeCeiling:
		rec.Attribute, rec.Value = e.Attribute, e.Value
	case SelectAttribute:
		rec.Value, rec.CeilingDelta = e.Value, e.CeilingDelta
	case SkillBonus:
		rec.Skill, rec.Value = e.Skill, e.Value
	case SkillCeiling:
		rec.Skill, rec.Value = e.Skill, e.Value
	case SkillCeilingDelta:
		rec.Skill, rec.Value = e.Skill, e.Value
	case SelectSkill:
		rec.Value, rec.CeilingDelta = e.Value, e.CeilingDelta
	case SkillGroupBonus:
		rec.Group, rec.Value = e.Group, e.Value
	case SkillCategoryBonus:
		rec.Category, rec.Value = e.Category, e.Value
	case StatBonus:
		rec.Stat, rec.Value = e.Stat, e.Value
	case PercentModifier:
		rec.Target, rec.Value = string(e.Target), e.Percent
	case EssenceMultiplier:
		rec.Target, rec.Factor = string(e.Target), e.Factor
	case Unlock:
		rec.Feature = e.Feature
	case FlySpeed:
		rec.Value = e.Value
	case Skillwire:
		rec.Value = e.Rating
	case FlagEffect:
		rec.Flag = e.Flag
	default:
		return effectRecord{}, ErrUnknownEffectKind
	}
	return rec, nil
}

func invalidEffect(kind EffectKind, field string) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeContentInvalidEffect,
		fmt.Sprintf("effect %s: %s is required", kind, field),
		map[string]string{"Kind": string(kind), "Field": field},
		ErrInvalidEffect,
	)
}
