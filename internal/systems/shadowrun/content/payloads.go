package content

import (
	"encoding/json"

	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
)

// payload is the envelope every content file shares.
type payload[T any] struct {
	SystemID      string `json:"system_id"`
	SystemVersion string `json:"system_version"`
	Source        string `json:"source"`
	Locale        string `json:"locale"`
	Items         []T    `json:"items"`
}

// QualityRecord is the wire form of one quality definition.
type QualityRecord struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"oneof=Positive Negative"`
	Cost     int             `json:"cost"`
	Effects  json.RawMessage `json:"effects,omitempty"`
	Excludes []string        `json:"excludes,omitempty" validate:"omitempty,dive,required"`
	Requires []string        `json:"requires,omitempty" validate:"omitempty,dive,required"`
	Limit    int             `json:"limit,omitempty" validate:"min=0"`
}

// Definition decodes the record into an engine definition.
func (r QualityRecord) Definition() (shadowrun.QualityDefinition, error) {
	effects, err := shadowrun.DecodeEffects(r.Effects)
	if err != nil {
		return shadowrun.QualityDefinition{}, err
	}
	return shadowrun.QualityDefinition{
		Name:     r.Name,
		Category: shadowrun.QualityCategory(r.Category),
		Cost:     r.Cost,
		Effects:  effects,
		Excludes: append([]string{}, r.Excludes...),
		Requires: append([]string{}, r.Requires...),
		Limit:    r.Limit,
	}, nil
}

// RecordOf encodes an engine definition back into its wire form.
func RecordOf(def shadowrun.QualityDefinition) (QualityRecord, error) {
	rec := QualityRecord{
		Name:     def.Name,
		Category: string(def.Category),
		Cost:     def.Cost,
		Excludes: def.Excludes,
		Requires: def.Requires,
		Limit:    def.Limit,
	}
	if len(def.Effects) > 0 {
		effects, err := shadowrun.EncodeEffects(def.Effects)
		if err != nil {
			return QualityRecord{}, err
		}
		rec.Effects = effects
	}
	return rec, nil
}
