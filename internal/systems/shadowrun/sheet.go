package shadowrun

// Sheet is the full evaluation of one character snapshot.
type Sheet struct {
	Modifiers  Modifiers        `json:"modifiers"`
	Derived    DerivedStats     `json:"derived"`
	Validation ValidationResult `json:"validation"`
}

// Evaluate runs the whole pipeline: qualities are aggregated once, then the
// derived stats and the validation battery both read the same modifiers.
func Evaluate(c Character, data *GameData, rs Ruleset) Sheet {
	mods := Aggregate(c, data)
	return Sheet{
		Modifiers:  mods,
		Derived:    CalculateAll(c, mods, rs),
		Validation: ValidateWithModifiers(c, data, mods, rs),
	}
}
