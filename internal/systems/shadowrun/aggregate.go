package shadowrun

// Aggregate folds the effects of every selected quality into one Modifiers
// value.
//
// Aggregate never fails: qualities missing from the game data contribute
// nothing, and select effects without a stored selection are skipped. Every
// combination policy is commutative, so the order of c.Qualities does not
// affect the result.
func Aggregate(c Character, data *GameData) Modifiers {
	acc := newAccumulator()
	for _, selection := range c.Qualities {
		def, ok := data.Quality(selection.Name)
		if !ok {
			continue
		}
		for _, effect := range def.Effects {
			if effect == nil {
				continue
			}
			effect.apply(acc, selection)
		}
	}
	return acc.freeze()
}
