package shadowrun

import (
	"cmp"
	"slices"
)

// ArmorType selects which rating of an armor item is read.
type ArmorType int

const (
	ArmorBallistic ArmorType = iota
	ArmorImpact
)

// Rating returns the armor value for the given type.
func (a Armor) Rating(kind ArmorType) int {
	if kind == ArmorImpact {
		return a.Impact
	}
	return a.Ballistic
}

// LayeredArmor totals layered armor values: the highest value counts in full
// and every other layer adds half its value, rounded down.
func LayeredArmor(values []int) int {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })
	total := 0
	for i, value := range sorted {
		if value <= 0 {
			continue
		}
		if i == 0 {
			total += value
			continue
		}
		total += value / 2
	}
	return total
}

// ArmorTotal layers every equipped armor item for one damage type.
func ArmorTotal(items []Armor, kind ArmorType) int {
	values := make([]int, 0, len(items))
	for _, item := range items {
		if !item.Equipped {
			continue
		}
		values = append(values, item.Rating(kind))
	}
	return LayeredArmor(values)
}
