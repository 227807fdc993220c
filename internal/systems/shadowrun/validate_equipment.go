package shadowrun

// equipmentItem is the part of any carried item the equipment check reads.
type equipmentItem struct {
	name         string
	negative     bool
	availability int
	restricted   bool
}

func checkEquipment(v validation, issues *issueList) {
	items := equipmentItems(v.c)

	for _, item := range items {
		if item.negative {
			issues.add(IssueEquipmentRatingNegative, item.name, map[string]string{"Item": item.name})
		}
	}

	restricted := 0
	for _, item := range items {
		if item.restricted {
			restricted++
		}
		if v.rs.MaxAvailability > 0 && item.availability > v.rs.MaxAvailability {
			issues.add(IssueEquipmentAvailability, item.name, map[string]string{
				"Item":         item.name,
				"Availability": itoa(item.availability),
				"Max":          itoa(v.rs.MaxAvailability),
			})
		}
	}
	if allowed := max(0, v.mods.Stat(StatRestrictedItemCount)); restricted > allowed {
		issues.add(IssueRestrictedItemLimit, itoa(restricted-allowed), map[string]string{
			"Count":   itoa(restricted),
			"Allowed": itoa(allowed),
		})
	}

	// Armor heavier than twice Body encumbers the wearer.
	limit := EffectiveAttribute(v.c, v.mods, AttrBody) * 2
	armor := max(ArmorTotal(v.c.Armor, ArmorBallistic), ArmorTotal(v.c.Armor, ArmorImpact))
	if armor > limit {
		issues.add(IssueArmorEncumbrance, itoa(armor-limit), map[string]string{
			"Armor": itoa(armor),
			"Limit": itoa(limit),
		})
	}

	for _, aug := range v.c.Augmentations {
		if _, ok := v.rs.GradeMultiplier(aug.Grade); !ok {
			issues.add(IssueAugmentationGradeUnknown, aug.Grade, map[string]string{
				"Item":  aug.Name,
				"Grade": aug.Grade,
			})
		}
	}
}

// equipmentItems flattens weapons, armor and augmentations in that order.
func equipmentItems(c Character) []equipmentItem {
	items := make([]equipmentItem, 0, len(c.Weapons)+len(c.Armor)+len(c.Augmentations))
	for _, w := range c.Weapons {
		items = append(items, equipmentItem{
			name:         w.Name,
			negative:     w.Reach < 0 || w.Damage < 0,
			availability: w.Availability,
			restricted:   w.Restricted,
		})
	}
	for _, a := range c.Armor {
		items = append(items, equipmentItem{
			name:         a.Name,
			negative:     a.Ballistic < 0 || a.Impact < 0,
			availability: a.Availability,
			restricted:   a.Restricted,
		})
	}
	for _, aug := range c.Augmentations {
		items = append(items, equipmentItem{
			name:         aug.Name,
			negative:     aug.Rating < 0 || aug.Essence < 0,
			availability: aug.Availability,
			restricted:   aug.Restricted,
		})
	}
	return items
}
