package shadowrun

import "slices"

func checkQualities(v validation, issues *issueList) {
	held := map[string]int{}
	for _, sel := range v.c.Qualities {
		held[BaseQualityName(sel.Name)]++
	}

	reportedPairs := map[[2]string]struct{}{}
	reportedLimits := map[string]struct{}{}
	for _, sel := range v.c.Qualities {
		name := BaseQualityName(sel.Name)
		def, ok := v.data.Quality(name)
		if !ok {
			issues.add(IssueQualityUnknown, sel.Name, map[string]string{"Quality": sel.Name})
			continue
		}

		for _, other := range conflictsOf(v.data, def, held) {
			pair := [2]string{name, other}
			slices.Sort(pair[:])
			if _, done := reportedPairs[pair]; done {
				continue
			}
			reportedPairs[pair] = struct{}{}
			issues.add(IssueQualityConflict, pair[0]+" / "+pair[1], map[string]string{
				"First":  pair[0],
				"Second": pair[1],
			})
		}

		for _, required := range def.Requires {
			if held[BaseQualityName(required)] == 0 {
				issues.add(IssueQualityPrerequisite, sel.Name, map[string]string{
					"Quality":  sel.Name,
					"Requires": required,
				})
			}
		}

		if _, done := reportedLimits[name]; !done && held[name] > def.MaxInstances() {
			reportedLimits[name] = struct{}{}
			issues.add(IssueQualityLimit, name, map[string]string{
				"Quality": name,
				"Count":   itoa(held[name]),
				"Limit":   itoa(def.MaxInstances()),
			})
		}

		if sel.Selected == "" && slices.ContainsFunc(def.Effects, needsSelection) {
			issues.add(IssueQualitySelectionMissing, sel.Name, map[string]string{"Quality": sel.Name})
		}
	}

	positive, negative := qualityPoints(v.c.Qualities)
	if limit := v.rs.PositiveQualityCap + v.mods.Stat(StatFreePositiveQualityPoints); v.rs.PositiveQualityCap > 0 && positive > limit {
		issues.add(IssueQualityPositiveCap, itoa(positive-limit), map[string]string{
			"Points": itoa(positive),
			"Cap":    itoa(limit),
		})
	}
	if limit := v.rs.NegativeQualityCap + v.mods.Stat(StatFreeNegativeQualityPoints); v.rs.NegativeQualityCap > 0 && negative > limit {
		issues.add(IssueQualityNegativeCap, itoa(negative-limit), map[string]string{
			"Points": itoa(negative),
			"Cap":    itoa(limit),
		})
	}
}

// conflictsOf returns the held qualities that exclude def or that def
// excludes, sorted. Exclusion is symmetric even when only one side declares it.
func conflictsOf(data *GameData, def QualityDefinition, held map[string]int) []string {
	found := map[string]struct{}{}
	for _, excluded := range def.Excludes {
		name := BaseQualityName(excluded)
		if name != def.Name && held[name] > 0 {
			found[name] = struct{}{}
		}
	}
	for name := range held {
		if name == def.Name {
			continue
		}
		other, ok := data.Quality(name)
		if !ok {
			continue
		}
		if slices.ContainsFunc(other.Excludes, func(excluded string) bool {
			return BaseQualityName(excluded) == def.Name
		}) {
			found[name] = struct{}{}
		}
	}
	return sortedKeys(found)
}

// qualityPoints sums positive and negative quality costs as magnitudes.
func qualityPoints(selections []QualitySelection) (positive, negative int) {
	for _, sel := range selections {
		cost := max(sel.Cost, -sel.Cost)
		switch sel.Category {
		case QualityPositive:
			positive += cost
		case QualityNegative:
			negative += cost
		}
	}
	return positive, negative
}

func needsSelection(e Effect) bool {
	return e != nil && NeedsSelection(e)
}
