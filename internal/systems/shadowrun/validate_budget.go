package shadowrun

var budgetOrder = []BudgetCategory{
	BudgetAttributes, BudgetSkills, BudgetQualities, BudgetResources,
	BudgetContacts, BudgetMagic, BudgetSpells,
}

func checkBudget(v validation, issues *issueList) {
	budget := v.c.Budget
	allowance := budget.Allowance
	if allowance <= 0 {
		allowance = v.rs.BuildPoints
	}
	spent := budget.TotalSpent()

	switch {
	case spent > allowance:
		overage := spent - allowance
		issues.add(IssueBPOverspent, itoa(overage), map[string]string{
			"Spent":     itoa(spent),
			"Allowance": itoa(allowance),
			"Overage":   itoa(overage),
		})
	case spent < allowance:
		remaining := allowance - spent
		issues.add(IssueBPUnspent, itoa(remaining), map[string]string{
			"Remaining": itoa(remaining),
		})
	}

	for _, category := range budgetCategories(budget) {
		if points := budget.Spent[category]; points < 0 {
			issues.add(IssueBPCategoryNegative, string(category), map[string]string{
				"Category": string(category),
				"Spent":    itoa(points),
			})
		}
	}

	if limit := v.rs.AttributeBPCap; limit > 0 {
		if points := budget.Spent[BudgetAttributes]; points > limit {
			issues.add(IssueAttributeBPCap, itoa(points-limit), map[string]string{
				"Spent": itoa(points),
				"Cap":   itoa(limit),
			})
		}
	}

	if v.rs.NuyenBPCap > 0 {
		limit := v.rs.NuyenBPCap + v.mods.Stat(StatNuyenBPCeiling)
		if points := budget.Spent[BudgetResources]; points > limit {
			issues.add(IssueNuyenBPCap, itoa(points-limit), map[string]string{
				"Spent": itoa(points),
				"Cap":   itoa(limit),
			})
		}
	}
}

// budgetCategories lists the known categories in sheet order followed by any
// other recorded category, sorted.
func budgetCategories(b Budget) []BudgetCategory {
	out := make([]BudgetCategory, 0, len(b.Spent))
	known := make(map[BudgetCategory]struct{}, len(budgetOrder))
	for _, category := range budgetOrder {
		known[category] = struct{}{}
		if _, ok := b.Spent[category]; ok {
			out = append(out, category)
		}
	}
	extra := map[BudgetCategory]struct{}{}
	for category := range b.Spent {
		if _, ok := known[category]; !ok {
			extra[category] = struct{}{}
		}
	}
	return append(out, sortedKeys(extra)...)
}
