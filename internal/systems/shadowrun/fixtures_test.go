package shadowrun

// testCharacter returns a complete mundane build that validates without any
// issue under DefaultRuleset.
func testCharacter() Character {
	attr := func(base int) Attribute {
		return Attribute{Base: base, Limits: Limits{Min: 1, Max: 6, Aug: 9}}
	}
	return Character{
		Name:     "Kai Nakamura",
		Alias:    "Ghost",
		Metatype: "Human",
		Attributes: map[AttributeCode]Attribute{
			AttrBody:      attr(4),
			AttrAgility:   attr(4),
			AttrReaction:  attr(3),
			AttrStrength:  attr(3),
			AttrCharisma:  attr(2),
			AttrIntuition: attr(3),
			AttrLogic:     attr(3),
			AttrWillpower: attr(3),
			AttrEdge:      attr(2),
		},
		Essence: 6,
		Skills: []Skill{
			{Name: "Perception", Rating: 3, Attribute: AttrIntuition, Category: SkillCategoryPhysical},
			{Name: "Pistols", Rating: 4, Attribute: AttrAgility, Group: "Firearms", Category: SkillCategoryCombat},
		},
		Armor: []Armor{
			{Name: "Armor Jacket", Ballistic: 8, Impact: 6, Equipped: true, Availability: 2},
		},
		Contacts: []Contact{
			{Name: "Fixer", Connection: 3, Loyalty: 2},
		},
		Budget: Budget{
			Allowance: 400,
			Spent: map[BudgetCategory]int{
				BudgetAttributes: 150,
				BudgetSkills:     150,
				BudgetQualities:  20,
				BudgetResources:  50,
				BudgetContacts:   30,
			},
		},
	}
}

// testGameData is a small quality table covering every combination policy.
func testGameData() *GameData {
	return NewGameData([]QualityDefinition{
		{Name: "Bulky", Category: QualityPositive, Cost: 5, Effects: []Effect{AttributeBonus{Attribute: AttrBody, Value: 1}}},
		{Name: "Dense Bones", Category: QualityPositive, Cost: 5, Effects: []Effect{AttributeBonus{Attribute: AttrBody, Value: 1}}},
		{Name: "Toughness", Category: QualityPositive, Cost: 10, Effects: []Effect{StatBonus{Stat: StatPhysicalCM, Value: 1}}},
		{Name: "Aptitude", Category: QualityPositive, Cost: 10, Effects: []Effect{SelectSkill{CeilingDelta: 1}}},
		{Name: "Exceptional Attribute", Category: QualityPositive, Cost: 20, Effects: []Effect{SelectAttribute{CeilingDelta: 1}}},
		{Name: "Biocompatibility", Category: QualityPositive, Cost: 5, Effects: []Effect{EssenceMultiplier{Target: MultiplierCyberware, Factor: 0.9}}},
		{Name: "Cyber Tolerance", Category: QualityPositive, Cost: 10, Effects: []Effect{EssenceMultiplier{Target: MultiplierCyberware, Factor: 0.8}}},
		{Name: "Magician", Category: QualityPositive, Cost: 15, Effects: []Effect{Unlock{Feature: "magic"}}, Excludes: []string{"Technomancer"}},
		{Name: "Adept", Category: QualityPositive, Cost: 10, Effects: []Effect{Unlock{Feature: "magic"}}},
		{Name: "Technomancer", Category: QualityPositive, Cost: 15, Effects: []Effect{Unlock{Feature: "resonance"}}},
		{Name: "Focused Concentration", Category: QualityPositive, Cost: 10, Requires: []string{"Magician"}},
		{Name: "Restricted Gear", Category: QualityPositive, Cost: 10, Effects: []Effect{StatBonus{Stat: StatRestrictedItemCount, Value: 1}}},
		{Name: "Natural Athlete", Category: QualityPositive, Cost: 10, Effects: []Effect{SkillGroupBonus{Group: "Athletics", Value: 2}}},
		{Name: "Gun Nut", Category: QualityPositive, Cost: 5, Effects: []Effect{SkillCategoryBonus{Category: SkillCategoryCombat, Value: 1}}},
		{Name: "Wings", Category: QualityPositive, Cost: 20, Effects: []Effect{FlySpeed{Value: 10}}},
		{Name: "Gliding Membrane", Category: QualityPositive, Cost: 5, Effects: []Effect{FlySpeed{Value: 4}}},
		{Name: "Fast", Category: QualityPositive, Cost: 5, Effects: []Effect{PercentModifier{Target: PercentMovement, Percent: 25}}},
		{Name: "Fleet", Category: QualityPositive, Cost: 5, Effects: []Effect{PercentModifier{Target: PercentMovement, Percent: 25}}},
		{Name: "Lightning Reflexes", Category: QualityPositive, Cost: 20, Effects: []Effect{StatBonus{Stat: StatInitiativePasses, Value: 1}}},
		{Name: "Strong Will", Category: QualityPositive, Cost: 5, Effects: []Effect{AttributeFloor{Attribute: AttrWillpower, Value: 2}}},
		{Name: "Sturdy Mind", Category: QualityPositive, Cost: 5, Effects: []Effect{AttributeFloor{Attribute: AttrWillpower, Value: 3}}},
		{Name: "Frail", Category: QualityNegative, Cost: -5, Effects: []Effect{AttributeCeiling{Attribute: AttrBody, Value: 5}}},
		{Name: "Sickly", Category: QualityNegative, Cost: -10, Effects: []Effect{AttributeCeiling{Attribute: AttrBody, Value: 4}}},
		{Name: "Clumsy Hands", Category: QualityNegative, Cost: -5, Effects: []Effect{SkillCeiling{Skill: "Pistols", Value: 4}}},
		{Name: "Trained Eye", Category: QualityPositive, Cost: 5, Effects: []Effect{SkillCeilingDelta{Skill: "Pistols", Value: 1}, SkillBonus{Skill: "Pistols", Value: 1}}},
		{Name: "Uneducated", Category: QualityNegative, Cost: -20, Effects: []Effect{FlagEffect{Flag: FlagUneducated}}},
		{Name: "Uncouth", Category: QualityNegative, Cost: -20, Effects: []Effect{FlagEffect{Flag: FlagUncouth}}},
		{Name: "Infirm", Category: QualityNegative, Cost: -20, Effects: []Effect{FlagEffect{Flag: FlagInfirm}}},
		{Name: "Skillwired", Category: QualityPositive, Cost: 5, Effects: []Effect{Skillwire{Rating: 3}}},
		{Name: "Poor Wiring", Category: QualityNegative, Cost: -5, Effects: []Effect{Skillwire{Rating: 1}}},
		{Name: "Watched", Category: QualityNegative, Cost: -5, Effects: []Effect{StatBonus{Stat: StatRestrictedItemCount, Value: -1}}},
	})
}

func pick(names ...string) []QualitySelection {
	data := testGameData()
	out := make([]QualitySelection, 0, len(names))
	for _, name := range names {
		def, _ := data.Quality(name)
		out = append(out, QualitySelection{Name: name, Category: def.Category, Cost: def.Cost})
	}
	return out
}

func codesOf(result ValidationResult) []IssueCode {
	codes := make([]IssueCode, 0, len(result.Issues))
	for _, issue := range result.Issues {
		codes = append(codes, issue.Code)
	}
	return codes
}
