package shadowrun

// validation is the shared input of every check.
type validation struct {
	c    Character
	data *GameData
	mods Modifiers
	rs   Ruleset
}

// check appends the issues of one rule family.
type check func(v validation, issues *issueList)

// checks is the fixed order the battery runs in.
var checks = []check{
	checkBudget,
	checkAttributes,
	checkEssence,
	checkSkills,
	checkQualities,
	checkMagic,
	checkEquipment,
	checkContacts,
	checkIdentity,
}

// Validate aggregates the character's qualities and runs every check.
func Validate(c Character, data *GameData, rs Ruleset) ValidationResult {
	return ValidateWithModifiers(c, data, Aggregate(c, data), rs)
}

// ValidateWithModifiers runs every check against already aggregated
// modifiers. Checks never stop each other: all problems are reported in one
// pass, and the build is valid iff no issue has error severity.
func ValidateWithModifiers(c Character, data *GameData, mods Modifiers, rs Ruleset) ValidationResult {
	v := validation{c: c, data: data, mods: mods, rs: rs}
	issues := &issueList{locale: rs.Locale}
	for _, run := range checks {
		run(v, issues)
	}
	return issues.result()
}
