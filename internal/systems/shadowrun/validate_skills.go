package shadowrun

import "strings"

func checkSkills(v validation, issues *issueList) {
	seen := make(map[string]struct{}, len(v.c.Skills))
	for _, skill := range v.c.Skills {
		name := strings.TrimSpace(skill.Name)
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			issues.add(IssueSkillDuplicate, name, map[string]string{"Skill": name})
			continue
		}
		seen[key] = struct{}{}

		if skill.Rating < 0 {
			issues.add(IssueSkillRatingNegative, name, map[string]string{
				"Skill":  name,
				"Rating": itoa(skill.Rating),
			})
		}
		if ceiling := v.mods.SkillCeilingFor(skill.Name, v.rs.SkillMax); skill.Rating > ceiling {
			issues.add(IssueSkillAboveMax, name, map[string]string{
				"Skill":  name,
				"Rating": itoa(skill.Rating),
				"Max":    itoa(ceiling),
			})
		}
		if strings.TrimSpace(skill.Specialization) != "" && skill.Rating <= 0 {
			issues.add(IssueSkillSpecializationUnrated, name, map[string]string{
				"Skill":          name,
				"Specialization": skill.Specialization,
			})
		}
	}
}
