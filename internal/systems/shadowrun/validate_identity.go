package shadowrun

import "strings"

func checkIdentity(v validation, issues *issueList) {
	if strings.TrimSpace(v.c.Name) == "" {
		issues.add(IssueIdentityNameMissing, "", nil)
	}
	if strings.TrimSpace(v.c.Metatype) == "" {
		issues.add(IssueIdentityMetatypeMissing, "", nil)
	}
	if strings.TrimSpace(v.c.Alias) == "" {
		issues.add(IssueIdentityAliasMissing, "", nil)
	}
}
