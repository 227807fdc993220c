package shadowrun

import "strings"

func checkContacts(v validation, issues *issueList) {
	for i, contact := range v.c.Contacts {
		label := strings.TrimSpace(contact.Name)
		if label == "" {
			label = "#" + itoa(i+1)
		}
		if contact.Connection < ContactRatingMin || contact.Connection > ContactRatingMax {
			issues.add(IssueContactConnectionRange, label, contactMetadata(label, contact.Connection))
		}
		if contact.Loyalty < ContactRatingMin || contact.Loyalty > ContactRatingMax {
			issues.add(IssueContactLoyaltyRange, label, contactMetadata(label, contact.Loyalty))
		}
		if strings.TrimSpace(contact.Name) == "" {
			issues.add(IssueContactNameMissing, label, map[string]string{"Contact": label})
		}
	}
}

func contactMetadata(label string, value int) map[string]string {
	return map[string]string{
		"Contact": label,
		"Value":   itoa(value),
		"Min":     itoa(ContactRatingMin),
		"Max":     itoa(ContactRatingMax),
	}
}
