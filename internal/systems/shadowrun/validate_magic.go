package shadowrun

import (
	"strconv"
	"strings"
)

func checkMagic(v validation, issues *issueList) {
	c := v.c
	if c.Magic != nil && c.Resonance != nil {
		issues.add(IssueMagicResonanceExclusive, "", nil)
	}
	if c.Magic != nil && !v.mods.HasUnlock(v.rs.MagicUnlock) {
		issues.add(IssueMagicWithoutQuality, v.rs.MagicUnlock, map[string]string{"Feature": v.rs.MagicUnlock})
	}
	if c.Resonance != nil && !v.mods.HasUnlock(v.rs.ResonanceUnlock) {
		issues.add(IssueResonanceWithoutQuality, v.rs.ResonanceUnlock, map[string]string{"Feature": v.rs.ResonanceUnlock})
	}
	if c.Magic == nil {
		return
	}

	// Adepts channel magic through powers and declare no tradition.
	if strings.TrimSpace(c.Magic.Tradition) == "" && len(c.Magic.Powers) == 0 {
		issues.add(IssueMagicTraditionMissing, "", nil)
	}
	spent := PowerPointsSpent(c.Magic)
	available := float64(TotalOf(c, AttrMagic))
	if spent > available {
		points := strconv.FormatFloat(spent, 'f', -1, 64)
		issues.add(IssuePowerPointsExceeded, points, map[string]string{
			"Spent":     points,
			"Available": strconv.FormatFloat(available, 'f', -1, 64),
		})
	}
}
