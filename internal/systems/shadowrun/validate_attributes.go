package shadowrun

import (
	"maps"
	"slices"
	"strings"
)

func checkAttributes(v validation, issues *issueList) {
	c := v.c
	required := map[AttributeCode]bool{AttrEdge: true}
	for _, code := range PhysicalMentalAttributes {
		required[code] = true
	}
	required[AttrMagic] = c.Magic != nil
	required[AttrResonance] = c.Resonance != nil

	var atMax []string
	for _, code := range SheetAttributes {
		attr, ok := c.Attributes[code]
		if !ok {
			if required[code] {
				issues.add(IssueAttrMissing, string(code), map[string]string{"Attribute": string(code)})
			}
			continue
		}
		meta := func(extra map[string]string) map[string]string {
			out := map[string]string{"Attribute": string(code)}
			maps.Copy(out, extra)
			return out
		}

		limits := EffectiveLimits(attr.Limits, v.mods, code)
		if attr.Limits.Min > attr.Limits.Max || limits.Min > limits.Max {
			issues.add(IssueAttrLimitsInvalid, string(code), meta(map[string]string{
				"Min": itoa(limits.Min),
				"Max": itoa(limits.Max),
			}))
			continue
		}

		if attr.Base < limits.Min {
			issues.add(IssueAttrBelowMin, string(code), meta(map[string]string{
				"Value": itoa(attr.Base),
				"Min":   itoa(limits.Min),
			}))
		}
		if attr.Base > limits.Max {
			issues.add(IssueAttrAboveMax, string(code), meta(map[string]string{
				"Value": itoa(attr.Base),
				"Max":   itoa(limits.Max),
			}))
		}
		augmented := max(limits.Aug, limits.Max)
		if total := EffectiveAttribute(c, v.mods, code); total > augmented {
			issues.add(IssueAttrAboveAug, string(code), meta(map[string]string{
				"Value": itoa(total),
				"Aug":   itoa(augmented),
			}))
		}
		if attr.Karma < 0 || attr.Karma > attr.Base {
			issues.add(IssueAttrKarmaExceedBase, string(code), meta(map[string]string{
				"Karma": itoa(attr.Karma),
				"Base":  itoa(attr.Base),
			}))
		}
		if slices.Contains(PhysicalMentalAttributes, code) && limits.Max > 0 && attr.Base == limits.Max {
			atMax = append(atMax, string(code))
		}
	}

	if len(atMax) > 1 {
		list := strings.Join(atMax, ", ")
		issues.add(IssueAttrMultipleAtMax, list, map[string]string{
			"Attributes": list,
			"Count":      itoa(len(atMax)),
		})
	}
}
