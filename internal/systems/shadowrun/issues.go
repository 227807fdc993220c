package shadowrun

import (
	"strconv"

	"github.com/louisbranch/sprawlsheet/internal/platform/i18n/messages"
)

// Severity grades a validation issue. Only errors make a build invalid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IssueCategory groups issues by the check that produced them.
type IssueCategory string

const (
	CategoryBudget     IssueCategory = "budget"
	CategoryAttributes IssueCategory = "attributes"
	CategoryEssence    IssueCategory = "essence"
	CategorySkills     IssueCategory = "skills"
	CategoryQualities  IssueCategory = "qualities"
	CategoryMagic      IssueCategory = "magic"
	CategoryEquipment  IssueCategory = "equipment"
	CategoryContacts   IssueCategory = "contacts"
	CategoryIdentity   IssueCategory = "identity"
)

// IssueCode is the stable identifier of a validation issue.
type IssueCode string

const (
	IssueBPOverspent        IssueCode = "BP_OVERSPENT"
	IssueBPUnspent          IssueCode = "BP_UNSPENT"
	IssueBPCategoryNegative IssueCode = "BP_CATEGORY_NEGATIVE"
	IssueAttributeBPCap     IssueCode = "ATTRIBUTE_BP_CAP"
	IssueNuyenBPCap         IssueCode = "NUYEN_BP_CAP"

	IssueAttrMissing         IssueCode = "ATTR_MISSING"
	IssueAttrLimitsInvalid   IssueCode = "ATTR_LIMITS_INVALID"
	IssueAttrBelowMin        IssueCode = "ATTR_BELOW_MIN"
	IssueAttrAboveMax        IssueCode = "ATTR_ABOVE_MAX"
	IssueAttrAboveAug        IssueCode = "ATTR_ABOVE_AUG"
	IssueAttrMultipleAtMax   IssueCode = "ATTR_MULTIPLE_AT_MAX"
	IssueAttrKarmaExceedBase IssueCode = "ATTR_KARMA_EXCEEDS_BASE"

	IssueEssenceNegative       IssueCode = "ESSENCE_NEGATIVE"
	IssueEssenceMismatch       IssueCode = "ESSENCE_MISMATCH"
	IssueMagicAboveEssence     IssueCode = "MAGIC_ABOVE_ESSENCE"
	IssueResonanceAboveEssence IssueCode = "RESONANCE_ABOVE_ESSENCE"

	IssueSkillDuplicate             IssueCode = "SKILL_DUPLICATE"
	IssueSkillRatingNegative        IssueCode = "SKILL_RATING_NEGATIVE"
	IssueSkillAboveMax              IssueCode = "SKILL_ABOVE_MAX"
	IssueSkillSpecializationUnrated IssueCode = "SKILL_SPECIALIZATION_UNRATED"

	IssueQualityUnknown          IssueCode = "QUALITY_UNKNOWN"
	IssueQualityConflict         IssueCode = "QUALITY_CONFLICT"
	IssueQualityPrerequisite     IssueCode = "QUALITY_PREREQUISITE"
	IssueQualityLimit            IssueCode = "QUALITY_LIMIT"
	IssueQualitySelectionMissing IssueCode = "QUALITY_SELECTION_MISSING"
	IssueQualityPositiveCap      IssueCode = "QUALITY_POSITIVE_CAP"
	IssueQualityNegativeCap      IssueCode = "QUALITY_NEGATIVE_CAP"

	IssueMagicResonanceExclusive IssueCode = "MAGIC_RESONANCE_EXCLUSIVE"
	IssueMagicWithoutQuality     IssueCode = "MAGIC_WITHOUT_QUALITY"
	IssueResonanceWithoutQuality IssueCode = "RESONANCE_WITHOUT_QUALITY"
	IssueMagicTraditionMissing   IssueCode = "MAGIC_TRADITION_MISSING"
	IssuePowerPointsExceeded     IssueCode = "POWER_POINTS_EXCEEDED"

	IssueEquipmentRatingNegative  IssueCode = "EQUIPMENT_RATING_NEGATIVE"
	IssueEquipmentAvailability    IssueCode = "EQUIPMENT_AVAILABILITY"
	IssueRestrictedItemLimit      IssueCode = "RESTRICTED_ITEM_LIMIT"
	IssueArmorEncumbrance         IssueCode = "ARMOR_ENCUMBRANCE"
	IssueAugmentationGradeUnknown IssueCode = "AUGMENTATION_GRADE_UNKNOWN"

	IssueContactConnectionRange IssueCode = "CONTACT_CONNECTION_RANGE"
	IssueContactLoyaltyRange    IssueCode = "CONTACT_LOYALTY_RANGE"
	IssueContactNameMissing     IssueCode = "CONTACT_NAME_MISSING"

	IssueIdentityNameMissing     IssueCode = "IDENTITY_NAME_MISSING"
	IssueIdentityMetatypeMissing IssueCode = "IDENTITY_METATYPE_MISSING"
	IssueIdentityAliasMissing    IssueCode = "IDENTITY_ALIAS_MISSING"
)

type issueSpec struct {
	severity Severity
	category IssueCategory
}

// issueSpecs fixes severity and category per code.
var issueSpecs = map[IssueCode]issueSpec{
	IssueBPOverspent:        {SeverityError, CategoryBudget},
	IssueBPUnspent:          {SeverityInfo, CategoryBudget},
	IssueBPCategoryNegative: {SeverityError, CategoryBudget},
	IssueAttributeBPCap:     {SeverityError, CategoryBudget},
	IssueNuyenBPCap:         {SeverityError, CategoryBudget},

	IssueAttrMissing:         {SeverityError, CategoryAttributes},
	IssueAttrLimitsInvalid:   {SeverityError, CategoryAttributes},
	IssueAttrBelowMin:        {SeverityError, CategoryAttributes},
	IssueAttrAboveMax:        {SeverityError, CategoryAttributes},
	IssueAttrAboveAug:        {SeverityError, CategoryAttributes},
	IssueAttrMultipleAtMax:   {SeverityError, CategoryAttributes},
	IssueAttrKarmaExceedBase: {SeverityError, CategoryAttributes},

	IssueEssenceNegative:       {SeverityError, CategoryEssence},
	IssueEssenceMismatch:       {SeverityWarning, CategoryEssence},
	IssueMagicAboveEssence:     {SeverityError, CategoryEssence},
	IssueResonanceAboveEssence: {SeverityError, CategoryEssence},

	IssueSkillDuplicate:             {SeverityError, CategorySkills},
	IssueSkillRatingNegative:        {SeverityError, CategorySkills},
	IssueSkillAboveMax:              {SeverityError, CategorySkills},
	IssueSkillSpecializationUnrated: {SeverityWarning, CategorySkills},

	IssueQualityUnknown:          {SeverityWarning, CategoryQualities},
	IssueQualityConflict:         {SeverityError, CategoryQualities},
	IssueQualityPrerequisite:     {SeverityError, CategoryQualities},
	IssueQualityLimit:            {SeverityError, CategoryQualities},
	IssueQualitySelectionMissing: {SeverityWarning, CategoryQualities},
	IssueQualityPositiveCap:      {SeverityError, CategoryQualities},
	IssueQualityNegativeCap:      {SeverityError, CategoryQualities},

	IssueMagicResonanceExclusive: {SeverityError, CategoryMagic},
	IssueMagicWithoutQuality:     {SeverityError, CategoryMagic},
	IssueResonanceWithoutQuality: {SeverityError, CategoryMagic},
	IssueMagicTraditionMissing:   {SeverityError, CategoryMagic},
	IssuePowerPointsExceeded:     {SeverityError, CategoryMagic},

	IssueEquipmentRatingNegative:  {SeverityError, CategoryEquipment},
	IssueEquipmentAvailability:    {SeverityError, CategoryEquipment},
	IssueRestrictedItemLimit:      {SeverityError, CategoryEquipment},
	IssueArmorEncumbrance:         {SeverityWarning, CategoryEquipment},
	IssueAugmentationGradeUnknown: {SeverityWarning, CategoryEquipment},

	IssueContactConnectionRange: {SeverityError, CategoryContacts},
	IssueContactLoyaltyRange:    {SeverityError, CategoryContacts},
	IssueContactNameMissing:     {SeverityWarning, CategoryContacts},

	IssueIdentityNameMissing:     {SeverityError, CategoryIdentity},
	IssueIdentityMetatypeMissing: {SeverityError, CategoryIdentity},
	IssueIdentityAliasMissing:    {SeverityInfo, CategoryIdentity},
}

// SeverityOf returns the fixed severity of a code.
func SeverityOf(code IssueCode) Severity {
	return issueSpecs[code].severity
}

// IssueCodes returns every known code.
func IssueCodes() []IssueCode {
	return sortedKeys(setOf(issueSpecs))
}

// Issue is one problem found in a build.
type Issue struct {
	Code     IssueCode         `json:"code"`
	Severity Severity          `json:"severity"`
	Category IssueCategory     `json:"category"`
	Message  string            `json:"message"`
	Detail   string            `json:"detail,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ValidationResult is the full outcome of validating a build.
type ValidationResult struct {
	Valid    bool    `json:"valid"`
	Issues   []Issue `json:"issues"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
	Infos    int     `json:"infos"`
}

// IssuesWithCode filters the result to one code.
func (r ValidationResult) IssuesWithCode(code IssueCode) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Code == code {
			out = append(out, issue)
		}
	}
	return out
}

// HasIssue reports whether any issue carries code.
func (r ValidationResult) HasIssue(code IssueCode) bool {
	return len(r.IssuesWithCode(code)) > 0
}

// IssueMessageKey returns the catalog key of a code's message template.
func IssueMessageKey(code IssueCode) string {
	return "issue." + string(code)
}

// issueList collects issues in the order checks report them.
type issueList struct {
	locale string
	issues []Issue
}

// add appends an issue. Metadata feeds the message template; detail is the
// short machine-friendly value shown next to it.
func (l *issueList) add(code IssueCode, detail string, metadata map[string]string) {
	spec, ok := issueSpecs[code]
	if !ok {
		spec = issueSpec{severity: SeverityError}
	}
	l.issues = append(l.issues, Issue{
		Code:     code,
		Severity: spec.severity,
		Category: spec.category,
		Message:  messages.Format(messages.NamespaceRules, l.locale, IssueMessageKey(code), metadata),
		Detail:   detail,
		Metadata: metadata,
	})
}

func (l *issueList) result() ValidationResult {
	result := ValidationResult{Issues: l.issues}
	if result.Issues == nil {
		result.Issues = []Issue{}
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.Errors++
		case SeverityWarning:
			result.Warnings++
		case SeverityInfo:
			result.Infos++
		}
	}
	result.Valid = result.Errors == 0
	return result
}

func setOf[K comparable, V any](in map[K]V) map[K]struct{} {
	out := make(map[K]struct{}, len(in))
	for key := range in {
		out[key] = struct{}{}
	}
	return out
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
