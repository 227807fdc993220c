package shadowrun

// AttributeCode identifies a primary or special attribute.
type AttributeCode string

const (
	AttrBody      AttributeCode = "BOD"
	AttrAgility   AttributeCode = "AGI"
	AttrReaction  AttributeCode = "REA"
	AttrStrength  AttributeCode = "STR"
	AttrCharisma  AttributeCode = "CHA"
	AttrIntuition AttributeCode = "INT"
	AttrLogic     AttributeCode = "LOG"
	AttrWillpower AttributeCode = "WIL"
	AttrEdge      AttributeCode = "EDG"
	AttrMagic     AttributeCode = "MAG"
	AttrResonance AttributeCode = "RES"
)

// PhysicalMentalAttributes lists the attributes bought during creation, in sheet order.
var PhysicalMentalAttributes = []AttributeCode{
	AttrBody, AttrAgility, AttrReaction, AttrStrength,
	AttrCharisma, AttrIntuition, AttrLogic, AttrWillpower,
}

// SheetAttributes lists every attribute in the order validation reports them.
var SheetAttributes = []AttributeCode{
	AttrBody, AttrAgility, AttrReaction, AttrStrength,
	AttrCharisma, AttrIntuition, AttrLogic, AttrWillpower,
	AttrEdge, AttrMagic, AttrResonance,
}

// Limits bounds an attribute: minimum, natural maximum and augmented maximum.
type Limits struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Aug int `json:"aug"`
}

// Attribute is one stored attribute value.
//
// Base is the natural rating including karma raises; Karma records how many of
// those points were bought with karma.
type Attribute struct {
	Base   int    `json:"base"`
	Bonus  int    `json:"bonus"`
	Karma  int    `json:"karma"`
	Limits Limits `json:"limits"`
}

// Skill is a rated skill on the character.
type Skill struct {
	Name           string        `json:"name"`
	Rating         int           `json:"rating"`
	Specialization string        `json:"specialization,omitempty"`
	Bonus          int           `json:"bonus"`
	Attribute      AttributeCode `json:"attribute"`
	Group          string        `json:"group,omitempty"`
	Category       SkillCategory `json:"category,omitempty"`
}

// SkillCategory groups skills for defaulting and category bonuses.
type SkillCategory string

const (
	SkillCategoryCombat    SkillCategory = "Combat"
	SkillCategoryPhysical  SkillCategory = "Physical"
	SkillCategorySocial    SkillCategory = "Social"
	SkillCategoryTechnical SkillCategory = "Technical"
	SkillCategoryVehicle   SkillCategory = "Vehicle"
	SkillCategoryMagical   SkillCategory = "Magical"
	SkillCategoryResonance SkillCategory = "Resonance"
	SkillCategoryAcademic  SkillCategory = "Academic"
)

// QualityCategory separates perks from flaws.
type QualityCategory string

const (
	QualityPositive QualityCategory = "Positive"
	QualityNegative QualityCategory = "Negative"
)

// QualitySelection is one quality instance held by the character.
//
// Selected holds the skill name or attribute code chosen for parametrized
// qualities; it is empty for qualities without a choice.
type QualitySelection struct {
	Name     string          `json:"name"`
	Category QualityCategory `json:"category"`
	Cost     int             `json:"cost"`
	Selected string          `json:"selected,omitempty"`
}

// Weapon is a carried weapon.
type Weapon struct {
	Name         string `json:"name"`
	Reach        int    `json:"reach"`
	Damage       int    `json:"damage"`
	Availability int    `json:"availability"`
	Restricted   bool   `json:"restricted"`
}

// Armor is an armor item; only equipped items count toward armor totals.
type Armor struct {
	Name         string `json:"name"`
	Ballistic    int    `json:"ballistic"`
	Impact       int    `json:"impact"`
	Equipped     bool   `json:"equipped"`
	Availability int    `json:"availability"`
	Restricted   bool   `json:"restricted"`
}

// AugmentationKind distinguishes cyberware from bioware.
type AugmentationKind string

const (
	Cyberware AugmentationKind = "cyberware"
	Bioware   AugmentationKind = "bioware"
)

// Augmentation is an installed cyberware or bioware item.
//
// Family names an initiative-boosting family; items of the same family do not
// stack, only the highest rating counts.
type Augmentation struct {
	Name         string           `json:"name"`
	Kind         AugmentationKind `json:"kind"`
	Rating       int              `json:"rating"`
	Grade        string           `json:"grade,omitempty"`
	Essence      float64          `json:"essence"`
	Family       string           `json:"family,omitempty"`
	Availability int              `json:"availability"`
	Restricted   bool             `json:"restricted"`
}

// AdeptPower is a purchased adept power.
type AdeptPower struct {
	Name   string  `json:"name"`
	Rating int     `json:"rating"`
	Cost   float64 `json:"cost"`
	Family string  `json:"family,omitempty"`
}

// MagicSection is present only on awakened characters.
type MagicSection struct {
	Tradition string       `json:"tradition"`
	Powers    []AdeptPower `json:"powers,omitempty"`
}

// ResonanceSection is present only on emerged characters.
type ResonanceSection struct {
	Stream string `json:"stream"`
}

// Contact is a character contact.
type Contact struct {
	Name       string `json:"name"`
	Connection int    `json:"connection"`
	Loyalty    int    `json:"loyalty"`
}

// BudgetCategory names a build-point spending bucket.
type BudgetCategory string

const (
	BudgetAttributes BudgetCategory = "attributes"
	BudgetSkills     BudgetCategory = "skills"
	BudgetQualities  BudgetCategory = "qualities"
	BudgetResources  BudgetCategory = "resources"
	BudgetContacts   BudgetCategory = "contacts"
	BudgetMagic      BudgetCategory = "magic"
	BudgetSpells     BudgetCategory = "spells"
)

// Budget is the build-point bookkeeping kept by the builder.
type Budget struct {
	Allowance int                    `json:"allowance"`
	Spent     map[BudgetCategory]int `json:"spent"`
}

// TotalSpent sums every category.
func (b Budget) TotalSpent() int {
	total := 0
	for _, points := range b.Spent {
		total += points
	}
	return total
}

// Condition tracks damage boxes currently marked.
type Condition struct {
	PhysicalDamage int `json:"physical_damage"`
	StunDamage     int `json:"stun_damage"`
}

// Character is the read-only snapshot the engine evaluates.
type Character struct {
	Name          string                      `json:"name"`
	Alias         string                      `json:"alias"`
	Metatype      string                      `json:"metatype"`
	Attributes    map[AttributeCode]Attribute `json:"attributes"`
	Essence       float64                     `json:"essence"`
	Magic         *MagicSection               `json:"magic,omitempty"`
	Resonance     *ResonanceSection           `json:"resonance,omitempty"`
	Skills        []Skill                     `json:"skills"`
	Qualities     []QualitySelection          `json:"qualities"`
	Weapons       []Weapon                    `json:"weapons,omitempty"`
	Armor         []Armor                     `json:"armor,omitempty"`
	Augmentations []Augmentation              `json:"augmentations,omitempty"`
	Contacts      []Contact                   `json:"contacts,omitempty"`
	Budget        Budget                      `json:"budget"`
	Condition     Condition                   `json:"condition"`
}

// FindSkill returns the first skill with the given name.
func (c Character) FindSkill(name string) (Skill, bool) {
	for _, skill := range c.Skills {
		if skill.Name == name {
			return skill, true
		}
	}
	return Skill{}, false
}
