package shadowrun

import (
	"math"
	"reflect"
	"slices"
	"testing"
)

func TestAggregateAdditiveAttributeBonus(t *testing.T) {
	c := testCharacter()
	c.Qualities = pick("Bulky", "Dense Bones")

	mods := Aggregate(c, testGameData())
	if got := mods.AttributeBonus[AttrBody]; got != 2 {
		t.Fatalf("BOD bonus = %d, want 2", got)
	}
	if got := EffectiveAttribute(c, mods, AttrBody); got != 6 {
		t.Fatalf("effective BOD = %d, want 6", got)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	c := testCharacter()
	c.Qualities = pick(
		"Bulky", "Dense Bones", "Toughness", "Biocompatibility", "Cyber Tolerance",
		"Magician", "Wings", "Gliding Membrane", "Fast", "Fleet", "Strong Will",
		"Sturdy Mind", "Frail", "Sickly", "Uneducated", "Infirm", "Skillwired",
		"Poor Wiring", "Trained Eye", "Clumsy Hands",
	)
	c.Qualities = append(c.Qualities, QualitySelection{Name: "Aptitude", Category: QualityPositive, Cost: 10, Selected: "Pistols"})
	data := testGameData()
	want := Aggregate(c, data)

	reversed := slices.Clone(c.Qualities)
	slices.Reverse(reversed)
	rotated := slices.Concat(c.Qualities[7:], c.Qualities[:7])
	orders := [][]QualitySelection{reversed, rotated}
	for i, order := range orders {
		shuffled := c
		shuffled.Qualities = order
		if got := Aggregate(shuffled, data); !reflect.DeepEqual(got, want) {
			t.Fatalf("order %d: aggregate differs\ngot  %+v\nwant %+v", i, got, want)
		}
	}
	if again := Aggregate(c, data); !reflect.DeepEqual(again, want) {
		t.Fatal("aggregate is not deterministic")
	}
}

func TestAggregatePolicies(t *testing.T) {
	c := testCharacter()
	c.Qualities = pick(
		"Biocompatibility", "Cyber Tolerance", "Wings", "Gliding Membrane",
		"Fast", "Fleet", "Strong Will", "Sturdy Mind", "Frail", "Sickly",
		"Uneducated", "Infirm", "Magician", "Adept", "Skillwired", "Poor Wiring",
	)
	mods := Aggregate(c, testGameData())

	if math.Abs(mods.CyberwareEssenceMultiplier-0.72) > 1e-9 {
		t.Fatalf("cyberware multiplier = %v, want 0.72", mods.CyberwareEssenceMultiplier)
	}
	if mods.BiowareEssenceMultiplier != 1 {
		t.Fatalf("bioware multiplier = %v, want 1", mods.BiowareEssenceMultiplier)
	}
	if mods.FlySpeed != 10 {
		t.Fatalf("fly speed = %d, want 10", mods.FlySpeed)
	}
	if mods.SkillwireRating != 3 {
		t.Fatalf("skillwire = %d, want 3", mods.SkillwireRating)
	}
	if got := mods.Percent(PercentMovement); got != 50 {
		t.Fatalf("movement percent = %d, want 50", got)
	}
	if got := mods.AttributeFloor[AttrWillpower]; got != 3 {
		t.Fatalf("WIL floor = %d, want 3", got)
	}
	if got := mods.AttributeCeiling[AttrBody]; got != 4 {
		t.Fatalf("BOD ceiling = %d, want 4", got)
	}
	if want := []string{"magic"}; !slices.Equal(mods.Unlocks, want) {
		t.Fatalf("unlocks = %v, want %v", mods.Unlocks, want)
	}
	if want := []Flag{FlagInfirm, FlagUneducated}; !slices.Equal(mods.Flags, want) {
		t.Fatalf("flags = %v, want %v", mods.Flags, want)
	}
	if !mods.HasFlag(FlagUneducated) || mods.HasFlag(FlagUncouth) {
		t.Fatalf("HasFlag mismatch for %v", mods.Flags)
	}
}

func TestAggregateSkillCeilingsStaySeparate(t *testing.T) {
	c := testCharacter()
	c.Qualities = append(pick("Trained Eye", "Clumsy Hands"),
		QualitySelection{Name: "Aptitude", Category: QualityPositive, Cost: 10, Selected: "Pistols"},
	)
	mods := Aggregate(c, testGameData())

	if got := mods.SkillCeilingDelta["Pistols"]; got != 2 {
		t.Fatalf("Pistols ceiling delta = %d, want 2", got)
	}
	if got := mods.SkillCeiling["Pistols"]; got != 4 {
		t.Fatalf("Pistols ceiling override = %d, want 4", got)
	}
	if got := mods.SkillCeilingFor("Pistols", DefaultSkillMax); got != 4 {
		t.Fatalf("Pistols ceiling = %d, want 4", got)
	}
	if got := mods.SkillCeilingFor("Perception", DefaultSkillMax); got != DefaultSkillMax {
		t.Fatalf("Perception ceiling = %d, want %d", got, DefaultSkillMax)
	}
}

func TestAggregateSelections(t *testing.T) {
	tests := []struct {
		name      string
		selection QualitySelection
		wantSkill int
		wantAttr  int
	}{
		{"skill selection", QualitySelection{Name: "Aptitude", Selected: "Pistols"}, 1, 0},
		{"suffixed instance", QualitySelection{Name: "Aptitude #2", Selected: "Pistols"}, 1, 0},
		{"missing skill selection", QualitySelection{Name: "Aptitude"}, 0, 0},
		{"attribute selection", QualitySelection{Name: "Exceptional Attribute", Selected: "agi"}, 0, 1},
		{"missing attribute selection", QualitySelection{Name: "Exceptional Attribute"}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCharacter()
			c.Qualities = []QualitySelection{tt.selection}
			mods := Aggregate(c, testGameData())
			if got := mods.SkillCeilingDelta["Pistols"]; got != tt.wantSkill {
				t.Fatalf("Pistols delta = %d, want %d", got, tt.wantSkill)
			}
			if got := mods.AttributeCeilingDelta[AttrAgility]; got != tt.wantAttr {
				t.Fatalf("AGI delta = %d, want %d", got, tt.wantAttr)
			}
		})
	}
}

func TestAggregateSkipsUnknownQualities(t *testing.T) {
	c := testCharacter()
	c.Qualities = []QualitySelection{{Name: "Not In Any Book"}, {Name: "Bulky #3"}}

	mods := Aggregate(c, testGameData())
	if got := mods.AttributeBonus[AttrBody]; got != 1 {
		t.Fatalf("BOD bonus = %d, want 1", got)
	}
	if got := Aggregate(c, nil); !reflect.DeepEqual(got, NewModifiers()) {
		t.Fatalf("nil game data = %+v, want identity", got)
	}
}

func TestAggregateResultIsIndependent(t *testing.T) {
	c := testCharacter()
	c.Qualities = pick("Bulky")
	data := testGameData()

	first := Aggregate(c, data)
	first.AttributeBonus[AttrBody] = 99
	if got := Aggregate(c, data).AttributeBonus[AttrBody]; got != 1 {
		t.Fatalf("BOD bonus = %d, want 1", got)
	}
}

func TestNewModifiersIdentity(t *testing.T) {
	mods := NewModifiers()
	if mods.CyberwareEssenceMultiplier != 1 || mods.BiowareEssenceMultiplier != 1 {
		t.Fatalf("multipliers = %v/%v, want 1/1", mods.CyberwareEssenceMultiplier, mods.BiowareEssenceMultiplier)
	}
	if len(mods.Unlocks) != 0 || len(mods.Flags) != 0 || mods.FlySpeed != 0 {
		t.Fatalf("unexpected non-identity modifiers %+v", mods)
	}
}

func TestBaseQualityName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Aptitude", "Aptitude"},
		{"Aptitude #2", "Aptitude"},
		{"Aptitude#12", "Aptitude"},
		{" Exceptional Attribute #3 ", "Exceptional Attribute"},
		{"Catalog #A", "Catalog #A"},
	}
	for _, tt := range tests {
		if got := BaseQualityName(tt.in); got != tt.want {
			t.Fatalf("BaseQualityName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
