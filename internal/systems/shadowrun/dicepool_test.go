package shadowrun

import "testing"

func TestDicePool(t *testing.T) {
	hacking := StandardTest{Name: "Hacking", Skill: "Hacking", Attribute: AttrLogic, Category: SkillCategoryTechnical, AllowDefault: true}
	etiquette := StandardTest{Name: "Etiquette", Skill: "Etiquette", Attribute: AttrCharisma, Category: SkillCategorySocial, AllowDefault: true}
	pistols := StandardTest{Name: "Pistols", Skill: "Pistols", Attribute: AttrAgility, Category: SkillCategoryCombat, AllowDefault: true}

	tests := []struct {
		name          string
		test          StandardTest
		qualities     []string
		wound         int
		wantPool      int
		wantDefaulted bool
		wantAvailable bool
	}{
		{name: "held skill", test: pistols, wantPool: 8, wantAvailable: true},
		{name: "held skill with bonuses", test: pistols, qualities: []string{"Gun Nut", "Trained Eye"}, wantPool: 10, wantAvailable: true},
		{name: "held skill wounded", test: pistols, wound: -2, wantPool: 6, wantAvailable: true},
		{name: "defaults to attribute minus one", test: hacking, wantPool: 2, wantDefaulted: true, wantAvailable: true},
		{name: "defaulting wounded floors at zero", test: hacking, wound: -3, wantPool: 0, wantDefaulted: true, wantAvailable: true},
		{name: "uneducated cannot default technical", test: hacking, qualities: []string{"Uneducated"}},
		{name: "uncouth cannot default social", test: etiquette, qualities: []string{"Uncouth"}},
		{name: "uneducated still defaults social", test: etiquette, qualities: []string{"Uneducated"}, wantPool: 1, wantDefaulted: true, wantAvailable: true},
		{name: "test forbids defaulting", test: StandardTest{Name: "Spellcasting", Skill: "Spellcasting", Attribute: AttrMagic}},
		{name: "held pool floors at zero", test: pistols, wound: -20, wantPool: 0, wantAvailable: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCharacter()
			c.Qualities = pick(tt.qualities...)
			mods := Aggregate(c, testGameData())

			got := DicePool(c, mods, tt.test, tt.wound)
			if got.Pool != tt.wantPool {
				t.Fatalf("pool = %d, want %d", got.Pool, tt.wantPool)
			}
			if got.Defaulted != tt.wantDefaulted {
				t.Fatalf("defaulted = %v, want %v", got.Defaulted, tt.wantDefaulted)
			}
			if got.Available != tt.wantAvailable {
				t.Fatalf("available = %v, want %v", got.Available, tt.wantAvailable)
			}
		})
	}
}

func TestDicePoolUnratedSkillDefaults(t *testing.T) {
	c := testCharacter()
	c.Skills = append(c.Skills, Skill{Name: "Running", Rating: 0, Attribute: AttrStrength, Category: SkillCategoryPhysical})
	c.Qualities = pick("Infirm")
	mods := Aggregate(c, testGameData())

	got := DicePool(c, mods, StandardTest{Name: "Running", Skill: "Running", Attribute: AttrStrength, AllowDefault: true}, 0)
	if got.Available {
		t.Fatalf("infirm character defaulted on a physical skill: %+v", got)
	}
}

func TestSkillPoolsCoverHeldSkillsAndStandardTests(t *testing.T) {
	c := testCharacter()
	rs := DefaultRuleset()
	pools := SkillPools(c, NewModifiers(), rs, 0)

	want := []string{"Perception", "Pistols", "Dodge", "Unarmed Combat", "Etiquette", "Hacking"}
	if len(pools) != len(want) {
		t.Fatalf("pools = %d, want %d", len(pools), len(want))
	}
	for i, name := range want {
		if pools[i].Name != name {
			t.Fatalf("pool %d = %q, want %q", i, pools[i].Name, name)
		}
	}
}
