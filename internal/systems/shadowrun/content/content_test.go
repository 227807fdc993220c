package content

import (
	"strings"
	"testing"
	"testing/fstest"

	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
)

func qualitiesFS(body string) fstest.MapFS {
	return fstest.MapFS{
		"en-US/qualities.json": &fstest.MapFile{Data: []byte(body)},
	}
}

func TestLoadEmbedded(t *testing.T) {
	data, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	for _, name := range []string{"Aptitude", "Magician", "Sensitive System", "Will to Live"} {
		if _, ok := data.Quality(name); !ok {
			t.Fatalf("expected embedded quality %q", name)
		}
	}

	def, _ := data.Quality("Magician")
	if len(def.Excludes) != 1 || def.Excludes[0] != "Technomancer" {
		t.Fatalf("Magician excludes = %v", def.Excludes)
	}
	will, _ := data.Quality("Will to Live #2")
	if will.MaxInstances() != 3 {
		t.Fatalf("Will to Live instances = %d, want 3", will.MaxInstances())
	}
}

func TestEmbeddedQualitiesEvaluate(t *testing.T) {
	data, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	c, err := ReadCharacterFile("testdata/street_samurai.json")
	if err != nil {
		t.Fatalf("read character: %v", err)
	}

	mods := shadowrun.Aggregate(c, data)
	if got := mods.Stat(shadowrun.StatInitiative); got != -2 {
		t.Fatalf("initiative modifier = %d, want -2", got)
	}
	if got := mods.SkillCeilingFor("Pistols", 6); got != 7 {
		t.Fatalf("Pistols ceiling = %d, want 7", got)
	}

	result := shadowrun.Validate(c, data, shadowrun.DefaultRuleset())
	if !result.Valid {
		t.Fatalf("expected sample build to be valid, got %+v", result.Issues)
	}
}

func TestReadQualitiesRejectsBadEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		code apperrors.Code
	}{
		{
			name: "system id",
			body: `{"system_id":"other","system_version":"v1","source":"core","locale":"en-US","items":[]}`,
			code: apperrors.CodeContentUnsupportedSystem,
		},
		{
			name: "system version",
			body: `{"system_id":"sprawl","system_version":"v9","source":"core","locale":"en-US","items":[]}`,
			code: apperrors.CodeContentUnsupportedSystem,
		},
		{
			name: "source",
			body: `{"system_id":"sprawl","system_version":"v1","source":" ","locale":"en-US","items":[]}`,
			code: apperrors.CodeContentInvalidPayload,
		},
		{
			name: "locale",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"pt-BR","items":[]}`,
			code: apperrors.CodeContentLocaleMismatch,
		},
		{
			name: "malformed json",
			body: `{"system_id":`,
			code: apperrors.CodeContentInvalidPayload,
		},
		{
			name: "duplicate",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
				{"name":"Guts","category":"Positive","cost":5},
				{"name":"Guts","category":"Positive","cost":5}]}`,
			code: apperrors.CodeContentDuplicateEntry,
		},
		{
			name: "blank name",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
				{"name":"","category":"Positive","cost":5}]}`,
			code: apperrors.CodeContentInvalidPayload,
		},
		{
			name: "category",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
				{"name":"Guts","category":"Neutral","cost":5}]}`,
			code: apperrors.CodeContentInvalidPayload,
		},
		{
			name: "blank exclude",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
				{"name":"Guts","category":"Positive","cost":5,"excludes":[""]}]}`,
			code: apperrors.CodeContentInvalidPayload,
		},
		{
			name: "negative limit",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
				{"name":"Guts","category":"Positive","cost":5,"limit":-1}]}`,
			code: apperrors.CodeContentInvalidPayload,
		},
		{
			name: "unknown effect",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
				{"name":"Guts","category":"Positive","cost":5,"effects":[{"kind":"teleport"}]}]}`,
			code: apperrors.CodeContentUnknownEffect,
		},
		{
			name: "invalid effect",
			body: `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
				{"name":"Guts","category":"Positive","cost":5,"effects":[{"kind":"stat_bonus","stat":"luck"}]}]}`,
			code: apperrors.CodeContentInvalidEffect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadQualities(qualitiesFS(tt.body), "en-US")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.CodeOf(err); got != tt.code {
				t.Fatalf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
}

func TestReadQualitiesMissingFile(t *testing.T) {
	defs, err := ReadQualities(fstest.MapFS{}, "en-US")
	if err != nil {
		t.Fatalf("read qualities: %v", err)
	}
	if len(defs) != 0 {
		t.Fatalf("expected no definitions, got %d", len(defs))
	}
}

func TestLoadFSTrimsNames(t *testing.T) {
	data, err := LoadFS(qualitiesFS(`{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
		{"name":"  Guts ","category":"Positive","cost":5,"effects":[{"kind":"stat_bonus","stat":"composure","value":2}]}]}`), "en-US")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	def, ok := data.Quality("Guts")
	if !ok {
		t.Fatal("expected trimmed quality name")
	}
	if len(def.Effects) != 1 || def.Effects[0] != (shadowrun.StatBonus{Stat: shadowrun.StatComposure, Value: 2}) {
		t.Fatalf("effects = %#v", def.Effects)
	}
}

func TestRecordRoundTripKeepsEffects(t *testing.T) {
	def := shadowrun.QualityDefinition{
		Name:     "Wings",
		Category: shadowrun.QualityPositive,
		Cost:     20,
		Effects: []shadowrun.Effect{
			shadowrun.FlySpeed{Value: 6},
			shadowrun.PercentModifier{Target: shadowrun.PercentMovement, Percent: -25},
		},
		Limit: 1,
	}
	rec, err := RecordOf(def)
	if err != nil {
		t.Fatalf("record of: %v", err)
	}
	got, err := rec.Definition()
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	if len(got.Effects) != 2 || got.Effects[0] != def.Effects[0] || got.Effects[1] != def.Effects[1] {
		t.Fatalf("effects = %#v", got.Effects)
	}
}

func TestDecodeCharacter(t *testing.T) {
	c, err := DecodeCharacter(strings.NewReader(`{"name":"Ash","metatype":"Ork","essence":6}`))
	if err != nil {
		t.Fatalf("decode character: %v", err)
	}
	if c.Name != "Ash" || c.Metatype != "Ork" || c.Essence != 6 {
		t.Fatalf("character = %+v", c)
	}

	_, err = DecodeCharacter(strings.NewReader(`{"name":"Ash","hitpoints":3}`))
	if got := apperrors.CodeOf(err); got != apperrors.CodeCharacterDecode {
		t.Fatalf("unknown field code = %s, want %s", got, apperrors.CodeCharacterDecode)
	}
	_, err = DecodeCharacter(strings.NewReader(`[`))
	if got := apperrors.CodeOf(err); got != apperrors.CodeCharacterDecode {
		t.Fatalf("malformed code = %s, want %s", got, apperrors.CodeCharacterDecode)
	}
}

func TestReadQualityCatalogKeepsSource(t *testing.T) {
	catalog, err := ReadQualityCatalog(qualitiesFS(`{"system_id":"sprawl","system_version":"v1","source":" street ","locale":"en-US","items":[
		{"name":"Guts","category":"Positive","cost":5}]}`), "en-US")
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if catalog.Source != "street" || catalog.Locale != "en-US" || len(catalog.Qualities) != 1 {
		t.Fatalf("catalog = %+v", catalog)
	}
}

func TestLocaleDirs(t *testing.T) {
	fsys := fstest.MapFS{
		"pt-BR/qualities.json": &fstest.MapFile{Data: []byte("{}")},
		"en-US/qualities.json": &fstest.MapFile{Data: []byte("{}")},
		"README.md":            &fstest.MapFile{Data: []byte("notes")},
	}
	locales, err := LocaleDirs(fsys)
	if err != nil {
		t.Fatalf("locale dirs: %v", err)
	}
	if len(locales) != 2 || locales[0] != "en-US" || locales[1] != "pt-BR" {
		t.Fatalf("locales = %v", locales)
	}
}
