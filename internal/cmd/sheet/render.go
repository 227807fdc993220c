package sheet

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun/content/filter"
)

// sheetWriter prints catalog messages line by line and keeps the first write
// error.
type sheetWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (s *sheetWriter) write(indent, key string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, indent+s.p.Sprintf(key, args...))
}

func (s *sheetWriter) line(key string, args ...any) {
	s.write("", key, args...)
}

func (s *sheetWriter) indented(key string, args ...any) {
	s.write("  ", key, args...)
}

func (s *sheetWriter) section(key string) {
	if s.err == nil {
		_, s.err = fmt.Fprintln(s.w)
	}
	s.line(key)
}

// RenderText writes a human-readable sheet in the given locale.
func RenderText(w io.Writer, locale string, c shadowrun.Character, sheet shadowrun.Sheet) error {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	out := &sheetWriter{w: w, p: message.NewPrinter(tag)}
	d := sheet.Derived

	out.line("sheet.title", c.Name, c.Metatype)

	out.section("sheet.section.condition")
	out.indented("sheet.physical_cm", d.PhysicalCM, d.Overflow)
	out.indented("sheet.stun_cm", d.StunCM)
	out.indented("sheet.wound", d.WoundModifier)

	out.section("sheet.section.initiative")
	out.indented("sheet.initiative", d.Initiative, d.InitiativeDice)
	if c.Magic != nil {
		out.indented("sheet.astral_initiative", d.AstralInitiative, d.AstralInitiativeDice)
	}
	if c.Resonance != nil {
		out.indented("sheet.matrix_initiative", d.MatrixInitiative, d.MatrixInitiativeDice)
	}

	out.section("sheet.section.limits")
	out.indented("sheet.limits", d.PhysicalLimit, d.MentalLimit, d.SocialLimit)

	out.section("sheet.section.movement")
	out.indented("sheet.movement", d.Walk, d.Run, d.Swim, d.Fly)

	out.section("sheet.section.defense")
	out.indented("sheet.armor", d.Ballistic, d.Impact, d.DamageResistance)

	if c.Magic != nil || c.Resonance != nil || d.EssenceCost > 0 {
		out.section("sheet.section.magic")
		if c.Magic != nil {
			out.indented("sheet.drain", d.DrainResistance)
		}
		if c.Resonance != nil {
			out.indented("sheet.fading", d.FadingResistance)
		}
		out.indented("sheet.essence_cost", d.EssenceCost)
	}

	out.section("sheet.section.pools")
	for _, pool := range d.DicePools {
		switch {
		case !pool.Available:
			out.indented("sheet.pool_unavailable", pool.Name)
		case pool.Defaulted:
			out.indented("sheet.pool_defaulted", pool.Name, pool.Pool)
		default:
			out.indented("sheet.pool", pool.Name, pool.Pool)
		}
	}

	v := sheet.Validation
	out.section("sheet.section.issues")
	for _, issue := range v.Issues {
		out.indented("sheet.issue", issue.Severity, issue.Code, issue.Message)
	}
	if v.Valid {
		out.line("sheet.valid", v.Warnings, v.Infos)
	} else {
		out.line("sheet.invalid", v.Errors, v.Warnings, v.Infos)
	}
	return out.err
}

func listQualities(w io.Writer, cfg Config, defs []shadowrun.QualityDefinition) error {
	matched, err := filter.Qualities(defs, cfg.Filter)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, def := range matched {
		excludes := "-"
		if len(def.Excludes) > 0 {
			excludes = strings.Join(def.Excludes, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", def.Name, def.Category, def.Cost, def.MaxInstances(), excludes)
	}
	return tw.Flush()
}

func sortedDefinitions(data *shadowrun.GameData) []shadowrun.QualityDefinition {
	defs := make([]shadowrun.QualityDefinition, 0, len(data.Qualities))
	for _, name := range slices.Sorted(maps.Keys(data.Qualities)) {
		defs = append(defs, data.Qualities[name])
	}
	return defs
}
