package shadowrun

import (
	"regexp"
	"strings"
)

// QualityDefinition is one static game-data entry for a quality.
type QualityDefinition struct {
	Name     string
	Category QualityCategory
	Cost     int
	Effects  []Effect
	// Excludes names qualities that cannot be held together with this one.
	Excludes []string
	// Requires names qualities that must all be held before this one.
	Requires []string
	// Limit is the number of instances a character may hold; 0 means one.
	Limit int
}

// MaxInstances returns how many times the quality may be held.
func (d QualityDefinition) MaxInstances() int {
	if d.Limit <= 0 {
		return 1
	}
	return d.Limit
}

// GameData is the read-only reference table the engine looks entries up in.
type GameData struct {
	Qualities map[string]QualityDefinition
}

// NewGameData indexes definitions by name. Later duplicates replace earlier ones.
func NewGameData(defs []QualityDefinition) *GameData {
	data := &GameData{Qualities: make(map[string]QualityDefinition, len(defs))}
	for _, def := range defs {
		data.Qualities[def.Name] = def
	}
	return data
}

// Quality returns the definition for a quality instance name, stripping any
// "#N" disambiguating suffix first. A nil table finds nothing.
func (g *GameData) Quality(name string) (QualityDefinition, bool) {
	if g == nil {
		return QualityDefinition{}, false
	}
	def, ok := g.Qualities[BaseQualityName(name)]
	return def, ok
}

var instanceSuffix = regexp.MustCompile(`\s*#\d+$`)

// BaseQualityName strips the instance suffix from a repeated quality name:
// "Aptitude #2" becomes "Aptitude".
func BaseQualityName(name string) string {
	return strings.TrimSpace(instanceSuffix.ReplaceAllString(strings.TrimSpace(name), ""))
}
