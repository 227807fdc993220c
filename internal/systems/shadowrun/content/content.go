// Package content loads sprawl game data and character snapshots from JSON.
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
)

const (
	// SystemID identifies content written for the sprawl ruleset.
	SystemID = "sprawl"
	// SystemVersion is the content schema version this package reads.
	SystemVersion = "v1"
	// BaseLocale is the locale every content directory must provide.
	BaseLocale = "en-US"

	qualitiesFile = "qualities.json"
)

//go:embed data
var embeddedData embed.FS

// LoadEmbedded returns the game data bundled with the binary.
func LoadEmbedded() (*shadowrun.GameData, error) {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, BaseLocale)
}

// LoadDir loads game data from dir/<locale>/.
func LoadDir(dir, locale string) (*shadowrun.GameData, error) {
	return LoadFS(os.DirFS(dir), locale)
}

// LoadFS loads game data from <locale>/ inside fsys.
func LoadFS(fsys fs.FS, locale string) (*shadowrun.GameData, error) {
	defs, err := ReadQualities(fsys, locale)
	if err != nil {
		return nil, err
	}
	return shadowrun.NewGameData(defs), nil
}

// QualityCatalog is one locale's validated quality file.
type QualityCatalog struct {
	Locale    string
	Source    string
	Qualities []shadowrun.QualityDefinition
}

// ReadQualities reads and validates <locale>/qualities.json. A missing file
// yields no definitions.
func ReadQualities(fsys fs.FS, locale string) ([]shadowrun.QualityDefinition, error) {
	catalog, err := ReadQualityCatalog(fsys, locale)
	if err != nil {
		return nil, err
	}
	return catalog.Qualities, nil
}

// ReadQualityCatalog is ReadQualities keeping the payload's source.
func ReadQualityCatalog(fsys fs.FS, locale string) (QualityCatalog, error) {
	file := path.Join(locale, qualitiesFile)
	p, err := readJSON[payload[QualityRecord]](fsys, file)
	if err != nil || p == nil {
		return QualityCatalog{Locale: locale}, err
	}
	if err := validatePayload(file, locale, p.SystemID, p.SystemVersion, p.Source, p.Locale); err != nil {
		return QualityCatalog{}, err
	}
	defs, err := decodeQualities(file, p.Items)
	if err != nil {
		return QualityCatalog{}, err
	}
	return QualityCatalog{Locale: locale, Source: strings.TrimSpace(p.Source), Qualities: defs}, nil
}

// LocaleDirs lists the locale directories at the root of fsys, sorted.
func LocaleDirs(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	return locales, nil
}

func decodeQualities(file string, items []QualityRecord) ([]shadowrun.QualityDefinition, error) {
	defs := make([]shadowrun.QualityDefinition, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if err := validateRecord(file, i, item); err != nil {
			return nil, err
		}
		name := item.Name
		if _, dup := seen[name]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeContentDuplicateEntry,
				fmt.Sprintf("%s: duplicate quality %q", file, name),
				map[string]string{"Path": file, "Name": name})
		}
		seen[name] = struct{}{}

		def, err := item.Definition()
		if err != nil {
			return nil, fmt.Errorf("%s: quality %q: %w", file, name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// DecodeCharacter reads one character snapshot.
func DecodeCharacter(r io.Reader) (shadowrun.Character, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var c shadowrun.Character
	if err := dec.Decode(&c); err != nil {
		return shadowrun.Character{}, apperrors.Wrap(apperrors.CodeCharacterDecode, "decode character", err)
	}
	return c, nil
}

// ReadCharacterFile reads a character snapshot from a JSON file.
func ReadCharacterFile(name string) (shadowrun.Character, error) {
	f, err := os.Open(name)
	if err != nil {
		return shadowrun.Character{}, apperrors.Wrap(apperrors.CodeCharacterDecode, "open character", err)
	}
	defer f.Close()
	return DecodeCharacter(f)
}

func readJSON[T any](fsys fs.FS, name string) (*T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeContentInvalidPayload,
			fmt.Sprintf("decode %s", name), map[string]string{"Path": name}, err)
	}
	return &value, nil
}

func validatePayload(file, locale, systemID, systemVersion, source, payloadLocale string) error {
	if systemID != SystemID {
		return apperrors.WithMetadata(apperrors.CodeContentUnsupportedSystem,
			fmt.Sprintf("%s: unsupported system id %s", file, systemID),
			map[string]string{"Path": file, "SystemID": systemID})
	}
	if systemVersion != SystemVersion {
		return apperrors.WithMetadata(apperrors.CodeContentUnsupportedSystem,
			fmt.Sprintf("%s: unsupported system version %s", file, systemVersion),
			map[string]string{"Path": file, "SystemID": systemID + "/" + systemVersion})
	}
	if strings.TrimSpace(source) == "" {
		return apperrors.WithMetadata(apperrors.CodeContentInvalidPayload,
			fmt.Sprintf("%s: source is required", file),
			map[string]string{"Path": file})
	}
	if payloadLocale != locale {
		return apperrors.WithMetadata(apperrors.CodeContentLocaleMismatch,
			fmt.Sprintf("%s: locale mismatch: %s", file, payloadLocale),
			map[string]string{"Path": file, "Locale": payloadLocale, "Expected": locale})
	}
	return nil
}
