// Package catalog loads the embedded message catalogs and registers them with
// golang.org/x/text/message.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// Bundle holds every locale's messages, grouped by namespace.
//
// A Bundle is immutable once loaded.
type Bundle struct {
	locales map[string]map[string]map[string]string
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]map[string]string{}}
	seen := map[string]map[string]string{}
	for _, file := range paths {
		data, err := fs.ReadFile(catalogFS, file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", file, err)
		}
		locale, namespace, messages, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", file, err)
		}
		if want := path.Base(path.Dir(file)); locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match path locale %q", file, locale, want)
		}
		if want := strings.TrimSuffix(path.Base(file), path.Ext(file)); namespace != want {
			return nil, fmt.Errorf("catalog %s: namespace %q must match filename %q", file, namespace, want)
		}
		if seen[locale] == nil {
			seen[locale] = map[string]string{}
			bundle.locales[locale] = map[string]map[string]string{}
		}
		for key := range messages {
			if owner, dup := seen[locale][key]; dup {
				return nil, fmt.Errorf("catalog %s: key %q already defined in namespace %q", file, key, owner)
			}
			seen[locale][key] = namespace
		}
		bundle.locales[locale][namespace] = messages
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

// Register registers every message with x/text/message under the locale tag
// and its base language.
func (b *Bundle) Register() error {
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		for _, messages := range b.locales[locale] {
			for key, value := range messages {
				for _, registerTag := range tags {
					if err := message.SetString(registerTag, key, value); err != nil {
						return fmt.Errorf("register %s/%s: %w", locale, key, err)
					}
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message with base-locale fallback.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	for _, candidate := range []string{strings.TrimSpace(locale), BaseLocale} {
		for _, messages := range b.locales[candidate] {
			if value, ok := messages[key]; ok {
				return value, true
			}
		}
	}
	return "", false
}

// NamespaceMessages returns a copy of one namespace for a locale, falling back
// key by key to the base locale.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	for key, value := range b.locales[BaseLocale][namespace] {
		out[key] = value
	}
	if locale = strings.TrimSpace(locale); locale != BaseLocale {
		for key, value := range b.locales[locale][namespace] {
			out[key] = value
		}
	}
	return out
}

// ResolveLocale returns the bundle's spelling of locale, matched without
// regard to case, or the base locale when the bundle does not define it.
func (b *Bundle) ResolveLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if b.HasLocale(locale) {
		return locale
	}
	for _, known := range b.Locales() {
		if strings.EqualFold(known, locale) {
			return known
		}
	}
	return BaseLocale
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// parseCatalogFile decodes one locales/<locale>/<namespace>.yaml document.
// Unknown top-level keys and duplicate message keys are rejected.
func parseCatalogFile(data []byte) (locale, namespace string, messages map[string]string, err error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return "", "", nil, fmt.Errorf("decode yaml: %w", err)
	}
	for key := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return "", "", nil, fmt.Errorf("message key cannot be blank")
		}
	}
	switch {
	case strings.TrimSpace(file.Locale) == "":
		return "", "", nil, fmt.Errorf("missing locale")
	case strings.TrimSpace(file.Namespace) == "":
		return "", "", nil, fmt.Errorf("missing namespace")
	case len(file.Messages) == 0:
		return "", "", nil, fmt.Errorf("missing messages")
	}
	return file.Locale, file.Namespace, file.Messages, nil
}
