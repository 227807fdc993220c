// Package messages renders catalog message templates with metadata.
package messages

import (
	"bytes"
	"maps"
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/sprawlsheet/internal/platform/i18n/catalog"
)

// Namespaces rendered through this package.
const (
	NamespaceRules = "rules"
	NamespaceCore  = "core"
)

// Catalog maps message keys to templates for one locale and namespace.
type Catalog struct {
	locale   string
	messages map[string]string
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds built catalogs by namespace and locale.
	catalogs = map[string]*Catalog{}
)

// GetCatalog returns the catalog for a namespace and locale.
// Unknown locales fall back to en-US.
func GetCatalog(namespace, locale string) *Catalog {
	bundle := i18ncatalog.Default()
	resolved := bundle.ResolveLocale(strings.TrimSpace(locale))
	cacheKey := namespace + "/" + resolved

	if c, ok := lookupCatalog(cacheKey); ok {
		return c
	}
	built := NewCatalog(resolved, bundle.NamespaceMessages(resolved, namespace))
	return storeCatalogIfAbsent(cacheKey, built)
}

// Format renders key from the namespace catalog of locale.
func Format(namespace, locale, key string, metadata map[string]string) string {
	return GetCatalog(namespace, locale).Format(key, metadata)
}

// NewCatalog creates a catalog with a private copy of messages.
func NewCatalog(locale string, messages map[string]string) *Catalog {
	cloned := maps.Clone(messages)
	if cloned == nil {
		cloned = map[string]string{}
	}
	return &Catalog{locale: locale, messages: cloned}
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Has reports whether the catalog defines key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.messages[key]
	return ok
}

// Format renders the message template with the given metadata.
// Falls back to the key itself if no template is found, and to the raw
// template when it fails to parse or execute.
func (c *Catalog) Format(key string, metadata map[string]string) string {
	tmpl, ok := c.messages[key]
	if !ok {
		return key
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

func lookupCatalog(key string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[key]
	return cat, ok
}

func storeCatalogIfAbsent(key string, candidate *Catalog) *Catalog {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[key]; ok {
		return existing
	}
	catalogs[key] = candidate
	return candidate
}
