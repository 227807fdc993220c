// Package catalogimporter validates quality catalogs on disk and imports them
// into the SQLite content store.
package catalogimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	entrypoint "github.com/louisbranch/sprawlsheet/internal/platform/cmd"
	"github.com/louisbranch/sprawlsheet/internal/platform/otel"
	"github.com/louisbranch/sprawlsheet/internal/platform/telemetry/metrics"
	"github.com/louisbranch/sprawlsheet/internal/storage"
	storagesqlite "github.com/louisbranch/sprawlsheet/internal/storage/sqlite"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun/content"
)

// Config holds configuration for the catalog importer.
type Config struct {
	Dir        string `env:"CATALOG_DIR"`
	DBPath     string `env:"DB_PATH" envDefault:"data/sprawl-content.db"`
	BaseLocale string `env:"BASE_LOCALE" envDefault:"en-US"`
	DryRun     bool   `env:"CATALOG_DRY_RUN"`
	// MetricsFile receives Prometheus textfile metrics after an import.
	MetricsFile string `env:"METRICS_FILE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory containing locale subfolders")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.StringVar(&cfg.BaseLocale, "base-locale", cfg.BaseLocale, "locale every catalog must provide")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "validate without writing to the database")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus textfile metrics to this path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}
	if strings.TrimSpace(cfg.BaseLocale) == "" {
		return Config{}, errors.New("base-locale is required")
	}
	return cfg, nil
}

// Run validates every locale under cfg.Dir and, unless DryRun is set, writes
// each locale's qualities to the content store in one transaction.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCatalogImporter, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return errors.New("dir is required")
	}
	baseLocale := strings.TrimSpace(cfg.BaseLocale)

	fsys := os.DirFS(dir)
	locales, err := content.LocaleDirs(fsys)
	if err != nil {
		return err
	}
	if len(locales) == 0 {
		return errors.New("no locale directories found")
	}
	if !slices.Contains(locales, baseLocale) {
		return fmt.Errorf("base-locale %s not found in %s", baseLocale, dir)
	}

	rec := metrics.New()
	catalogs := make([]content.QualityCatalog, 0, len(locales))
	for _, locale := range locales {
		catalog, err := content.ReadQualityCatalog(fsys, locale)
		if err != nil {
			return fmt.Errorf("validate %s: %w", locale, err)
		}
		catalogs = append(catalogs, catalog)
	}
	if err := checkBaseCoverage(catalogs, baseLocale); err != nil {
		return err
	}
	for _, catalog := range catalogs {
		rec.AddValidated(catalog.Locale, len(catalog.Qualities))
	}

	if cfg.DryRun {
		if err := rec.WriteFile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		_, err = fmt.Fprintf(out, "validated %d locale(s)\n", len(locales))
		return err
	}

	store, err := storagesqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	now := time.Now().UTC()
	for _, catalog := range catalogs {
		if err := importCatalog(ctx, store, catalog, now); err != nil {
			return fmt.Errorf("import %s: %w", catalog.Locale, err)
		}
		rec.AddImported(catalog.Locale, len(catalog.Qualities))
		log.Printf("imported %d qualities for %s", len(catalog.Qualities), catalog.Locale)
	}
	if err := rec.WriteFile(cfg.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	_, err = fmt.Fprintf(out, "imported %d locale(s) into %s\n", len(locales), filepath.Clean(cfg.DBPath))
	return err
}

func importCatalog(ctx context.Context, store storage.ContentStore, catalog content.QualityCatalog, now time.Time) error {
	ctx, span := otel.Tracer().Start(ctx, "catalog.import")
	defer span.End()
	span.SetAttributes(
		attribute.String("sprawl.locale", catalog.Locale),
		attribute.Int("sprawl.qualities", len(catalog.Qualities)),
	)

	entries := make([]storage.QualityEntry, 0, len(catalog.Qualities))
	for _, def := range catalog.Qualities {
		entries = append(entries, storage.QualityEntry{
			Locale:     catalog.Locale,
			Source:     catalog.Source,
			Definition: def,
			UpdatedAt:  now,
		})
	}
	if err := store.PutQualities(ctx, entries); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// checkBaseCoverage requires every quality of a translated locale to exist in
// the base locale.
func checkBaseCoverage(catalogs []content.QualityCatalog, baseLocale string) error {
	var base map[string]struct{}
	for _, catalog := range catalogs {
		if catalog.Locale == baseLocale {
			base = qualityNames(catalog)
		}
	}
	for _, catalog := range catalogs {
		if catalog.Locale == baseLocale {
			continue
		}
		names := qualityNames(catalog)
		for name := range names {
			if _, ok := base[name]; !ok {
				return fmt.Errorf("validate %s: quality %q missing from base locale %s", catalog.Locale, name, baseLocale)
			}
		}
	}
	return nil
}

func qualityNames(catalog content.QualityCatalog) map[string]struct{} {
	names := make(map[string]struct{}, len(catalog.Qualities))
	for _, def := range catalog.Qualities {
		names[def.Name] = struct{}{}
	}
	return names
}
