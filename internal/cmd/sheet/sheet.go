// Package sheet parses sheet command configuration and evaluates character
// snapshots against the sprawl ruleset.
package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	entrypoint "github.com/louisbranch/sprawlsheet/internal/platform/cmd"
	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
	"github.com/louisbranch/sprawlsheet/internal/platform/i18n/catalog"
	"github.com/louisbranch/sprawlsheet/internal/platform/otel"
	"github.com/louisbranch/sprawlsheet/internal/platform/telemetry/metrics"
	storagesqlite "github.com/louisbranch/sprawlsheet/internal/storage/sqlite"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun/content"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun/content/filter"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds sheet command configuration.
type Config struct {
	Character   string `env:"CHARACTER"`
	DataDir     string `env:"DATA_DIR"`
	DBPath      string `env:"CONTENT_DB"`
	Locale      string `env:"LOCALE" envDefault:"en-US"`
	Format      string `env:"FORMAT" envDefault:"text"`
	BuildPoints int    `env:"BUILD_POINTS" envDefault:"400"`
	SkillMax    int    `env:"SKILL_MAX" envDefault:"6"`
	// ListQualities prints the quality catalog instead of evaluating.
	ListQualities bool   `env:"LIST_QUALITIES"`
	Filter        string `env:"FILTER"`
	// ExplainFilter prints the parsed filter tree and exits.
	ExplainFilter bool   `env:"EXPLAIN_FILTER"`
	MetricsFile   string `env:"METRICS_FILE"`
}

// ParseConfig parses environment and flags into a Config. A single positional
// argument names the character file.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Character, "character", cfg.Character, "character snapshot JSON file")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "content directory with <locale>/qualities.json (default: embedded)")
	fs.StringVar(&cfg.DBPath, "content-db", cfg.DBPath, "SQLite content catalog written by catalog-importer")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for content and messages")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	fs.IntVar(&cfg.BuildPoints, "build-points", cfg.BuildPoints, "build point allowance when the character does not record one")
	fs.IntVar(&cfg.SkillMax, "skill-max", cfg.SkillMax, "default skill rating ceiling")
	fs.BoolVar(&cfg.ListQualities, "list-qualities", cfg.ListQualities, "list catalog qualities instead of evaluating")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, `AIP-160 quality filter, e.g. category = "Negative"`)
	fs.BoolVar(&cfg.ExplainFilter, "explain-filter", cfg.ExplainFilter, "print the parsed filter expression as JSON")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus textfile metrics to this path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) > 1 {
			return Config{}, errors.New("at most one character file may be given")
		}
		cfg.Character = rest[0]
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return Config{}, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	if cfg.DataDir != "" && cfg.DBPath != "" {
		return Config{}, errors.New("data-dir and content-db are mutually exclusive")
	}
	if !cfg.ListQualities && !cfg.ExplainFilter && strings.TrimSpace(cfg.Character) == "" {
		return Config{}, errors.New("character file is required")
	}
	return cfg, nil
}

// Ruleset returns the default ruleset with the configured overrides.
func (c Config) Ruleset() (shadowrun.Ruleset, error) {
	rs := shadowrun.DefaultRuleset()
	rs.BuildPoints = c.BuildPoints
	rs.SkillMax = c.SkillMax
	rs.Locale = catalog.Default().ResolveLocale(c.Locale)
	if err := rs.Validate(); err != nil {
		return shadowrun.Ruleset{}, apperrors.Wrap(apperrors.CodeRulesetInvalid, "invalid ruleset", err)
	}
	return rs, nil
}

// Run evaluates the configured character, or lists qualities, and writes
// the result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSheet, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.ExplainFilter {
		tree, err := filter.Explain(cfg.Filter)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", tree)
		return err
	}
	rs, err := cfg.Ruleset()
	if err != nil {
		return err
	}

	rec := metrics.New()
	data, defs, err := loadContent(ctx, cfg, rs.Locale, rec)
	if err != nil {
		return err
	}
	if cfg.ListQualities {
		if err := listQualities(out, cfg, defs); err != nil {
			return err
		}
		return rec.WriteFile(cfg.MetricsFile)
	}

	c, err := content.ReadCharacterFile(cfg.Character)
	if err != nil {
		return err
	}

	_, span := otel.Tracer().Start(ctx, "sheet.evaluate")
	started := time.Now()
	sheet := shadowrun.Evaluate(c, data, rs)
	rec.ObserveEvaluation(sheet.Validation.Valid, time.Since(started))
	for _, issue := range sheet.Validation.Issues {
		rec.ObserveIssue(string(issue.Code), string(issue.Severity))
	}
	span.SetAttributes(
		attribute.Bool("sprawl.valid", sheet.Validation.Valid),
		attribute.Int("sprawl.errors", sheet.Validation.Errors),
		attribute.Int("sprawl.warnings", sheet.Validation.Warnings),
	)
	span.End()
	log.Printf("evaluated %s: %d errors, %d warnings", c.Name, sheet.Validation.Errors, sheet.Validation.Warnings)
	if err := rec.WriteFile(cfg.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	if cfg.Format == FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sheet)
	}
	return RenderText(out, rs.Locale, c, sheet)
}

// loadContent reads game data for the resolved locale from the SQLite
// catalog, a content directory, or the embedded table, in that order of
// preference.
func loadContent(ctx context.Context, cfg Config, locale string, rec *metrics.Recorder) (*shadowrun.GameData, []shadowrun.QualityDefinition, error) {
	ctx, span := otel.Tracer().Start(ctx, "content.load")
	defer span.End()

	var (
		data   *shadowrun.GameData
		source string
		err    error
	)
	switch {
	case cfg.DBPath != "":
		source = "sqlite"
		store, openErr := storagesqlite.Open(ctx, cfg.DBPath)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open content store: %w", openErr)
		}
		defer store.Close()
		data, err = store.LoadGameData(ctx, locale)
	case cfg.DataDir != "":
		source = "dir"
		data, err = content.LoadDir(cfg.DataDir, locale)
	default:
		source = "embedded"
		data, err = content.LoadEmbedded()
	}
	if err != nil {
		span.RecordError(err)
		return nil, nil, fmt.Errorf("load content: %w", err)
	}
	span.SetAttributes(
		attribute.String("sprawl.content", source),
		attribute.Int("sprawl.qualities", len(data.Qualities)),
	)
	rec.SetContentQualities(source, len(data.Qualities))
	return data, sortedDefinitions(data), nil
}
