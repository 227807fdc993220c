package catalogimporter

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	storagesqlite "github.com/louisbranch/sprawlsheet/internal/storage/sqlite"
)

const baseCatalog = `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"en-US","items":[
	{"name":"Guts","category":"Positive","cost":5,"effects":[{"kind":"stat_bonus","stat":"composure","value":2}]},
	{"name":"Uncouth","category":"Negative","cost":-20,"effects":[{"kind":"flag","flag":"uncouth"}]}]}`

func writeCatalog(t *testing.T, root, locale, body string) {
	t.Helper()
	dir := filepath.Join(root, locale)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "qualities.json"), []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
}

func TestParseConfig(t *testing.T) {
	t.Setenv("SPRAWLSHEET_DB_PATH", "/tmp/env.db")

	fs := flag.NewFlagSet("catalog-importer", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-dir", "catalogs", "-dry-run"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Dir != "catalogs" || !cfg.DryRun {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Fatalf("db path = %q, want env value", cfg.DBPath)
	}
	if cfg.BaseLocale != "en-US" {
		t.Fatalf("base locale = %q", cfg.BaseLocale)
	}
}

func TestParseConfigRequiresDir(t *testing.T) {
	fs := flag.NewFlagSet("catalog-importer", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected dir error")
	}
}

func TestRunDryRun(t *testing.T) {
	root := t.TempDir()
	writeCatalog(t, root, "en-US", baseCatalog)
	dbPath := filepath.Join(t.TempDir(), "content.db")
	metricsPath := filepath.Join(t.TempDir(), "dry-run.prom")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Dir: root, DBPath: dbPath, BaseLocale: "en-US", DryRun: true, MetricsFile: metricsPath}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "validated 1 locale(s)") {
		t.Fatalf("output = %q", out.String())
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("dry run should not create the database, stat err = %v", err)
	}
	prom, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(prom), `sprawlsheet_validated_qualities_total{locale="en-US"} 2`) {
		t.Fatalf("metrics = %s", prom)
	}
	if strings.Contains(string(prom), "sprawlsheet_imported_qualities_total{") {
		t.Fatalf("dry run reported imports: %s", prom)
	}
}

func TestRunImportsEveryLocale(t *testing.T) {
	root := t.TempDir()
	writeCatalog(t, root, "en-US", baseCatalog)
	writeCatalog(t, root, "pt-BR", strings.Replace(baseCatalog, `"locale":"en-US"`, `"locale":"pt-BR"`, 1))
	dbPath := filepath.Join(t.TempDir(), "content.db")
	metricsPath := filepath.Join(t.TempDir(), "import.prom")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Dir: root, DBPath: dbPath, BaseLocale: "en-US", MetricsFile: metricsPath}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "imported 2 locale(s)") {
		t.Fatalf("output = %q", out.String())
	}
	prom, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(prom), `sprawlsheet_imported_qualities_total{locale="pt-BR"}`) {
		t.Fatalf("metrics = %s", prom)
	}

	store, err := storagesqlite.Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	for _, locale := range []string{"en-US", "pt-BR"} {
		entry, err := store.GetQuality(context.Background(), locale, "Guts")
		if err != nil {
			t.Fatalf("get %s quality: %v", locale, err)
		}
		if entry.Source != "core" || len(entry.Definition.Effects) != 1 {
			t.Fatalf("%s entry = %+v", locale, entry)
		}
	}
}

func TestRunRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, root string)
		wantErr string
	}{
		{
			name:    "no locales",
			setup:   func(*testing.T, string) {},
			wantErr: "no locale directories",
		},
		{
			name: "missing base locale",
			setup: func(t *testing.T, root string) {
				writeCatalog(t, root, "pt-BR", strings.Replace(baseCatalog, `"locale":"en-US"`, `"locale":"pt-BR"`, 1))
			},
			wantErr: "base-locale en-US not found",
		},
		{
			name: "locale mismatch",
			setup: func(t *testing.T, root string) {
				writeCatalog(t, root, "en-US", strings.Replace(baseCatalog, `"locale":"en-US"`, `"locale":"de-DE"`, 1))
			},
			wantErr: "locale mismatch",
		},
		{
			name: "translation adds a quality",
			setup: func(t *testing.T, root string) {
				writeCatalog(t, root, "en-US", baseCatalog)
				writeCatalog(t, root, "pt-BR", `{"system_id":"sprawl","system_version":"v1","source":"core","locale":"pt-BR","items":[
					{"name":"Coragem","category":"Positive","cost":5}]}`)
			},
			wantErr: `quality "Coragem" missing from base locale`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)
			err := Run(context.Background(), Config{Dir: root, BaseLocale: "en-US", DryRun: true}, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
