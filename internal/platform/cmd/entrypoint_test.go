package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	DataDir string `env:"CMD_TEST_DATA_DIR" envDefault:"data"`
	Format  string `env:"CMD_TEST_FORMAT" envDefault:"text"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("SPRAWLSHEET_CMD_TEST_DATA_DIR", "/env/data")
	t.Setenv("SPRAWLSHEET_CMD_TEST_FORMAT", "json")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "data dir")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "format")

	if err := ParseArgs(fs, []string{"-data-dir", "/flag/data"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.DataDir != "/flag/data" {
		t.Fatalf("expected flag value for data dir, got %q", cfg.DataDir)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected env format, got %q", cfg.Format)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("SPRAWLSHEET_CMD_TEST_FORMAT", "json")

	cfg := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "data-dir", "", "data dir")
	fs.StringVar(&cfg.Format, "format", "", "format")
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-data-dir", "/flag/data"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.DataDir != "/flag/data" {
		t.Fatalf("expected parsed flag data dir, got %q", cfg.DataDir)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected env format, got %q", cfg.Format)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceSheet, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("SPRAWLSHEET_OTEL_ENDPOINT", "")
	want := errors.New("boom")

	called := false
	err := RunWithTelemetry(context.Background(), ServiceCatalogImporter, func(ctx context.Context) error {
		called = true
		if ctx == nil {
			t.Fatal("expected context")
		}
		return want
	})
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
