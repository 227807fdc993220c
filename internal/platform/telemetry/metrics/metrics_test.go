package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.ObserveEvaluation(true, 2*time.Millisecond)
	r.ObserveEvaluation(false, time.Millisecond)
	r.ObserveEvaluation(false, time.Millisecond)
	r.ObserveIssue("BP_OVERSPENT", "error")
	r.SetContentQualities("embedded", 42)
	r.AddValidated("pt-BR", 3)
	r.AddImported("en-US", 10)
	r.AddImported("en-US", 5)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "valid", got: testutil.ToFloat64(r.Evaluations.WithLabelValues("true")), want: 1},
		{name: "invalid", got: testutil.ToFloat64(r.Evaluations.WithLabelValues("false")), want: 2},
		{name: "issue", got: testutil.ToFloat64(r.Issues.WithLabelValues("BP_OVERSPENT", "error")), want: 1},
		{name: "content", got: testutil.ToFloat64(r.ContentQualities.WithLabelValues("embedded")), want: 42},
		{name: "validated", got: testutil.ToFloat64(r.ValidatedQualities.WithLabelValues("pt-BR")), want: 3},
		{name: "imported", got: testutil.ToFloat64(r.ImportedQualities.WithLabelValues("en-US")), want: 15},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if n := testutil.CollectAndCount(r.EvaluationDuration); n != 1 {
		t.Fatalf("duration series = %d, want 1", n)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveEvaluation(true, time.Second)
	r.ObserveIssue("X", "error")
	r.SetContentQualities("dir", 1)
	r.AddValidated("en-US", 1)
	r.AddImported("en-US", 1)
	if err := r.WriteFile(filepath.Join(t.TempDir(), "m.prom")); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	r := New()
	r.ObserveIssue("ESSENCE_MISMATCH", "warning")

	if err := r.WriteFile(""); err != nil {
		t.Fatalf("empty path: %v", err)
	}
	path := filepath.Join(t.TempDir(), "sheet.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := `sprawlsheet_validation_issues_total{code="ESSENCE_MISMATCH",severity="warning"} 1`
	if !strings.Contains(string(data), want) {
		t.Fatalf("textfile missing %q:\n%s", want, data)
	}
}
