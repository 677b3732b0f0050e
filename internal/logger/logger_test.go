package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/neocompliance/neocompliance/internal/analyzer"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

func TestAuditLogger_Log(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test_audit.jsonl")

	logger, err := New(logPath)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Close()
	}()

	event := AnalysisEvent{
		ID:                "a1",
		Timestamp:         "2026-02-02T12:00:00Z",
		Source:            "ad.txt",
		Excerpt:           "Best loan ever. Mail offers@bank.example to apply.",
		DetectedStandards: []string{"Financial"},
		PrimaryCategory:   "Financial",
		ComplianceScore:   50,
	}

	if err := logger.Log(event); err != nil {
		t.Fatalf("failed to log event: %v", err)
	}

	_ = logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var parsed AnalysisEvent
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to parse log line as JSON: %v", err)
	}

	if parsed.PrimaryCategory != "Financial" || parsed.ComplianceScore != 50 {
		t.Errorf("unexpected event %+v", parsed)
	}
	if strings.Contains(parsed.Excerpt, "offers@bank.example") {
		t.Errorf("excerpt was not redacted: %q", parsed.Excerpt)
	}
	if len(parsed.Redactions) != 1 || parsed.Redactions[0] != "email" {
		t.Errorf("redactions = %v", parsed.Redactions)
	}
}

func TestAuditLogger_Rotation(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "audit.jsonl")

	// Pre-create the log file already at the rotation limit.
	big := make([]byte, defaultMaxLogBytes)
	if err := os.WriteFile(logPath, big, 0600); err != nil {
		t.Fatalf("failed to seed large log file: %v", err)
	}

	lg, err := New(logPath)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = lg.Close() }()

	event := AnalysisEvent{ID: "r1", Timestamp: "2026-03-01T00:00:00Z", Excerpt: "hello"}
	if err := lg.Log(event); err != nil {
		t.Fatalf("Log after rotation failed: %v", err)
	}

	// .1 backup must exist
	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("expected rotated file %s.1 to exist: %v", logPath, err)
	}

	// Fresh log must be small (just the one new line)
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("fresh log file missing: %v", err)
	}
	if info.Size() >= defaultMaxLogBytes {
		t.Errorf("fresh log file is still %d bytes; expected < %d", info.Size(), defaultMaxLogBytes)
	}
}

func TestAuditLogger_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "secure_audit.jsonl")

	logger, err := New(logPath)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("failed to stat log file: %v", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("expected file permissions 0600, got %04o", perm)
	}
}

func TestAuditLogger_LogAfterClose(t *testing.T) {
	lg, err := New(filepath.Join(t.TempDir(), "audit.jsonl"))
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	_ = lg.Close()
	if err := lg.Log(AnalysisEvent{ID: "x"}); err == nil {
		t.Error("expected an error logging to a closed audit log")
	}
}

func TestReadEvents(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")
	content := `{"id":"one","compliance_score":80}
not json
{"id":"two","compliance_score":40}
`
	if err := os.WriteFile(logPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	events, err := ReadEvents(logPath)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 2 || events[0].ID != "one" || events[1].ComplianceScore != 40 {
		t.Errorf("unexpected events %+v", events)
	}

	missing, err := ReadEvents(filepath.Join(t.TempDir(), "none.jsonl"))
	if err != nil || missing != nil {
		t.Errorf("missing file: events=%v err=%v", missing, err)
	}
}

func TestNewAnalysisEvent(t *testing.T) {
	sum := &analyzer.Summary{
		ComplianceScore:   75,
		TotalRules:        4,
		PassedRules:       3,
		FailedRules:       1,
		PrimaryCategory:   taxonomy.SEBI,
		AutoDetected:      true,
		DetectedStandards: []taxonomy.Category{taxonomy.SEBI, taxonomy.Financial},
		CriticalIssues:    []analyzer.Result{{RuleID: "sebi-risk-disclosure"}},
	}

	event := NewAnalysisEvent("", "fund.txt", "file", "Invest in SIP", sum, 1500*time.Microsecond)
	if event.ID == "" {
		t.Error("expected a generated id")
	}
	if event.TextLength != 13 || event.DurationMS != 1.5 {
		t.Errorf("length = %d duration = %v", event.TextLength, event.DurationMS)
	}
	if event.PrimaryCategory != "SEBI" || len(event.DetectedStandards) != 2 {
		t.Errorf("unexpected detection fields %+v", event)
	}
	if len(event.CriticalIssues) != 1 || event.CriticalIssues[0] != "sebi-risk-disclosure" {
		t.Errorf("critical issues = %v", event.CriticalIssues)
	}

	kept := NewAnalysisEvent("fixed-id", "stdin", "stdin", "", nil, 0)
	if kept.ID != "fixed-id" || kept.TotalRules != 0 {
		t.Errorf("unexpected event %+v", kept)
	}
}

func TestNewDiagnostic(t *testing.T) {
	tests := []struct {
		level, format string
		wantErr       bool
	}{
		{"info", "console", false},
		{"DEBUG", "json", false},
		{"warn", "", false},
		{"loud", "console", true},
		{"info", "xml", true},
	}
	for _, tt := range tests {
		log, err := NewDiagnostic(tt.level, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewDiagnostic(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
		}
		if log != nil {
			_ = log.Sync()
		}
	}
}
