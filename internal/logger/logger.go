package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/neocompliance/neocompliance/internal/analyzer"
	"github.com/neocompliance/neocompliance/internal/redact"
)

// defaultMaxLogBytes is the size at which the audit log is rotated to .1.
const defaultMaxLogBytes = 10 << 20

// excerptRunes bounds the document excerpt stored with each event.
const excerptRunes = 160

// AnalysisEvent is one line of the audit log.
type AnalysisEvent struct {
	ID                string   `json:"id"`
	Timestamp         string   `json:"timestamp"`
	Source            string   `json:"source"`
	SourceKind        string   `json:"source_kind,omitempty"`
	TextLength        int      `json:"text_length"`
	Excerpt           string   `json:"excerpt"`
	Redactions        []string `json:"redactions,omitempty"`
	AutoDetected      bool     `json:"auto_detected"`
	DetectedStandards []string `json:"detected_standards"`
	PrimaryCategory   string   `json:"primary_category"`
	ComplianceScore   int      `json:"compliance_score"`
	TotalRules        int      `json:"total_rules"`
	PassedRules       int      `json:"passed_rules"`
	FailedRules       int      `json:"failed_rules"`
	WarningRules      int      `json:"warning_rules"`
	CriticalIssues    []string `json:"critical_issues,omitempty"`
	DurationMS        float64  `json:"duration_ms"`
	Error             string   `json:"error,omitempty"`
}

// NewAnalysisEvent builds an event for an analysis of text. The caller's
// id is kept when set so exports and the audit line share it.
func NewAnalysisEvent(id, source, kind, text string, sum *analyzer.Summary, elapsed time.Duration) AnalysisEvent {
	if id == "" {
		id = uuid.NewString()
	}
	event := AnalysisEvent{
		ID:         id,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Source:     source,
		SourceKind: kind,
		TextLength: len([]rune(text)),
		Excerpt:    text,
		DurationMS: float64(elapsed.Microseconds()) / 1000,
	}
	if sum == nil {
		return event
	}

	event.AutoDetected = sum.AutoDetected
	event.PrimaryCategory = string(sum.PrimaryCategory)
	event.ComplianceScore = sum.ComplianceScore
	event.TotalRules = sum.TotalRules
	event.PassedRules = sum.PassedRules
	event.FailedRules = sum.FailedRules
	event.WarningRules = sum.WarningRules
	event.DetectedStandards = make([]string, 0, len(sum.DetectedStandards))
	for _, c := range sum.DetectedStandards {
		event.DetectedStandards = append(event.DetectedStandards, string(c))
	}
	for _, r := range sum.CriticalIssues {
		event.CriticalIssues = append(event.CriticalIssues, r.RuleID)
	}
	return event
}

type AuditLogger struct {
	path     string
	file     *os.File
	size     int64
	maxBytes int64
	mu       sync.Mutex
}

// New opens (or creates) the audit log at path with owner-only permissions.
func New(path string) (*AuditLogger, error) {
	l := &AuditLogger{path: path, maxBytes: defaultMaxLogBytes}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *AuditLogger) open() error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return err
	}
	l.file = file
	l.size = info.Size()
	return nil
}

// rotate moves the current log to <path>.1, replacing any older backup.
func (l *AuditLogger) rotate() error {
	if err := l.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(l.path, l.path+".1"); err != nil {
		return err
	}
	return l.open()
}

// Log appends event as one JSON line. The excerpt and error are redacted
// and the excerpt is shortened before anything reaches disk.
func (l *AuditLogger) Log(event AnalysisEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return errors.New("audit log is closed")
	}

	event.Redactions = redact.Kinds(event.Excerpt)
	event.Excerpt = redact.Excerpt(event.Excerpt, excerptRunes)
	if event.Error != "" {
		event.Error = redact.Redact(event.Error)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if l.size > 0 && l.size+int64(len(data)) > l.maxBytes {
		if err := l.rotate(); err != nil {
			return fmt.Errorf("failed to rotate audit log: %w", err)
		}
	}

	n, err := l.file.Write(data)
	l.size += int64(n)
	return err
}

func (l *AuditLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// ReadEvents reads every well-formed event from the audit log at path.
// Malformed lines are skipped; a missing file yields no events.
func ReadEvents(path string) ([]AnalysisEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var events []AnalysisEvent
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		var event AnalysisEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}
