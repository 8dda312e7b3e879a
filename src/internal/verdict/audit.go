// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verdict

import (
	"fmt"
	"time"
)

// Severity tags one audit log entry.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// AuditEntry is one line of the user-facing explanation of a verdict.
type AuditEntry struct {
	Severity  Severity  `json:"severity" yaml:"severity"`
	Message   string    `json:"message" yaml:"message"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// auditLog collects entries append-only, in the order checks are evaluated.
// Entries are never reordered or deduplicated. All entries carry the
// evaluation instant so a report is reproducible given identical input.
type auditLog struct {
	at      time.Time
	entries []AuditEntry
}

func newAuditLog(at time.Time) *auditLog {
	return &auditLog{at: at}
}

func (l *auditLog) add(severity Severity, format string, args ...any) {
	l.entries = append(l.entries, AuditEntry{
		Severity:  severity,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: l.at,
	})
}

func (l *auditLog) info(format string, args ...any)    { l.add(SeverityInfo, format, args...) }
func (l *auditLog) success(format string, args ...any) { l.add(SeveritySuccess, format, args...) }
func (l *auditLog) warning(format string, args ...any) { l.add(SeverityWarning, format, args...) }
func (l *auditLog) error(format string, args ...any)   { l.add(SeverityError, format, args...) }
