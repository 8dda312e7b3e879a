// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verdict

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"

	x509chain "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/chain"
)

// Status is the overall verdict of one validation run.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusWeak    Status = "WEAK"
	StatusExpired Status = "EXPIRED"
	StatusRevoked Status = "REVOKED"
	StatusInvalid Status = "INVALID"
)

// confidence maps a categorical status onto the 0..100 score axis so both
// strategies populate the same report field.
func (s Status) confidence() int {
	switch s {
	case StatusValid:
		return 100
	case StatusWeak:
		return 75
	case StatusExpired:
		return 40
	case StatusRevoked:
		return 10
	default:
		return 0
	}
}

// RiskBand is the qualitative revocation-risk classification used by the
// score strategy.
type RiskBand string

const (
	RiskLow    RiskBand = "LOW"
	RiskMedium RiskBand = "MEDIUM"
	RiskHigh   RiskBand = "HIGH"
)

// Risk-band thresholds on the 0..100 score.
const (
	riskHighBelow   = 60
	riskMediumBelow = 85
)

// riskBandFor classifies a clamped score.
func riskBandFor(score int) RiskBand {
	switch {
	case score < riskHighBelow:
		return RiskHigh
	case score < riskMediumBelow:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ValidationReport is the engine's single output per request. It is plain
// data, safe to serialize and restore verbatim; date fields round-trip
// through RFC 3339 text without losing day granularity.
type ValidationReport struct {
	Strategy     string `json:"strategy" yaml:"strategy"`
	DeviceID     string `json:"deviceId" yaml:"deviceId"`
	KeyAlgorithm string `json:"keyAlgorithm,omitempty" yaml:"keyAlgorithm,omitempty"`

	// Certificates is ordered for display as ROOT, INTERMEDIATE, END_ENTITY.
	// The original chain-supplied ordering survives in each record's
	// Position field.
	Certificates []x509chain.CertificateRecord `json:"certificates" yaml:"certificates"`

	OverallStatus          Status   `json:"overallStatus" yaml:"overallStatus"`
	IsLeaked               bool     `json:"isLeaked" yaml:"isLeaked"`
	HasTrustedRoot         bool     `json:"hasTrustedRoot" yaml:"hasTrustedRoot"`
	IsStrongIntegrityReady bool     `json:"isStrongIntegrityReady" yaml:"isStrongIntegrityReady"`
	Score                  int      `json:"score" yaml:"score"`
	RiskBand               RiskBand `json:"riskBand,omitempty" yaml:"riskBand,omitempty"`

	ExpiresOn     time.Time `json:"expiresOn" yaml:"expiresOn"`
	DaysRemaining int       `json:"daysRemaining" yaml:"daysRemaining"`
	EvaluatedAt   time.Time `json:"evaluatedAt" yaml:"evaluatedAt"`

	AuditLog []AuditEntry `json:"auditLog" yaml:"auditLog"`
}

// ToJSON serializes the report for caching, piping, or rendering.
func (r *ValidationReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToYAML serializes the report as YAML.
func (r *ValidationReport) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// FromJSON restores a report previously serialized with ToJSON.
func FromJSON(data []byte) (*ValidationReport, error) {
	var r ValidationReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// FromYAML restores a report previously serialized with ToYAML.
func FromYAML(data []byte) (*ValidationReport, error) {
	var r ValidationReport
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
