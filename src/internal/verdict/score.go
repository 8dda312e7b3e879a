// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verdict

import (
	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/keybox"
	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/registry"
	x509certs "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/chain"
)

// Score implements the numeric penalty severity model: start at 100, deduct
// a fixed penalty per finding, clamp at 0, then classify into a revocation
// risk band.
type Score struct{}

// Name implements Strategy.
func (Score) Name() string { return StrategyScore }

// Fixed penalties. The values encode the source severity model and are part
// of the observable contract.
const (
	penaltyMissingRoot      = 50
	penaltyMissingKeybox    = 50
	penaltyMissingAlgorithm = 10
	penaltyOddAlgorithm     = 5
	penaltyMissingDeviceID  = 20
	penaltyShortDeviceID    = 5
	penaltyGenericDeviceID  = 30
	penaltyMissingKey       = 20
	penaltyShortKey         = 10
	penaltyMissingChain     = 20
	penaltyShortChain       = 10
	penaltyDecodeFailure    = 5
)

// Length thresholds for the warning-level checks.
const (
	minDeviceIDLength   = 8
	minKeyLength        = 100
	minChainDepth       = 3
	knownAlgorithmECDSA = "ECDSA"
	knownAlgorithmRSA   = "RSA"
)

// scoreState tracks the running score and the strong-integrity flag while
// checks are applied in order.
type scoreState struct {
	score  int
	strong bool
	log    *auditLog
}

// deduct applies one penalty. marks controls whether the finding also
// disqualifies the keybox from strong integrity; not every penalty does.
func (s *scoreState) deduct(points int, severity Severity, marks bool, format string, args ...any) {
	s.score -= points
	if marks {
		s.strong = false
	}
	s.log.add(severity, format, args...)
}

func (s *scoreState) clamped() int {
	if s.score < 0 {
		return 0
	}
	return s.score
}

// Evaluate implements Strategy. Checks are applied in a fixed order, each
// producing exactly one audit entry. Missing containers short-circuit
// further checks.
func (Score) Evaluate(in Input) *ValidationReport {
	state := &scoreState{score: 100, strong: true, log: newAuditLog(in.Now)}
	report := &ValidationReport{
		Strategy:     StrategyScore,
		DeviceID:     keybox.UnknownDeviceID,
		EvaluatedAt:  in.Now,
		Certificates: []x509chain.CertificateRecord{},
	}

	if in.Structural != nil {
		switch in.Structural.Missing {
		case "root":
			state.deduct(penaltyMissingRoot, SeverityError, true, "attestation root container is missing")
		default:
			state.deduct(penaltyMissingKeybox, SeverityError, true, "keybox container is missing")
		}
		return finishScore(report, state)
	}

	kb := in.Keybox
	report.DeviceID = kb.DeviceID
	report.KeyAlgorithm = kb.KeyAlgorithm
	state.log.info("keybox extracted for device %q", kb.DeviceID)

	switch {
	case kb.KeyAlgorithm == "":
		state.deduct(penaltyMissingAlgorithm, SeverityWarning, false, "key algorithm field is missing")
	case kb.KeyAlgorithm != knownAlgorithmECDSA && kb.KeyAlgorithm != knownAlgorithmRSA:
		state.deduct(penaltyOddAlgorithm, SeverityError, true, "key algorithm %q is neither ECDSA nor RSA", kb.KeyAlgorithm)
	default:
		state.log.success("key algorithm %s recognized", kb.KeyAlgorithm)
	}

	switch {
	case kb.DeviceID == "" || kb.DeviceID == keybox.UnknownDeviceID:
		state.deduct(penaltyMissingDeviceID, SeverityError, false, "device id is missing")
	case registry.IsGenericDeviceID(kb.DeviceID):
		state.deduct(penaltyGenericDeviceID, SeverityError, true, "device id %q is a known generic placeholder", kb.DeviceID)
	case len(kb.DeviceID) < minDeviceIDLength:
		state.deduct(penaltyShortDeviceID, SeverityWarning, false, "device id %q is shorter than %d characters", kb.DeviceID, minDeviceIDLength)
	default:
		state.log.success("device id present")
	}

	switch {
	case kb.PrivateKey == "":
		state.deduct(penaltyMissingKey, SeverityError, true, "private key material is missing")
	case len(kb.PrivateKey) < minKeyLength:
		state.deduct(penaltyShortKey, SeverityError, true, "private key material is shorter than %d characters", minKeyLength)
	default:
		state.log.success("private key material present")
	}

	switch {
	case len(kb.CertificateChain) == 0:
		state.deduct(penaltyMissingChain, SeverityError, true, "certificate chain is missing")
	case len(kb.CertificateChain) < minChainDepth:
		state.deduct(penaltyShortChain, SeverityError, true, "certificate chain has %d certificates, expected at least %d", len(kb.CertificateChain), minChainDepth)
	default:
		state.log.success("certificate chain depth %d", len(kb.CertificateChain))
	}

	records, failures := x509chain.Build(decoder, kb.CertificateChain, in.Now)
	for _, f := range failures {
		state.deduct(penaltyDecodeFailure, SeverityWarning, false, "certificate %d failed to decode and was skipped: %v", f.Position, f.Err)
	}
	for _, rec := range records {
		if x509certs.SuspiciousYear(rec.NotBefore) || x509certs.SuspiciousYear(rec.NotAfter) {
			state.log.warning("certificate %d carries a validity year outside 1950-2049; century inference may be wrong", rec.Position)
		}
	}

	report.HasTrustedRoot = x509chain.HasTrustedRoot(records)
	// The Unknown placeholder marks absence, already penalized above; only a
	// real device id can hit the leak registry.
	report.IsLeaked = anyRevoked(records) ||
		(kb.DeviceID != keybox.UnknownDeviceID && registry.IsDeviceIDFlagged(kb.DeviceID))
	if leaf, ok := x509chain.EndEntity(records); ok {
		report.ExpiresOn = leaf.NotAfter
		report.DaysRemaining = daysBetween(in.Now, leaf.NotAfter)
	}
	report.Certificates = x509chain.DisplayOrder(records)

	return finishScore(report, state)
}

// finishScore clamps the score, derives the risk band and the status the
// report is keyed on, and seals the audit log.
func finishScore(report *ValidationReport, state *scoreState) *ValidationReport {
	report.Score = state.clamped()
	report.RiskBand = riskBandFor(report.Score)
	report.IsStrongIntegrityReady = state.strong

	switch report.RiskBand {
	case RiskLow:
		report.OverallStatus = StatusValid
		state.log.success("revocation risk LOW (score %d)", report.Score)
	case RiskMedium:
		report.OverallStatus = StatusWeak
		state.log.warning("revocation risk MEDIUM (score %d)", report.Score)
	default:
		report.OverallStatus = StatusInvalid
		state.log.error("revocation risk HIGH (score %d)", report.Score)
	}

	report.AuditLog = state.log.entries
	return report
}

func anyRevoked(records []x509chain.CertificateRecord) bool {
	for _, rec := range records {
		if rec.IsRevoked {
			return true
		}
	}
	return false
}
