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

// Categorical implements the status-with-precedence severity model:
// leaked beats expired beats weak. It is the default strategy.
type Categorical struct{}

// Name implements Strategy.
func (Categorical) Name() string { return StrategyCategorical }

// strongAlgorithm is the only declared key algorithm that qualifies for
// strong integrity under the categorical model.
const strongAlgorithm = "ECDSA"

// Evaluate implements Strategy. Status precedence, first match wins:
// isLeaked -> REVOKED; any expired certificate -> EXPIRED; non-ECDSA
// algorithm or untrusted root -> WEAK; otherwise VALID. A structural
// failure short-circuits to INVALID with an empty certificate list.
func (Categorical) Evaluate(in Input) *ValidationReport {
	log := newAuditLog(in.Now)
	report := &ValidationReport{
		Strategy:    StrategyCategorical,
		EvaluatedAt: in.Now,
	}

	if in.Structural != nil {
		log.error("structural check failed: %v", in.Structural)
		report.DeviceID = keybox.UnknownDeviceID
		report.OverallStatus = StatusInvalid
		report.Certificates = []x509chain.CertificateRecord{}
		report.Score = report.OverallStatus.confidence()
		report.AuditLog = log.entries
		return report
	}

	kb := in.Keybox
	report.DeviceID = kb.DeviceID
	report.KeyAlgorithm = kb.KeyAlgorithm
	log.info("keybox extracted for device %q (algorithm %q)", kb.DeviceID, kb.KeyAlgorithm)

	records, failures := x509chain.Build(decoder, kb.CertificateChain, in.Now)
	for _, f := range failures {
		log.warning("certificate %d failed to decode and was skipped: %v", f.Position, f.Err)
	}
	log.info("decoded %d of %d certificates in supplied chain order", len(records), len(kb.CertificateChain))
	if len(records) == 0 {
		log.warning("certificate chain is empty")
	}

	var hasRevoked, hasExpired bool
	for _, rec := range records {
		log.info("certificate %d classified %s (subject %q)", rec.Position, rec.Role, rec.Subject)

		if x509certs.SuspiciousYear(rec.NotBefore) || x509certs.SuspiciousYear(rec.NotAfter) {
			log.warning("certificate %d carries a validity year outside 1950-2049; century inference may be wrong", rec.Position)
		}
		if rec.IsExpired {
			hasExpired = true
			log.error("certificate %d expired on %s", rec.Position, rec.NotAfter.Format("2006-01-02"))
		}
		if rec.IsRevoked {
			hasRevoked = true
			log.error("certificate %d serial %s matches the leak registry", rec.Position, rec.SerialHex)
		}
	}
	if !hasExpired && len(records) > 0 {
		log.success("no expired certificates")
	}

	// An absent device id normalizes to the Unknown placeholder during
	// extraction; absence is benign and must not hit the generic-placeholder
	// registry entries.
	var deviceFlagged bool
	switch {
	case kb.DeviceID == keybox.UnknownDeviceID:
		log.warning("device id is missing")
	case registry.IsDeviceIDFlagged(kb.DeviceID):
		deviceFlagged = true
		log.error("device id %q matches the leak registry", kb.DeviceID)
	default:
		log.success("device id not present in the leak registry")
	}

	report.IsLeaked = hasRevoked || deviceFlagged
	report.HasTrustedRoot = x509chain.HasTrustedRoot(records)
	if report.HasTrustedRoot {
		log.success("chain anchors on a trusted root")
	} else {
		log.warning("no trusted root found in chain")
	}

	if kb.KeyAlgorithm == strongAlgorithm {
		log.success("declared key algorithm is %s", strongAlgorithm)
	} else {
		log.warning("declared key algorithm %q is not %s", kb.KeyAlgorithm, strongAlgorithm)
	}

	switch {
	case report.IsLeaked:
		report.OverallStatus = StatusRevoked
		log.error("verdict: keybox is leaked or revoked")
	case hasExpired:
		report.OverallStatus = StatusExpired
		log.error("verdict: certificate chain contains expired certificates")
	case kb.KeyAlgorithm != strongAlgorithm || !report.HasTrustedRoot:
		report.OverallStatus = StatusWeak
		log.warning("verdict: keybox is usable but does not meet strong integrity criteria")
	default:
		report.OverallStatus = StatusValid
		log.success("verdict: keybox meets strong integrity criteria")
	}

	report.IsStrongIntegrityReady = report.OverallStatus == StatusValid
	report.Score = report.OverallStatus.confidence()

	if leaf, ok := x509chain.EndEntity(records); ok {
		report.ExpiresOn = leaf.NotAfter
		report.DaysRemaining = daysBetween(in.Now, leaf.NotAfter)
		log.info("end-entity certificate expires on %s (%d days remaining)",
			leaf.NotAfter.Format("2006-01-02"), report.DaysRemaining)
	}

	report.Certificates = x509chain.DisplayOrder(records)
	report.AuditLog = log.entries
	return report
}
