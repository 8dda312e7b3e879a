// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/registry"
	x509certs "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/certs"
)

// Role is the structural position of a certificate within a trust chain.
type Role string

const (
	// RoleEndEntity marks the leaf certificate of the chain.
	RoleEndEntity Role = "END_ENTITY"
	// RoleIntermediate marks a certificate between leaf and root.
	RoleIntermediate Role = "INTERMEDIATE"
	// RoleRoot marks the trust anchor of the chain.
	RoleRoot Role = "ROOT"
)

// displayRank orders roles for rendering: ROOT first, END_ENTITY last.
func (r Role) displayRank() int {
	switch r {
	case RoleRoot:
		return 0
	case RoleIntermediate:
		return 1
	default:
		return 2
	}
}

// DefaultTrustedRootMarker is the issuer substring that identifies the
// hardware attestation root. Matching is case-insensitive.
const DefaultTrustedRootMarker = "google"

// CertificateRecord is one decoded certificate plus everything the
// aggregation strategies need to know about it.
type CertificateRecord struct {
	Position           int       `json:"position" yaml:"position"` // 0-based index in supplied chain order
	Role               Role      `json:"role" yaml:"role"`
	SerialHex          string    `json:"serialHex" yaml:"serialHex"`
	Subject            string    `json:"subject" yaml:"subject"`
	Issuer             string    `json:"issuer" yaml:"issuer"`
	SignatureAlgorithm string    `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	NotBefore          time.Time `json:"notBefore" yaml:"notBefore"`
	NotAfter           time.Time `json:"notAfter" yaml:"notAfter"`
	IsExpired          bool      `json:"isExpired" yaml:"isExpired"`
	IsSelfSigned       bool      `json:"isSelfSigned" yaml:"isSelfSigned"`
	IsRevoked          bool      `json:"isRevoked" yaml:"isRevoked"`
	Fingerprint        string    `json:"fingerprint" yaml:"fingerprint"`
}

// DecodeFailure records one certificate PEM that could not be decoded.
// The certificate is dropped from the chain; the failure is surfaced in the
// audit log instead of aborting the run.
type DecodeFailure struct {
	Position int
	Err      error
}

func (f DecodeFailure) Error() string {
	return fmt.Sprintf("x509chain: certificate %d failed to decode: %v", f.Position, f.Err)
}

// Unwrap exposes the underlying decode error.
func (f DecodeFailure) Unwrap() error { return f.Err }

// ClassifyRole assigns a chain role from position and issuer heuristics.
// Rules apply in order, first match wins:
//
//  1. A self-signed certificate whose issuer contains the trusted-root marker
//     is ROOT regardless of position.
//  2. Position 0 is END_ENTITY. A chain of length 1 therefore classifies as
//     END_ENTITY, not ROOT.
//  3. The last position is ROOT.
//  4. Everything else is INTERMEDIATE.
//
// Reordering these rules changes observable behavior; the order is a
// contract covered by tests.
func ClassifyRole(position, total int, selfSigned bool, issuer string) Role {
	switch {
	case selfSigned && strings.Contains(strings.ToLower(issuer), DefaultTrustedRootMarker):
		return RoleRoot
	case position == 0:
		return RoleEndEntity
	case position == total-1:
		return RoleRoot
	default:
		return RoleIntermediate
	}
}

// Build decodes every PEM string in supplied order into a CertificateRecord,
// evaluating expiry against now. Certificates that fail to decode are dropped
// and reported as DecodeFailures; they never abort the build.
func Build(decoder *x509certs.Certificate, pems []string, now time.Time) ([]CertificateRecord, []DecodeFailure) {
	var failures []DecodeFailure

	type decoded struct {
		position int
		record   CertificateRecord
	}

	// First pass: decode. The chain total used for role classification counts
	// only certificates that decoded, matching the supplied-order invariant.
	var parsed []decoded
	for i, p := range pems {
		cert, err := decoder.Decode([]byte(p))
		if err != nil {
			failures = append(failures, DecodeFailure{Position: i, Err: err})
			continue
		}

		subject := cert.Subject.String()
		issuer := cert.Issuer.String()

		parsed = append(parsed, decoded{
			position: i,
			record: CertificateRecord{
				Position:           i,
				SerialHex:          cert.SerialNumber.Text(16),
				Subject:            subject,
				Issuer:             issuer,
				SignatureAlgorithm: cert.SignatureAlgorithm.String(),
				NotBefore:          cert.NotBefore,
				NotAfter:           cert.NotAfter,
				IsExpired:          now.After(cert.NotAfter),
				IsSelfSigned:       issuer == subject,
				Fingerprint:        x509certs.Fingerprint(cert.Raw),
			},
		})
	}

	records := make([]CertificateRecord, 0, len(parsed))
	for i, d := range parsed {
		rec := d.record
		rec.Role = ClassifyRole(i, len(parsed), rec.IsSelfSigned, rec.Issuer)
		rec.IsRevoked = registry.IsSerialFlagged(rec.SerialHex)
		records = append(records, rec)
	}

	return records, failures
}

// DisplayOrder returns records sorted for display as ROOT, INTERMEDIATE,
// END_ENTITY. The sort is stable so certificates sharing a role keep their
// supplied order; the original chain order survives in each record's Position.
func DisplayOrder(records []CertificateRecord) []CertificateRecord {
	ordered := make([]CertificateRecord, len(records))
	copy(ordered, records)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Role.displayRank() < ordered[j].Role.displayRank()
	})

	return ordered
}

// EndEntity returns the first record classified END_ENTITY, falling back to
// the first record in original chain order when no end-entity exists.
// The second return is false for an empty chain.
func EndEntity(records []CertificateRecord) (CertificateRecord, bool) {
	for _, rec := range records {
		if rec.Role == RoleEndEntity {
			return rec, true
		}
	}
	if len(records) > 0 {
		return records[0], true
	}
	return CertificateRecord{}, false
}

// HasTrustedRoot reports whether any ROOT-classified record names the trusted
// root marker in its issuer.
func HasTrustedRoot(records []CertificateRecord) bool {
	for _, rec := range records {
		if rec.Role == RoleRoot && strings.Contains(strings.ToLower(rec.Issuer), DefaultTrustedRootMarker) {
			return true
		}
	}
	return false
}
