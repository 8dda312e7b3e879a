// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verdict_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/keybox"
	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/verdict"
	x509chain "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/chain"
)

const cleanDeviceID = "SM-G998B-35299"

func validateCategorical(t *testing.T, raw []byte) *verdict.ValidationReport {
	t.Helper()
	report, err := verdict.Validate(raw, verdict.Categorical{}, time.Now())
	require.NoError(t, err)
	return report
}

func TestCategoricalHealthyKeyboxIsValid(t *testing.T) {
	raw := keyboxXML(cleanDeviceID, "ecdsa", fakePrivateKey, googleRootedChain(t))
	report := validateCategorical(t, raw)

	assert.Equal(t, verdict.StatusValid, report.OverallStatus)
	assert.True(t, report.IsStrongIntegrityReady)
	assert.True(t, report.HasTrustedRoot)
	assert.False(t, report.IsLeaked)
	assert.Equal(t, 100, report.Score)

	// Display ordering: ROOT first, END_ENTITY last; original positions kept.
	require.Len(t, report.Certificates, 3)
	assert.Equal(t, x509chain.RoleRoot, report.Certificates[0].Role)
	assert.Equal(t, 2, report.Certificates[0].Position)
	assert.Equal(t, x509chain.RoleEndEntity, report.Certificates[2].Role)
	assert.Equal(t, 0, report.Certificates[2].Position)

	assert.Positive(t, report.DaysRemaining)
	assert.False(t, report.ExpiresOn.IsZero())
}

func TestCategoricalRSAAlgorithmIsWeak(t *testing.T) {
	raw := keyboxXML(cleanDeviceID, "rsa", fakePrivateKey, googleRootedChain(t))
	report := validateCategorical(t, raw)

	assert.Equal(t, verdict.StatusWeak, report.OverallStatus)
	assert.False(t, report.IsStrongIntegrityReady)
}

func TestCategoricalUntrustedRootIsWeak(t *testing.T) {
	root := &chainSpec{serial: 3, subjectCN: "Vendor CA", org: "Acme Vendor"}
	leaf := &chainSpec{serial: 1, subjectCN: "Key", org: "Acme Vendor", issuer: root}
	raw := keyboxXML(cleanDeviceID, "ecdsa", fakePrivateKey, buildChain(t, []*chainSpec{leaf, root}))

	report := validateCategorical(t, raw)

	assert.Equal(t, verdict.StatusWeak, report.OverallStatus)
	assert.False(t, report.HasTrustedRoot)
}

func TestCategoricalExpiredChain(t *testing.T) {
	root := &chainSpec{serial: 3, subjectCN: "Droid CA", org: "Google LLC"}
	leaf := &chainSpec{
		serial: 1, subjectCN: "Key", org: "Strongbox", issuer: root,
		notAfter: time.Now().Add(-48 * time.Hour),
	}
	raw := keyboxXML(cleanDeviceID, "ecdsa", fakePrivateKey, buildChain(t, []*chainSpec{leaf, root}))

	report := validateCategorical(t, raw)

	assert.Equal(t, verdict.StatusExpired, report.OverallStatus)
	assert.False(t, report.IsStrongIntegrityReady)
	assert.Negative(t, report.DaysRemaining, "expired end entity yields negative days remaining")
}

func TestCategoricalFlaggedSerialIsRevoked(t *testing.T) {
	root := &chainSpec{serial: 3, subjectCN: "Droid CA", org: "Google LLC"}
	leaf := &chainSpec{serial: 0x01deadbeef99, subjectCN: "Key", org: "Strongbox", issuer: root}
	raw := keyboxXML(cleanDeviceID, "ecdsa", fakePrivateKey, buildChain(t, []*chainSpec{leaf, root}))

	report := validateCategorical(t, raw)

	assert.Equal(t, verdict.StatusRevoked, report.OverallStatus)
	assert.True(t, report.IsLeaked)
}

func TestCategoricalLeakedDeviceIDIsRevoked(t *testing.T) {
	// Revoked takes precedence even over an otherwise perfect chain.
	raw := keyboxXML("android_test_device", "ecdsa", fakePrivateKey, googleRootedChain(t))
	report := validateCategorical(t, raw)

	assert.Equal(t, verdict.StatusRevoked, report.OverallStatus)
	assert.True(t, report.IsLeaked)
	assert.False(t, report.IsStrongIntegrityReady)
}

func TestCategoricalMissingDeviceIDStaysValid(t *testing.T) {
	// A keybox without a DeviceID attribute normalizes to the Unknown
	// placeholder; the placeholder must not collide with the generic
	// device ids the leak registry flags.
	raw := keyboxXML("", "ecdsa", fakePrivateKey, googleRootedChain(t))
	report := validateCategorical(t, raw)

	assert.Equal(t, keybox.UnknownDeviceID, report.DeviceID)
	assert.Equal(t, verdict.StatusValid, report.OverallStatus)
	assert.False(t, report.IsLeaked)
	assert.True(t, report.IsStrongIntegrityReady)
	assert.Equal(t, 100, report.Score)

	var warned bool
	for _, entry := range report.AuditLog {
		if entry.Severity == verdict.SeverityWarning && strings.Contains(entry.Message, "device id is missing") {
			warned = true
		}
	}
	assert.True(t, warned, "expected a warning about the absent device id")
}

func TestCategoricalStructuralFailureIsInvalid(t *testing.T) {
	report, err := verdict.Validate([]byte(`<NotAnAttestation/>`), verdict.Categorical{}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, verdict.StatusInvalid, report.OverallStatus)
	assert.Empty(t, report.Certificates)
	assert.Equal(t, keybox.UnknownDeviceID, report.DeviceID)
	require.NotEmpty(t, report.AuditLog)
	assert.Equal(t, verdict.SeverityError, report.AuditLog[0].Severity)
}

func TestCategoricalDecodeFailureIsRecovered(t *testing.T) {
	pems := googleRootedChain(t)
	pems[1] = "-----BEGIN CERTIFICATE-----\ngarbage!!!\n-----END CERTIFICATE-----"
	raw := keyboxXML(cleanDeviceID, "ecdsa", fakePrivateKey, pems)

	report := validateCategorical(t, raw)

	// The bad certificate is dropped, not inserted as a record.
	assert.Len(t, report.Certificates, 2)

	var warned bool
	for _, entry := range report.AuditLog {
		if entry.Severity == verdict.SeverityWarning && strings.Contains(entry.Message, "failed to decode") {
			warned = true
		}
	}
	assert.True(t, warned, "decode failure must be logged as a warning")
}

func TestCategoricalIsDeterministic(t *testing.T) {
	raw := keyboxXML(cleanDeviceID, "ecdsa", fakePrivateKey, googleRootedChain(t))
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first, err := verdict.Validate(raw, verdict.Categorical{}, now)
	require.NoError(t, err)
	second, err := verdict.Validate(raw, verdict.Categorical{}, now)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must reproduce an identical report")
}

func TestValidateMalformedInputProducesNoReport(t *testing.T) {
	report, err := verdict.Validate([]byte(`<AndroidAttestation><Keybox>`), verdict.Categorical{}, time.Now())

	require.Error(t, err)
	assert.Nil(t, report, "no report on input format errors")

	var formatErr *keybox.InputFormatError
	assert.ErrorAs(t, err, &formatErr)
}
