// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testCertSpec describes one synthetic certificate for chain tests.
type testCertSpec struct {
	serial     int64
	subjectCN  string
	subjectOrg string
	issuer     *testCertSpec // nil means self-signed
	notAfter   time.Time
}

// makeChainPEMs builds one PEM string per spec, signing each certificate with
// its issuer's key (or its own when self-signed).
func makeChainPEMs(t *testing.T, specs []*testCertSpec) []string {
	t.Helper()

	keys := make(map[*testCertSpec]*ecdsa.PrivateKey)
	templates := make(map[*testCertSpec]*x509.Certificate)

	for _, spec := range specs {
		key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)
		keys[spec] = key

		notAfter := spec.notAfter
		if notAfter.IsZero() {
			notAfter = time.Now().Add(365 * 24 * time.Hour)
		}

		templates[spec] = &x509.Certificate{
			SerialNumber:          big.NewInt(spec.serial),
			Subject:               pkix.Name{CommonName: spec.subjectCN, Organization: []string{spec.subjectOrg}},
			NotBefore:             time.Now().Add(-24 * time.Hour),
			NotAfter:              notAfter,
			BasicConstraintsValid: true,
			IsCA:                  true,
		}
	}

	pems := make([]string, 0, len(specs))
	for _, spec := range specs {
		parent := spec
		if spec.issuer != nil {
			parent = spec.issuer
		}

		der, err := x509.CreateCertificate(rand.Reader,
			templates[spec], templates[parent],
			&keys[spec].PublicKey, keys[parent])
		require.NoError(t, err)

		pems = append(pems, string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})))
	}

	return pems
}

// makeGoogleRootedChain builds leaf -> intermediate -> self-signed root with
// the root subject naming Google, the shape a healthy keybox ships.
func makeGoogleRootedChain(t *testing.T) []string {
	t.Helper()

	root := &testCertSpec{serial: 3, subjectCN: "Droid CA", subjectOrg: "Google LLC"}
	intermediate := &testCertSpec{serial: 2, subjectCN: "Droid Intermediate", subjectOrg: "Google LLC", issuer: root}
	leaf := &testCertSpec{serial: 1, subjectCN: "Android Keystore Key", subjectOrg: "Strongbox", issuer: intermediate}

	return makeChainPEMs(t, []*testCertSpec{leaf, intermediate, root})
}
