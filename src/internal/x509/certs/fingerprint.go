// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLength is the number of hex characters kept from the SHA-256
// digest. The fingerprint is a display identifier, not a security digest,
// so a truncated prefix is sufficient.
const FingerprintLength = 32

// Fingerprint derives a stable short identifier from a certificate's raw
// encoded bytes. Identical input always yields an identical fingerprint;
// there is no salt.
func Fingerprint(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])[:FingerprintLength]
}
