// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package keybox

// UnknownDeviceID is substituted when the source document carries no device
// identifier.
const UnknownDeviceID = "Unknown"

// Keybox is one extracted attestation bundle. It is constructed once per
// validation request, never mutated afterwards, and discarded once the
// report is produced.
type Keybox struct {
	// DeviceID identifies the device the keybox was provisioned for.
	// Defaults to UnknownDeviceID when absent from the source.
	DeviceID string

	// KeyAlgorithm is the declared algorithm of the attested key,
	// normalized to upper case (e.g. "ECDSA", "RSA"). Empty when absent.
	KeyAlgorithm string

	// PrivateKey and PublicKey hold opaque key material text. They are
	// validated only for presence and length, never interpreted.
	PrivateKey string
	PublicKey  string

	// CertificateChain is the ordered sequence of raw PEM strings exactly
	// as supplied in the source document. Length 0 when absent.
	CertificateChain []string
}
