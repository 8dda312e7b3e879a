// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides specialized decoding and encoding operations for
// [X.509] certificates carried inside keybox documents. It supports [PEM],
// DER, and [PKCS7] inputs, computes truncated SHA-256 display fingerprints,
// and interprets the compact ambiguous-century timestamps emitted by keybox
// tooling.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
