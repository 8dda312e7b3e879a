// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain implements structural classification of [X.509]
// certificate chains extracted from keybox documents. It provides
// capabilities to:
//   - Decode a supplied-order PEM sequence into certificate records,
//     dropping (and reporting) undecodable entries.
//   - Assign ROOT / INTERMEDIATE / END_ENTITY roles using position and
//     self-signed/issuer heuristics with a fixed, tested rule order.
//   - Reorder records for display (ROOT first) while preserving the
//     supplied chain order inside each record.
//
// The package performs no network operations; revocation state comes from
// the static leak registry.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509chain
