// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package keybox extracts typed attestation bundles from keybox XML
// documents. Parsing the raw text into a tree is delegated to [etree]; this
// package owns the structural contract on top of that tree (required
// containers, chain normalization, defaulting) and the error taxonomy shared
// with the aggregation strategies.
//
// [etree]: https://pkg.go.dev/github.com/beevik/etree
package keybox
