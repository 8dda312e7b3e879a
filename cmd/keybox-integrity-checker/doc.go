// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// keybox-integrity-checker is a command-line tool for validating Android
// keybox attestation bundles: it extracts the keybox from XML, classifies
// the certificate chain, checks the leak registry, and produces a
// validation report with a full audit log.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/keybox-integrity-checker/cmd/keybox-integrity-checker@latest
//
// # Usage
//
//	keybox-integrity-checker -f KEYBOX_XML [FLAGS]
//
// # Flags
//
//	-f, --file      Keybox XML file to validate, '-' for stdin [required]
//	-o, --output    Destination file (default: stdout)
//	-s, --strategy  Validation strategy: categorical or score (default: categorical)
//	-F, --format    Output format: report, tree, table, json or yaml (default: report)
//	    --now       Evaluation instant as RFC 3339 or compact YYMMDDHHMMSSZ
//	                (default: current time)
//
// # Examples
//
// Validate a keybox and print the human-readable report:
//
//	keybox-integrity-checker -f keybox.xml
//
// Produce a JSON report with the score strategy:
//
//	keybox-integrity-checker -f keybox.xml -s score -F json > report.json
//
// Visualize the certificate chain as an ASCII tree:
//
//	keybox-integrity-checker -f keybox.xml -F tree
//
// Evaluate at a fixed instant for reproducible output:
//
//	keybox-integrity-checker -f keybox.xml --now 2026-01-02T00:00:00Z
package main
