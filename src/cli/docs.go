// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the keybox integrity checker.
// It implements a Cobra-based CLI that validates Android keybox attestation bundles
// with a selectable strategy and renders the resulting report in report, tree,
// table, JSON, or YAML formats. The package handles file and stdin I/O, context
// cancellation, and integrates with the logger package for output and error
// reporting.
package cli
