// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package registry holds the static leak/revocation registry: known-compromised
// certificate serial fragments and generic placeholder device identifiers.
// Lookups are case-insensitive substring matches. The data is read-only for
// the lifetime of the process; there is no network refresh path.
package registry
