// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package verdict aggregates per-certificate findings, the declared key
// algorithm, and leak-registry hits into a single deterministic
// ValidationReport with an ordered audit trail.
//
// Two severity models ship as pluggable strategies behind one interface:
//
//   - Categorical: precedence-ordered status (REVOKED beats EXPIRED beats
//     WEAK beats VALID). The default.
//   - Score: a 0..100 penalty score with HIGH/MEDIUM/LOW revocation-risk
//     bands.
//
// The engine is a pure, synchronous computation: no I/O, no shared mutable
// state across invocations, safe to call concurrently. Reports serialize to
// JSON and YAML and round-trip at day granularity; the JSON shape is pinned
// by an embedded JSON Schema.
package verdict
