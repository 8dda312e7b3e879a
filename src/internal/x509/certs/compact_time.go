// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrCompactTimeTooShort indicates that a compact timestamp string is shorter
// than the minimum parseable form.
var ErrCompactTimeTooShort = errors.New("x509certs: compact timestamp too short")

// CenturyFunc resolves a 2-digit year from a compact timestamp into a full
// 4-digit year. The default implementation preserves the historical behavior
// of the keybox tooling: every 2-digit year is prefixed with "20".
//
// Known limitation: the default cannot represent years before 2000 and will
// mishandle a post-2099 rollover. Callers that need different century rules
// replace this function; the aggregator additionally flags parsed years
// outside 1950-2049 as suspicious.
type CenturyFunc func(twoDigitYear int) int

// DefaultCentury is the fixed "20" prefix rule inherited from the source tooling.
func DefaultCentury(twoDigitYear int) int { return 2000 + twoDigitYear }

// Compact timestamp lengths produced by X.509 UTCTime and GeneralizedTime
// renderings ("YYMMDDHHMMSSZ" vs "YYYYMMDDHHMMSSZ").
const (
	compactLenShort = 13
	compactLenLong  = 15
)

// ParseCompactTime interprets a compact calendar timestamp with ambiguous
// century. A 13-character string carries a 2-digit year resolved through
// century; any longer string carries a literal 4-digit year prefix.
//
// Only the date portion is interpreted at day granularity, which is all the
// expiry logic requires.
func ParseCompactTime(raw string, century CenturyFunc) (time.Time, error) {
	if century == nil {
		century = DefaultCentury
	}

	var year int
	var rest string

	switch {
	case len(raw) == compactLenShort:
		yy, err := strconv.Atoi(raw[:2])
		if err != nil {
			return time.Time{}, fmt.Errorf("x509certs: bad 2-digit year %q: %w", raw[:2], err)
		}
		year = century(yy)
		rest = raw[2:]
	case len(raw) >= compactLenLong:
		yyyy, err := strconv.Atoi(raw[:4])
		if err != nil {
			return time.Time{}, fmt.Errorf("x509certs: bad 4-digit year %q: %w", raw[:4], err)
		}
		year = yyyy
		rest = raw[4:]
	default:
		return time.Time{}, ErrCompactTimeTooShort
	}

	month, err := strconv.Atoi(rest[:2])
	if err != nil {
		return time.Time{}, fmt.Errorf("x509certs: bad month in %q: %w", raw, err)
	}
	day, err := strconv.Atoi(rest[2:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("x509certs: bad day in %q: %w", raw, err)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// SuspiciousYear reports whether a parsed year falls outside the window the
// default century rule can represent faithfully. The aggregator logs a
// warning for such dates instead of guessing a different century.
func SuspiciousYear(t time.Time) bool {
	return t.Year() < 1950 || t.Year() > 2049
}
