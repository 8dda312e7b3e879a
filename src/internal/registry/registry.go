// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package registry

import "strings"

// The registry is process-wide static data. It is never mutated at runtime;
// refreshing it is an administrative concern outside this engine.
var (
	// flaggedSerialFragments are lower-case substrings of serial numbers
	// belonging to known-compromised keyboxes.
	flaggedSerialFragments = []string{
		"deadbeef",
		"cafebabe",
		"00000000000000000000",
		"4097ca40de16b466",
	}

	// flaggedDeviceFragments are lower-case substrings of device identifiers
	// that indicate leaked or mass-generated keyboxes.
	flaggedDeviceFragments = []string{
		"android",
		"test",
		"deadbeef",
		"emulator",
		"generic",
	}

	// genericDeviceIDs are exact placeholder identifiers shipped in publicly
	// circulated keyboxes.
	genericDeviceIDs = []string{
		"android",
		"test",
		"device",
		"default",
		"unknown",
		"aosp",
	}
)

// IsSerialFlagged reports whether the certificate serial (hex form) contains
// any known-compromised fragment. Matching is case-insensitive.
func IsSerialFlagged(serialHex string) bool {
	return containsAny(serialHex, flaggedSerialFragments)
}

// IsDeviceIDFlagged reports whether the device identifier contains any
// flagged fragment or is a known generic placeholder. Matching is
// case-insensitive.
func IsDeviceIDFlagged(deviceID string) bool {
	return containsAny(deviceID, flaggedDeviceFragments) || IsGenericDeviceID(deviceID)
}

// IsGenericDeviceID reports whether the device identifier literally equals
// one of the known generic placeholder values, ignoring case.
func IsGenericDeviceID(deviceID string) bool {
	lower := strings.ToLower(deviceID)
	for _, id := range genericDeviceIDs {
		if lower == id {
			return true
		}
	}
	return false
}

func containsAny(s string, fragments []string) bool {
	lower := strings.ToLower(s)
	for _, fragment := range fragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
