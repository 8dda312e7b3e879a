// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/registry"
)

func TestIsSerialFlagged(t *testing.T) {
	tests := []struct {
		name   string
		serial string
		want   bool
	}{
		{"Embedded Deadbeef", "01deadbeef99", true},
		{"Uppercase Deadbeef", "01DEADBEEF99", true},
		{"Cafebabe Fragment", "cafebabe0001", true},
		{"All Zero Serial", "0000000000000000000000", true},
		{"Clean Serial", "3f9a2b7c1d", false},
		{"Empty Serial", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registry.IsSerialFlagged(tt.serial))
		})
	}
}

func TestIsDeviceIDFlagged(t *testing.T) {
	tests := []struct {
		name     string
		deviceID string
		want     bool
	}{
		{"Android Test Device", "android_test_device", true},
		{"Generic Placeholder", "default", true},
		{"Uppercase Placeholder", "AOSP", true},
		{"Emulator Fragment", "sdk_emulator_x86", true},
		{"Real Device", "SM-G998B-35299", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registry.IsDeviceIDFlagged(tt.deviceID))
		})
	}
}

func TestIsGenericDeviceID(t *testing.T) {
	assert.True(t, registry.IsGenericDeviceID("TEST"))
	assert.True(t, registry.IsGenericDeviceID("unknown"))

	// Substring matches are not exact placeholders.
	assert.False(t, registry.IsGenericDeviceID("test_unit_42"))
}
