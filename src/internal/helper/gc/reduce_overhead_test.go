// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferInterface verifies that bytebufferpool.ByteBuffer satisfies Buffer interface
func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "WriteString",
			setup: func(buf Buffer) {
				buf.WriteString("test string")
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, []byte("test string"), buf.Bytes())
			},
		},
		{
			name: "WriteByte",
			setup: func(buf Buffer) {
				buf.WriteByte('A')
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, []byte("A"), buf.Bytes())
			},
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.WriteString("hello test")
				buf.WriteByte('!')
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, []byte("hello test!"), buf.Bytes())
			},
		},
		{
			name: "Reset clears buffer",
			setup: func(buf Buffer) {
				buf.WriteString("data to clear")
				buf.Reset()
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Len(t, buf.Bytes(), 0, "Reset() failed, buffer still contains data: %q", buf.Bytes())
			},
		},
		{
			name:  "Empty buffer",
			setup: func(buf Buffer) {},
			check: func(t *testing.T, buf Buffer) {
				assert.Len(t, buf.Bytes(), 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

// TestBufferReadFrom verifies reading an io.Reader into a pooled buffer,
// which is how keybox XML input reaches the validator.
func TestBufferReadFrom(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	payload := `<?xml version="1.0"?><AndroidAttestation></AndroidAttestation>`
	n, err := buf.ReadFrom(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, []byte(payload), buf.Bytes())
}

// TestPoolConcurrentUse verifies the pool is safe under concurrent Get/Put.
func TestPoolConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf := Default.Get()
				buf.WriteString("concurrent write")
				buf.Reset()
				Default.Put(buf)
			}
		}()
	}
	wg.Wait()
}

// TestPutIgnoresForeignBuffers verifies Put is a no-op for Buffer
// implementations that are not pooled byte buffers.
func TestPutIgnoresForeignBuffers(t *testing.T) {
	assert.NotPanics(t, func() {
		Default.Put(&stubBuffer{})
	})
}
