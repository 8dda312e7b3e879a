// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import "io"

// stubBuffer is a minimal Buffer implementation that is not backed by the
// pool, used to verify Put tolerates foreign buffers.
type stubBuffer struct {
	data []byte
}

func (s *stubBuffer) WriteString(str string) (int, error) {
	s.data = append(s.data, str...)
	return len(str), nil
}

func (s *stubBuffer) WriteByte(c byte) error {
	s.data = append(s.data, c)
	return nil
}

func (s *stubBuffer) Bytes() []byte { return s.data }

func (s *stubBuffer) Reset() { s.data = s.data[:0] }

func (s *stubBuffer) ReadFrom(r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	s.data = append(s.data, b...)
	return int64(len(b)), err
}
