// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package lengthprefixed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/binbuf"
)

func TestFrameRoundtrip(t *testing.T) {
	r := require.New(t)

	f := New32(64)
	r.Equal(int64(64), f.FrameSize())

	var b binbuf.Buffer
	b.AppendString("hello")

	frame, err := f.EncodeFrame(b.Bytes())
	r.NoError(err)
	r.Len(frame, 64)

	data, err := f.DecodeFrame(frame)
	r.NoError(err)
	r.Equal(b.Bytes(), data)

	s, err := binbuf.NewReader(data).ReadString()
	r.NoError(err)
	r.Equal("hello", s)
}

func TestFrameEmptyRecord(t *testing.T) {
	r := require.New(t)

	f := New32(16)
	frame, err := f.EncodeFrame(nil)
	r.NoError(err)

	data, err := f.DecodeFrame(frame)
	r.NoError(err)
	r.Len(data, 0)
}

func TestFrameTooLong(t *testing.T) {
	r := require.New(t)

	f := New32(16)
	_, err := f.EncodeFrame(make([]byte, 9))
	r.Error(err)

	// 8 bytes of payload plus the two length fields just fit
	_, err = f.EncodeFrame(make([]byte, 8))
	r.NoError(err)
}

func TestFrameWrongBlockSize(t *testing.T) {
	r := require.New(t)

	f := New32(32)
	_, err := f.DecodeFrame(make([]byte, 16))
	r.Error(err)
}

func TestFrameLengthMismatch(t *testing.T) {
	r := require.New(t)

	f := New32(32)
	frame, err := f.EncodeFrame([]byte("data"))
	r.NoError(err)

	// corrupt the tail length field
	frame[4+4] ^= 0xff
	_, err = f.DecodeFrame(frame)
	r.Error(err)
}

func TestFrameHeadLengthTooLarge(t *testing.T) {
	r := require.New(t)

	f := New32(32)
	frame, err := f.EncodeFrame([]byte("data"))
	r.NoError(err)

	frame[0] = 0xff
	_, err = f.DecodeFrame(frame)
	r.Error(err)
}
