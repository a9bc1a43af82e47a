// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package lengthprefixed implements fixed-size block framing for encoded
// buffers. Each block stores the record length twice, as a big-endian
// uint32 at the head and again right behind the record, so a torn write is
// detectable when the block is read back.
package lengthprefixed

import (
	"github.com/pkg/errors"

	"github.com/ssbc/binbuf"
)

// Framing is block framing with a fixed block size.
type Framing interface {
	binbuf.Framing

	FrameSize() int64
}

var _ Framing = (*frame32)(nil)

// New32 returns a framing for blocks of framesize bytes. A record has to
// fit into one block together with its two 4-byte length fields.
func New32(framesize int) Framing {
	return &frame32{framesize: framesize}
}

type frame32 struct {
	framesize int
}

func (f *frame32) EncodeFrame(data []byte) ([]byte, error) {
	if len(data)+8 > f.framesize {
		return nil, errors.Errorf("lengthprefixed: record too long for frame (%d+8 > %d)", len(data), f.framesize)
	}

	var b binbuf.Buffer
	b.AppendUint32(uint32(len(data)))
	frame := append(b.Bytes(), make([]byte, f.framesize-4)...)
	copy(frame[4:], data)

	var tail binbuf.Buffer
	tail.AppendUint32(uint32(len(data)))
	copy(frame[len(data)+4:], tail.Bytes())

	return frame, nil
}

func (f *frame32) DecodeFrame(block []byte) ([]byte, error) {
	if len(block) != f.framesize {
		return nil, errors.Errorf("lengthprefixed: wrong block size %d, want %d", len(block), f.framesize)
	}

	r := binbuf.NewReader(block)
	size, err := r.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "lengthprefixed: failed to read head length")
	}
	if int(size)+8 > f.framesize {
		return nil, errors.Errorf("lengthprefixed: head length %d exceeds frame", size)
	}

	tail := binbuf.NewReader(block[size+4:])
	sizeEnd, err := tail.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "lengthprefixed: failed to read tail length")
	}
	if size != sizeEnd {
		return nil, errors.Errorf("lengthprefixed: length fields don't match (%d != %d)", size, sizeEnd)
	}

	return block[4 : size+4], nil
}

func (f *frame32) FrameSize() int64 {
	return int64(f.framesize)
}
