// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package binbuf

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// AppendUint8 appends v as a single byte.
func (b *Buffer) AppendUint8(v uint8) {
	b.data = append(b.data, v)
}

// AppendUint16 appends v as 2 bytes, big-endian.
func (b *Buffer) AppendUint16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// AppendUint32 appends v as 4 bytes, big-endian.
func (b *Buffer) AppendUint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// AppendUint64 appends v as 8 bytes, big-endian.
func (b *Buffer) AppendUint64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// AppendFloat32 appends the IEEE-754 bit pattern of v as 4 bytes, big-endian.
func (b *Buffer) AppendFloat32(v float32) {
	b.AppendUint32(math.Float32bits(v))
}

// AppendFloat64 appends the IEEE-754 bit pattern of v as 8 bytes, big-endian.
func (b *Buffer) AppendFloat64(v float64) {
	b.AppendUint64(math.Float64bits(v))
}

// AppendString appends the UTF-8 bytes of s, prefixed with their count as
// a big-endian uint64.
func (b *Buffer) AppendString(s string) {
	b.AppendUint64(uint64(len(s)))
	b.data = append(b.data, s...)
}

// AppendBytes appends p, prefixed with its length as a big-endian uint64.
func (b *Buffer) AppendBytes(p []byte) {
	b.AppendUint64(uint64(len(p)))
	b.data = append(b.data, p...)
}

// ReadUint8 consumes one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.off+1 > len(r.data) {
		return 0, ErrInsufficientData
	}
	v := r.data[r.off]
	r.off++
	return v, nil
}

// ReadUint16 consumes 2 bytes, big-endian.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.off+2 > len(r.data) {
		return 0, ErrInsufficientData
	}
	v := binary.BigEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

// ReadUint32 consumes 4 bytes, big-endian.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.off+4 > len(r.data) {
		return 0, ErrInsufficientData
	}
	v := binary.BigEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

// ReadUint64 consumes 8 bytes, big-endian.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.off+8 > len(r.data) {
		return 0, ErrInsufficientData
	}
	v := binary.BigEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v, nil
}

// ReadFloat32 consumes 4 bytes and reinterprets them as an IEEE-754 float.
// The bit pattern is taken as is, there is no NaN or Inf checking.
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadFloat64 consumes 8 bytes and reinterprets them as an IEEE-754 float.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadString consumes a uint64 count prefix and that many bytes of UTF-8.
// It fails with ErrInsufficientData if the buffer ends before the declared
// count, and with ErrInvalidEncoding if the bytes are not valid UTF-8.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return "", err
	}
	if n > uint64(r.Remaining()) {
		return "", ErrInsufficientData
	}
	p := r.data[r.off : r.off+int(n)]
	if !utf8.Valid(p) {
		return "", ErrInvalidEncoding
	}
	r.off += int(n)
	return string(p), nil
}

// ReadBytes consumes a uint64 count prefix and that many raw bytes.
// The returned slice is a copy.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Remaining()) {
		return nil, ErrInsufficientData
	}
	p := make([]byte, n)
	copy(p, r.data[r.off:])
	r.off += int(n)
	return p, nil
}
