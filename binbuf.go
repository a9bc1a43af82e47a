// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package binbuf implements a compact binary encoding for fixed-width
// integers, floats, strings, slices and small fixed-arity tuples.
//
// All multi-byte values are written big-endian. Strings and slices carry a
// 64bit count prefix, tuples are plain concatenation. The format carries no
// type tags: a reader has to consume values in exactly the order they were
// written, anything else is garbage.
//
// A Buffer accumulates encoded values, a Reader consumes them:
//
//	var b binbuf.Buffer
//	b.AppendUint16(16)
//	b.AppendString("hello")
//
//	r := binbuf.NewReader(b.Bytes())
//	x, err := r.ReadUint16()
//	s, err := r.ReadString()
//
// Decode failures are values, not panics. ErrInsufficientData means the
// buffer ended before the value did; after any failed read the cursor is no
// longer in a known-good position and the caller must stop reading.
package binbuf

// Buffer is an append-only accumulator for encoded values.
// The zero value is an empty buffer ready for use.
type Buffer struct {
	data []byte
}

// Bytes returns the accumulated bytes. The slice is only valid until the
// next append.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Reset truncates the buffer to zero length, keeping the allocation.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// AppendBuffer appends the raw contents of other, without any prefix.
func (b *Buffer) AppendBuffer(other *Buffer) {
	b.data = append(b.data, other.data...)
}

// Reader returns a fresh cursor over the accumulated bytes.
func (b *Buffer) Reader() *Reader {
	return NewReader(b.data)
}

// Reader is a cursor over a byte sequence. It holds the bytes plus a read
// offset which only moves forward, by the exact width of each successfully
// decoded value.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a cursor over data, positioned at offset 0.
// The reader borrows data for its lifetime.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// IsEmpty reports whether the underlying byte sequence is empty.
func (r *Reader) IsEmpty() bool {
	return len(r.data) == 0
}

// Bytes returns the underlying byte sequence, including already read bytes.
func (r *Reader) Bytes() []byte {
	return r.data
}

type insufficientData struct{}

// ErrInsufficientData is returned when fewer bytes remain at the cursor
// than the requested decode needs.
var ErrInsufficientData insufficientData

func (insufficientData) Error() string {
	return "binbuf: insufficient data"
}

// IsInsufficientData returns whether a particular error is an
// insufficient-data error.
func IsInsufficientData(err error) bool {
	_, ok := err.(insufficientData)
	return ok
}

type invalidEncoding struct{}

// ErrInvalidEncoding is returned when a decoded string is not valid UTF-8.
var ErrInvalidEncoding invalidEncoding

func (invalidEncoding) Error() string {
	return "binbuf: invalid string encoding"
}

// IsInvalidEncoding returns whether a particular error is an
// invalid-encoding error.
func IsInvalidEncoding(err error) bool {
	_, ok := err.(invalidEncoding)
	return ok
}
