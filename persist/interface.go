// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package persist stores encoded buffers under caller-chosen keys. It is
// the keyed counterpart to the whole-file helpers in the root package: one
// Saver holds many buffers, addressed by key, with interchangeable storage
// backends (fs, badger, sqlite, mkv).
package persist

import (
	"errors"

	"github.com/ssbc/binbuf"
)

// Key addresses one stored buffer.
type Key []byte

// ErrNotFound is returned by Get when no buffer is stored under the key.
var ErrNotFound = errors.New("persist: item not found")

// Saver is a keyed store for encoded buffers.
type Saver interface {
	Put(Key, []byte) error
	Get(Key) ([]byte, error)

	List() ([]Key, error)
}

// Save encodes v with the given codec and stores it under key.
func Save[T any](s Saver, key Key, c binbuf.Codec[T], v T) error {
	return s.Put(key, c.Marshal(v))
}

// Load fetches the buffer stored under key and decodes it with the given
// codec.
func Load[T any](s Saver, key Key, c binbuf.Codec[T]) (T, error) {
	data, err := s.Get(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Unmarshal(data)
}
