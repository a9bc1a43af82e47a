// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package binbuf

import (
	"os"

	"github.com/pkg/errors"
)

// WriteFile writes the accumulated bytes to the file at path, creating it
// if needed and truncating it otherwise.
func WriteFile(path string, b *Buffer) error {
	err := os.WriteFile(path, b.Bytes(), 0600)
	return errors.Wrapf(err, "binbuf: failed to write buffer to %q", path)
}

// AppendFile appends the accumulated bytes to the file at path, creating it
// if needed.
func AppendFile(path string, b *Buffer) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return errors.Wrapf(err, "binbuf: failed to open %q for append", path)
	}

	_, err = f.Write(b.Bytes())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrapf(err, "binbuf: failed to append buffer to %q", path)
}

// ReadFile reads the whole file at path and returns a cursor over its
// contents.
func ReadFile(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "binbuf: failed to read buffer from %q", path)
	}
	return NewReader(data), nil
}
