// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package fs implements a file-per-buffer saver. Keys are hex encoded to
// form the file names.
package fs

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ssbc/binbuf/persist"
)

type Saver struct {
	base string
}

var _ persist.Saver = (*Saver)(nil)

// New returns a saver that stores each buffer as a file under base.
func New(base string) *Saver {
	return &Saver{base: base}
}

func (s Saver) Put(key persist.Key, data []byte) error {
	if err := os.MkdirAll(s.base, 0700); err != nil {
		return errors.Wrap(err, "persist/fs: failed to create base directory")
	}

	fname := filepath.Join(s.base, hex.EncodeToString(key))
	return errors.Wrapf(os.WriteFile(fname, data, 0600), "persist/fs: failed to write %q", fname)
}

func (s Saver) Get(key persist.Key) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.base, hex.EncodeToString(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, persist.ErrNotFound
		}
		return nil, errors.Wrap(err, "persist/fs: failed to read item")
	}
	return data, nil
}

func (s Saver) List() ([]persist.Key, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "persist/fs: failed to list base directory")
	}

	var keys []persist.Key
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		k, err := hex.DecodeString(e.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "persist/fs: invalid key file name: %q", e.Name())
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (s Saver) Delete(rm persist.Key) error {
	fname := filepath.Join(s.base, hex.EncodeToString(rm))
	return errors.Wrapf(os.Remove(fname), "persist/fs: failed to delete %q", fname)
}
