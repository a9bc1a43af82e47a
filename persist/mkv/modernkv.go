// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package mkv implements a buffer saver on top of modernc.org/kv.
package mkv

import (
	"os"

	"github.com/pkg/errors"
	"modernc.org/kv"

	"github.com/ssbc/binbuf/persist"
)

type Saver struct {
	db *kv.DB
}

var _ persist.Saver = (*Saver)(nil)

// New opens (or creates) a kv database at path.
func New(path string) (*Saver, error) {
	var s Saver

	opts := &kv.Options{}
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		s.db, err = kv.Create(path, opts)
		if err != nil {
			return nil, errors.Wrap(err, "persist/mkv: failed to create KV")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "persist/mkv: failed to stat path location")
	} else {
		s.db, err = kv.Open(path, opts)
		if err != nil {
			return nil, errors.Wrap(err, "persist/mkv: failed to open KV")
		}
	}

	return &s, nil
}

func (s *Saver) Close() error {
	return s.db.Close()
}
