// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package badger implements a buffer saver on top of badger.
package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/ssbc/binbuf/persist"
)

type Saver struct {
	db *badger.DB
}

var _ persist.Saver = (*Saver)(nil)

// New opens (or creates) a badger database at path.
func New(path string) (*Saver, error) {
	var s Saver

	var err error
	s.db, err = badger.Open(badgerOpts(path))
	if err != nil {
		return nil, errors.Wrapf(err, "persist/badger: failed to open KV %s", path)
	}

	return &s, nil
}

func (s *Saver) Close() error {
	return s.db.Close()
}
