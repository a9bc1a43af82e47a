// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package sqlite implements a buffer saver in a single sqlite table.
// Keys are stored hex encoded.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/ssbc/binbuf/persist"
)

const schema = `CREATE TABLE IF NOT EXISTS persisted_buffers (
	key  TEXT PRIMARY KEY,
	data BLOB
);`

type Saver struct {
	db *sql.DB
}

var _ persist.Saver = (*Saver)(nil)

// New opens (or creates) the database. If path is a directory, the database
// file buffers.db is created inside it.
func New(path string) (*Saver, error) {
	s, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0700); err != nil {
			return nil, errors.Wrap(err, "persist/sqlite: failed to create path location")
		}
		s, err = os.Stat(path)
		if err != nil {
			return nil, errors.Wrap(err, "persist/sqlite: failed to stat created path location")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "persist/sqlite: failed to stat path location")
	}
	if s.IsDir() {
		path = filepath.Join(path, "buffers.db")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist/sqlite: failed to open file: %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "persist/sqlite: failed to init schema")
	}

	return &Saver{db: db}, nil
}

func (s *Saver) Close() error {
	return s.db.Close()
}
