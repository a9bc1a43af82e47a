// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package sqlite

import (
	"database/sql"
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/ssbc/binbuf/persist"
)

func (s *Saver) Put(key persist.Key, data []byte) error {
	hexKey := hex.EncodeToString(key)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO persisted_buffers (key, data) VALUES(?, ?)`, hexKey, data)
	return errors.Wrap(err, "persist/sqlite: put failed")
}

func (s *Saver) Get(key persist.Key) ([]byte, error) {
	var data []byte
	hexKey := hex.EncodeToString(key)
	err := s.db.QueryRow(`SELECT data FROM persisted_buffers WHERE key = ?`, hexKey).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, persist.ErrNotFound
		}
		return nil, errors.Wrap(err, "persist/sqlite: get failed")
	}
	return data, nil
}

func (s *Saver) List() ([]persist.Key, error) {
	rows, err := s.db.Query(`SELECT key FROM persisted_buffers`)
	if err != nil {
		return nil, errors.Wrap(err, "persist/sqlite: list query failed")
	}
	defer rows.Close()

	var keys []persist.Key
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, errors.Wrap(err, "persist/sqlite: failed to scan row")
		}
		bk, err := hex.DecodeString(k)
		if err != nil {
			return nil, errors.Wrapf(err, "persist/sqlite: invalid key: %q", k)
		}
		keys = append(keys, bk)
	}

	return keys, rows.Err()
}

func (s *Saver) Delete(rm persist.Key) error {
	_, err := s.db.Exec(`DELETE FROM persisted_buffers WHERE key = ?`, hex.EncodeToString(rm))
	return errors.Wrap(err, "persist/sqlite: delete failed")
}
