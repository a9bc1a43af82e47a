// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package mkv

import (
	"io"

	"github.com/ssbc/binbuf/persist"
)

func (s *Saver) Put(key persist.Key, data []byte) error {
	return s.db.Set(key, data)
}

func (s *Saver) Get(key persist.Key) ([]byte, error) {
	data, err := s.db.Get(nil, key)
	if data == nil && err == nil {
		return nil, persist.ErrNotFound
	}
	return data, err
}

func (s *Saver) List() ([]persist.Key, error) {
	var keys []persist.Key
	iter, err := s.db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return keys, nil
		}
		return nil, err
	}
	for {
		k, _, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		keys = append(keys, k)
	}
	return keys, nil
}

func (s *Saver) Delete(rm persist.Key) error {
	return s.db.Delete(rm)
}
