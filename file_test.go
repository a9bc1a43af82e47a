// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package binbuf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAndReadFile(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "buffer.bin")

	var b Buffer
	b.AppendUint16(16)
	b.AppendString("hello")

	r.NoError(WriteFile(path, &b))

	rd, err := ReadFile(path)
	r.NoError(err)

	v, err := rd.ReadUint16()
	r.NoError(err)
	r.Equal(uint16(16), v)

	s, err := rd.ReadString()
	r.NoError(err)
	r.Equal("hello", s)
	r.Equal(0, rd.Remaining())
}

func TestWriteFileTruncates(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "buffer.bin")

	var a Buffer
	a.AppendString("the first version, rather long")
	r.NoError(WriteFile(path, &a))

	var b Buffer
	b.AppendString("v2")
	r.NoError(WriteFile(path, &b))

	rd, err := ReadFile(path)
	r.NoError(err)

	s, err := rd.ReadString()
	r.NoError(err)
	r.Equal("v2", s)
	r.Equal(0, rd.Remaining())
}

func TestAppendFile(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "buffer.bin")

	var a Buffer
	a.AppendUint8(0)
	a.AppendUint8(1)
	r.NoError(WriteFile(path, &a))

	var b Buffer
	b.AppendUint8(2)
	b.AppendUint8(3)
	r.NoError(AppendFile(path, &b))

	rd, err := ReadFile(path)
	r.NoError(err)
	r.Equal([]byte{0, 1, 2, 3}, rd.Bytes())
}

// AppendFile creates missing files, same as WriteFile
func TestAppendFileCreates(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "fresh.bin")

	var b Buffer
	b.AppendUint8(7)
	r.NoError(AppendFile(path, &b))

	rd, err := ReadFile(path)
	r.NoError(err)
	r.Equal([]byte{7}, rd.Bytes())
}

func TestReadFileMissing(t *testing.T) {
	r := require.New(t)

	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.bin"))
	r.Error(err)
}
