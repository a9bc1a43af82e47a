// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package binbuf

// Framing wraps encoded records for storage in block-oriented media.
type Framing interface {
	DecodeFrame([]byte) ([]byte, error)
	EncodeFrame([]byte) ([]byte, error)
}
