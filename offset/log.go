// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

// Package offset implements a file-backed append-only log of binbuf-encoded
// records. Records are stored in fixed-size frames, so the sequence number
// of a record directly addresses its position in the file.
package offset

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/binbuf"
	"github.com/ssbc/binbuf/framing/lengthprefixed"
)

// DefaultFrameSize is the default frame size.
const DefaultFrameSize = 4096

// Seq is the sequence number of a record in the log.
type Seq int64

// SeqEmpty is the current sequence number of an empty log.
const SeqEmpty Seq = -1

type oob struct{}

// OOB is an out of bounds error.
var OOB oob

func (oob) Error() string {
	return "offset: out of bounds"
}

// IsOutOfBounds returns whether a particular error is an out-of-bounds
// error.
func IsOutOfBounds(err error) bool {
	_, ok := err.(oob)
	return ok
}

// Log is a file-backed record log. All records share one codec; the type
// parameter pins it at compile time.
type Log[T any] struct {
	l sync.Mutex
	f *os.File

	seq     luigi.Observable
	codec   binbuf.Codec[T]
	framing lengthprefixed.Framing
}

// New returns a log over the given file. The current sequence number is
// derived from the file size and the frame size.
func New[T any](f *os.File, framing lengthprefixed.Framing, codec binbuf.Codec[T]) (*Log[T], error) {
	log := &Log[T]{
		f:       f,
		framing: framing,
		codec:   codec,
	}

	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "offset: failed to seek to end of log file")
	}
	log.seq = luigi.NewObservable(Seq(end/framing.FrameSize() - 1))

	return log, nil
}

// Seq returns an observable that holds the current sequence number.
func (log *Log[T]) Seq() luigi.Observable {
	return log.seq
}

// Append encodes v, frames it and writes it at the end of the file,
// returning the new record's sequence number.
func (log *Log[T]) Append(v T) (Seq, error) {
	frame, err := log.framing.EncodeFrame(log.codec.Marshal(v))
	if err != nil {
		return SeqEmpty, err
	}

	log.l.Lock()
	defer log.l.Unlock()

	if _, err := log.f.Seek(0, io.SeekEnd); err != nil {
		return SeqEmpty, errors.Wrap(err, "offset: failed to seek to end of log file")
	}
	if _, err := log.f.Write(frame); err != nil {
		return SeqEmpty, errors.Wrap(err, "offset: failed to write frame")
	}

	currV, err := log.seq.Value()
	if err != nil {
		return SeqEmpty, errors.Wrap(err, "offset: failed to read current sequence number")
	}
	nextSeq := currV.(Seq) + 1
	return nextSeq, log.seq.Set(nextSeq)
}

// Get returns the record with sequence number s.
func (log *Log[T]) Get(s Seq) (T, error) {
	var zero T
	if s < 0 {
		return zero, OOB
	}

	log.l.Lock()
	defer log.l.Unlock()

	currV, err := log.seq.Value()
	if err != nil {
		return zero, errors.Wrap(err, "offset: failed to read current sequence number")
	}
	if s > currV.(Seq) {
		return zero, OOB
	}

	return log.readFrame(s)
}

// Query returns a source over the log's records, constrained by the given
// query specifications.
func (log *Log[T]) Query(specs ...QuerySpec) (luigi.Source, error) {
	log.l.Lock()
	defer log.l.Unlock()

	qry := &query[T]{
		log: log,

		nextSeq: SeqEmpty,
		lt:      SeqEmpty,

		limit: -1, // i.e. no limit
	}

	for _, spec := range specs {
		if err := spec(qry); err != nil {
			return nil, err
		}
	}

	return qry, nil
}

// FileName returns the name of the backing file.
func (log *Log[T]) FileName() string {
	return log.f.Name()
}

// readFrame reads and decodes the frame at sequence number s.
// Callers have to hold log.l.
func (log *Log[T]) readFrame(s Seq) (T, error) {
	var zero T

	fs := log.framing.FrameSize()
	block := make([]byte, fs)
	if _, err := log.f.ReadAt(block, int64(s)*fs); err != nil {
		return zero, errors.Wrapf(err, "offset: failed to read block %d", s)
	}

	data, err := log.framing.DecodeFrame(block)
	if err != nil {
		return zero, errors.Wrapf(err, "offset: failed to decode frame %d", s)
	}

	return log.codec.Unmarshal(data)
}
