// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package offset

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
)

// Query collects the constraints a query source honors.
type Query interface {
	Gt(Seq) error
	Gte(Seq) error
	Lt(Seq) error
	Lte(Seq) error
	Limit(int) error

	Live(bool) error
}

// QuerySpec is a constraint on a query.
type QuerySpec func(Query) error

// Gt makes the source return only records with sequence numbers greater
// than s.
func Gt(s Seq) QuerySpec {
	return func(q Query) error {
		return q.Gt(s)
	}
}

// Gte makes the source return only records with sequence numbers greater
// than or equal to s.
func Gte(s Seq) QuerySpec {
	return func(q Query) error {
		return q.Gte(s)
	}
}

// Lt makes the source return only records with sequence numbers less
// than s.
func Lt(s Seq) QuerySpec {
	return func(q Query) error {
		return q.Lt(s)
	}
}

// Lte makes the source return only records with sequence numbers less
// than or equal to s.
func Lte(s Seq) QuerySpec {
	return func(q Query) error {
		return q.Lte(s)
	}
}

// Limit caps the number of records the source returns.
func Limit(n int) QuerySpec {
	return func(q Query) error {
		return q.Limit(n)
	}
}

// Live makes the source block for new records once it caught up with the
// end of the log, instead of returning EOS.
func Live(live bool) QuerySpec {
	return func(q Query) error {
		return q.Live(live)
	}
}

type query[T any] struct {
	l   sync.Mutex
	log *Log[T]

	nextSeq, lt Seq

	limit int
	live  bool
}

var _ Query = (*query[int])(nil)

func (qry *query[T]) Gt(s Seq) error {
	if qry.nextSeq > SeqEmpty {
		return errors.New("offset: lower bound already set")
	}

	qry.nextSeq = s + 1
	return nil
}

func (qry *query[T]) Gte(s Seq) error {
	if qry.nextSeq > SeqEmpty {
		return errors.New("offset: lower bound already set")
	}

	qry.nextSeq = s
	return nil
}

func (qry *query[T]) Lt(s Seq) error {
	if qry.lt != SeqEmpty {
		return errors.New("offset: upper bound already set")
	}

	qry.lt = s
	return nil
}

func (qry *query[T]) Lte(s Seq) error {
	if qry.lt != SeqEmpty {
		return errors.New("offset: upper bound already set")
	}

	qry.lt = s + 1
	return nil
}

func (qry *query[T]) Limit(n int) error {
	qry.limit = n
	return nil
}

func (qry *query[T]) Live(live bool) error {
	qry.live = live
	return nil
}

func (qry *query[T]) Next(ctx context.Context) (interface{}, error) {
	qry.l.Lock()
	defer qry.l.Unlock()

	if qry.limit == 0 {
		return nil, luigi.EOS{}
	}
	qry.limit--

	if qry.nextSeq == SeqEmpty {
		qry.nextSeq = 0
	}

	qry.log.l.Lock()
	defer qry.log.l.Unlock()

	fi, err := qry.log.f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "offset: failed to stat log file")
	}

	seekTo := int64(qry.nextSeq) * qry.log.framing.FrameSize()
	if fi.Size() < seekTo+qry.log.framing.FrameSize() {
		if !qry.live {
			return nil, luigi.EOS{}
		}

		if err := qry.waitForNext(ctx); err != nil {
			return nil, err
		}
	}

	if qry.lt != SeqEmpty && !(qry.nextSeq < qry.lt) {
		return nil, luigi.EOS{}
	}

	v, err := qry.log.readFrame(qry.nextSeq)
	if err != nil {
		return nil, errors.Wrap(err, "offset: failed to read next frame")
	}
	qry.nextSeq++

	return v, nil
}

// waitForNext blocks until the log's sequence number reaches qry.nextSeq.
// Callers have to hold both qry.l and qry.log.l.
func (qry *query[T]) waitForNext(ctx context.Context) error {
	var (
		once   sync.Once
		wait   = make(chan struct{})
		closed = make(chan struct{})
	)

	cancel := qry.log.seq.Register(luigi.FuncSink(
		func(ctx context.Context, v interface{}, err error) error {
			if err != nil {
				close(closed)
				return nil
			}
			if v.(Seq) >= qry.nextSeq {
				once.Do(func() { close(wait) })
			}

			return nil
		}))
	defer cancel()

	// release the log lock so appends can happen while we wait
	qry.log.l.Unlock()
	defer qry.log.l.Lock()

	select {
	case <-wait:
		return nil
	case <-closed:
		return errors.New("offset: sequence observable closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}
