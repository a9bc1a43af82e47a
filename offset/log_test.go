// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package offset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/binbuf"
	"github.com/ssbc/binbuf/framing/lengthprefixed"
)

type testEvent struct {
	Foo string
	Bar uint32
}

var testEventCodec = binbuf.Codec[testEvent]{
	Encode: func(b *binbuf.Buffer, ev testEvent) {
		b.AppendString(ev.Foo)
		b.AppendUint32(ev.Bar)
	},
	Decode: func(r *binbuf.Reader) (testEvent, error) {
		var (
			ev  testEvent
			err error
		)
		if ev.Foo, err = r.ReadString(); err != nil {
			return testEvent{}, err
		}
		if ev.Bar, err = r.ReadUint32(); err != nil {
			return testEvent{}, err
		}
		return ev, nil
	},
}

var testEvents = []testEvent{
	{"hello", 23},
	{"world", 42},
	{"world", 161},
	{"world", 1312},
}

func TestReadWrite(t *testing.T) {
	// setup
	r := require.New(t)
	f, err := os.CreateTemp("", t.Name())
	r.NoError(err)

	log, err := New(f, lengthprefixed.New32(DefaultFrameSize), testEventCodec)
	r.NoError(err, "error during log creation")

	// fill
	for i, ev := range testEvents {
		seq, err := log.Append(ev)
		r.NoError(err, "failed to append event %d", i)
		r.Equal(Seq(i), seq, "sequence missmatch")
	}

	// read
	for i := range testEvents {
		ev, err := log.Get(Seq(i))
		r.NoError(err, "failed to get event %d", i)
		r.Equal(testEvents[i], ev)
	}

	// out of bounds
	_, err = log.Get(Seq(len(testEvents)))
	r.True(IsOutOfBounds(err), "expected out of bounds, got %v", err)

	// cleanup
	if t.Failed() {
		t.Log("log was written to ", f.Name())
	} else {
		os.Remove(f.Name())
	}
}

// make sure that the sequence is picked up after opening an existing log
func TestWriteAndWriteAgain(t *testing.T) {
	// setup
	r := require.New(t)
	f, err := os.CreateTemp("", t.Name())
	r.NoError(err)

	log, err := New(f, lengthprefixed.New32(DefaultFrameSize), testEventCodec)
	r.NoError(err, "error during log creation")

	// fill
	for i, ev := range testEvents {
		seq, err := log.Append(ev)
		r.NoError(err, "failed to append event %d", i)
		r.Equal(Seq(i), seq, "sequence missmatch")
	}

	// close and open
	name := f.Name()
	r.NoError(f.Close())
	f, err = os.OpenFile(name, os.O_RDWR, 0600)
	r.NoError(err, "failed to re-open file")
	log, err = New(f, lengthprefixed.New32(DefaultFrameSize), testEventCodec)
	r.NoError(err, "error during log creation")

	// fill again
	for i, ev := range testEvents {
		seq, err := log.Append(ev)
		r.NoError(err, "failed to do 2nd append %d", i)
		r.Equal(Seq(len(testEvents)+i), seq, "sequence missmatch %d", i)
	}

	currSeq, err := log.Seq().Value()
	r.NoError(err, "failed to get current sequence")
	r.Equal(Seq(2*len(testEvents)-1), currSeq.(Seq))

	// read by seq
	for i := 0; i < 2*len(testEvents); i++ {
		ev, err := log.Get(Seq(i))
		r.NoError(err, "failed to get event %d", i)
		r.Equal(testEvents[i%len(testEvents)], ev)
	}

	// cleanup
	if t.Failed() {
		t.Log("log was written to ", name)
	} else {
		os.Remove(name)
	}
}

func TestQueryBounds(t *testing.T) {
	r := require.New(t)
	f, err := os.CreateTemp("", t.Name())
	r.NoError(err)
	defer os.Remove(f.Name())

	log, err := New(f, lengthprefixed.New32(DefaultFrameSize), testEventCodec)
	r.NoError(err)

	for i, ev := range testEvents {
		_, err := log.Append(ev)
		r.NoError(err, "failed to append event %d", i)
	}

	src, err := log.Query(Gte(Seq(1)), Lt(Seq(3)))
	r.NoError(err)

	ctx := context.Background()

	var got []testEvent
	for {
		v, err := src.Next(ctx)
		if luigi.IsEOS(err) {
			break
		}
		r.NoError(err)
		got = append(got, v.(testEvent))
	}
	r.Equal(testEvents[1:3], got)

	// limit
	src, err = log.Query(Limit(2))
	r.NoError(err)
	for i := 0; i < 2; i++ {
		v, err := src.Next(ctx)
		r.NoError(err)
		r.Equal(testEvents[i], v.(testEvent))
	}
	_, err = src.Next(ctx)
	r.True(luigi.IsEOS(err), "expected end of stream, got %v", err)
}

func TestQueryLive(t *testing.T) {
	r := require.New(t)
	f, err := os.CreateTemp("", t.Name())
	r.NoError(err)
	defer os.Remove(f.Name())

	log, err := New(f, lengthprefixed.New32(DefaultFrameSize), testEventCodec)
	r.NoError(err)

	src, err := log.Query(Live(true))
	r.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(time.Second / 10)
		for i, ev := range testEvents {
			if _, err := log.Append(ev); err != nil {
				t.Errorf("append %d failed: %v", i, err)
				return
			}
		}
	}()

	for i := range testEvents {
		v, err := src.Next(ctx)
		r.NoError(err, "failed to get live event %d", i)
		r.Equal(testEvents[i], v.(testEvent))
	}
}
