// SPDX-FileCopyrightText: 2022 The binbuf Authors
//
// SPDX-License-Identifier: MIT

package binbuf

// Codec bundles the encode and decode halves of the format's per-type
// contract. Scalar codecs are predefined (Uint8 through Float64, String,
// Bytes); composite codecs are built with SliceOf, PairOf, TripleOf and
// QuadOf. Dispatch is fully static, nothing about the element types ends up
// on the wire.
type Codec[T any] struct {
	// Encode appends v to the buffer. It cannot fail.
	Encode func(b *Buffer, v T)

	// Decode consumes one value from the cursor, advancing it on success.
	Decode func(r *Reader) (T, error)
}

// Marshal encodes a single value into a fresh byte slice.
func (c Codec[T]) Marshal(v T) []byte {
	var b Buffer
	c.Encode(&b, v)
	return b.Bytes()
}

// Unmarshal decodes a single value from the start of data. Trailing bytes
// are ignored.
func (c Codec[T]) Unmarshal(data []byte) (T, error) {
	return c.Decode(NewReader(data))
}

// Codecs for the fixed-width scalar types.
var (
	Uint8   = Codec[uint8]{Encode: (*Buffer).AppendUint8, Decode: (*Reader).ReadUint8}
	Uint16  = Codec[uint16]{Encode: (*Buffer).AppendUint16, Decode: (*Reader).ReadUint16}
	Uint32  = Codec[uint32]{Encode: (*Buffer).AppendUint32, Decode: (*Reader).ReadUint32}
	Uint64  = Codec[uint64]{Encode: (*Buffer).AppendUint64, Decode: (*Reader).ReadUint64}
	Float32 = Codec[float32]{Encode: (*Buffer).AppendFloat32, Decode: (*Reader).ReadFloat32}
	Float64 = Codec[float64]{Encode: (*Buffer).AppendFloat64, Decode: (*Reader).ReadFloat64}
)

// String is the codec for length-prefixed UTF-8 strings.
var String = Codec[string]{Encode: (*Buffer).AppendString, Decode: (*Reader).ReadString}

// Bytes is the codec for length-prefixed raw byte slices.
var Bytes = Codec[[]byte]{Encode: (*Buffer).AppendBytes, Decode: (*Reader).ReadBytes}

// SliceOf returns the codec for homogeneous slices of elem's type: a uint64
// element count followed by the elements back to back. A failed element
// decode fails the whole slice, no partial slice is ever returned.
func SliceOf[T any](elem Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		Encode: func(b *Buffer, xs []T) {
			b.AppendUint64(uint64(len(xs)))
			for _, x := range xs {
				elem.Encode(b, x)
			}
		},
		Decode: func(r *Reader) ([]T, error) {
			n, err := r.ReadUint64()
			if err != nil {
				return nil, err
			}
			// the count comes off the wire, so don't size the
			// allocation by it
			xs := []T{}
			for i := uint64(0); i < n; i++ {
				x, err := elem.Decode(r)
				if err != nil {
					return nil, err
				}
				xs = append(xs, x)
			}
			return xs, nil
		},
	}
}

// Pair is a 2-tuple. On the wire it is the concatenation of its components,
// without any prefix.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is a 3-tuple, encoded like Pair.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Quad is a 4-tuple, encoded like Pair.
type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// PairOf returns the codec for 2-tuples over the given component codecs.
// Decoding aborts on the first failed component.
func PairOf[A, B any](a Codec[A], b Codec[B]) Codec[Pair[A, B]] {
	return Codec[Pair[A, B]]{
		Encode: func(buf *Buffer, v Pair[A, B]) {
			a.Encode(buf, v.A)
			b.Encode(buf, v.B)
		},
		Decode: func(r *Reader) (Pair[A, B], error) {
			var v Pair[A, B]
			var err error
			if v.A, err = a.Decode(r); err != nil {
				return Pair[A, B]{}, err
			}
			if v.B, err = b.Decode(r); err != nil {
				return Pair[A, B]{}, err
			}
			return v, nil
		},
	}
}

// TripleOf returns the codec for 3-tuples over the given component codecs.
func TripleOf[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[Triple[A, B, C]] {
	return Codec[Triple[A, B, C]]{
		Encode: func(buf *Buffer, v Triple[A, B, C]) {
			a.Encode(buf, v.A)
			b.Encode(buf, v.B)
			c.Encode(buf, v.C)
		},
		Decode: func(r *Reader) (Triple[A, B, C], error) {
			var v Triple[A, B, C]
			var err error
			if v.A, err = a.Decode(r); err != nil {
				return Triple[A, B, C]{}, err
			}
			if v.B, err = b.Decode(r); err != nil {
				return Triple[A, B, C]{}, err
			}
			if v.C, err = c.Decode(r); err != nil {
				return Triple[A, B, C]{}, err
			}
			return v, nil
		},
	}
}

// QuadOf returns the codec for 4-tuples over the given component codecs.
func QuadOf[A, B, C, D any](a Codec[A], b Codec[B], c Codec[C], d Codec[D]) Codec[Quad[A, B, C, D]] {
	return Codec[Quad[A, B, C, D]]{
		Encode: func(buf *Buffer, v Quad[A, B, C, D]) {
			a.Encode(buf, v.A)
			b.Encode(buf, v.B)
			c.Encode(buf, v.C)
			d.Encode(buf, v.D)
		},
		Decode: func(r *Reader) (Quad[A, B, C, D], error) {
			var v Quad[A, B, C, D]
			var err error
			if v.A, err = a.Decode(r); err != nil {
				return Quad[A, B, C, D]{}, err
			}
			if v.B, err = b.Decode(r); err != nil {
				return Quad[A, B, C, D]{}, err
			}
			if v.C, err = c.Decode(r); err != nil {
				return Quad[A, B, C, D]{}, err
			}
			if v.D, err = d.Decode(r); err != nil {
				return Quad[A, B, C, D]{}, err
			}
			return v, nil
		},
	}
}
