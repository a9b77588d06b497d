// Package protowireu holds the wire helpers that minimal-style generated code
// calls from its Encode methods and Decode functions.
package protowireu

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrWireType is returned when a field arrives with a wire type its codec cannot read.
var ErrWireType = errors.New("protowireu: unexpected wire type")

// Codec reads and writes the value part of one protobuf scalar kind.
type Codec[T any] struct {
	Type    protowire.Type
	Append  func(b []byte, v T) []byte
	Consume func(b []byte) (T, int, error)
	Empty   func(v T) bool
}

func isZero[T comparable](v T) bool {
	var zero T
	return v == zero
}

func varintCodec[T comparable](enc func(T) uint64, dec func(uint64) T) Codec[T] {
	return Codec[T]{
		Type: protowire.VarintType,
		Append: func(b []byte, v T) []byte {
			return protowire.AppendVarint(b, enc(v))
		},
		Consume: func(b []byte) (T, int, error) {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				var zero T
				return zero, 0, protowire.ParseError(n)
			}
			return dec(v), n, nil
		},
		Empty: isZero[T],
	}
}

func fixed32Codec[T comparable](enc func(T) uint32, dec func(uint32) T) Codec[T] {
	return Codec[T]{
		Type: protowire.Fixed32Type,
		Append: func(b []byte, v T) []byte {
			return protowire.AppendFixed32(b, enc(v))
		},
		Consume: func(b []byte) (T, int, error) {
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				var zero T
				return zero, 0, protowire.ParseError(n)
			}
			return dec(v), n, nil
		},
		Empty: isZero[T],
	}
}

func fixed64Codec[T comparable](enc func(T) uint64, dec func(uint64) T) Codec[T] {
	return Codec[T]{
		Type: protowire.Fixed64Type,
		Append: func(b []byte, v T) []byte {
			return protowire.AppendFixed64(b, enc(v))
		},
		Consume: func(b []byte) (T, int, error) {
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				var zero T
				return zero, 0, protowire.ParseError(n)
			}
			return dec(v), n, nil
		},
		Empty: isZero[T],
	}
}

var (
	Int32 = varintCodec(
		func(v int32) uint64 { return uint64(int64(v)) },
		func(v uint64) int32 { return int32(v) },
	)
	Int64 = varintCodec(
		func(v int64) uint64 { return uint64(v) },
		func(v uint64) int64 { return int64(v) },
	)
	Uint32 = varintCodec(
		func(v uint32) uint64 { return uint64(v) },
		func(v uint64) uint32 { return uint32(v) },
	)
	Uint64 = varintCodec(
		func(v uint64) uint64 { return v },
		func(v uint64) uint64 { return v },
	)
	Sint32 = varintCodec(
		func(v int32) uint64 { return protowire.EncodeZigZag(int64(v)) },
		func(v uint64) int32 { return int32(protowire.DecodeZigZag(v & math.MaxUint32)) },
	)
	Sint64 = varintCodec(
		func(v int64) uint64 { return protowire.EncodeZigZag(v) },
		func(v uint64) int64 { return protowire.DecodeZigZag(v) },
	)
	Bool = varintCodec(
		protowire.EncodeBool,
		protowire.DecodeBool,
	)
	Fixed32 = fixed32Codec(
		func(v uint32) uint32 { return v },
		func(v uint32) uint32 { return v },
	)
	Sfixed32 = fixed32Codec(
		func(v int32) uint32 { return uint32(v) },
		func(v uint32) int32 { return int32(v) },
	)
	Float = fixed32Codec(
		math.Float32bits,
		math.Float32frombits,
	)
	Fixed64 = fixed64Codec(
		func(v uint64) uint64 { return v },
		func(v uint64) uint64 { return v },
	)
	Sfixed64 = fixed64Codec(
		func(v int64) uint64 { return uint64(v) },
		func(v uint64) int64 { return int64(v) },
	)
	Double = fixed64Codec(
		math.Float64bits,
		math.Float64frombits,
	)
)

var String = Codec[string]{
	Type: protowire.BytesType,
	Append: func(b []byte, v string) []byte {
		return protowire.AppendString(b, v)
	},
	Consume: func(b []byte) (string, int, error) {
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return "", 0, protowire.ParseError(n)
		}
		return string(v), n, nil
	},
	Empty: isZero[string],
}

// Bytes copies on Consume so decoded messages never alias the input buffer.
var Bytes = Codec[[]byte]{
	Type: protowire.BytesType,
	Append: func(b []byte, v []byte) []byte {
		return protowire.AppendBytes(b, v)
	},
	Consume: func(b []byte) ([]byte, int, error) {
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, 0, protowire.ParseError(n)
		}
		return append([]byte(nil), v...), n, nil
	},
	Empty: func(v []byte) bool { return len(v) == 0 },
}

// Encoder is implemented by every minimal-style message.
type Encoder interface {
	Encode() []byte
}

// MessageCodec adapts a message type to a Codec, for use as a map value.
func MessageCodec[T interface {
	comparable
	Encoder
}](decode func([]byte) (T, error)) Codec[T] {
	return Codec[T]{
		Type: protowire.BytesType,
		Append: func(b []byte, v T) []byte {
			if isZero(v) {
				return protowire.AppendBytes(b, nil)
			}
			return protowire.AppendBytes(b, v.Encode())
		},
		Consume: func(b []byte) (T, int, error) {
			var zero T
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return zero, 0, protowire.ParseError(n)
			}
			v, err := decode(raw)
			if err != nil {
				return zero, 0, err
			}
			return v, n, nil
		},
		Empty: isZero[T],
	}
}

func wireTypeError(got, want protowire.Type) error {
	return fmt.Errorf("%w: got %d, want %d", ErrWireType, got, want)
}
