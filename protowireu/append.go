package protowireu

import (
	"bytes"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// AppendField writes v unless it is the zero value (proto3 implicit presence).
func AppendField[T any](b []byte, num protowire.Number, c Codec[T], v T) []byte {
	if c.Empty(v) {
		return b
	}
	return AppendPresent(b, num, c, v)
}

// AppendPresent writes v even when it is the zero value.
func AppendPresent[T any](b []byte, num protowire.Number, c Codec[T], v T) []byte {
	b = protowire.AppendTag(b, num, c.Type)
	return c.Append(b, v)
}

// AppendOptional writes *v when v is set (proto3 explicit presence).
func AppendOptional[T any](b []byte, num protowire.Number, c Codec[T], v *T) []byte {
	if v == nil {
		return b
	}
	return AppendPresent(b, num, c, *v)
}

// AppendRepeated packs scalar codecs and writes length-delimited ones one record per element.
func AppendRepeated[T any](b []byte, num protowire.Number, c Codec[T], vs []T) []byte {
	if len(vs) == 0 {
		return b
	}
	if c.Type == protowire.BytesType {
		for _, v := range vs {
			b = AppendPresent(b, num, c, v)
		}
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = c.Append(packed, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// AppendMessage writes a nested message; nil messages are omitted.
func AppendMessage[T interface {
	comparable
	Encoder
}](b []byte, num protowire.Number, v T) []byte {
	if isZero(v) {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v.Encode())
}

// AppendRepeatedMessage writes each non-nil element of vs as its own record.
func AppendRepeatedMessage[T interface {
	comparable
	Encoder
}](b []byte, num protowire.Number, vs []T) []byte {
	for _, v := range vs {
		b = AppendMessage(b, num, v)
	}
	return b
}

// AppendMap writes one entry record per key. Entries are ordered by their encoded
// key so the same map always encodes to the same bytes.
func AppendMap[K comparable, V any](b []byte, num protowire.Number, kc Codec[K], vc Codec[V], m map[K]V) []byte {
	if len(m) == 0 {
		return b
	}
	type entry struct {
		key  []byte
		body []byte
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		key := AppendPresent(nil, 1, kc, k)
		body := AppendPresent(append([]byte(nil), key...), 2, vc, v)
		entries = append(entries, entry{key: key, body: body})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return bytes.Compare(a.key, b.key)
	})
	for _, e := range entries {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, e.body)
	}
	return b
}
