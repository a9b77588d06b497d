package protowireu

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// ConsumeField decodes one value into dst and returns the number of bytes read.
func ConsumeField[T any](b []byte, typ protowire.Type, c Codec[T], dst *T) (int, error) {
	if typ != c.Type {
		return 0, wireTypeError(typ, c.Type)
	}
	v, n, err := c.Consume(b)
	if err != nil {
		return 0, err
	}
	*dst = v
	return n, nil
}

// ConsumeOptional decodes one value and marks the field present.
func ConsumeOptional[T any](b []byte, typ protowire.Type, c Codec[T], dst **T) (int, error) {
	var v T
	n, err := ConsumeField(b, typ, c, &v)
	if err != nil {
		return 0, err
	}
	*dst = &v
	return n, nil
}

// ConsumeRepeated accepts both the packed and the expanded encoding of a scalar list.
func ConsumeRepeated[T any](b []byte, typ protowire.Type, c Codec[T], dst *[]T) (int, error) {
	if typ == protowire.BytesType && c.Type != protowire.BytesType {
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m, err := c.Consume(packed)
			if err != nil {
				return 0, err
			}
			*dst = append(*dst, v)
			packed = packed[m:]
		}
		return n, nil
	}
	var v T
	n, err := ConsumeField(b, typ, c, &v)
	if err != nil {
		return 0, err
	}
	*dst = append(*dst, v)
	return n, nil
}

// ConsumeMessage decodes a nested message with decode and stores it in dst.
func ConsumeMessage[T any](b []byte, typ protowire.Type, decode func([]byte) (T, error), dst *T) (int, error) {
	if typ != protowire.BytesType {
		return 0, wireTypeError(typ, protowire.BytesType)
	}
	raw, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	v, err := decode(raw)
	if err != nil {
		return 0, err
	}
	*dst = v
	return n, nil
}

// ConsumeRepeatedMessage decodes one element of a repeated message field.
func ConsumeRepeatedMessage[T any](b []byte, typ protowire.Type, decode func([]byte) (T, error), dst *[]T) (int, error) {
	var v T
	n, err := ConsumeMessage(b, typ, decode, &v)
	if err != nil {
		return 0, err
	}
	*dst = append(*dst, v)
	return n, nil
}

// ConsumeMapEntry decodes one map entry record and inserts it into *dst,
// allocating the map on first use. Missing keys or values take their zero value.
func ConsumeMapEntry[K comparable, V any](b []byte, typ protowire.Type, kc Codec[K], vc Codec[V], dst *map[K]V) (int, error) {
	if typ != protowire.BytesType {
		return 0, wireTypeError(typ, protowire.BytesType)
	}
	entry, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	var k K
	var v V
	for len(entry) > 0 {
		num, etyp, m := protowire.ConsumeTag(entry)
		if m < 0 {
			return 0, protowire.ParseError(m)
		}
		entry = entry[m:]
		var err error
		switch num {
		case 1:
			m, err = ConsumeField(entry, etyp, kc, &k)
		case 2:
			m, err = ConsumeField(entry, etyp, vc, &v)
		default:
			m, err = SkipField(entry, num, etyp)
		}
		if err != nil {
			return 0, err
		}
		entry = entry[m:]
	}
	if *dst == nil {
		*dst = make(map[K]V)
	}
	(*dst)[k] = v
	return n, nil
}

// SkipField steps over a field this version of the schema does not know.
func SkipField(b []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}
