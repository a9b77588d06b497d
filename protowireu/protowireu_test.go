package protowireu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

type point struct {
	X int32
}

func (p *point) Encode() []byte {
	return AppendField(nil, 1, Int32, p.X)
}

func decodePoint(b []byte) (*point, error) {
	p := &point{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			n, err = ConsumeField(b, typ, Int32, &p.X)
		default:
			n, err = SkipField(b, num, typ)
		}
		if err != nil {
			return nil, err
		}
		b = b[n:]
	}
	return p, nil
}

func consumeOne[T any](t *testing.T, b []byte, c Codec[T]) T {
	t.Helper()
	_, typ, n := protowire.ConsumeTag(b)
	require.Greater(t, n, 0)
	var v T
	m, err := ConsumeField(b[n:], typ, c, &v)
	require.NoError(t, err)
	require.Equal(t, len(b)-n, m)
	return v
}

func TestScalarRoundTrip(t *testing.T) {
	assert.Equal(t, int32(-7), consumeOne(t, AppendPresent(nil, 1, Int32, int32(-7)), Int32))
	assert.Equal(t, int64(-1<<40), consumeOne(t, AppendPresent(nil, 1, Int64, int64(-1<<40)), Int64))
	assert.Equal(t, int32(-3), consumeOne(t, AppendPresent(nil, 1, Sint32, int32(-3)), Sint32))
	assert.Equal(t, uint64(1<<63), consumeOne(t, AppendPresent(nil, 1, Fixed64, uint64(1<<63)), Fixed64))
	assert.Equal(t, float32(1.5), consumeOne(t, AppendPresent(nil, 1, Float, float32(1.5)), Float))
	assert.Equal(t, 2.25, consumeOne(t, AppendPresent(nil, 1, Double, 2.25), Double))
	assert.True(t, consumeOne(t, AppendPresent(nil, 1, Bool, true), Bool))
	assert.Equal(t, "hi", consumeOne(t, AppendPresent(nil, 1, String, "hi"), String))
	assert.Equal(t, []byte{1, 2}, consumeOne(t, AppendPresent(nil, 1, Bytes, []byte{1, 2}), Bytes))
}

func TestAppendFieldSkipsZero(t *testing.T) {
	assert.Empty(t, AppendField(nil, 1, Int32, 0))
	assert.Empty(t, AppendField(nil, 1, String, ""))
	assert.Empty(t, AppendField(nil, 1, Bytes, nil))
	assert.NotEmpty(t, AppendPresent(nil, 1, Int32, 0))

	zero := int32(0)
	assert.NotEmpty(t, AppendOptional(nil, 1, Int32, &zero))
	assert.Empty(t, AppendOptional[int32](nil, 1, Int32, nil))
}

func TestRepeatedPackedAndExpanded(t *testing.T) {
	packed := AppendRepeated(nil, 3, Int32, []int32{1, 2, 300})
	_, typ, n := protowire.ConsumeTag(packed)
	require.Equal(t, protowire.BytesType, typ)

	var got []int32
	_, err := ConsumeRepeated(packed[n:], typ, Int32, &got)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 300}, got)

	expanded := AppendPresent(nil, 3, Int32, int32(9))
	_, typ, n = protowire.ConsumeTag(expanded)
	_, err = ConsumeRepeated(expanded[n:], typ, Int32, &got)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 300, 9}, got)
}

func TestRepeatedStringsAreNotPacked(t *testing.T) {
	b := AppendRepeated(nil, 2, String, []string{"a", "b"})
	var got []string
	for len(b) > 0 {
		_, typ, n := protowire.ConsumeTag(b)
		b = b[n:]
		m, err := ConsumeRepeated(b, typ, String, &got)
		require.NoError(t, err)
		b = b[m:]
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMessageHelpers(t *testing.T) {
	b := AppendMessage(nil, 4, &point{X: 5})
	b = AppendMessage(b, 4, (*point)(nil))
	b = AppendRepeatedMessage(b, 5, []*point{{X: 1}, nil, {X: 2}})

	var single *point
	var list []*point
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		b = b[n:]
		var m int
		var err error
		if num == 4 {
			m, err = ConsumeMessage(b, typ, decodePoint, &single)
		} else {
			m, err = ConsumeRepeatedMessage(b, typ, decodePoint, &list)
		}
		require.NoError(t, err)
		b = b[m:]
	}
	assert.Equal(t, int32(5), single.X)
	require.Len(t, list, 2)
	assert.Equal(t, int32(2), list[1].X)
}

func TestMapIsDeterministic(t *testing.T) {
	m := map[string]int32{"b": 2, "a": 1, "c": 3}
	first := AppendMap(nil, 6, String, Int32, m)
	for range 10 {
		assert.Equal(t, first, AppendMap(nil, 6, String, Int32, m))
	}

	var got map[string]int32
	b := first
	for len(b) > 0 {
		_, typ, n := protowire.ConsumeTag(b)
		b = b[n:]
		k, err := ConsumeMapEntry(b, typ, String, Int32, &got)
		require.NoError(t, err)
		b = b[k:]
	}
	assert.Equal(t, m, got)
}

func TestMapWithMessageValues(t *testing.T) {
	codec := MessageCodec(decodePoint)
	b := AppendMap(nil, 1, Int64, codec, map[int64]*point{7: {X: 3}})
	_, typ, n := protowire.ConsumeTag(b)
	var got map[int64]*point
	_, err := ConsumeMapEntry(b[n:], typ, Int64, codec, &got)
	require.NoError(t, err)
	assert.Equal(t, int32(3), got[7].X)
}

func TestWrongWireType(t *testing.T) {
	var s string
	_, err := ConsumeField([]byte{1}, protowire.VarintType, String, &s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWireType))
}
