package jsarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray1(t *testing.T) {
	t.Parallel()
	a := NewArray()
	a.PutIdx(0, StringValue("test"))
	if l := a.Length(); l != 1 {
		t.Fatalf("Unexpected length: %d", l)
	}
}

func TestArrayPutGetHasDelete(t *testing.T) {
	t.Parallel()
	keys := []Key{
		ClassifyInt(0),
		ClassifyInt(7),
		ClassifyInt(MaxIndex),
		ClassifyInt(-1),
		ClassifyString("p"),
		ClassifyString("0"),
		ClassifyString("2147483648"),
		ClassifyString(""),
		ClassifyString("length"),
	}
	for _, k := range keys {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()
			a := NewArray()
			v := StringValue("a")
			a.Put(k, v)
			assert.True(t, a.Has(k))
			assert.Equal(t, v, a.Get(k))
			a.Delete(k)
			assert.False(t, a.Has(k))
			assert.Nil(t, a.Get(k))
		})
	}
}

func TestArrayDeleteShouldRemoveIndexProperties(t *testing.T) {
	t.Parallel()
	a, err := NewArrayLen(1)
	require.NoError(t, err)
	a.PutIdx(0, StringValue("a"))
	a.DeleteIdx(0)
	assert.False(t, a.HasIdx(0))
	assert.Equal(t, int64(1), a.Length())
}

func TestArrayDeleteShouldRemoveNormalProperties(t *testing.T) {
	t.Parallel()
	a, err := NewArrayLen(1)
	require.NoError(t, err)
	a.PutStr("p", StringValue("a"))
	a.DeleteStr("p")
	assert.False(t, a.HasStr("p"))
}

func TestArrayGetShouldReturnIndexProperties(t *testing.T) {
	t.Parallel()
	a, err := NewArrayLen(1)
	require.NoError(t, err)
	a.PutIdx(0, StringValue("a"))
	a.PutStr("p", StringValue("b"))
	assert.Equal(t, StringValue("a"), a.GetIdx(0))
	assert.Equal(t, StringValue("a"), a.GetStr("0"))
	assert.Equal(t, StringValue("b"), a.GetStr("p"))
}

func TestArrayHasShouldBeFalseForANewArray(t *testing.T) {
	t.Parallel()
	assert.False(t, NewArray().HasIdx(0))
	a, err := NewArrayLen(10)
	require.NoError(t, err)
	assert.False(t, a.HasIdx(0))
	assert.Equal(t, int64(10), a.Length())
}

func TestArrayLength(t *testing.T) {
	t.Parallel()
	a := NewArray()
	a.PutIdx(5, IntValue(5))
	assert.Equal(t, int64(6), a.Length())
	a.PutIdx(2, IntValue(2))
	assert.Equal(t, int64(6), a.Length(), "putting below the length must not change it")
	a.PutStr("name", IntValue(1))
	a.PutIdx(-1, IntValue(1))
	a.PutStr("4294967295", IntValue(1))
	assert.Equal(t, int64(6), a.Length(), "names must not change the length")
	a.DeleteIdx(5)
	assert.Equal(t, int64(6), a.Length(), "delete must not change the length")
	a.PutIdx(MaxIndex, IntValue(1))
	assert.Equal(t, int64(MaxIndex+1), a.Length())
}

func TestArrayHolesAreNotUndefined(t *testing.T) {
	t.Parallel()
	a := NewArrayValues(Undefined(), nil, Null())
	assert.Equal(t, int64(3), a.Length())
	assert.True(t, a.HasIdx(0))
	assert.True(t, IsUndefined(a.GetIdx(0)))
	assert.False(t, a.HasIdx(1))
	assert.Nil(t, a.GetIdx(1))
	assert.True(t, IsNull(a.GetIdx(2)))

	a.PutIdx(1, nil)
	assert.True(t, a.HasIdx(1), "a nil put stores undefined")
	assert.True(t, IsUndefined(a.GetIdx(1)))
}

func TestArraySetLength(t *testing.T) {
	t.Parallel()
	a := NewArrayValues(IntValue(0), IntValue(1), IntValue(2), IntValue(3))
	a.PutStr("x", IntValue(1))

	require.NoError(t, a.SetLength(2))
	assert.Equal(t, int64(2), a.Length())
	assert.Equal(t, []int64{0, 1}, a.IndexIds())
	assert.True(t, a.HasStr("x"))

	require.NoError(t, a.SetLength(5))
	assert.Equal(t, int64(5), a.Length())
	assert.False(t, a.HasIdx(3))

	assert.ErrorIs(t, a.SetLength(-1), ErrInvalidLength)
	assert.ErrorIs(t, a.SetLength(MaxIndex+2), ErrInvalidLength)
	assert.Equal(t, int64(5), a.Length())

	_, err := NewArrayLen(-1)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestArraySetLengthSparse(t *testing.T) {
	t.Parallel()
	a := NewArray()
	a.PutIdx(1, IntValue(1))
	a.PutIdx(100000, IntValue(2))
	a.PutIdx(200000, IntValue(3))
	require.True(t, a.indexed.sparse)

	require.NoError(t, a.SetLength(150000))
	assert.Equal(t, []int64{1, 100000}, a.IndexIds())
	assert.Equal(t, int64(2), a.Count())
}

func TestArrayPush(t *testing.T) {
	t.Parallel()
	a, err := NewArrayLen(2)
	require.NoError(t, err)
	require.NoError(t, a.Push(IntValue(1), IntValue(2)))
	assert.Equal(t, []int64{2, 3}, a.IndexIds())
	assert.Equal(t, int64(4), a.Length())

	b, err := NewArrayLen(MaxIndex + 1)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Push(IntValue(1)), ErrInvalidLength)
}

func TestArrayMapKeepsHoles(t *testing.T) {
	t.Parallel()
	a := NewArrayValues(IntValue(1), nil, IntValue(3))
	a.PutStr("name", IntValue(10))
	var visited []int64
	res, err := a.Map(func(v Value, idx int64, arr *Array) (Value, error) {
		assert.Same(t, a, arr)
		visited = append(visited, idx)
		return IntValue(v.Export().(int64) * 10), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2}, visited)
	assert.Equal(t, int64(3), res.Length())
	assert.Equal(t, []interface{}{int64(10), nil, int64(30)}, res.Export())
	assert.False(t, res.HasStr("name"))
}

func TestArrayExport(t *testing.T) {
	t.Parallel()
	a := ToValue([]interface{}{1, "a", nil, []interface{}{true}}).(*Array)
	a.PutIdx(5, FloatValue(0.5))
	a.PutIdx(4, Undefined())
	expected := []interface{}{int64(1), "a", nil, []interface{}{true}, nil, 0.5}
	assert.Equal(t, expected, a.Export())
}

func TestArrayExportCyclic(t *testing.T) {
	t.Parallel()
	a := NewArray()
	require.NoError(t, a.Push(IntValue(1), a))
	exp := a.Export().([]interface{})
	require.Len(t, exp, 2)
	inner := exp[1].([]interface{})
	assert.Equal(t, int64(1), inner[0])
}

func TestArraySameAs(t *testing.T) {
	t.Parallel()
	a := NewArray()
	assert.True(t, a.SameAs(a))
	assert.False(t, a.SameAs(NewArray()))
	assert.False(t, a.SameAs(NewObject()))
}

func BenchmarkArrayGetStr(b *testing.B) {
	b.StopTimer()
	a := NewArray()
	a.PutIdx(0, StringValue("test"))
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		a.GetStr("0")
	}
}

func BenchmarkArrayGet(b *testing.B) {
	b.StopTimer()
	a := NewArray()
	idx := ClassifyInt(0)
	a.Put(idx, StringValue("test"))
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		a.Get(idx)
	}
}

func BenchmarkArrayPut(b *testing.B) {
	b.StopTimer()
	a := NewArray()
	idx := ClassifyInt(0)
	val := StringValue("test")
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		a.Put(idx, val)
	}
}

func BenchmarkArrayPush(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := NewArray()
		for j := 0; j < 1000; j++ {
			_ = a.Push(IntValue(int64(j)))
		}
	}
}
