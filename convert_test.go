package jsarray

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthArg(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       Value
		expected int64
	}{
		{"absent", nil, 1},
		{"undefined", Undefined(), 1},
		{"null", Null(), 0},
		{"int", IntValue(2), 2},
		{"negative", IntValue(-3), -3},
		{"fraction", FloatValue(2.7), 2},
		{"negative fraction", FloatValue(-2.7), -2},
		{"NaN", FloatValue(math.NaN()), 0},
		{"infinity", FloatValue(math.Inf(1)), math.MaxInt64},
		{"negative infinity", FloatValue(math.Inf(-1)), math.MinInt64},
		{"true", BoolValue(true), 1},
		{"false", BoolValue(false), 0},
		{"numeric string", StringValue(" 3 "), 3},
		{"hex string", StringValue("0x10"), 16},
		{"empty string", StringValue(""), 0},
		{"string infinity", StringValue("Infinity"), math.MaxInt64},
		{"garbage", StringValue("abc"), 0},
		{"go-only syntax", StringValue("1_0"), 0},
		{"array", NewArrayValues(IntValue(4)), 4},
		{"empty array", NewArray(), 0},
		{"array of two", arr(1, 2), 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := DepthArg(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestDepthArgObject(t *testing.T) {
	t.Parallel()
	_, err := DepthArg(NewObject())
	var tce *TypeConversionError
	require.ErrorAs(t, err, &tce)
	assert.Equal(t, "number", tce.Target)
	assert.Equal(t, "TypeError: cannot convert object to number", err.Error())
}

func TestToValue(t *testing.T) {
	t.Parallel()
	v := ToValue(map[string]interface{}{
		"b": []interface{}{1, nil},
		"a": uint64(math.MaxUint64),
	})
	o, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, o.Keys())
	assert.IsType(t, valueFloat(0), o.GetStr("a"))
	b, ok := o.GetStr("b").(*Array)
	require.True(t, ok)
	assert.True(t, IsNull(b.GetIdx(1)))

	assert.Equal(t, StringValue("1s"), ToValue(time.Second))
	assert.Equal(t, IntValue(5), ToValue(IntValue(5)))
}

func TestObjectExportCyclic(t *testing.T) {
	t.Parallel()
	o := NewObject()
	o.PutStr("self", o)
	o.PutStr("n", IntValue(1))
	m := o.Export().(map[string]interface{})
	assert.Equal(t, int64(1), m["n"])
	self := m["self"].(map[string]interface{})
	assert.Equal(t, int64(1), self["n"])
}
