package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dop251/jsarray"
)

func TestDecodeYAML(t *testing.T) {
	t.Parallel()
	doc := `
- 1
- 2.5
- text
- true
- ~
- [a, [b]]
- zeta: 1
  alpha: 2
- 0x10
- 99999999999999999999
`
	v, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)
	a, ok := v.(*jsarray.Array)
	require.True(t, ok)
	require.Equal(t, int64(9), a.Length())

	assert.Equal(t, jsarray.IntValue(1), a.GetIdx(0))
	assert.Equal(t, jsarray.FloatValue(2.5), a.GetIdx(1))
	assert.Equal(t, jsarray.StringValue("text"), a.GetIdx(2))
	assert.Equal(t, jsarray.BoolValue(true), a.GetIdx(3))
	assert.True(t, jsarray.IsNull(a.GetIdx(4)))
	assert.Equal(t, "a,b", a.GetIdx(5).String())

	o, ok := a.GetIdx(6).(*jsarray.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha"}, o.Keys())

	assert.Equal(t, jsarray.IntValue(16), a.GetIdx(7))
	assert.IsType(t, float64(0), a.GetIdx(8).Export())
}

func TestDecodeYAMLEmpty(t *testing.T) {
	t.Parallel()
	v, err := DecodeYAML([]byte(""))
	require.NoError(t, err)
	assert.True(t, jsarray.IsNull(v))
}

func TestDecodeYAMLAliases(t *testing.T) {
	t.Parallel()
	doc := `
- &shared [1, 2]
- *shared
`
	v, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)
	a := v.(*jsarray.Array)
	assert.Same(t, a.GetIdx(0), a.GetIdx(1))

	res, err := a.Flat(1)
	require.NoError(t, err)
	assert.Equal(t, "1,2,1,2", res.String())
}

func TestDecodeYAMLErrors(t *testing.T) {
	t.Parallel()
	_, err := DecodeYAML([]byte("[1, 2"))
	assert.Error(t, err)

	_, err = DecodeYAML([]byte("? [a]\n: 1\n"))
	assert.ErrorContains(t, err, "mapping keys must be scalars")
}
