package jsarray

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyMapOrder(t *testing.T) {
	t.Parallel()
	var m propertyMap
	m.put("b", IntValue(1))
	m.put("a", IntValue(2))
	m.put("c", IntValue(3))
	m.put("b", IntValue(4))
	assert.Equal(t, []string{"b", "a", "c"}, m.names(), "overwriting keeps the position")
	assert.Equal(t, IntValue(4), m.get("b"))

	m.delete("b")
	m.put("b", IntValue(5))
	assert.Equal(t, []string{"a", "c", "b"}, m.names(), "re-putting a deleted name appends it")
	assert.Equal(t, 3, m.len())

	m.delete("missing")
	assert.Equal(t, 3, m.len())
}

func TestPropertyMapCompaction(t *testing.T) {
	t.Parallel()
	var m propertyMap
	for i := 0; i < 100; i++ {
		m.put("p"+strconv.Itoa(i), IntValue(int64(i)))
	}
	for i := 0; i < 90; i++ {
		m.delete("p" + strconv.Itoa(i))
	}
	assert.Less(t, len(m.order), 100)
	assert.LessOrEqual(t, m.dead, 16)

	expected := make([]string, 0, 10)
	for i := 90; i < 100; i++ {
		expected = append(expected, "p"+strconv.Itoa(i))
	}
	assert.Equal(t, expected, m.names())
	for i := 90; i < 100; i++ {
		assert.Equal(t, IntValue(int64(i)), m.get("p"+strconv.Itoa(i)))
	}

	// positions must still be right after compaction
	m.delete("p95")
	m.put("p95", IntValue(1))
	assert.Equal(t, "p95", m.names()[len(m.names())-1])
	assert.Equal(t, 10, m.len())
}

func TestPropertyMapAscendingStops(t *testing.T) {
	t.Parallel()
	var m propertyMap
	m.put("a", IntValue(1))
	m.put("b", IntValue(2))
	var seen []string
	m.ascending(func(name string, _ Value) bool {
		seen = append(seen, name)
		return false
	})
	assert.Equal(t, []string{"a"}, seen)
}
