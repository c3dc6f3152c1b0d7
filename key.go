package jsarray

import (
	"fmt"
	"strconv"
)

// MaxIndex is the largest canonical array index. Indices are limited to the
// positive range of a signed 32-bit integer; anything at or beyond 1<<31 is a
// plain property name.
const MaxIndex = 1<<31 - 1

// maxLength is the largest length an Array can have.
const maxLength = MaxIndex + 1

// Key identifies a slot of an Array: either a canonical index or a name.
// The zero Key is the empty name.
type Key struct {
	name  string
	idx   int64
	isIdx bool
}

// IndexKey returns an index Key. ok is false if idx is outside [0, MaxIndex],
// use ClassifyInt to turn arbitrary integers into a Key.
func IndexKey(idx int64) (k Key, ok bool) {
	if idx < 0 || idx > MaxIndex {
		return Key{}, false
	}
	return Key{idx: idx, isIdx: true}, true
}

// MustIndexKey is like IndexKey but panics if idx is out of range. It is meant
// for constant indices.
func MustIndexKey(idx int64) Key {
	k, ok := IndexKey(idx)
	if !ok {
		panic(fmt.Sprintf("jsarray: index %d is out of range", idx))
	}
	return k
}

// NameKey returns a name Key without classifying it. Use ClassifyString when
// s may be a canonical index.
func NameKey(s string) Key {
	return Key{name: s}
}

func (k Key) IsIndex() bool {
	return k.isIdx
}

// Index returns the index of an index Key, or -1.
func (k Key) Index() int64 {
	if k.isIdx {
		return k.idx
	}
	return -1
}

// Name returns the name of a name Key, or "".
func (k Key) Name() string {
	return k.name
}

func (k Key) String() string {
	if k.isIdx {
		return strconv.FormatInt(k.idx, 10)
	}
	return k.name
}

// Export returns int64 for indices and string for names.
func (k Key) Export() interface{} {
	if k.isIdx {
		return k.idx
	}
	return k.name
}

// ClassifyInt classifies an integer key.
func ClassifyInt(n int64) Key {
	if n >= 0 && n <= MaxIndex {
		return Key{idx: n, isIdx: true}
	}
	return Key{name: strconv.FormatInt(n, 10)}
}

// ClassifyString classifies a string key. Only the canonical decimal form of an
// index is an index: "01", "+1", " 1" and "1.0" are names.
func ClassifyString(s string) Key {
	if idx := strToIdx(s); idx >= 0 {
		return Key{idx: idx, isIdx: true}
	}
	return Key{name: s}
}

// KeyOf classifies a Go value used as a key. Integers and strings are classified,
// Keys are returned as is, anything else becomes the name of its fmt representation.
func KeyOf(k interface{}) Key {
	switch k := k.(type) {
	case Key:
		return k
	case string:
		return ClassifyString(k)
	case int:
		return ClassifyInt(int64(k))
	case int8:
		return ClassifyInt(int64(k))
	case int16:
		return ClassifyInt(int64(k))
	case int32:
		return ClassifyInt(int64(k))
	case int64:
		return ClassifyInt(k)
	case uint:
		return classifyUint(uint64(k))
	case uint8:
		return ClassifyInt(int64(k))
	case uint16:
		return ClassifyInt(int64(k))
	case uint32:
		return ClassifyInt(int64(k))
	case uint64:
		return classifyUint(k)
	case Value:
		return ClassifyString(k.String())
	}
	return ClassifyString(fmt.Sprint(k))
}

func classifyUint(n uint64) Key {
	if n <= MaxIndex {
		return Key{idx: int64(n), isIdx: true}
	}
	return Key{name: strconv.FormatUint(n, 10)}
}

// strToIdx returns the index s represents, or -1.
func strToIdx(s string) int64 {
	l := len(s)
	if l == 0 || l > 10 {
		return -1
	}
	if s[0] == '0' {
		if l == 1 {
			return 0
		}
		return -1
	}
	var idx int64
	for i := 0; i < l; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return -1
		}
		idx = idx*10 + int64(c-'0')
	}
	if idx > MaxIndex {
		return -1
	}
	return idx
}
