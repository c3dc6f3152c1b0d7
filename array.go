package jsarray

// Array is a JavaScript-style array: canonical indices live in an indexed
// storage, every other key is a named property, and length is at least the
// highest index ever put plus one.
//
// An Array is not safe for concurrent use.
type Array struct {
	indexed indexedStorage
	props   propertyMap
	length  int64
}

func NewArray() *Array {
	return &Array{}
}

// NewArrayLen returns an array of the given length with no slots populated.
func NewArrayLen(length int64) (*Array, error) {
	if length < 0 || length > maxLength {
		return nil, ErrInvalidLength
	}
	return &Array{length: length}, nil
}

// NewArrayValues returns a dense array holding values. A nil element is a hole.
func NewArrayValues(values ...Value) *Array {
	a := &Array{}
	if len(values) > 0 {
		a.indexed.values = make([]Value, len(values))
		for i, v := range values {
			if v != nil {
				a.indexed.values[i] = v
				a.indexed.objCount++
			}
		}
		a.length = int64(len(values))
	}
	return a
}

func (a *Array) Length() int64 {
	return a.length
}

// SetLength grows or truncates the array. Growing only creates holes,
// truncating removes every index at or above l.
func (a *Array) SetLength(l int64) error {
	if l < 0 || l > maxLength {
		return ErrInvalidLength
	}
	if l < a.length {
		a.indexed.truncate(l)
	}
	a.length = l
	return nil
}

func (a *Array) putIdx(idx int64, v Value) {
	a.indexed.put(idx, v)
	if idx >= a.length {
		a.length = idx + 1
	}
}

// Put stores v under k. Any value is accepted; a nil v stores undefined.
func (a *Array) Put(k Key, v Value) {
	if v == nil {
		v = _undefined
	}
	if k.isIdx {
		a.putIdx(k.idx, v)
	} else {
		a.props.put(k.name, v)
	}
}

// Get returns the value stored under k, or nil if there is none.
func (a *Array) Get(k Key) Value {
	if k.isIdx {
		return a.indexed.get(k.idx)
	}
	return a.props.get(k.name)
}

func (a *Array) Has(k Key) bool {
	if k.isIdx {
		return a.indexed.has(k.idx)
	}
	return a.props.has(k.name)
}

// Delete removes k. The length is left unchanged, deleting an index leaves a hole.
func (a *Array) Delete(k Key) {
	if k.isIdx {
		a.indexed.delete(k.idx)
	} else {
		a.props.delete(k.name)
	}
}

func (a *Array) PutIdx(idx int64, v Value) {
	a.Put(ClassifyInt(idx), v)
}

func (a *Array) GetIdx(idx int64) Value {
	return a.Get(ClassifyInt(idx))
}

func (a *Array) HasIdx(idx int64) bool {
	return a.Has(ClassifyInt(idx))
}

func (a *Array) DeleteIdx(idx int64) {
	a.Delete(ClassifyInt(idx))
}

func (a *Array) PutStr(name string, v Value) {
	a.Put(ClassifyString(name), v)
}

func (a *Array) GetStr(name string) Value {
	return a.Get(ClassifyString(name))
}

func (a *Array) HasStr(name string) bool {
	return a.Has(ClassifyString(name))
}

func (a *Array) DeleteStr(name string) {
	a.Delete(ClassifyString(name))
}

// Push appends values at the current length.
func (a *Array) Push(values ...Value) error {
	if a.length+int64(len(values)) > maxLength {
		return ErrInvalidLength
	}
	for _, v := range values {
		a.Put(Key{idx: a.length, isIdx: true}, v)
	}
	return nil
}

// Count returns the number of present indices.
func (a *Array) Count() int64 {
	return a.indexed.count()
}

// Map calls fn for each present index below the length and stores the result
// at the same index of a new array of the same length. Holes stay holes.
func (a *Array) Map(fn TransformFunc) (*Array, error) {
	res := &Array{length: a.length}
	for _, idx := range a.indexed.indices(a.length) {
		val := a.indexed.get(idx)
		if val == nil {
			continue
		}
		mapped, err := fn(val, idx, a)
		if err != nil {
			return nil, err
		}
		res.Put(Key{idx: idx, isIdx: true}, mapped)
	}
	return res, nil
}

func (a *Array) Flat(depth int64) (*Array, error) {
	return defaultFlattener.Flat(a, depth)
}

func (a *Array) FlatMap(fn TransformFunc) (*Array, error) {
	return defaultFlattener.FlatMap(a, fn)
}

func (a *Array) String() string {
	return a.Join(",")
}

// Export returns a []interface{} of the array's length with nil for holes.
func (a *Array) Export() interface{} {
	return new(exportCtx).export(a)
}

func (a *Array) SameAs(other Value) bool {
	if other, ok := other.(*Array); ok {
		return a == other
	}
	return false
}
