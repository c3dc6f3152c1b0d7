package jsarray

type iterNextFunc func() (Key, iterNextFunc)

type indexIter struct {
	a       *Array
	indices []int64
	names   []string
	idx     int
}

func (i *indexIter) next() (Key, iterNextFunc) {
	for i.idx < len(i.indices) {
		idx := i.indices[i.idx]
		i.idx++
		if i.a.indexed.has(idx) {
			return Key{idx: idx, isIdx: true}, i.next
		}
	}
	return (&nameIter{
		a:     i.a,
		names: i.names,
	}).next()
}

type nameIter struct {
	a     *Array
	names []string
	idx   int
}

func (i *nameIter) next() (Key, iterNextFunc) {
	for i.idx < len(i.names) {
		name := i.names[i.idx]
		i.idx++
		if i.a.props.has(name) {
			return Key{name: name}, i.next
		}
	}
	return Key{}, nil
}

// enumerate returns an iterator over the keys present when it is called, in
// enumeration order. Keys deleted while iterating are skipped.
func (a *Array) enumerate() iterNextFunc {
	return (&indexIter{
		a:       a,
		indices: a.indexed.indices(maxLength),
		names:   a.props.names(),
	}).next
}

// Ids returns every present key: indices in ascending order followed by names
// in the order they were first put.
func (a *Array) Ids() []Key {
	res := make([]Key, 0, a.indexed.count()+int64(a.props.len()))
	for item, next := a.enumerate()(); next != nil; item, next = next() {
		res = append(res, item)
	}
	return res
}

// IndexIds returns the present indices in ascending order.
func (a *Array) IndexIds() []int64 {
	return a.indexed.indices(maxLength)
}

// ForEach calls f for each present key in enumeration order until f returns false.
func (a *Array) ForEach(f func(k Key, v Value) bool) {
	for item, next := a.enumerate()(); next != nil; item, next = next() {
		v := a.Get(item)
		if v == nil {
			continue
		}
		if !f(item, v) {
			return
		}
	}
}
