package jsarray

import (
	"sort"
)

type sparseArrayItem struct {
	idx   int64
	value Value
}

// indexedStorage holds the index slots of an Array. It starts dense (a slice
// where nil marks a hole) and switches to a sorted item list when writes get
// too far apart, and back again once the items fill the range densely enough.
type indexedStorage struct {
	values   []Value
	items    []sparseArrayItem
	sparse   bool
	objCount int64
}

func (s *indexedStorage) findIdx(idx int64) int {
	return sort.Search(len(s.items), func(i int) bool {
		return s.items[i].idx >= idx
	})
}

func (s *indexedStorage) get(idx int64) Value {
	if s.sparse {
		i := s.findIdx(idx)
		if i < len(s.items) && s.items[i].idx == idx {
			return s.items[i].value
		}
		return nil
	}
	if idx >= 0 && idx < int64(len(s.values)) {
		return s.values[idx]
	}
	return nil
}

func (s *indexedStorage) has(idx int64) bool {
	return s.get(idx) != nil
}

func (s *indexedStorage) put(idx int64, val Value) {
	if s.sparse {
		i := s.findIdx(idx)
		if i < len(s.items) && s.items[i].idx == idx {
			s.items[i].value = val
			return
		}
		if s.expandSparse(idx) {
			s.items = append(s.items, sparseArrayItem{})
			copy(s.items[i+1:], s.items[i:])
			s.items[i] = sparseArrayItem{
				idx:   idx,
				value: val,
			}
			s.objCount++
			return
		}
		// switched to dense, fall through
	}

	if idx < int64(len(s.values)) {
		if s.values[idx] == nil {
			s.objCount++
		}
		s.values[idx] = val
		return
	}
	if !s.expand(idx) {
		s.put(idx, val)
		return
	}
	s.values[idx] = val
	s.objCount++
}

func (s *indexedStorage) delete(idx int64) {
	if s.sparse {
		i := s.findIdx(idx)
		if i < len(s.items) && s.items[i].idx == idx {
			copy(s.items[i:], s.items[i+1:])
			s.items[len(s.items)-1].value = nil
			s.items = s.items[:len(s.items)-1]
			s.objCount--
		}
		return
	}
	if idx < int64(len(s.values)) && s.values[idx] != nil {
		s.values[idx] = nil
		s.objCount--
	}
}

func (s *indexedStorage) count() int64 {
	return s.objCount
}

// truncate removes every slot at or above l.
func (s *indexedStorage) truncate(l int64) {
	if s.sparse {
		i := s.findIdx(l)
		aa := s.items[i:]
		for j := range aa {
			aa[j].value = nil
		}
		s.objCount -= int64(len(aa))
		s.items = s.items[:i]
		return
	}
	if l >= int64(len(s.values)) {
		return
	}
	ar := s.values[l:]
	for i, v := range ar {
		if v != nil {
			s.objCount--
		}
		ar[i] = nil
	}
	if l >= 16 && l < int64(cap(s.values))>>2 {
		nv := make([]Value, l)
		copy(nv, s.values)
		s.values = nv
	} else {
		s.values = s.values[:l]
	}
}

// expand makes room for idx in the dense slice. It returns false if the
// storage has switched to sparse instead.
func (s *indexedStorage) expand(idx int64) bool {
	targetLen := idx + 1
	if targetLen > int64(len(s.values)) {
		if targetLen <= int64(cap(s.values)) {
			s.values = s.values[:targetLen]
		} else {
			if idx > 4096 && (s.objCount == 0 || idx/s.objCount > 10) {
				s.toSparse()
				return false
			}
			// Use the same algorithm as in runtime.growSlice
			newcap := int64(cap(s.values))
			doublecap := newcap + newcap
			if targetLen > doublecap {
				newcap = targetLen
			} else {
				if len(s.values) < 1024 {
					newcap = doublecap
				} else {
					for newcap < targetLen {
						newcap += newcap / 4
					}
				}
			}
			newValues := make([]Value, targetLen, newcap)
			copy(newValues, s.values)
			s.values = newValues
		}
	}
	return true
}

// expandSparse reports whether idx should be added as a sparse item. If the
// items have become dense enough it switches to the dense representation and
// returns false.
func (s *indexedStorage) expandSparse(idx int64) bool {
	if l := int64(len(s.items)); l >= 1024 {
		if ii := s.items[l-1].idx; ii > idx {
			idx = ii
		}
		if idx>>3 < l {
			s.toDense(idx)
			return false
		}
	}
	return true
}

func (s *indexedStorage) toSparse() {
	items := make([]sparseArrayItem, 0, s.objCount)
	for i, val := range s.values {
		if val != nil {
			items = append(items, sparseArrayItem{
				idx:   int64(i),
				value: val,
			})
		}
	}
	s.items = items
	s.values = nil
	s.sparse = true
}

func (s *indexedStorage) toDense(maxIdx int64) {
	values := make([]Value, maxIdx+1)
	for _, item := range s.items {
		values[item.idx] = item.value
	}
	s.values = values
	s.items = nil
	s.sparse = false
}

// ascending calls f for each present index in ascending order until f returns false.
func (s *indexedStorage) ascending(f func(idx int64, val Value) bool) {
	if s.sparse {
		for _, item := range s.items {
			if !f(item.idx, item.value) {
				return
			}
		}
		return
	}
	for i, val := range s.values {
		if val != nil {
			if !f(int64(i), val) {
				return
			}
		}
	}
}

// indices returns the present indices below limit in ascending order.
func (s *indexedStorage) indices(limit int64) []int64 {
	res := make([]int64, 0, s.objCount)
	s.ascending(func(idx int64, _ Value) bool {
		if idx >= limit {
			return false
		}
		res = append(res, idx)
		return true
	})
	return res
}
