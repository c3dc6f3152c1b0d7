package jsarray

type propEntry struct {
	value Value
	seq   int
}

type propSlot struct {
	name string
	live bool
}

// propertyMap holds named properties in first-insertion order. Deleting a name
// leaves a tombstone in the order list, so a later put of the same name is
// appended at the end rather than restored to its old position.
type propertyMap struct {
	values map[string]propEntry
	order  []propSlot
	dead   int
}

func (m *propertyMap) get(name string) Value {
	if e, exists := m.values[name]; exists {
		return e.value
	}
	return nil
}

func (m *propertyMap) has(name string) bool {
	_, exists := m.values[name]
	return exists
}

func (m *propertyMap) put(name string, v Value) {
	if e, exists := m.values[name]; exists {
		e.value = v
		m.values[name] = e
		return
	}
	if m.values == nil {
		m.values = make(map[string]propEntry)
	}
	m.values[name] = propEntry{value: v, seq: len(m.order)}
	m.order = append(m.order, propSlot{name: name, live: true})
}

func (m *propertyMap) delete(name string) {
	e, exists := m.values[name]
	if !exists {
		return
	}
	delete(m.values, name)
	m.order[e.seq] = propSlot{}
	m.dead++
	if m.dead > 16 && m.dead > len(m.order)/2 {
		m.compact()
	}
}

func (m *propertyMap) compact() {
	order := make([]propSlot, 0, len(m.values))
	for _, slot := range m.order {
		if slot.live {
			e := m.values[slot.name]
			e.seq = len(order)
			m.values[slot.name] = e
			order = append(order, slot)
		}
	}
	m.order = order
	m.dead = 0
}

func (m *propertyMap) len() int {
	return len(m.values)
}

// ascending calls f for each live name in insertion order until f returns false.
func (m *propertyMap) ascending(f func(name string, val Value) bool) {
	for _, slot := range m.order {
		if slot.live {
			if !f(slot.name, m.values[slot.name].value) {
				return
			}
		}
	}
}

func (m *propertyMap) names() []string {
	res := make([]string, 0, len(m.values))
	m.ascending(func(name string, _ Value) bool {
		res = append(res, name)
		return true
	})
	return res
}
