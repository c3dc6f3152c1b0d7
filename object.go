package jsarray

// PropertyAccessor is the property-access protocol shared by every container:
// Get returns nil when the key is absent so the caller can fall back to a
// prototype of its own.
type PropertyAccessor interface {
	Get(k Key) Value
	Put(k Key, v Value)
	Has(k Key) bool
	Delete(k Key)
}

// Object is a plain container of named properties. It is never expanded by Flat.
type Object struct {
	props propertyMap
}

var (
	_ PropertyAccessor = (*Object)(nil)
	_ PropertyAccessor = (*Array)(nil)
)

func NewObject() *Object {
	return &Object{}
}

// Plain objects do not split keys into indices and names, every key is
// stored by its string form.
func (o *Object) Get(k Key) Value {
	return o.props.get(k.String())
}

// Put stores v under the string form of k. A nil v stores undefined.
func (o *Object) Put(k Key, v Value) {
	o.PutStr(k.String(), v)
}

func (o *Object) Has(k Key) bool {
	return o.props.has(k.String())
}

func (o *Object) Delete(k Key) {
	o.props.delete(k.String())
}

func (o *Object) GetStr(name string) Value {
	return o.props.get(name)
}

func (o *Object) PutStr(name string, v Value) {
	if v == nil {
		v = _undefined
	}
	o.props.put(name, v)
}

func (o *Object) HasStr(name string) bool {
	return o.props.has(name)
}

func (o *Object) DeleteStr(name string) {
	o.props.delete(name)
}

// Keys returns the property names in first-insertion order.
func (o *Object) Keys() []string {
	return o.props.names()
}

func (o *Object) Len() int {
	return o.props.len()
}

func (o *Object) String() string {
	return "[object Object]"
}

// Export returns a map[string]interface{}. A container reachable from itself
// is exported once and shared.
func (o *Object) Export() interface{} {
	return new(exportCtx).export(o)
}

func (o *Object) SameAs(other Value) bool {
	if other, ok := other.(*Object); ok {
		return o == other
	}
	return false
}
