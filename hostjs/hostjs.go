// Package hostjs connects jsarray to a goja runtime: values are converted in
// both directions and JavaScript functions can be used as flatMap transforms.
package hostjs

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"

	"github.com/dop251/jsarray"
)

// NewRuntime returns a goja runtime with require() and console enabled.
func NewRuntime() *goja.Runtime {
	vm := goja.New()
	new(require.Registry).Enable(vm)
	console.Enable(vm)
	return vm
}

type fromCtx struct {
	seen map[*goja.Object]jsarray.Value
}

// FromGoja converts a goja value. Arrays keep their holes and named
// properties, objects keep their key order, functions and symbols become
// undefined. An object reachable from itself converts to a single container.
func FromGoja(v goja.Value) (jsarray.Value, error) {
	ctx := &fromCtx{seen: make(map[*goja.Object]jsarray.Value)}
	return ctx.convert(v)
}

func (ctx *fromCtx) convert(v goja.Value) (jsarray.Value, error) {
	if v == nil || goja.IsUndefined(v) {
		return jsarray.Undefined(), nil
	}
	if goja.IsNull(v) {
		return jsarray.Null(), nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		switch x := v.Export().(type) {
		case int64:
			return jsarray.IntValue(x), nil
		case float64:
			return jsarray.FloatValue(x), nil
		case string:
			return jsarray.StringValue(x), nil
		case bool:
			return jsarray.BoolValue(x), nil
		}
		return jsarray.Undefined(), nil
	}
	if res, exists := ctx.seen[obj]; exists {
		return res, nil
	}

	switch obj.ClassName() {
	case "Function":
		return jsarray.Undefined(), nil
	case "Array":
		a := jsarray.NewArray()
		ctx.seen[obj] = a
		for _, name := range obj.Keys() {
			item, err := ctx.convert(obj.Get(name))
			if err != nil {
				return nil, err
			}
			a.PutStr(name, item)
		}
		if l := obj.Get("length"); l != nil {
			if n := l.ToInteger(); n > a.Length() {
				if err := a.SetLength(n); err != nil {
					return nil, fmt.Errorf("array length %d: %w", n, err)
				}
			}
		}
		return a, nil
	}

	o := jsarray.NewObject()
	ctx.seen[obj] = o
	for _, name := range obj.Keys() {
		item, err := ctx.convert(obj.Get(name))
		if err != nil {
			return nil, err
		}
		o.PutStr(name, item)
	}
	return o, nil
}

type toCtx struct {
	vm   *goja.Runtime
	seen map[jsarray.Value]*goja.Object
}

// ToGoja converts v to a goja value owned by vm. A nil v is undefined.
func ToGoja(vm *goja.Runtime, v jsarray.Value) goja.Value {
	ctx := &toCtx{vm: vm, seen: make(map[jsarray.Value]*goja.Object)}
	return ctx.convert(v)
}

func (ctx *toCtx) convert(v jsarray.Value) goja.Value {
	switch x := v.(type) {
	case nil:
		return goja.Undefined()
	case *jsarray.Array:
		if res, exists := ctx.seen[x]; exists {
			return res
		}
		arr := ctx.vm.NewArray()
		ctx.seen[x] = arr
		x.ForEach(func(k jsarray.Key, item jsarray.Value) bool {
			_ = arr.Set(k.String(), ctx.convert(item))
			return true
		})
		_ = arr.Set("length", x.Length())
		return arr
	case *jsarray.Object:
		if res, exists := ctx.seen[x]; exists {
			return res
		}
		obj := ctx.vm.NewObject()
		ctx.seen[x] = obj
		for _, name := range x.Keys() {
			_ = obj.Set(name, ctx.convert(x.GetStr(name)))
		}
		return obj
	}
	if jsarray.IsUndefined(v) {
		return goja.Undefined()
	}
	switch e := v.Export().(type) {
	case nil:
		return goja.Null()
	case float64:
		if math.IsNaN(e) {
			return goja.NaN()
		}
		return ctx.vm.ToValue(e)
	default:
		return ctx.vm.ToValue(e)
	}
}

// Transform is a JavaScript function used as a Map or FlatMap callback.
type Transform struct {
	vm *goja.Runtime
	fn goja.Callable
}

// NewTransform wraps fn, which must belong to vm.
func NewTransform(vm *goja.Runtime, fn goja.Callable) *Transform {
	return &Transform{vm: vm, fn: fn}
}

// CompileTransform evaluates src, which must be a function expression such
// as "x => [x, x * 2]".
func CompileTransform(vm *goja.Runtime, src string) (*Transform, error) {
	v, err := vm.RunString("(" + src + "\n)")
	if err != nil {
		return nil, err
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("TypeError: %s is not a function", strconv.Quote(src))
	}
	return NewTransform(vm, fn), nil
}

// Func returns a jsarray.TransformFunc for a single traversal. The function is
// called with undefined as this and (value, index, array).
//
// The array argument is a JavaScript copy of the source array, made on the
// first call and shared by the following ones. Changes the JavaScript code
// makes to it never reach the source array, and changes made to the source
// array by Go code during the traversal are not visible to it. The copy is
// made again when the source array or the traversal changes, which is
// detected by an index not above the previous one, but a Func should not be
// kept across traversals: use FlatMap and Map, which take a new one each time.
//
// Exceptions thrown by the function are returned as they are, typically as
// *goja.Exception.
func (t *Transform) Func() jsarray.TransformFunc {
	var (
		src  *jsarray.Array
		jsrc goja.Value
		last int64
	)
	return func(value jsarray.Value, index int64, array *jsarray.Array) (jsarray.Value, error) {
		if array != src || jsrc == nil || index <= last {
			src, jsrc = array, ToGoja(t.vm, array)
		}
		last = index
		res, err := t.fn(goja.Undefined(), ToGoja(t.vm, value), t.vm.ToValue(index), jsrc)
		if err != nil {
			return nil, err
		}
		return FromGoja(res)
	}
}

// FlatMap runs f.FlatMap over a with the function as the callback.
func (t *Transform) FlatMap(f *jsarray.Flattener, a *jsarray.Array) (*jsarray.Array, error) {
	return f.FlatMap(a, t.Func())
}

// Map runs a.Map with the function as the callback.
func (t *Transform) Map(a *jsarray.Array) (*jsarray.Array, error) {
	return a.Map(t.Func())
}
