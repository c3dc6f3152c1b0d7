// Package codec converts jsarray values to and from JSON and YAML documents.
//
// Encoding follows JSON.stringify: holes, undefined and non-finite numbers
// inside arrays are written as null, undefined object members are left out,
// and named properties of arrays are not serialised.
package codec

import (
	"errors"
	"math"
	"strconv"

	"github.com/mailru/easyjson/jwriter"
	"github.com/tidwall/gjson"

	"github.com/dop251/jsarray"
)

// MaxNesting is the deepest container nesting the decoders accept.
const MaxNesting = 10000

var (
	ErrInvalidJSON = errors.New("SyntaxError: invalid JSON")
	ErrCyclicValue = errors.New("TypeError: Converting circular structure to JSON")
	ErrTooDeep     = errors.New("RangeError: document nesting is too deep")
)

// DecodeJSON parses data. Arrays become *jsarray.Array and objects become
// *jsarray.Object with their members in document order.
func DecodeJSON(data []byte) (jsarray.Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data), 0)
}

func fromResult(r gjson.Result, depth int) (jsarray.Value, error) {
	switch r.Type {
	case gjson.Null:
		return jsarray.Null(), nil
	case gjson.False:
		return jsarray.BoolValue(false), nil
	case gjson.True:
		return jsarray.BoolValue(true), nil
	case gjson.Number:
		if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return jsarray.IntValue(i), nil
		}
		return jsarray.FloatValue(r.Num), nil
	case gjson.String:
		return jsarray.StringValue(r.Str), nil
	}

	if depth >= MaxNesting {
		return nil, ErrTooDeep
	}
	var err error
	if r.IsArray() {
		a := jsarray.NewArray()
		r.ForEach(func(_, item gjson.Result) bool {
			var v jsarray.Value
			if v, err = fromResult(item, depth+1); err != nil {
				return false
			}
			err = a.Push(v)
			return err == nil
		})
		return a, err
	}
	o := jsarray.NewObject()
	r.ForEach(func(key, item gjson.Result) bool {
		var v jsarray.Value
		if v, err = fromResult(item, depth+1); err != nil {
			return false
		}
		o.PutStr(key.Str, v)
		return true
	})
	return o, err
}

// EncodeJSON serialises v the way JSON.stringify does without a replacer.
func EncodeJSON(v jsarray.Value) ([]byte, error) {
	e := &encoder{stack: make(map[jsarray.Value]struct{})}
	e.w.NoEscapeHTML = true
	if v == nil || jsarray.IsUndefined(v) {
		e.w.RawString("null")
	} else if err := e.encode(v); err != nil {
		return nil, err
	}
	return e.w.BuildBytes()
}

type encoder struct {
	w     jwriter.Writer
	stack map[jsarray.Value]struct{}
}

func (e *encoder) enter(v jsarray.Value) error {
	if _, exists := e.stack[v]; exists {
		return ErrCyclicValue
	}
	if len(e.stack) >= MaxNesting {
		return ErrTooDeep
	}
	e.stack[v] = struct{}{}
	return nil
}

func (e *encoder) encode(v jsarray.Value) error {
	switch v := v.(type) {
	case *jsarray.Array:
		if err := e.enter(v); err != nil {
			return err
		}
		e.w.RawByte('[')
		for i := int64(0); i < v.Length(); i++ {
			if i > 0 {
				e.w.RawByte(',')
			}
			item := v.GetIdx(i)
			if item == nil || jsarray.IsUndefined(item) {
				e.w.RawString("null")
				continue
			}
			if err := e.encode(item); err != nil {
				return err
			}
		}
		e.w.RawByte(']')
		delete(e.stack, v)
		return nil
	case *jsarray.Object:
		if err := e.enter(v); err != nil {
			return err
		}
		e.w.RawByte('{')
		first := true
		for _, name := range v.Keys() {
			item := v.GetStr(name)
			if item == nil || jsarray.IsUndefined(item) {
				continue
			}
			if !first {
				e.w.RawByte(',')
			}
			first = false
			e.w.String(name)
			e.w.RawByte(':')
			if err := e.encode(item); err != nil {
				return err
			}
		}
		e.w.RawByte('}')
		delete(e.stack, v)
		return nil
	}

	switch x := v.Export().(type) {
	case nil:
		e.w.RawString("null")
	case bool:
		e.w.Bool(x)
	case int64:
		e.w.Int64(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			e.w.RawString("null")
		} else {
			e.w.RawString(v.String())
		}
	case string:
		e.w.String(x)
	default:
		e.w.String(v.String())
	}
	return nil
}
