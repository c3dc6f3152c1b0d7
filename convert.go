package jsarray

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ToValue converts a Go value to a Value. []interface{} becomes an Array
// (nil elements become null), map[string]interface{} becomes an Object with
// its keys in sorted order. Other types become their fmt representation.
func ToValue(i interface{}) Value {
	switch i := i.(type) {
	case nil:
		return _null
	case Value:
		return i
	case string:
		return valueString(i)
	case bool:
		return BoolValue(i)
	case int:
		return IntValue(int64(i))
	case int8:
		return IntValue(int64(i))
	case int16:
		return IntValue(int64(i))
	case int32:
		return IntValue(int64(i))
	case int64:
		return IntValue(i)
	case uint8:
		return IntValue(int64(i))
	case uint16:
		return IntValue(int64(i))
	case uint32:
		return IntValue(int64(i))
	case uint:
		if uint64(i) <= math.MaxInt64 {
			return IntValue(int64(i))
		}
		return valueFloat(float64(i))
	case uint64:
		if i <= math.MaxInt64 {
			return IntValue(int64(i))
		}
		return valueFloat(float64(i))
	case float32:
		return FloatValue(float64(i))
	case float64:
		return FloatValue(i)
	case []interface{}:
		a := NewArrayValues(make([]Value, len(i))...)
		for idx, item := range i {
			a.indexed.put(int64(idx), ToValue(item))
		}
		return a
	case map[string]interface{}:
		keys := make([]string, 0, len(i))
		for k := range i {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			o.props.put(k, ToValue(i[k]))
		}
		return o
	}
	return valueString(fmt.Sprint(i))
}

type exportCtx struct {
	cache map[Value]interface{}
}

func (ctx *exportCtx) export(v Value) interface{} {
	switch v := v.(type) {
	case *Array:
		if res, ok := ctx.cache[v]; ok {
			return res
		}
		arr := make([]interface{}, v.length)
		ctx.put(v, arr)
		v.indexed.ascending(func(idx int64, val Value) bool {
			if idx >= v.length {
				return false
			}
			arr[idx] = ctx.export(val)
			return true
		})
		return arr
	case *Object:
		if res, ok := ctx.cache[v]; ok {
			return res
		}
		m := make(map[string]interface{}, v.props.len())
		ctx.put(v, m)
		v.props.ascending(func(name string, val Value) bool {
			m[name] = ctx.export(val)
			return true
		})
		return m
	case nil:
		return nil
	}
	return v.Export()
}

func (ctx *exportCtx) put(v Value, res interface{}) {
	if ctx.cache == nil {
		ctx.cache = make(map[Value]interface{})
	}
	ctx.cache[v] = res
}

// DepthArg converts the depth argument of flat the way ToIntegerOrInfinity
// does: nil and undefined mean the default depth of 1, NaN is 0, and
// infinities saturate. Plain objects cannot be converted without a host to
// call their valueOf, so they fail with a *TypeConversionError.
func DepthArg(v Value) (int64, error) {
	if v == nil || v == _undefined {
		return 1, nil
	}
	f, err := toNumber(v)
	if err != nil {
		return 0, err
	}
	return toIntegerOrInfinity(f), nil
}

func toIntegerOrInfinity(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func toNumber(v Value) (float64, error) {
	switch v := v.(type) {
	case valueInt:
		return float64(v), nil
	case valueFloat:
		return float64(v), nil
	case valueBool:
		if v {
			return 1, nil
		}
		return 0, nil
	case valueUndefined:
		return math.NaN(), nil
	case valueNull:
		return 0, nil
	case valueString:
		return stringToNumber(string(v)), nil
	case *Array:
		return stringToNumber(v.String()), nil
	}
	return 0, &TypeConversionError{Value: v, Target: "number"}
}

func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xA0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

func stringToNumber(s string) float64 {
	s = strings.TrimFunc(s, isJSSpace)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if n, err := strconv.ParseUint(s[2:], base, 64); err == nil {
				return float64(n)
			}
			return math.NaN()
		}
	}
	for _, c := range s {
		// strconv accepts forms JS does not: "inf", "nan", "0x1p-2" and "1_000"
		if c != '+' && c != '-' && c != '.' && c != 'e' && c != 'E' && (c < '0' || c > '9') {
			return math.NaN()
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}
