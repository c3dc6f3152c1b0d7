package jsarray

import (
	"math"
	"strconv"
	"strings"
)

var (
	valueFalse Value = valueBool(false)
	valueTrue  Value = valueBool(true)
	_null      Value = valueNull{}
	_undefined Value = valueUndefined{}
	_NaN       Value = valueFloat(math.NaN())
)

var intCache [256]Value

func init() {
	for i := range intCache {
		intCache[i] = valueInt(i - 128)
	}
}

// Value is anything that can be stored in an Array slot or an Object property.
// A nil Value is never stored; it is the "absent" result of a lookup.
type Value interface {
	String() string
	Export() interface{}
	SameAs(Value) bool
}

type valueInt int64
type valueFloat float64
type valueString string
type valueBool bool
type valueNull struct{}
type valueUndefined struct {
	valueNull
}

// IntValue returns an integer Value.
func IntValue(i int64) Value {
	if i >= -128 && i <= 127 {
		return intCache[i+128]
	}
	return valueInt(i)
}

// FloatValue returns a number Value. Integral floats are normalised to integers.
func FloatValue(f float64) Value {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !(f == 0 && math.Signbit(f)) {
		return IntValue(int64(f))
	}
	return valueFloat(f)
}

func StringValue(s string) Value {
	return valueString(s)
}

func BoolValue(b bool) Value {
	if b {
		return valueTrue
	}
	return valueFalse
}

// Null returns the null value.
func Null() Value {
	return _null
}

// Undefined returns the undefined value. Unlike a hole it is a real stored value.
func Undefined() Value {
	return _undefined
}

// IsUndefined reports whether v is the undefined value. An absent (nil) value is not undefined.
func IsUndefined(v Value) bool {
	return v == _undefined
}

// IsNull reports whether v is the null value.
func IsNull(v Value) bool {
	return v == _null
}

func (i valueInt) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i valueInt) Export() interface{} {
	return int64(i)
}

func (i valueInt) SameAs(other Value) bool {
	switch o := other.(type) {
	case valueInt:
		return i == o
	case valueFloat:
		return float64(i) == float64(o)
	}
	return false
}

func (f valueFloat) String() string {
	return formatNumber(float64(f))
}

func (f valueFloat) Export() interface{} {
	return float64(f)
}

func (f valueFloat) SameAs(other Value) bool {
	switch o := other.(type) {
	case valueFloat:
		this := float64(f)
		that := float64(o)
		if math.IsNaN(this) && math.IsNaN(that) {
			return true
		}
		if this == that && this == 0 {
			return math.Signbit(this) == math.Signbit(that)
		}
		return this == that
	case valueInt:
		this := float64(f)
		return this == float64(o) && !(this == 0 && math.Signbit(this))
	}
	return false
}

func (s valueString) String() string {
	return string(s)
}

func (s valueString) Export() interface{} {
	return string(s)
}

func (s valueString) SameAs(other Value) bool {
	if o, ok := other.(valueString); ok {
		return s == o
	}
	return false
}

func (b valueBool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b valueBool) Export() interface{} {
	return bool(b)
}

func (b valueBool) SameAs(other Value) bool {
	if o, ok := other.(valueBool); ok {
		return b == o
	}
	return false
}

func (n valueNull) String() string {
	return "null"
}

func (n valueNull) Export() interface{} {
	return nil
}

func (n valueNull) SameAs(other Value) bool {
	_, ok := other.(valueNull)
	return ok
}

func (u valueUndefined) String() string {
	return "undefined"
}

func (u valueUndefined) SameAs(other Value) bool {
	_, ok := other.(valueUndefined)
	return ok
}

// formatNumber renders f the way Number.prototype.toString does with radix 10.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	var sb strings.Builder
	if f < 0 {
		sb.WriteByte('-')
		f = -f
	}

	// shortest round-trip digits in the form d.ddde±x
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	k := len(digits)
	n := e + 1

	switch {
	case k <= n && n <= 21:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		sb.WriteString(digits[:n])
		sb.WriteByte('.')
		sb.WriteString(digits[n:])
	case -6 < n && n <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -n))
		sb.WriteString(digits)
	default:
		sb.WriteByte(digits[0])
		if k > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('e')
		if n-1 >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(n - 1))
	}
	return sb.String()
}
