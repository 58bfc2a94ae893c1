package attr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the kind of an attribute value.
type Kind uint8

// Kinds of attribute values.
const (
	KindNone Kind = iota
	KindFlag
	KindString
	KindNumber
	KindTemporal
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTemporal:
		return "temporal"
	}
	return "none"
}

// Value is the typed value of an attribute.
// Concrete types are Flag, String, the Number subtypes and the temporal
// subtypes Date, Clock and DateTime. The set is closed.
type Value interface {
	Kind() Kind
	Format() string // canonical text of the value, unquoted and unescaped
	isValue()
}

// Flag is a boolean value. A true flag renders as a bare attribute name,
// a false flag does not render at all.
type Flag bool

// String is a text value.
type String string

// Number is a numeric value of one of the concrete subtypes Int, Int64,
// Float32, Float64 or Decimal.
type Number interface {
	Value
	rank() numRank
	plus(Number) Number   // other has to be of the same concrete type
	widen(numRank) Number // convert to a subtype of higher rank
}

// Numeric subtypes.
type (
	Int     int
	Int64   int64
	Float32 float32
	Float64 float64
	Decimal struct{ decimal.Decimal }
)

// Temporal subtypes. They are rendered in ISO-8601 local format; time
// zones are not part of the rendered value.
type (
	Date     time.Time // date only, e.g. 2022-03-01
	Clock    time.Time // time of day only, e.g. 14:30:00
	DateTime time.Time // date and time of day, e.g. 2022-03-01T14:30:00
)

// NewDecimal wraps a decimal number.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

// ValueOf coerces a Go value to an attribute value. The second return
// value is false for values of unsupported type; those will never render.
func ValueOf(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case Value:
		return x, true
	case bool:
		return Flag(x), true
	case string:
		return String(x), true
	case int:
		return Int(x), true
	case int8:
		return Int(x), true
	case int16:
		return Int(x), true
	case int32:
		return Int(x), true
	case uint8:
		return Int(x), true
	case uint16:
		return Int(x), true
	case int64:
		return Int64(x), true
	case uint32:
		return Int64(x), true
	case float32:
		return Float32(x), true
	case float64:
		return Float64(x), true
	case decimal.Decimal:
		return Decimal{x}, true
	case time.Time:
		return DateTime(x), true
	}
	tracer().Debugf("attribute value of type %T not supported", v)
	return nil, false
}

func (Flag) isValue()     {}
func (String) isValue()   {}
func (Int) isValue()      {}
func (Int64) isValue()    {}
func (Float32) isValue()  {}
func (Float64) isValue()  {}
func (Decimal) isValue()  {}
func (Date) isValue()     {}
func (Clock) isValue()    {}
func (DateTime) isValue() {}

func (Flag) Kind() Kind     { return KindFlag }
func (String) Kind() Kind   { return KindString }
func (Int) Kind() Kind      { return KindNumber }
func (Int64) Kind() Kind    { return KindNumber }
func (Float32) Kind() Kind  { return KindNumber }
func (Float64) Kind() Kind  { return KindNumber }
func (Decimal) Kind() Kind  { return KindNumber }
func (Date) Kind() Kind     { return KindTemporal }
func (Clock) Kind() Kind    { return KindTemporal }
func (DateTime) Kind() Kind { return KindTemporal }

func (f Flag) Format() string     { return strconv.FormatBool(bool(f)) }
func (s String) Format() string   { return string(s) }
func (n Int) Format() string      { return fmt.Sprintf("%d", int(n)) }
func (n Int64) Format() string    { return fmt.Sprintf("%d", int64(n)) }
func (n Float32) Format() string  { return fmt.Sprintf("%f", float32(n)) }
func (n Float64) Format() string  { return fmt.Sprintf("%f", float64(n)) }
func (n Decimal) Format() string  { return n.StringFixed(6) }
func (d Date) Format() string     { return time.Time(d).Format("2006-01-02") }
func (c Clock) Format() string    { return time.Time(c).Format("15:04:05.999999999") }
func (d DateTime) Format() string { return time.Time(d).Format("2006-01-02T15:04:05.999999999") }

// --- Numeric arithmetic ------------------------------------------------

type numRank uint8

// Ordering of numeric subtypes for widening.
const (
	rankInt numRank = iota
	rankInt64
	rankFloat32
	rankFloat64
	rankDecimal
)

func (Int) rank() numRank     { return rankInt }
func (Int64) rank() numRank   { return rankInt64 }
func (Float32) rank() numRank { return rankFloat32 }
func (Float64) rank() numRank { return rankFloat64 }
func (Decimal) rank() numRank { return rankDecimal }

func (n Int) plus(m Number) Number     { return n + m.(Int) }
func (n Int64) plus(m Number) Number   { return n + m.(Int64) }
func (n Float32) plus(m Number) Number { return n + m.(Float32) }
func (n Float64) plus(m Number) Number { return n + m.(Float64) }
func (n Decimal) plus(m Number) Number { return Decimal{n.Add(m.(Decimal).Decimal)} }

func (n Int) widen(r numRank) Number {
	switch r {
	case rankInt64:
		return Int64(n)
	case rankFloat32:
		return Float32(n)
	case rankFloat64:
		return Float64(n)
	case rankDecimal:
		return Decimal{decimal.NewFromInt(int64(n))}
	}
	return n
}

func (n Int64) widen(r numRank) Number {
	switch r {
	case rankFloat32:
		return Float32(n)
	case rankFloat64:
		return Float64(n)
	case rankDecimal:
		return Decimal{decimal.NewFromInt(int64(n))}
	}
	return n
}

func (n Float32) widen(r numRank) Number {
	switch r {
	case rankFloat64:
		return Float64(n)
	case rankDecimal:
		return Decimal{decimal.NewFromFloat32(float32(n))}
	}
	return n
}

func (n Float64) widen(r numRank) Number {
	if r == rankDecimal {
		return Decimal{decimal.NewFromFloat(float64(n))}
	}
	return n
}

func (n Decimal) widen(numRank) Number {
	return n
}

// NumericPolicy decides how numbers of different subtypes are combined by
// AddValueWith.
type NumericPolicy uint8

const (
	// Strict sums numbers of identical subtype only. Combining different
	// subtypes (e.g., Int and Float64) leaves the current value unchanged.
	Strict NumericPolicy = iota
	// Widen converts both operands to the wider of their subtypes, in order
	// Int < Int64 < Float32 < Float64 < Decimal, and sums them.
	Widen
)

// addNumbers combines two numbers under a policy. The second return value
// is false if the policy refuses to combine them.
func addNumbers(p NumericPolicy, a, b Number) (Number, bool) {
	ra, rb := a.rank(), b.rank()
	if ra == rb {
		return a.plus(b), true
	}
	if p != Widen {
		return a, false
	}
	if ra < rb {
		return a.widen(rb).plus(b), true
	}
	return a.plus(b.widen(ra)), true
}
