package attr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html"
)

// Attribute is a named, typed value attached to an element.
//
// The rendered form of an attribute is derived from name and value on every
// call to Render; there is no cached rendering to go stale.
type Attribute struct {
	name  string
	value Value // nil for unset or unsupported values
}

// New creates an attribute. v is coerced by ValueOf; for values of
// unsupported type the attribute is created, but will not render.
func New(name string, v any) *Attribute {
	a := &Attribute{name: name}
	return a.SetValue(v)
}

// Name returns the name of the attribute.
func (a *Attribute) Name() string {
	return a.name
}

// Value returns the typed value of the attribute, or nil.
func (a *Attribute) Value() Value {
	return a.value
}

// SetValue replaces the value of an attribute.
func (a *Attribute) SetValue(v any) *Attribute {
	val, ok := ValueOf(v)
	if !ok {
		a.value = nil
		return a
	}
	a.value = val
	return a
}

// AddValue combines v with the current value, using the Strict numeric
// policy. See AddValueWith.
func (a *Attribute) AddValue(v any) *Attribute {
	return a.AddValueWith(Strict, v)
}

// AddValueWith combines v with the current value:
//
//   - an unset attribute takes v as its value
//   - numbers are summed according to the numeric policy p
//   - strings are appended, separated by a single space
//   - flags and temporal values of the same kind replace the current value
//   - values of a different kind leave the attribute unchanged
//
// Values of unsupported type are ignored.
func (a *Attribute) AddValueWith(p NumericPolicy, v any) *Attribute {
	val, ok := ValueOf(v)
	if !ok {
		return a
	}
	if a.value == nil {
		a.value = val
		return a
	}
	if a.value.Kind() != val.Kind() {
		tracer().Debugf("attribute %s: cannot add %s value to %s value", a.name, val.Kind(), a.value.Kind())
		return a
	}
	switch cur := a.value.(type) {
	case Number:
		if sum, ok := addNumbers(p, cur, val.(Number)); ok {
			a.value = sum
		} else {
			tracer().Debugf("attribute %s: numeric subtypes %T and %T differ, value unchanged", a.name, cur, val)
		}
	case String:
		s := string(val.(String))
		switch {
		case s == "":
		case cur == "":
			a.value = String(s)
		default:
			a.value = String(string(cur) + " " + s)
		}
	default:
		a.value = val
	}
	return a
}

// Render returns the rendered form of an attribute, e.g.
//
//     type='text'
//
// The second return value is false if the attribute does not render, i.e.
// if it has no (supported) value or it is a flag set to false.
func (a *Attribute) Render() (string, bool) {
	if a == nil || a.value == nil {
		return "", false
	}
	switch v := a.value.(type) {
	case Flag:
		if !v {
			return "", false
		}
		return a.name, true
	case String:
		return a.quoted(html.EscapeString(string(v))), true
	}
	return a.quoted(a.value.Format()), true
}

func (a *Attribute) quoted(s string) string {
	var b strings.Builder
	b.Grow(len(a.name) + len(s) + 3)
	b.WriteString(a.name)
	b.WriteString("='")
	b.WriteString(s)
	b.WriteByte('\'')
	return b.String()
}

// String returns the rendered attribute or the empty string.
func (a *Attribute) String() string {
	s, _ := a.Render()
	return s
}

// Clone returns a copy of an attribute. Values are immutable, so the copy
// shares its value with a.
func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}
	return &Attribute{name: a.name, value: a.value}
}
