/*
Package attr implements typed attributes for markup elements.

Overview

An attribute has a name and a value. Values are typed: flags (boolean
attributes), strings, numbers and temporal values. Each type has exactly one
canonical rendering:

    Flag(true)               hidden
    Flag(false)              (not rendered)
    String("text")           type='text'
    Int(3)                   tabindex='3'
    Float64(0.5)             data-ratio='0.500000'
    Date(…)                  datetime='2022-03-01'
    Clock(…)                 datetime='14:30:00'
    DateTime(…)              datetime='2022-03-01T14:30:00'

Go values are coerced to attribute values by ValueOf, which is what New,
SetValue and AddValue use. Numbers of different concrete subtypes are not
silently converted into each other: AddValue sums only numbers of the same
subtype, unless the caller asks for widening by using AddValueWith(Widen, …).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.dom'.
func tracer() tracing.Trace {
	return tracing.Select("markup.dom")
}
