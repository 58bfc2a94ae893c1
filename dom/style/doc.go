/*
Package style provides the building blocks of style sheets: properties,
selectors, rules and blocks.

A Block groups rules under one or more selectors and renders as

    h1, h2 {
      margin: 0;
      color: navy !important;
    }

Blocks are identified by their selector key, the comma-joined selector
texts. Selector texts are opaque to this package; they are neither parsed
nor normalized beyond trimming white space.

Properties are raw string values. For inspecting the effective values of a
block, Block.Computed returns a PropertyMap, organised in property groups
(margins, padding, border, …) with shorthand properties expanded.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer will return a tracer. We are tracing to 'markup.style'
func tracer() tracing.Trace {
	return tracing.Select("markup.style")
}
