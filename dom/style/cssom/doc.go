/*
Package cssom composes style sheets from style blocks and applies them to
element trees.

Composing

A Sheet accumulates blocks (see package style). Blocks are deduplicated by
their selector key: adding rules to a selector which is already styled
merges them into the existing block and moves that block to the end of the
sheet, so the latest additions take precedence in the cascade:

    sheet := cssom.NewSheet()
    sheet.Add(style.NewBlock("p").Add("margin", "0"))
    sheet.Add(style.NewBlock("li").Add("color", "red"))
    sheet.Add(style.NewBlock("p").Add("color", "blue"))

renders the reset styles, then the block for "li", then a block for "p"
containing both rules. CSS text may be added with AddCSS; it is parsed with
the douceur CSS parser (see package douceuradapter).

Applying

Apply matches the blocks of a sheet against an element tree, using the
cascadia selector engine, and returns the resulting property maps per
element. Matching follows sheet order only; selector specificity is not
taken into account. Inheritable properties cascade to descendants when
queried with StyleMap.Property.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'markup.style'.
func tracer() tracing.Trace {
	return tracing.Select("markup.style")
}
