/*
Package dom builds markup documents programmatically and renders them to text.

Status

Early draft; the API may change frequently.

Overview

A document is a tree of elements. Every element has a tag, an ordered set of
typed attributes (see package attr), optional text and an ordered list of
children. Elements are created with New, or with a Registry which maps tag
names to factories, and are then wired up:

    div := dom.New("div")
    label := dom.New("label")
    input := dom.New("input")
    input.SetAttribute("type", "text")
    input.SetAttribute("name", "city")
    label.Append(input)
    div.Append(label)
    fmt.Print(div.Render())

which will output

    <div>
      <label>
        <input type='text' name='city' />
      </label>
    </div>

Tree Implementation

Elements build on the general purpose tree of package tree, using
composition: every element contains a tree node whose payload references the
element itself. An element is owned by exactly one parent. Appending an
element somewhere else will move it, not copy it.

Composite components which wrap an element (forms, widgets, a Page) can be
appended directly: Append and Insert accept every Owner and unwrap it to its
underlying element, so the tree only ever contains plain elements.

Rendering

Indentation is derived from the depth of an element below the element handed
to the renderer; clients never have to maintain nesting levels themselves.
Elements whose end tag must be omitted (void elements such as <input>) are
rendered in self-closing form and never get an end tag.

Content Policies

Elements consult a ContentPolicy before accepting attributes and children.
The default policy, Permissive, accepts everything. Stricter policies
may be installed per element or per Registry.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'markup.dom'
func tracer() tracing.Trace {
	return tracing.Select("markup.dom")
}
