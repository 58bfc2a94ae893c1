/*
Package tree implements a general purpose tree of mutable nodes.

Overview

Markup documents are trees, and so are a lot of their derived structures.
Every node of a tree carries a payload of type parameter T; concrete node
types (e.g., elements of a markup document) compose a tree node and set
the payload to reference themselves.

A node has at most one parent at any time. Adding a node as a child of
another node will first detach it from its current parent, if any.

Nodes are not safe for concurrent mutation. Clients building a tree from
more than one goroutine have to serialize access themselves.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.tree'.
func tracer() tracing.Trace {
	return tracing.Select("markup.tree")
}
