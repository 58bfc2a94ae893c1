package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // ordered slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node at the end of the list of children.
// If ch is currently a child of another node (or of this node), it is
// isolated first, i.e., a node will never be a child of two parents.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil && ch != node {
		ch.Isolate()
		node.children.insertChildAt(node.children.length(), ch, node)
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. Positions beyond the end of the list of children append.
// As with AddChild, ch is isolated from its current parent first.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch != nil && ch != node {
		ch.Isolate()
		node.children.insertChildAt(i, ch, node)
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		tracer().Debugf("isolating node from parent %v", node.parent)
		node.parent.children.remove(node)
	}
	return node
}

// Root returns the root of the tree containing node.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r != nil && r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors of node. The root has depth 0.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IsAncestorOf is a predicate: is node an ancestor of n (or n itself)?
func (node *Node[T]) IsAncestorOf(n *Node[T]) bool {
	for ; n != nil; n = n.parent {
		if n == node {
			return true
		}
	}
	return false
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
// The slice is a copy; clients may modify it freely.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children.slice {
		if ch == child {
			return i
		}
	}
	return -1
}

// --- Slices of children -----------------------------------------------

type childrenSlice[T comparable] struct {
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	return len(chs.slice)
}

func (chs *childrenSlice[T]) insertChildAt(i int, child *Node[T], parent *Node[T]) {
	if child == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(chs.slice) {
		chs.slice = append(chs.slice, child)
	} else {
		chs.slice = append(chs.slice, nil)   // make room for one child
		copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
		chs.slice[i] = child
	}
	child.parent = parent
}

// remove splices node out of the slice, keeping the order of the
// remaining children.
func (chs *childrenSlice[T]) remove(node *Node[T]) {
	for i, ch := range chs.slice {
		if ch == node {
			copy(chs.slice[i:], chs.slice[i+1:])
			chs.slice[len(chs.slice)-1] = nil
			chs.slice = chs.slice[:len(chs.slice)-1]
			node.parent = nil
			break
		}
	}
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
