package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/markup/dom/attr"
	"github.com/npillmayer/markup/tree"
)

type nodeKind uint8

const (
	elementNode nodeKind = iota
	commentNode
)

// Owner is implemented by everything which is backed by an element.
// Composite components wrapping an element implement Owner to be
// appendable to a document tree.
type Owner interface {
	Owner() *Element
}

// Element is a node of a markup document tree.
type Element struct {
	tn       tree.Node[*Element] // we build on top of general purpose tree
	tag      string
	id       string
	attrs    []*attr.Attribute // ordered, at most one per name
	text     string
	raw      bool // text is not escaped on output
	omission TagOmission
	kind     nodeKind
	sealed   bool // does not accept further children
	policy   ContentPolicy
}

// New creates an element for a tag. The end-tag omission rule is set
// from the tag's default (see OmissionFor).
func New(tag string) *Element {
	e := &Element{
		tag:      tag,
		omission: OmissionFor(tag),
		policy:   Permissive,
	}
	e.tn.Payload = e // Payload will always reference the element itself
	return e
}

// NewComment creates a comment node. Comments do not carry attributes or
// children; all structural operations are ignored for them. Text is kept
// as given; dashes which would end the comment early are broken up when
// rendering.
func NewComment(text string) *Element {
	e := New("#comment")
	e.kind = commentNode
	e.text = text
	e.raw = true
	return e
}

// Owner returns the element itself, making every element an Owner.
func (e *Element) Owner() *Element {
	return e
}

func unwrap(o Owner) *Element {
	if o == nil {
		return nil
	}
	return o.Owner()
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.kind == commentNode {
		return "<!---->"
	}
	if e.id != "" {
		return fmt.Sprintf("<%s#%s>", e.tag, e.id)
	}
	return "<" + e.tag + ">"
}

// Tag returns the tag name of an element.
func (e *Element) Tag() string {
	return e.tag
}

// IsComment is a predicate: is this a comment node?
func (e *Element) IsComment() bool {
	return e.kind == commentNode
}

// Omission returns the end-tag omission rule of an element.
func (e *Element) Omission() TagOmission {
	return e.omission
}

// SetOmission overrides the end-tag omission rule of an element.
func (e *Element) SetOmission(o TagOmission) *Element {
	e.omission = o
	return e
}

// Policy returns the content policy an element consults.
func (e *Element) Policy() ContentPolicy {
	return e.policy
}

// SetPolicy sets the content policy for an element. nil resets the policy
// to Permissive.
func (e *Element) SetPolicy(p ContentPolicy) *Element {
	if p == nil {
		p = Permissive
	}
	e.policy = p
	return e
}

// --- Identity, text and classes ---------------------------------------

// ID returns the identity of an element, or "".
func (e *Element) ID() string {
	return e.id
}

// SetID sets the identity of an element and the corresponding id attribute.
// SetID("") clears the identity, but leaves the attributes untouched.
func (e *Element) SetID(id string) *Element {
	if e.kind == commentNode {
		return e
	}
	e.id = id
	if id != "" {
		if err := e.AddAttribute(attr.New("id", id)); err != nil {
			tracer().Debugf("%s: id attribute refused: %v", e, err)
		}
	}
	return e
}

// Text returns the text content of an element (not including the text of
// its children).
func (e *Element) Text() string {
	return e.text
}

// SetText sets the text content of an element. The text will be escaped on
// output.
func (e *Element) SetText(text string) *Element {
	e.text = text
	e.raw = e.kind == commentNode
	return e
}

// SetRawText sets text content which is output verbatim, e.g., scripts or
// style sheets.
func (e *Element) SetRawText(text string) *Element {
	e.text = text
	e.raw = true
	return e
}

// AddClass adds one or more space-separated class names to the class list
// of an element. Class names already present are not repeated. A class
// attribute holding anything but a string is replaced.
func (e *Element) AddClass(name string) *Element {
	if e.kind == commentNode {
		tracer().Debugf("comment nodes do not have classes")
		return e
	}
	for _, c := range strings.Fields(name) {
		if e.HasClass(c) {
			continue
		}
		if cls := e.Attribute("class"); cls != nil {
			if cls.Value() == nil || cls.Value().Kind() != attr.KindString {
				tracer().Debugf("%s: replacing non-string class value", e)
				cls.SetValue(c)
				continue
			}
			cls.AddValue(c)
			continue
		}
		if err := e.AddAttribute(attr.New("class", c)); err != nil {
			tracer().Debugf("%s: class attribute refused: %v", e, err)
			return e
		}
	}
	return e
}

// Classes returns the class list of an element.
func (e *Element) Classes() []string {
	cls := e.Attribute("class")
	if cls == nil || cls.Value() == nil || cls.Value().Kind() != attr.KindString {
		return nil
	}
	return strings.Fields(cls.Value().Format())
}

// HasClass is a predicate: is name in the class list of e?
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// --- Attributes -------------------------------------------------------

// AddAttribute adds an attribute to an element. Attributes which do not
// render (see attr.Attribute.Render) are skipped. If an attribute with the
// same name is already present, its value is replaced and it keeps its
// position. The element stores a copy of a.
//
// An error is returned if the element's content policy refuses the
// attribute.
func (e *Element) AddAttribute(a *attr.Attribute) error {
	if a == nil {
		return nil
	}
	if e.kind == commentNode {
		tracer().Debugf("comment nodes do not have attributes, skipping %s", a.Name())
		return nil
	}
	if _, ok := a.Render(); !ok {
		tracer().Debugf("%s: skipping attribute %s, it does not render", e, a.Name())
		return nil
	}
	if err := e.policy.CheckAttribute(e, a); err != nil {
		tracer().Infof("warning: %v", err)
		return err
	}
	if a.Name() == "id" {
		e.id = a.Value().Format()
	}
	if cur := e.Attribute(a.Name()); cur != nil {
		cur.SetValue(a.Value())
		return nil
	}
	e.attrs = append(e.attrs, a.Clone())
	return nil
}

// SetAttribute creates an attribute from a Go value and adds it.
// See AddAttribute.
func (e *Element) SetAttribute(name string, v any) error {
	return e.AddAttribute(attr.New(name, v))
}

// Attribute returns the attribute of a given name, or nil.
func (e *Element) Attribute(name string) *attr.Attribute {
	for _, a := range e.attrs {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Attributes returns the attributes of an element in order of insertion.
func (e *Element) Attributes() []*attr.Attribute {
	attrs := make([]*attr.Attribute, len(e.attrs))
	copy(attrs, e.attrs)
	return attrs
}

// HasAttributes is a predicate: does e carry any attributes?
func (e *Element) HasAttributes() bool {
	return len(e.attrs) > 0
}

// RemoveAttribute removes an attribute by name. Removing the id attribute
// clears the identity of the element.
func (e *Element) RemoveAttribute(name string) *Element {
	for i, a := range e.attrs {
		if a.Name() == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			if name == "id" {
				e.id = ""
			}
			break
		}
	}
	return e
}

// --- Tree operations --------------------------------------------------

// Append appends children at the end of the list of children of e.
// A child currently owned by another element is detached from it first,
// unless that element is sealed (ErrSealed).
//
// Append stops at the first child which cannot be appended and returns an
// error; children appended so far stay in place.
func (e *Element) Append(children ...Owner) error {
	for _, o := range children {
		if err := e.attach(-1, o); err != nil {
			return err
		}
	}
	return nil
}

// Insert inserts a child in front of all other children of e.
// A child currently owned by another element is detached from it first.
func (e *Element) Insert(child Owner) error {
	return e.attach(0, child)
}

func (e *Element) attach(at int, o Owner) error {
	ch := unwrap(o)
	if ch == nil {
		return nil
	}
	if e.kind == commentNode {
		tracer().Debugf("comment nodes do not have children, skipping %s", ch)
		return nil
	}
	if e.sealed {
		tracer().Errorf("%s does not accept further children, refusing %s", e, ch)
		return fmt.Errorf("%w: cannot add %s to %s", ErrSealed, ch, e)
	}
	if err := ch.checkRelease(); err != nil {
		return err
	}
	if ch.tn.IsAncestorOf(&e.tn) {
		return fmt.Errorf("%w: cannot add %s to %s", ErrCycle, ch, e)
	}
	if err := e.policy.CheckContent(e, ch); err != nil {
		tracer().Infof("warning: %v", err)
		return err
	}
	if at < 0 {
		e.tn.AddChild(&ch.tn)
	} else {
		e.tn.InsertChildAt(at, &ch.tn)
	}
	return nil
}

// Detach removes an element from its parent, making it the root of a
// tree of its own. Children of a sealed element stay in place and Detach
// returns ErrSealed.
func (e *Element) Detach() error {
	if err := e.checkRelease(); err != nil {
		return err
	}
	e.tn.Isolate()
	return nil
}

// checkRelease refuses to take e away from a sealed parent.
func (e *Element) checkRelease() error {
	p := e.tn.Parent()
	if p == nil || !p.Payload.sealed {
		return nil
	}
	tracer().Errorf("%s is sealed, refusing to release %s", p.Payload, e)
	return fmt.Errorf("%w: cannot remove %s from %s", ErrSealed, e, p.Payload)
}

// Parent returns the parent of an element. The parent of a root element is
// the element itself.
func (e *Element) Parent() *Element {
	if p := e.tn.Parent(); p != nil {
		return p.Payload
	}
	return e
}

// IsRoot is a predicate: is e the root of its tree?
func (e *Element) IsRoot() bool {
	return e.tn.Parent() == nil
}

// Root returns the root element of the tree containing e.
func (e *Element) Root() *Element {
	return e.tn.Root().Payload
}

// Level returns the depth of e within its tree. The root has level 0.
func (e *Element) Level() int {
	return e.tn.Depth()
}

// ChildCount returns the number of children of e.
func (e *Element) ChildCount() int {
	return e.tn.ChildCount()
}

// Child returns the n-th child of e, or nil.
func (e *Element) Child(n int) *Element {
	if ch, ok := e.tn.Child(n); ok {
		return ch.Payload
	}
	return nil
}

// Children returns the children of e, in order.
func (e *Element) Children() []*Element {
	nodes := e.tn.Children()
	children := make([]*Element, len(nodes))
	for i, n := range nodes {
		children[i] = n.Payload
	}
	return children
}

// IndexOf returns the position of ch among the children of e, or -1.
func (e *Element) IndexOf(ch *Element) int {
	if ch == nil {
		return -1
	}
	return e.tn.IndexOfChild(&ch.tn)
}

// Walk calls f for e and every descendant of e, in document order. If f
// returns false, the descendants of that element are skipped.
func (e *Element) Walk(f func(*Element) bool) {
	if !f(e) {
		return
	}
	for _, ch := range e.Children() {
		ch.Walk(f)
	}
}

// Render renders an element and its descendants with the default renderer.
func (e *Element) Render() string {
	return NewRenderer().Render(e)
}
