package dom

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/markup/dom/attr"
)

// ContentPolicy is consulted by elements before accepting attributes and
// children. Implementations return an error wrapping ErrInvalidAttribute
// or ErrInvalidContent to refuse.
type ContentPolicy interface {
	CheckAttribute(e *Element, a *attr.Attribute) error
	CheckContent(parent *Element, child *Element) error
}

type permissive struct{}

func (permissive) CheckAttribute(*Element, *attr.Attribute) error { return nil }
func (permissive) CheckContent(*Element, *Element) error          { return nil }

// Permissive accepts every attribute and every child. It is the default
// policy for new elements.
var Permissive ContentPolicy = permissive{}

type voidPolicy struct{}

// VoidPolicy refuses children for elements whose end tag must be omitted,
// and attributes with names not valid in markup.
var VoidPolicy ContentPolicy = voidPolicy{}

func (voidPolicy) CheckAttribute(e *Element, a *attr.Attribute) error {
	if !validAttributeName(a.Name()) {
		return fmt.Errorf("%w: %q for %s", ErrInvalidAttribute, a.Name(), e)
	}
	return nil
}

func (voidPolicy) CheckContent(parent *Element, child *Element) error {
	if parent.Omission() == EndMustBeOmitted && !child.IsComment() {
		return fmt.Errorf("%w: %s cannot have children, refusing %s", ErrInvalidContent, parent, child)
	}
	return nil
}

// validAttributeName checks for non-empty names without whitespace,
// quotes or other characters the HTML tokenizer would choke on.
func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune("\"'<>/=", r)
	}) < 0
}
