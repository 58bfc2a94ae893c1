package cssom

import (
	"fmt"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/maybe"
	"go.uber.org/multierr"
)

// StyleMap holds the property maps resulting from applying a style sheet
// to an element tree.
type StyleMap struct {
	root      *dom.Element
	props     map[*dom.Element]*style.PropertyMap
	important map[*dom.Element]map[string]bool
}

// Apply matches the styles of a sheet against the tree below root. Blocks
// are applied in sheet order; a later rule overwrites an earlier one for
// the same element and property, unless the earlier one is important.
//
// Selectors which cannot be evaluated are skipped and reported in the
// returned error; the style map is usable nevertheless.
func (s *Sheet) Apply(root *dom.Element) (*StyleMap, error) {
	smap := &StyleMap{
		root:      root,
		props:     make(map[*dom.Element]*style.PropertyMap),
		important: make(map[*dom.Element]map[string]bool),
	}
	if root == nil {
		return smap, nil
	}
	var errs error
	for _, st := range s.styles() {
		b, ok := st.(*style.Block)
		if !ok {
			continue
		}
		var rules []style.Rule
		for _, r := range b.Rules() {
			rules = append(rules, r.Expand()...)
		}
		for _, sel := range b.Selectors() {
			matches, err := root.QueryAll(sel.String())
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("block %q: %w", b.SelectorKey(), err))
				continue
			}
			for _, e := range matches {
				smap.apply(e, rules)
			}
		}
	}
	return smap, errs
}

func (smap *StyleMap) apply(e *dom.Element, rules []style.Rule) {
	pmap, ok := smap.props[e]
	if !ok {
		pmap = style.NewPropertyMap()
		smap.props[e] = pmap
		smap.important[e] = make(map[string]bool)
	}
	imp := smap.important[e]
	for _, r := range rules {
		if imp[r.Key] && !r.Important {
			continue
		}
		imp[r.Key] = imp[r.Key] || r.Important
		pmap.Add(r.Key, r.Value)
	}
}

// Styles returns the property map of an element, or nil if no style
// applies to it.
func (smap *StyleMap) Styles(e *dom.Element) *style.PropertyMap {
	return smap.props[e]
}

// Len returns the number of styled elements.
func (smap *StyleMap) Len() int {
	return len(smap.props)
}

// LocalProperty returns a style property value, if it is set for an
// element itself. No cascading is performed.
func (smap *StyleMap) LocalProperty(e *dom.Element, key string) (style.Property, bool) {
	return smap.props[e].Property(key)
}

// Property returns the value of a style property for an element. If the
// property is not set for the element and the property is inheritable (see
// style.IsCascading), or the value is "inherit", the search cascades to the
// element's ancestors. Otherwise, or if no ancestor sets the property, the
// user-agent default is returned.
func (smap *StyleMap) Property(e *dom.Element, key string) style.Property {
	if e == nil {
		return style.NullStyle
	}
	return smap.specified(e, key).WithDefault(style.DefaultProperty(e.Tag(), key))
}

// specified finds the value set for e, or inherited from an ancestor.
func (smap *StyleMap) specified(e *dom.Element, key string) maybe.Maybe[style.Property] {
	p, _ := smap.LocalProperty(e, key)
	if !p.IsEmpty() && !p.IsInherit() && !p.IsInitial() {
		return maybe.Just(p)
	}
	if p.IsInherit() || (!p.IsInitial() && style.IsCascading(key)) {
		return maybe.AndThen(smap.inheritFrom(key), smap.parent(e))
	}
	return maybe.Nothing[style.Property]()
}

// inheritFrom returns a lookup of key at an ancestor. Ancestors without a
// value pass the search on; "initial" stops it.
func (smap *StyleMap) inheritFrom(key string) func(*dom.Element) maybe.Maybe[style.Property] {
	var lookup func(*dom.Element) maybe.Maybe[style.Property]
	lookup = func(a *dom.Element) maybe.Maybe[style.Property] {
		v, _ := smap.LocalProperty(a, key)
		switch {
		case v.IsInitial():
			return maybe.Nothing[style.Property]()
		case !v.IsEmpty() && !v.IsInherit():
			return maybe.Just(v)
		}
		return maybe.AndThen(lookup, smap.parent(a))
	}
	return lookup
}

// parent returns the parent of e within the styled tree.
func (smap *StyleMap) parent(e *dom.Element) maybe.Maybe[*dom.Element] {
	if e.IsRoot() || e == smap.root {
		return maybe.Nothing[*dom.Element]()
	}
	return maybe.Just(e.Parent())
}

// Display returns the display mode of an element.
func (smap *StyleMap) Display(e *dom.Element) style.DisplayMode {
	d, err := style.ParseDisplay(smap.Property(e, "display").String())
	if err != nil {
		tracer().Debugf("%s: %v", e, err)
	}
	return d
}
