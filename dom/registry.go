package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/markup/dom/attr"
	"github.com/npillmayer/markup/maybe"
	"go.uber.org/multierr"
)

// Args is the parameter tuple handed to element factories.
type Args struct {
	ID         string
	Text       string
	Classes    []string
	Attributes []*attr.Attribute
	Children   []Owner
}

// Factory constructs an element for a tag. policy is the registry's content
// policy, to be installed on the new element.
type Factory func(tag string, policy ContentPolicy, args Args) (*Element, error)

// GenericFactory creates a plain element and populates it from args.
func GenericFactory(tag string, policy ContentPolicy, args Args) (*Element, error) {
	e := New(tag).SetPolicy(policy)
	if err := Populate(e, args); err != nil {
		return nil, err
	}
	return e, nil
}

// Populate applies ID, classes, attributes, text and children of args to e,
// in this order. All failures are collected; e is left with everything which
// could be applied.
func Populate(e *Element, args Args) error {
	if args.ID != "" {
		e.SetID(args.ID)
	}
	for _, c := range args.Classes {
		e.AddClass(c)
	}
	var errs error
	for _, a := range args.Attributes {
		errs = multierr.Append(errs, e.AddAttribute(a))
	}
	if args.Text != "" {
		e.SetText(args.Text)
	}
	for _, ch := range args.Children {
		errs = multierr.Append(errs, e.Append(ch))
	}
	return errs
}

// Registry maps tag names to element factories.
//
// There is no global registry; clients create one with NewRegistry or
// StandardRegistry and pass it where elements are constructed.
type Registry struct {
	factories map[string]Factory
	policy    ContentPolicy
}

// NewRegistry creates an empty registry. Elements constructed by it get
// content policy p (Permissive if p is nil).
func NewRegistry(p ContentPolicy) *Registry {
	if p == nil {
		p = Permissive
	}
	return &Registry{
		factories: make(map[string]Factory),
		policy:    p,
	}
}

// StandardRegistry creates a registry with GenericFactory registered for
// every standard HTML element.
func StandardRegistry(p ContentPolicy) *Registry {
	r := NewRegistry(p)
	for _, tag := range knownTags {
		r.Register(tag, GenericFactory)
	}
	return r
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Register registers a factory for a tag, replacing an existing one.
// Registering a nil factory removes the tag.
func (r *Registry) Register(tag string, f Factory) *Registry {
	tag = normalizeTag(tag)
	if f == nil {
		delete(r.factories, tag)
		return r
	}
	r.factories[tag] = f
	return r
}

// Has is a predicate: is there a factory for tag?
func (r *Registry) Has(tag string) bool {
	_, ok := r.factories[normalizeTag(tag)]
	return ok
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for t := range r.factories {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Construct creates an element for tag. If no factory is registered for the
// tag, or the factory fails, Construct returns Nothing.
func (r *Registry) Construct(tag string, args Args) maybe.Maybe[*Element] {
	e, err := r.construct(tag, args)
	if err != nil {
		tracer().Infof("warning: %v", err)
		return maybe.Nothing[*Element]()
	}
	return maybe.Just(e)
}

func (r *Registry) construct(tag string, args Args) (*Element, error) {
	f, ok := r.factories[normalizeTag(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrNoConstructor, tag)
	}
	e, err := f(normalizeTag(tag), r.policy, args)
	if err != nil {
		return nil, &FactoryError{Tag: tag, Err: err}
	}
	if e == nil {
		return nil, fmt.Errorf("%w: <%s>: factory returned no element", ErrNoConstructor, tag)
	}
	return e, nil
}

// Builder returns a Builder which constructs an element for tag. Failures
// match ErrNoConstructor; factory failures are a *FactoryError carrying the
// cause.
func (r *Registry) Builder(tag string, args Args) Builder {
	return BuildFunc(func() (*Element, error) {
		return r.construct(tag, args)
	})
}

var _ Builder = BuildFunc(nil)
