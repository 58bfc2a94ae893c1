package dom

import (
	"fmt"

	"github.com/npillmayer/markup/result"
	"go.uber.org/multierr"
)

// Builder is implemented by components which assemble a subtree and may
// fail doing so.
type Builder interface {
	Build() result.Result[*Element]
}

// BuildFunc adapts a function to the Builder interface. A panic raised by
// the function is captured as an error.
type BuildFunc func() (*Element, error)

// Build is part of interface Builder.
func (f BuildFunc) Build() result.Result[*Element] {
	if f == nil {
		return result.Err[*Element](fmt.Errorf("%w: nil build function", ErrNoConstructor))
	}
	return result.Try[*Element](f)
}

// Realize runs a builder. If the build fails, Realize returns an empty
// placeholder container together with the error, so that rendering may
// proceed with a partial document.
func Realize(b Builder) (*Element, error) {
	if b == nil {
		return Placeholder(), fmt.Errorf("%w: no builder", ErrNoConstructor)
	}
	e, err := b.Build().Get()
	if err != nil {
		tracer().Infof("warning: build failed: %v", err)
		return Placeholder(), err
	}
	if e == nil {
		return Placeholder(), fmt.Errorf("%w: builder returned no element", ErrNoConstructor)
	}
	return e, nil
}

// PlaceholderClass is the class of placeholder elements standing in for
// subtrees which failed to build.
const PlaceholderClass = "build-error"

// Placeholder creates an empty container standing in for a failed build.
func Placeholder() *Element {
	return New("div").AddClass(PlaceholderClass)
}

// Page is the root of an HTML document. It consists of an html element
// with a head (containing the title) and a body. The html root is sealed:
// content goes to Head or Body.
type Page struct {
	root *Element
	head *Element
	body *Element
	errs []error
}

// NewPage creates a page with a title.
func NewPage(title string) *Page {
	p := &Page{
		root: New("html"),
		head: New("head"),
		body: New("body"),
	}
	p.head.Append(New("title").SetText(title))
	p.root.Append(p.head, p.body)
	p.root.sealed = true
	return p
}

// Owner returns the html root element of the page.
func (p *Page) Owner() *Element {
	return p.root
}

// Root returns the html root element of the page.
func (p *Page) Root() *Element {
	return p.root
}

// Head returns the head element of the page.
func (p *Page) Head() *Element {
	return p.head
}

// Body returns the body element of the page.
func (p *Page) Body() *Element {
	return p.body
}

// Add builds a subtree and appends it to the body. If the build fails, a
// placeholder is appended instead and the error is recorded (see Err).
func (p *Page) Add(b Builder) *Element {
	e, err := Realize(b)
	p.record(err)
	p.record(p.body.Append(e))
	return e
}

// EmbedStyles appends a <style> element with verbatim content css to the
// head of the page.
func (p *Page) EmbedStyles(css string) *Element {
	st := New("style").SetRawText(css)
	p.record(p.head.Append(st))
	return st
}

func (p *Page) record(err error) {
	if err != nil {
		p.errs = append(p.errs, err)
	}
}

// Errors returns the errors recorded while building the page.
func (p *Page) Errors() []error {
	errs := make([]error, len(p.errs))
	copy(errs, p.errs)
	return errs
}

// Err returns all errors recorded while building the page, combined into a
// single error, or nil.
func (p *Page) Err() error {
	return multierr.Combine(p.errs...)
}

// Render renders the page with the default renderer.
func (p *Page) Render() string {
	return p.root.Render()
}
