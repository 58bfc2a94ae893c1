package document

import (
	"fmt"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/dom/style/cssom"
	"go.uber.org/multierr"
)

// Options control building a document.
type Options struct {
	Registry *dom.Registry // nil: standard registry with permissive policy
	NoReset  bool          // leave out the reset styles
}

// Output is a built document.
type Output struct {
	Page  *dom.Page
	Sheet *cssom.Sheet
}

type builder struct {
	reg  *dom.Registry
	errs error
}

// Build creates a page and a style sheet from a document description.
// Elements which fail to build are replaced by placeholders; Build always
// returns a usable output, together with all errors encountered.
// The style sheet starts with the reset styles unless opts.NoReset is set,
// and is embedded into the head of the page unless it has no styles at all.
func (doc *Document) Build(opts Options) (*Output, error) {
	b := &builder{reg: opts.Registry}
	if b.reg == nil {
		b.reg = dom.StandardRegistry(nil)
	}
	out := &Output{Page: dom.NewPage(doc.Title)}
	if opts.NoReset {
		out.Sheet = cssom.NewSheetWithBase()
	} else {
		out.Sheet = cssom.NewSheet()
	}
	if doc.CSS != "" {
		b.errs = multierr.Append(b.errs, out.Sheet.AddCSS(doc.CSS))
	}
	for i, spec := range doc.Styles {
		blk, err := spec.Block()
		if err != nil {
			b.errs = multierr.Append(b.errs, fmt.Errorf("style #%d: %w", i+1, err))
		}
		out.Sheet.Add(blk)
	}
	for _, n := range doc.Body {
		out.Page.Add(b.node(n))
	}
	if !out.Sheet.Empty() || !opts.NoReset {
		out.Sheet.Embed(out.Page)
	}
	err := multierr.Append(b.errs, out.Page.Err())
	if err != nil {
		tracer().Infof("warning: document %q built with %d error(s)", doc.Title, len(multierr.Errors(err)))
	}
	return out, err
}

// Block converts a style description to a style block. Malformed rules are
// skipped and reported.
func (spec StyleSpec) Block() (*style.Block, error) {
	blk := style.NewBlock(spec.Selectors...)
	var errs error
	if len(blk.Selectors()) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("style without selector"))
	}
	for _, decl := range spec.Rules {
		r, ok := style.ParseRule(decl)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("malformed rule %q", decl))
			continue
		}
		blk.AddRules(r)
	}
	return blk, errs
}

func (b *builder) node(n *Node) dom.Builder {
	if n.Tag == "" && n.Comment != "" {
		return dom.BuildFunc(func() (*dom.Element, error) {
			return dom.NewComment(n.Comment), nil
		})
	}
	return dom.BuildFunc(func() (*dom.Element, error) {
		if n.Tag == "" {
			return nil, fmt.Errorf("%w: node without tag", dom.ErrNoConstructor)
		}
		attrs, err := n.Attributes()
		if err != nil {
			return nil, err
		}
		children := make([]dom.Owner, 0, len(n.Children))
		for _, ch := range n.Children {
			e, err := dom.Realize(b.node(ch))
			b.errs = multierr.Append(b.errs, err)
			children = append(children, e)
		}
		return b.reg.Builder(n.Tag, dom.Args{
			ID:         n.ID,
			Text:       n.Text,
			Classes:    n.Class,
			Attributes: attrs,
			Children:   children,
		}).Build().Get()
	})
}
