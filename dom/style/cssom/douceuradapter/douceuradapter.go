/*
Package douceuradapter reads CSS text into style blocks, using the douceur
CSS parser.

The type CSSStyles wraps a parsed douceur style sheet and satisfies
interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
)

// tracer traces with key 'markup.style'.
func tracer() tracing.Trace {
	return tracing.Select("markup.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS text.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing CSS: %w", err)
	}
	return Wrap(c), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(c *css.Stylesheet) *CSSStyles {
	if c == nil {
		return &CSSStyles{}
	}
	return &CSSStyles{*c}
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *CSSStyles) AppendRules(other *CSSStyles) {
	if other == nil {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Blocks converts every qualified rule of the style sheet to a style block,
// in source order. At-rules (@media, @import, …) are skipped.
func (sheet *CSSStyles) Blocks() []*style.Block {
	blocks := make([]*style.Block, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping CSS at-rule %s %s", r.Name, r.Prelude)
			continue
		}
		blocks = append(blocks, Block(r))
	}
	return blocks
}

// Styles returns the blocks of the style sheet as styles.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Styles() []style.Style {
	blocks := sheet.Blocks()
	styles := make([]style.Style, len(blocks))
	for i, b := range blocks {
		styles[i] = b
	}
	return styles
}

// Block converts a qualified douceur rule into a style block.
func Block(r *css.Rule) *style.Block {
	sels := []string{r.Prelude}
	if strings.TrimSpace(r.Prelude) == "" {
		sels = r.Selectors
	}
	b := style.NewBlock(sels...)
	for _, d := range r.Declarations {
		b.AddRules(style.Rule{
			Key:       d.Property,
			Value:     style.Property(d.Value),
			Important: d.Important,
		})
	}
	return b
}

// ExtractStyleElements visits <head> and <body> elements of a document tree
// and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped and reported in the error.
func ExtractStyleElements(root *dom.Element) ([]*CSSStyles, error) {
	if root == nil {
		return nil, nil
	}
	var sheets []*CSSStyles
	var errs error
	for _, part := range []string{"head", "body"} {
		container := findElement(part, root)
		if container == nil {
			continue
		}
		for _, ch := range container.Children() {
			if !strings.EqualFold(ch.Tag(), "style") {
				continue
			}
			c, err := Parse(ch.Text())
			if err != nil {
				tracer().Infof("warning: <style> in <%s>: %v", part, err)
				errs = multierr.Append(errs, err)
				continue
			}
			sheets = append(sheets, c)
		}
	}
	return sheets, errs
}

func findElement(tag string, root *dom.Element) *dom.Element {
	var found *dom.Element
	root.Walk(func(e *dom.Element) bool {
		if found != nil {
			return false
		}
		if strings.EqualFold(e.Tag(), tag) {
			found = e
			return false
		}
		return true
	})
	return found
}
