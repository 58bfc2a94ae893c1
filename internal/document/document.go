/*
Package document reads document descriptions in YAML and builds pages and
style sheets from them.

A description looks like this:

    title: Demo
    css: |
      .box { color: red }
    styles:
      - selectors: [".box"]
        rules: ["margin: 0 auto"]
    body:
      - tag: div
        id: main
        class: [box]
        attrs: {hidden: true, tabindex: 3, data-ratio: 0.5}
        text: Hello
        children:
          - comment: a note
          - tag: input
            attrs: {type: text, name: city}

Attribute values keep their YAML types. Tags !decimal, !date and !clock
select decimal numbers, dates and times of day, respectively.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package document

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/npillmayer/markup/dom/attr"
	"github.com/npillmayer/schuko/tracing"
	"github.com/shopspring/decimal"
	yaml "gopkg.in/yaml.v3"
)

// tracer traces with key 'markup.cli'.
func tracer() tracing.Trace {
	return tracing.Select("markup.cli")
}

// Document is the description of a page and its styles.
type Document struct {
	Title  string      `yaml:"title"`
	CSS    string      `yaml:"css"`
	Styles []StyleSpec `yaml:"styles"`
	Body   []*Node     `yaml:"body"`
}

// StyleSpec describes a style block.
type StyleSpec struct {
	Selectors []string `yaml:"selectors"`
	Rules     []string `yaml:"rules"` // "key: value" declarations
}

// Node describes an element or, if Comment is set, a comment.
type Node struct {
	Tag      string    `yaml:"tag"`
	ID       string    `yaml:"id"`
	Class    []string  `yaml:"class"`
	Attrs    yaml.Node `yaml:"attrs"` // mapping, kept as node to preserve order
	Text     string    `yaml:"text"`
	Comment  string    `yaml:"comment"`
	Children []*Node   `yaml:"children"`
}

// Load reads a document description.
func Load(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			return doc, nil
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return doc, nil
}

// LoadFile reads a document description from a file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("loaded document %q from %s", doc.Title, path)
	return doc, nil
}

// Attributes converts the attribute mapping of a node, in order of
// appearance.
func (n *Node) Attributes() ([]*attr.Attribute, error) {
	if n.Attrs.Kind == 0 {
		return nil, nil
	}
	if n.Attrs.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: attrs of <%s> must be a mapping", n.Attrs.Line, n.Tag)
	}
	attrs := make([]*attr.Attribute, 0, len(n.Attrs.Content)/2)
	for i := 0; i+1 < len(n.Attrs.Content); i += 2 {
		k, v := n.Attrs.Content[i], n.Attrs.Content[i+1]
		val, err := scalarValue(v)
		if err != nil {
			return attrs, fmt.Errorf("line %d: attribute %s: %w", v.Line, k.Value, err)
		}
		attrs = append(attrs, attr.New(k.Value, val))
	}
	return attrs, nil
}

func scalarValue(v *yaml.Node) (attr.Value, error) {
	if v.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("value must be a scalar")
	}
	switch v.Tag {
	case "!decimal":
		d, err := decimal.NewFromString(v.Value)
		if err != nil {
			return nil, err
		}
		return attr.Decimal{Decimal: d}, nil
	case "!date":
		t, err := time.Parse("2006-01-02", v.Value)
		if err != nil {
			return nil, err
		}
		return attr.Date(t), nil
	case "!clock":
		t, err := time.Parse("15:04:05", v.Value)
		if err != nil {
			if t, err = time.Parse("15:04", v.Value); err != nil {
				return nil, err
			}
		}
		return attr.Clock(t), nil
	}
	var x any
	if err := v.Decode(&x); err != nil {
		return nil, err
	}
	val, ok := attr.ValueOf(x)
	if !ok {
		return nil, fmt.Errorf("unsupported value %q", v.Value)
	}
	return val, nil
}
