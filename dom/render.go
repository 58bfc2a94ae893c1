package dom

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko"
	"golang.org/x/net/html"
)

// DefaultIndent is the indentation unit of the default renderer.
const DefaultIndent = "  "

// Renderer serializes element trees to text.
//
// Indentation is Indent repeated once per nesting level. The element handed
// to Render is rendered at BaseLevel, its children at BaseLevel+1 and so on,
// independent of where the element is located in its tree.
type Renderer struct {
	Indent    string // indentation unit
	BaseLevel int    // nesting level of the top element
}

// NewRenderer creates a renderer with DefaultIndent and base level 0.
func NewRenderer() *Renderer {
	return &Renderer{Indent: DefaultIndent}
}

// RendererFromConfig creates a renderer from configuration keys
//
//     markup.indent         indentation unit (string)
//     markup.indent-width   indentation unit as a number of spaces
//     markup.baselevel      nesting level of the top element
//
// markup.indent takes precedence over markup.indent-width. Unset keys
// leave the defaults of NewRenderer in place.
func RendererFromConfig(conf schuko.Configuration) *Renderer {
	r := NewRenderer()
	if conf == nil {
		return r
	}
	if conf.IsSet("markup.indent") {
		r.Indent = conf.GetString("markup.indent")
	} else if conf.IsSet("markup.indent-width") {
		if w := conf.GetInt("markup.indent-width"); w >= 0 {
			r.Indent = strings.Repeat(" ", w)
		} else {
			tracer().Infof("warning: negative indent width %d ignored", w)
		}
	}
	if conf.IsSet("markup.baselevel") {
		if b := conf.GetInt("markup.baselevel"); b >= 0 {
			r.BaseLevel = b
		}
	}
	tracer().Debugf("renderer: indent=%q, base level=%d", r.Indent, r.BaseLevel)
	return r
}

// Render returns the text form of e and its descendants.
func (r *Renderer) Render(e *Element) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	r.render(&b, e, r.BaseLevel)
	return b.String()
}

// RenderTo writes the text form of e and its descendants to w.
func (r *Renderer) RenderTo(w io.Writer, e *Element) error {
	_, err := io.WriteString(w, r.Render(e))
	return err
}

func (r *Renderer) indent(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteString(r.Indent)
	}
}

func (r *Renderer) render(b *strings.Builder, e *Element, level int) {
	if e.kind == commentNode {
		b.WriteString("<!--")
		b.WriteString(commentText(e.text))
		b.WriteString("-->")
		return
	}
	r.indent(b, level)
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		if s, ok := a.Render(); ok {
			b.WriteByte(' ')
			b.WriteString(s)
		}
	}
	selfClosing := e.omission == EndMustBeOmitted
	if selfClosing {
		b.WriteString(" />")
	} else {
		b.WriteByte('>')
	}
	if e.raw {
		b.WriteString(e.text)
	} else {
		b.WriteString(html.EscapeString(e.text))
	}
	if e.ChildCount() > 0 {
		b.WriteByte('\n')
		for _, ch := range e.Children() {
			if ch.Parent() != e { // stale child reference
				tracer().Debugf("%s: skipping child %s owned by %s", e, ch, ch.Parent())
				continue
			}
			r.render(b, ch, level+1)
		}
		r.indent(b, level)
	}
	if !selfClosing {
		b.WriteString("</")
		b.WriteString(e.tag)
		b.WriteByte('>')
	}
	b.WriteByte('\n')
}

// commentText makes text safe to be enclosed in "<!--" and "-->". Runs of
// dashes are broken up, and text may neither start with ">" nor end with a
// dash.
func commentText(text string) string {
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	if strings.HasPrefix(text, ">") || strings.HasPrefix(text, "->") {
		text = " " + text
	}
	if strings.HasSuffix(text, "-") {
		text += " "
	}
	return text
}
