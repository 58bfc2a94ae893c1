package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// TagOmission tells whether an element's end tag is emitted.
type TagOmission uint8

const (
	// NoOmission elements always get an end tag.
	NoOmission TagOmission = iota
	// EndOptional elements may omit their end tag in HTML. We still emit it.
	EndOptional
	// EndMustBeOmitted elements (void elements) are rendered self-closing
	// and never get an end tag.
	EndMustBeOmitted
)

func (o TagOmission) String() string {
	switch o {
	case EndOptional:
		return "end-optional"
	case EndMustBeOmitted:
		return "end-omitted"
	}
	return "none"
}

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

var endOptional = map[atom.Atom]bool{
	atom.Html:     true,
	atom.Head:     true,
	atom.Body:     true,
	atom.Li:       true,
	atom.Dt:       true,
	atom.Dd:       true,
	atom.P:        true,
	atom.Rt:       true,
	atom.Rp:       true,
	atom.Optgroup: true,
	atom.Option:   true,
	atom.Colgroup: true,
	atom.Caption:  true,
	atom.Thead:    true,
	atom.Tbody:    true,
	atom.Tfoot:    true,
	atom.Tr:       true,
	atom.Td:       true,
	atom.Th:       true,
}

// OmissionFor returns the default end-tag omission rule for a tag.
// Unknown tags get NoOmission.
func OmissionFor(tag string) TagOmission {
	a := atom.Lookup([]byte(strings.ToLower(tag)))
	if a == 0 {
		return NoOmission
	}
	if voidElements[a] {
		return EndMustBeOmitted
	}
	if endOptional[a] {
		return EndOptional
	}
	return NoOmission
}

// knownTags are the element names registered by StandardRegistry.
var knownTags = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt",
	"em", "embed", "fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hr", "html",
	"i", "iframe", "img", "input", "ins", "kbd", "label", "legend", "li", "link",
	"main", "map", "mark", "menu", "meta", "meter", "nav", "noscript",
	"object", "ol", "optgroup", "option", "output", "p", "param", "picture", "pre", "progress",
	"q", "rp", "rt", "ruby", "s", "samp", "script", "section", "select", "small",
	"source", "span", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track", "u", "ul", "var", "video", "wbr",
}
