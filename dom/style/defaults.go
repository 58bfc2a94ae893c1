package style

import "strings"

// Values "default" have the following semantics:
// Treat this as an inherent user-agent default which is left to the
// consumer of the markup.
var nonInherited = map[string]string{
	"position":            "static",
	"float":               "none",
	"visibility":          "visible",
	"background-color":    "default",
	"border-top-color":    "default",
	"border-left-color":   "default",
	"border-right-color":  "default",
	"border-bottom-color": "default",
	"border-top-style":    "none",
	"border-left-style":   "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
}

var isDimension = map[string]string{
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "none",
	"min-height":                 "none",
	"max-width":                  "none",
	"max-height":                 "none",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
}

// DefaultProperty returns the user-agent default of a property for an
// element with a given tag. For properties without a known default,
// NullStyle is returned.
func DefaultProperty(tag string, key string) Property {
	if key == "display" {
		return DisplayPropertyForTag(tag)
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// DisplayPropertyForTag returns the default `display` CSS property for an
// element.
func DisplayPropertyForTag(tag string) Property {
	switch strings.ToLower(tag) {
	case "":
		return "none"
	case "head", "title", "style", "script", "meta", "link", "base", "template":
		return "none"
	case "p":
		return "block-inline"
	case "html", "address", "article", "aside", "blockquote", "body", "details",
		"dialog", "dd", "div", "dl", "dt", "fieldset", "figcaption", "figure",
		"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header", "hr",
		"main", "nav", "ol", "pre", "section", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "a", "abbr", "b", "br", "button", "cite", "code", "em", "i", "img",
		"input", "kbd", "label", "mark", "q", "s", "samp", "select", "small",
		"span", "strong", "sub", "sup", "textarea", "time", "u", "var":
		return "inline"
	}
	tracer().Debugf("element <%s> without known display mode will be set to display: block", tag)
	return "block"
}
