package cssom

import (
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/dom/style/cssom/douceuradapter"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Sheets composed programmatically (type Sheet) and sheets parsed from CSS
// text (package douceuradapter) both implement it, and either may be
// appended to a Sheet.
type StyleSheet interface {
	Empty() bool           // does this stylesheet contain any rules?
	Styles() []style.Style // all the styles of a stylesheet, in order
}

var _ StyleSheet = &Sheet{}
var _ StyleSheet = &douceuradapter.CSSStyles{}
