package cssom

import (
	"strings"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/dom/style/cssom/douceuradapter"
)

// Sheet composes style blocks into a style sheet.
//
// Blocks are identified by their selector key. Adding a block for a key
// already present merges the new rules into the existing block and moves
// the block to the end of the sheet. Re-styling a selector therefore
// always takes precedence over everything added before, regardless of
// where the selector first appeared.
//
// Every sheet starts with a fixed set of base styles (a CSS reset), which
// are always rendered first.
type Sheet struct {
	base   []style.Style
	blocks map[string]*style.Block
	order  []string // selector keys in render order, each exactly once
}

// NewSheet creates a sheet with the default reset styles as its base.
func NewSheet() *Sheet {
	return NewSheetWithBase(resetStyles()...)
}

// NewSheetWithBase creates a sheet with custom base styles.
func NewSheetWithBase(base ...style.Style) *Sheet {
	s := &Sheet{blocks: make(map[string]*style.Block)}
	for _, st := range base {
		if st != nil {
			s.base = append(s.base, cloneStyle(st))
		}
	}
	return s
}

func resetStyles() []style.Style {
	c, err := douceuradapter.Parse(resetCSS)
	if err != nil {
		panic("cssom: cannot parse reset styles: " + err.Error())
	}
	return c.Styles()
}

// Add adds styles to the sheet. Blocks are inserted or merged (see Sheet).
// A bare rule has no selector to apply to and is ignored.
func (s *Sheet) Add(styles ...style.Style) *Sheet {
	for _, st := range styles {
		switch x := st.(type) {
		case *style.Block:
			s.addBlock(x)
		case style.Rule:
			tracer().Debugf("style sheet: ignoring bare rule %q, wrap it into a block", x)
		case nil:
		default:
			tracer().Infof("warning: style sheet: unknown style type %T", st)
		}
	}
	return s
}

func (s *Sheet) addBlock(b *style.Block) {
	if b == nil {
		return
	}
	key := b.SelectorKey()
	if key == "" {
		tracer().Debugf("style sheet: ignoring block without selectors")
		return
	}
	existing, ok := s.blocks[key]
	if !ok {
		s.blocks[key] = b.Clone()
		s.order = append(s.order, key)
		return
	}
	existing.AddRules(b.Rules()...)
	s.moveToEnd(key)
	tracer().Debugf("style sheet: merged block %q, now %d rules", key, existing.Len())
}

func (s *Sheet) moveToEnd(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append(s.order, key)
}

// AddCSS parses CSS text and adds all of its blocks, in source order.
func (s *Sheet) AddCSS(text string) error {
	c, err := douceuradapter.Parse(text)
	if err != nil {
		tracer().Errorf("style sheet: %v", err)
		return err
	}
	s.Add(c.Styles()...)
	return nil
}

// AppendRules adds the styles of another style sheet. For another Sheet,
// its base styles are not copied.
func (s *Sheet) AppendRules(other StyleSheet) *Sheet {
	if other == nil {
		return s
	}
	if sh, ok := other.(*Sheet); ok {
		for _, key := range sh.order {
			s.addBlock(sh.blocks[key])
		}
		return s
	}
	return s.Add(other.Styles()...)
}

// Styles returns copies of the base styles followed by copies of the
// blocks, in render order. Changing them does not change the sheet; use Add.
func (s *Sheet) Styles() []style.Style {
	styles := s.styles()
	for i, st := range styles {
		styles[i] = cloneStyle(st)
	}
	return styles
}

// styles returns the stored styles, for read-only use.
func (s *Sheet) styles() []style.Style {
	styles := make([]style.Style, 0, len(s.base)+len(s.order))
	styles = append(styles, s.base...)
	for _, key := range s.order {
		styles = append(styles, s.blocks[key])
	}
	return styles
}

func cloneStyle(st style.Style) style.Style {
	if b, ok := st.(*style.Block); ok {
		return b.Clone()
	}
	return st
}

// Blocks returns copies of the blocks added to the sheet (without base
// styles), in render order.
func (s *Sheet) Blocks() []*style.Block {
	blocks := make([]*style.Block, len(s.order))
	for i, key := range s.order {
		blocks[i] = s.blocks[key].Clone()
	}
	return blocks
}

// Block returns a copy of the block for a selector key, or nil.
func (s *Sheet) Block(key string) *style.Block {
	if b, ok := s.blocks[key]; ok {
		return b.Clone()
	}
	return nil
}

// Keys returns the selector keys of the sheet in render order.
func (s *Sheet) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// Len returns the number of blocks added to the sheet.
func (s *Sheet) Len() int {
	return len(s.order)
}

// Empty is a predicate: have any blocks been added to the sheet?
// Base styles do not count.
func (s *Sheet) Empty() bool {
	return len(s.order) == 0
}

// String renders the sheet.
func (s *Sheet) String() string {
	var b strings.Builder
	for _, st := range s.styles() {
		b.WriteString(st.String())
	}
	return b.String()
}

// StyleElement returns a <style> element containing the rendered sheet.
func (s *Sheet) StyleElement() *dom.Element {
	return dom.New("style").SetRawText("\n" + s.String())
}

// Embed appends the rendered sheet as a <style> element to the head of a
// page.
func (s *Sheet) Embed(p *dom.Page) *dom.Element {
	return p.EmbedStyles("\n" + s.String())
}
