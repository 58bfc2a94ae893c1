package style

import (
	"strings"
)

// Style is a unit a style sheet is composed of. It is either a *Block or
// a bare Rule.
type Style interface {
	String() string
	isStyle()
}

// Selector is the literal text of a CSS selector, e.g. "ul > li.active".
type Selector string

// S creates a selector, trimming surrounding white space.
func S(text string) Selector {
	return Selector(strings.TrimSpace(text))
}

func (s Selector) String() string {
	return string(s)
}

// Rule is a single style declaration.
type Rule struct {
	Key       string
	Value     Property
	Important bool
}

// R creates a rule from a key and a value. A value ending in "!important"
// yields an important rule.
func R(key string, value string) Rule {
	value = strings.TrimSpace(value)
	important := false
	if strings.HasSuffix(value, "!important") {
		important = true
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
	}
	return Rule{
		Key:       strings.TrimSpace(key),
		Value:     Property(value),
		Important: important,
	}
}

// ParseRule parses a declaration of the form "key: value" (with optional
// trailing semicolon and !important). It returns false if the declaration
// has no key.
func ParseRule(decl string) (Rule, bool) {
	decl = strings.TrimSuffix(strings.TrimSpace(decl), ";")
	k, v, found := strings.Cut(decl, ":")
	if !found || strings.TrimSpace(k) == "" {
		return Rule{}, false
	}
	return R(k, v), true
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Key)
	b.WriteString(": ")
	b.WriteString(string(r.Value))
	if r.Important {
		b.WriteString(" !important")
	}
	b.WriteByte(';')
	return b.String()
}

func (Rule) isStyle() {}

// Expand splits a shorthand rule into rules for its individual properties
// (see SplitCompoundProperty). Other rules are returned unchanged. A
// shorthand with an invalid value expands to nothing.
func (r Rule) Expand() []Rule {
	if !IsCompound(r.Key) {
		return []Rule{r}
	}
	kvs, err := SplitCompoundProperty(r.Key, r.Value)
	if err != nil {
		tracer().Infof("warning: %v", err)
		return nil
	}
	rules := make([]Rule, len(kvs))
	for i, kv := range kvs {
		rules[i] = Rule{Key: kv.Key, Value: kv.Value, Important: r.Important}
	}
	return rules
}

// Block is a group of rules applying to one or more selectors.
//
// A block is identified by its selector key (see SelectorKey), which
// style sheets use for merging blocks.
type Block struct {
	selectors []Selector
	rules     []Rule
}

// NewBlock creates an empty block for a list of selectors. An argument may
// itself be a comma separated selector list, e.g. "h1, h2"; it is split into
// its selectors. Empty selectors are dropped.
func NewBlock(selectors ...string) *Block {
	b := &Block{}
	for _, list := range selectors {
		for _, s := range splitSelectorList(list) {
			if sel := S(s); sel != "" {
				b.selectors = append(b.selectors, sel)
			}
		}
	}
	return b
}

// splitSelectorList splits at commas which are not enclosed in parentheses,
// brackets or quotes, as in "a:is(b, c), d[title='x,y']".
func splitSelectorList(list string) []string {
	var parts []string
	depth, start := 0, 0
	var quote rune
	for i, r := range list {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			parts = append(parts, list[start:i])
			start = i + 1
		}
	}
	return append(parts, list[start:])
}

func (*Block) isStyle() {}

// Add appends a rule with key and value to the block. See R.
func (b *Block) Add(key string, value string) *Block {
	return b.AddRules(R(key, value))
}

// AddRules appends rules to the block, keeping their order. Rules without
// a key are skipped.
func (b *Block) AddRules(rules ...Rule) *Block {
	for _, r := range rules {
		if r.Key == "" {
			tracer().Debugf("block %q: skipping rule without key", b.SelectorKey())
			continue
		}
		b.rules = append(b.rules, r)
	}
	return b
}

// Selectors returns the selectors of the block.
func (b *Block) Selectors() []Selector {
	sels := make([]Selector, len(b.selectors))
	copy(sels, b.selectors)
	return sels
}

// Rules returns the rules of the block in order of addition.
func (b *Block) Rules() []Rule {
	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)
	return rules
}

// Len returns the number of rules in the block.
func (b *Block) Len() int {
	return len(b.rules)
}

// SelectorKey returns the identity of the block: its selector texts joined
// by ",".
func (b *Block) SelectorKey() string {
	return joinSelectors(b.selectors, ",")
}

func joinSelectors(sels []Selector, sep string) string {
	texts := make([]string, len(sels))
	for i, s := range sels {
		texts[i] = string(s)
	}
	return strings.Join(texts, sep)
}

// Clone returns a copy of the block which does not share rules with b.
func (b *Block) Clone() *Block {
	return &Block{
		selectors: b.Selectors(),
		rules:     b.Rules(),
	}
}

// String renders the block, e.g.
//
//     p, li {
//       margin: 0;
//     }
//
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString(joinSelectors(b.selectors, ", "))
	sb.WriteString(" {\n")
	for _, r := range b.rules {
		sb.WriteString("  ")
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Computed returns the effective property values of the block. Rules are
// applied in order, later rules overwriting earlier ones unless the earlier
// one is important. Shorthand properties are expanded to their individual
// properties (see SplitCompoundProperty).
func (b *Block) Computed() *PropertyMap {
	pmap := NewPropertyMap()
	important := make(map[string]bool)
	set := func(key string, value Property, imp bool) {
		if important[key] && !imp {
			return
		}
		important[key] = important[key] || imp
		pmap.Add(key, value)
	}
	for _, r := range b.rules {
		for _, x := range r.Expand() {
			set(x.Key, x.Value, x.Important)
		}
	}
	return pmap
}

// Property returns the effective value of a property within the block.
// See Computed.
func (b *Block) Property(key string) (Property, bool) {
	return b.Computed().Property(key)
}
