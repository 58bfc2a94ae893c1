package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleString(t *testing.T) {
	assert.Equal(t, "margin: 0;", R("margin", "0").String())
	assert.Equal(t, "color: red !important;", R("color", "red !important").String())
	r, ok := ParseRule("  font-size : 12pt ; ")
	require.True(t, ok)
	assert.Equal(t, Rule{Key: "font-size", Value: "12pt"}, r)
	_, ok = ParseRule("no colon")
	assert.False(t, ok)
	_, ok = ParseRule(": 1px")
	assert.False(t, ok)
}

func TestBlockRender(t *testing.T) {
	b := NewBlock("h1", " h2 ", "")
	b.Add("margin", "0").Add("color", "navy!important")
	assert.Equal(t, "h1,h2", b.SelectorKey())
	assert.Equal(t, "h1, h2 {\n  margin: 0;\n  color: navy !important;\n}\n", b.String())
	assert.Len(t, b.Selectors(), 2)
	assert.Equal(t, 2, b.Len())
}

func TestBlockSplitsSelectorLists(t *testing.T) {
	assert.Equal(t, ".x,.y", NewBlock(".x, .y").SelectorKey())
	assert.Equal(t, ".x,.y,p", NewBlock(".x ,.y", "p").SelectorKey())
	assert.Equal(t, "a:is(b, c),d[title='x,y']",
		NewBlock("a:is(b, c), d[title='x,y']").SelectorKey())
	assert.Equal(t, "p", NewBlock("p,,").SelectorKey())
}

func TestBlockSkipsRulesWithoutKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.style")
	defer teardown()
	//
	b := NewBlock("p").AddRules(Rule{Value: "x"}, R("color", "red"))
	assert.Equal(t, []Rule{{Key: "color", Value: "red"}}, b.Rules())
}

func TestBlockClone(t *testing.T) {
	b := NewBlock("p").Add("color", "red")
	c := b.Clone()
	c.Add("margin", "0")
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, b.SelectorKey(), c.SelectorKey())
}

func TestBlockComputed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.style")
	defer teardown()
	//
	b := NewBlock(".box").
		Add("margin", "1px 2px").
		Add("margin-left", "5px").
		Add("color", "red !important").
		Add("color", "blue").
		Add("padding", "1 2 3 4 5") // invalid, ignored
	pmap := b.Computed()
	t.Logf("%v", pmap)
	for key, val := range map[string]Property{
		"margin-top":    "1px",
		"margin-right":  "2px",
		"margin-bottom": "1px",
		"margin-left":   "5px",
		"color":         "red",
	} {
		v, ok := pmap.Property(key)
		assert.True(t, ok, key)
		assert.Equal(t, val, v, key)
	}
	_, ok := pmap.Property("padding-top")
	assert.False(t, ok)
	assert.Equal(t, []string{PGColor, PGMargins}, pmap.GroupNames())
	v, _ := b.Property("margin-left")
	assert.Equal(t, Property("5px"), v)
}

func TestSplitCompoundProperty(t *testing.T) {
	kvs, err := SplitCompoundProperty("padding", "1px 2px 3px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"padding-top", "1px"}, {"padding-right", "2px"},
		{"padding-bottom", "3px"}, {"padding-left", "2px"},
	}, kvs)
	kvs, err = SplitCompoundProperty("border-radius", "4px")
	require.NoError(t, err)
	assert.Equal(t, "border-top-left-radius", kvs[0].Key)
	assert.Equal(t, "border-bottom-left-radius", kvs[3].Key)
	kvs, err = SplitCompoundProperty("border-color", "red green blue black")
	require.NoError(t, err)
	assert.Equal(t, KeyValue{"border-left-color", "black"}, kvs[3])
	_, err = SplitCompoundProperty("font", "12pt serif")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("margin", "")
	assert.Error(t, err)
}

func TestPropertyGroups(t *testing.T) {
	assert.Equal(t, PGMargins, GroupNameFromPropertyKey("margin-top"))
	assert.Equal(t, PGX, GroupNameFromPropertyKey("funny-margin"))
	pg := NewPropertyGroup(PGColor)
	pg.Set("color", "RED")
	pg.Add("color", "blue")
	v, ok := pg.Get("color")
	assert.True(t, ok)
	assert.Equal(t, Property("red"), v)
	assert.True(t, pg.IsSet("color"))
	pmap := NewPropertyMap().AddAllFromGroup(pg, false)
	pmap.Add("funny-margin", "big")
	assert.Equal(t, 2, pmap.Size())
	v, _ = pmap.Property("funny-margin")
	assert.Equal(t, Property("big"), v)
	var nilmap *PropertyMap
	assert.Equal(t, 0, nilmap.Size())
	_, ok = nilmap.Property("color")
	assert.False(t, ok)
}

func TestIsCascading(t *testing.T) {
	assert.True(t, IsCascading("color"))
	assert.True(t, IsCascading("font-family"))
	assert.False(t, IsCascading("margin-top"))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, Property("0"), DefaultProperty("div", "margin-top"))
	assert.Equal(t, Property("block"), DefaultProperty("div", "display"))
	assert.Equal(t, Property("inline"), DefaultProperty("SPAN", "display"))
	assert.Equal(t, Property("none"), DefaultProperty("head", "display"))
	assert.Equal(t, NullStyle, DefaultProperty("div", "color"))
}

func TestParseDisplay(t *testing.T) {
	d, err := ParseDisplay("inline-block")
	require.NoError(t, err)
	assert.Equal(t, InlineMode, d.Outer())
	assert.Equal(t, InnerBlockMode, d.Inner())
	assert.False(t, d.IsBlockLevel())
	d, _ = ParseDisplay("list-item")
	assert.True(t, d.IsBlockLevel())
	assert.Equal(t, "▣", d.Symbol())
	assert.Equal(t, "BlockMode ListItemMode", d.FullString())
	_, err = ParseDisplay("wobbly")
	assert.Error(t, err)
	none, _ := ParseDisplay("none")
	assert.Equal(t, "DisplayNone", none.String())
}
