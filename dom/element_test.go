package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/markup/dom/attr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementParentOfRootIsSelf(t *testing.T) {
	e := New("div")
	if e.Parent() != e {
		t.Errorf("expected root element to be its own parent")
	}
	if !e.IsRoot() || e.Level() != 0 {
		t.Errorf("expected fresh element to be a root at level 0, is at %d", e.Level())
	}
}

func TestElementOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	a, b, x := New("div"), New("div"), New("span")
	require.NoError(t, a.Append(x))
	assert.Same(t, a, x.Parent())
	require.NoError(t, b.Append(x))
	assert.Same(t, b, x.Parent())
	assert.Equal(t, 0, a.ChildCount(), "x must have been removed from a")
	assert.Equal(t, 1, b.ChildCount())
	require.NoError(t, b.Append(x)) // re-append to current parent
	assert.Equal(t, 1, b.ChildCount(), "x must appear exactly once")
}

func TestElementInsertGoesFirst(t *testing.T) {
	ul := New("ul")
	one, two, head := New("li").SetID("one"), New("li").SetID("two"), New("h2")
	require.NoError(t, ul.Append(one, two))
	require.NoError(t, ul.Insert(head))
	assert.Equal(t, []*Element{head, one, two}, ul.Children())
	require.NoError(t, ul.Insert(two))
	assert.Equal(t, []*Element{two, head, one}, ul.Children())
}

func TestElementCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	a, b := New("div"), New("div")
	require.NoError(t, a.Append(b))
	err := b.Append(a)
	assert.True(t, errors.Is(err, ErrCycle), "expected ErrCycle, got %v", err)
	err = a.Append(a)
	assert.True(t, errors.Is(err, ErrCycle), "expected ErrCycle, got %v", err)
	assert.True(t, a.IsRoot())
	assert.Same(t, a, b.Parent())
}

func TestElementDetach(t *testing.T) {
	a, b := New("div"), New("p")
	a.Append(b)
	assert.NoError(t, b.Detach())
	assert.True(t, b.IsRoot())
	assert.NoError(t, b.Detach(), "detaching a root is a no-op")
	assert.Equal(t, 0, a.ChildCount())
}

func TestElementRootAndLevel(t *testing.T) {
	div, label, input := New("div"), New("label"), New("input")
	label.Append(input)
	div.Append(label)
	assert.Same(t, div, input.Root())
	assert.Equal(t, 2, input.Level())
	assert.Equal(t, 0, div.IndexOf(label))
	assert.Equal(t, -1, label.IndexOf(div))
}

type widget struct {
	frame *Element
}

func (w widget) Owner() *Element {
	return w.frame
}

func TestElementAppendUnwrapsOwner(t *testing.T) {
	w := widget{frame: New("div").AddClass("widget")}
	body := New("body")
	require.NoError(t, body.Append(w))
	assert.Same(t, w.frame, body.Child(0))
	assert.Same(t, body, w.frame.Parent())
}

func TestElementAttributeIdempotence(t *testing.T) {
	e := New("input")
	require.NoError(t, e.SetAttribute("type", "text"))
	before := e.Render()
	require.NoError(t, e.SetAttribute("type", "text"))
	assert.Len(t, e.Attributes(), 1)
	assert.Equal(t, before, e.Render())
}

func TestElementAttributeUpsertKeepsPosition(t *testing.T) {
	e := New("input")
	e.SetAttribute("type", "text")
	e.SetAttribute("name", "city")
	e.SetAttribute("type", "password")
	attrs := e.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "type='password'", attrs[0].String())
	assert.Equal(t, "name='city'", attrs[1].String())
}

func TestElementSkipsNonRenderingAttributes(t *testing.T) {
	e := New("input")
	require.NoError(t, e.SetAttribute("disabled", false))
	require.NoError(t, e.SetAttribute("weird", struct{}{}))
	assert.False(t, e.HasAttributes())
	assert.Nil(t, e.Attribute("disabled"))
}

func TestElementStoresAttributeCopy(t *testing.T) {
	a := attr.New("tabindex", 1)
	e := New("div")
	require.NoError(t, e.AddAttribute(a))
	a.SetValue(5)
	assert.Equal(t, "tabindex='1'", e.Attribute("tabindex").String())
}

func TestElementClassAccumulation(t *testing.T) {
	e := New("div")
	e.AddClass("a")
	e.AddClass("b")
	assert.Len(t, e.Attributes(), 1)
	assert.Equal(t, "class='a b'", e.Attribute("class").String())
	e.AddClass("a")
	assert.Equal(t, "class='a b'", e.Attribute("class").String(), "no duplicate class names")
	e.AddClass("c  d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, e.Classes())
	assert.True(t, e.HasClass("c"))
	assert.False(t, e.HasClass("x"))
}

func TestElementClassReplacesNonString(t *testing.T) {
	e := New("div")
	e.SetAttribute("class", true)
	assert.Empty(t, e.Classes())
	e.AddClass("a b")
	assert.Equal(t, "class='a b'", e.Attribute("class").String())
	assert.Equal(t, []string{"a", "b"}, e.Classes())
	e.SetAttribute("class", 7)
	assert.False(t, e.HasClass("7"))
	e.AddClass("c")
	assert.Equal(t, "<div class='c'></div>\n", e.Render())
}

func TestElementID(t *testing.T) {
	e := New("div").SetID("main")
	assert.Equal(t, "main", e.ID())
	assert.Equal(t, "id='main'", e.Attribute("id").String())
	e.SetID("other")
	assert.Equal(t, "id='other'", e.Attribute("id").String())
	assert.Len(t, e.Attributes(), 1)
	e.SetID("")
	assert.Equal(t, "", e.ID())
	assert.NotNil(t, e.Attribute("id"), "SetID(\"\") leaves attributes alone")
	e.SetAttribute("id", "x")
	assert.Equal(t, "x", e.ID())
	e.RemoveAttribute("id")
	assert.Equal(t, "", e.ID())
	assert.False(t, e.HasAttributes())
}

func TestCommentIgnoresStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	c := NewComment("note")
	c.AddClass("x")
	c.SetID("y")
	assert.NoError(t, c.SetAttribute("a", "b"))
	assert.NoError(t, c.Append(New("p")))
	assert.False(t, c.HasAttributes())
	assert.Equal(t, 0, c.ChildCount())
	assert.True(t, c.IsComment())
	assert.Equal(t, "<!--note-->", c.Render())
}

func TestElementWalk(t *testing.T) {
	div, p, span, em := New("div"), New("p"), New("span"), New("em")
	p.Append(em)
	div.Append(p, span)
	var tags []string
	div.Walk(func(e *Element) bool {
		tags = append(tags, e.Tag())
		return e.Tag() != "p"
	})
	assert.Equal(t, []string{"div", "p", "span"}, tags)
}

func TestVoidPolicy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	input := New("input").SetPolicy(VoidPolicy)
	err := input.Append(New("span"))
	assert.True(t, errors.Is(err, ErrInvalidContent), "expected ErrInvalidContent, got %v", err)
	assert.NoError(t, input.Append(NewComment("ok")))
	err = input.SetAttribute("bad name", "x")
	assert.True(t, errors.Is(err, ErrInvalidAttribute), "expected ErrInvalidAttribute, got %v", err)
	assert.NoError(t, input.SetAttribute("data-x", "x"))
	div := New("div").SetPolicy(VoidPolicy)
	assert.NoError(t, div.Append(New("span")))
}

func TestTagOmission(t *testing.T) {
	assert.Equal(t, EndMustBeOmitted, OmissionFor("input"))
	assert.Equal(t, EndMustBeOmitted, OmissionFor("BR"))
	assert.Equal(t, EndOptional, OmissionFor("li"))
	assert.Equal(t, NoOmission, OmissionFor("div"))
	assert.Equal(t, NoOmission, OmissionFor("my-widget"))
	assert.Equal(t, EndMustBeOmitted, New("img").Omission())
}
