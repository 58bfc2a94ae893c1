package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/markup/dom/attr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestPageRender(t *testing.T) {
	p := NewPage("Demo")
	expected := "<html>\n  <head>\n    <title>Demo</title>\n  </head>\n  <body></body>\n</html>\n"
	assert.Equal(t, expected, p.Render())
	assert.NoError(t, p.Err())
}

func TestPageRootIsSealed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	p := NewPage("Sealed")
	before := p.Render()
	err := p.Root().Append(New("div"))
	assert.True(t, errors.Is(err, ErrSealed), "expected ErrSealed, got %v", err)
	err = p.Root().Insert(New("div"))
	assert.True(t, errors.Is(err, ErrSealed), "expected ErrSealed, got %v", err)
	assert.Equal(t, before, p.Render())
	assert.Equal(t, 2, p.Root().ChildCount())
	require.NoError(t, p.Body().Append(New("div")))
}

func TestPageStructureIsFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	p := NewPage("Fixed")
	p.EmbedStyles("p { margin: 0 }")
	before := p.Render()
	err := p.Head().Detach()
	assert.True(t, errors.Is(err, ErrSealed), "expected ErrSealed, got %v", err)
	other := New("div")
	err = other.Append(p.Head())
	assert.True(t, errors.Is(err, ErrSealed), "expected ErrSealed, got %v", err)
	err = other.Insert(p.Body())
	assert.True(t, errors.Is(err, ErrSealed), "expected ErrSealed, got %v", err)
	assert.Equal(t, 0, other.ChildCount())
	assert.Equal(t, 2, p.Root().ChildCount())
	assert.Same(t, p.Root(), p.Head().Parent())
	assert.Equal(t, before, p.Render())
	// grandchildren are not affected by the seal
	title := p.Head().Child(0)
	require.NoError(t, title.Detach())
	assert.Equal(t, 1, p.Head().ChildCount())
}

func TestPageAppendsToOtherTree(t *testing.T) {
	p := NewPage("Nested")
	frame := New("div")
	require.NoError(t, frame.Append(p))
	assert.Same(t, frame, p.Root().Parent())
}

func TestPageAddAndDeferredErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	p := NewPage("Errors")
	ok := p.Add(BuildFunc(func() (*Element, error) {
		return New("p").SetText("fine"), nil
	}))
	assert.Equal(t, "p", ok.Tag())
	boom := errors.New("boom")
	failed := p.Add(BuildFunc(func() (*Element, error) {
		return nil, boom
	}))
	assert.True(t, failed.HasClass(PlaceholderClass))
	panicked := p.Add(BuildFunc(func() (*Element, error) {
		panic("no luck")
	}))
	assert.True(t, panicked.HasClass(PlaceholderClass))
	assert.Equal(t, 3, p.Body().ChildCount(), "rendering proceeds with placeholders")
	err := p.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Len(t, multierr.Errors(err), 2)
	assert.Len(t, p.Errors(), 2)
	assert.Contains(t, p.Render(), "<div class='build-error'></div>")
}

func TestRealize(t *testing.T) {
	e, err := Realize(nil)
	assert.True(t, errors.Is(err, ErrNoConstructor))
	assert.True(t, e.HasClass(PlaceholderClass))
	e, err = Realize(BuildFunc(nil))
	assert.Error(t, err)
	assert.NotNil(t, e)
	e, err = Realize(BuildFunc(func() (*Element, error) { return nil, nil }))
	assert.True(t, errors.Is(err, ErrNoConstructor))
	assert.True(t, e.HasClass(PlaceholderClass))
}

func TestPageEmbedStyles(t *testing.T) {
	p := NewPage("Styled")
	p.EmbedStyles("p > a {\n  color: red;\n}\n")
	out := p.Render()
	assert.Contains(t, out, "<style>p > a {\n  color: red;\n}\n</style>")
}

func TestRegistryConstruct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	r := StandardRegistry(nil)
	assert.True(t, r.Has("DIV"))
	assert.False(t, r.Has("blink"))
	e, ok := r.Construct("input", Args{
		ID:         "city",
		Classes:    []string{"wide"},
		Attributes: []*attr.Attribute{attr.New("type", "text")},
	}).Get()
	require.True(t, ok)
	assert.Equal(t, "<input id='city' class='wide' type='text' />\n", e.Render())
	_, ok = r.Construct("blink", Args{}).Get()
	assert.False(t, ok, "unknown tag must construct Nothing")
}

func TestRegistryFactoryFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	r := NewRegistry(VoidPolicy)
	r.Register("br", GenericFactory)
	_, ok := r.Construct("br", Args{Children: []Owner{New("span")}}).Get()
	assert.False(t, ok, "void policy must refuse children of <br>")
	_, err := r.Builder("br", Args{Children: []Owner{New("span")}}).Build().Get()
	assert.True(t, errors.Is(err, ErrNoConstructor))
	assert.True(t, errors.Is(err, ErrInvalidContent), "cause must survive: %v", err)
	var ferr *FactoryError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "br", ferr.Tag)
	_, err = r.Builder("br", Args{Attributes: []*attr.Attribute{attr.New("a b", "x")}}).Build().Get()
	assert.True(t, errors.Is(err, ErrNoConstructor))
	assert.True(t, errors.Is(err, ErrInvalidAttribute), "cause must survive: %v", err)
	assert.False(t, errors.Is(err, ErrInvalidContent))
	_, err = r.Builder("nope", Args{}).Build().Get()
	assert.True(t, errors.Is(err, ErrNoConstructor))
	r.Register("br", nil)
	assert.Empty(t, r.Tags())
}

func TestRegistryCustomFactory(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("card", func(tag string, p ContentPolicy, args Args) (*Element, error) {
		e := New("div").SetPolicy(p).AddClass("card")
		title := New("h3").SetText(args.Text)
		args.Text = ""
		if err := Populate(e, args); err != nil {
			return nil, err
		}
		return e, e.Insert(title)
	})
	assert.Equal(t, []string{"card"}, r.Tags())
	e := r.Construct("card", Args{Text: "Title", Children: []Owner{New("p")}}).WithDefault(nil)
	require.NotNil(t, e)
	assert.Equal(t, "<div class='card'>\n  <h3>Title</h3>\n  <p></p>\n</div>\n", e.Render())
}
