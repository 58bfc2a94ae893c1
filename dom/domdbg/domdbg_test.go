package domdbg

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *dom.Element {
	div := dom.New("div").SetID("main").AddClass("box")
	label := dom.New("label")
	label.Append(dom.New("input"))
	div.Append(label, dom.New("p").SetText("Hello"))
	return div
}

func TestPrint(t *testing.T) {
	out := Print(sample())
	t.Logf("\n%s", out)
	expected := "div#main.box\n├── label\n│   └── input\n└── p \"Hello\"\n"
	assert.Equal(t, expected, out)
	assert.Equal(t, "<nil>\n", Print(nil))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "div#main.box", Label(sample()))
	assert.Equal(t, "#comment", Label(dom.NewComment("x")))
	long := dom.New("p").SetText(strings.Repeat("x", 30))
	assert.Contains(t, Print(long), "…")
}

type blockStyler map[*dom.Element]*style.Block

func (bs blockStyler) Styles(e *dom.Element) *style.PropertyMap {
	if b, ok := bs[e]; ok {
		return b.Computed()
	}
	return nil
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	root := sample()
	root.Append(dom.NewComment("a note"))
	styler := blockStyler{
		root: style.NewBlock("div").Add("margin", "1px").Add("padding", "2px"),
	}
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(root, &buf, styler))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `node00001	[ label="div#main.box"`)
	assert.Contains(t, out, "node00001 -> node00002")
	assert.Contains(t, out, "margin-top")
	assert.Contains(t, out, "padding-left")
	assert.Contains(t, out, "a␣note")
	//
	buf.Reset()
	require.NoError(t, ToGraphViz(root, &buf, nil, style.PGMargins))
	assert.NotContains(t, buf.String(), "margin-top")
}

func TestWriteSVG(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz dot not installed")
	}
	svg := filepath.Join(t.TempDir(), "dom.svg")
	require.NoError(t, WriteSVG(sample(), nil, svg))
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	//
	img := Dotty(sample(), nil, t)
	defer os.Remove(img)
	info, err := os.Stat(img)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
