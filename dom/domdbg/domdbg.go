/*
Package domdbg implements helpers to debug element trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/style"
	tp "github.com/xlab/treeprint"
)

// Styler provides the style properties of elements, e.g., a
// cssom.StyleMap.
type Styler interface {
	Styles(*dom.Element) *style.PropertyMap
}

// Label returns a short description of an element, e.g.
//
//     div#main.box.wide
//
func Label(e *dom.Element) string {
	if e == nil {
		return "<nil>"
	}
	if e.IsComment() {
		return "#comment"
	}
	var b strings.Builder
	b.WriteString(e.Tag())
	if id := e.ID(); id != "" {
		b.WriteString("#" + id)
	}
	for _, c := range e.Classes() {
		b.WriteString("." + c)
	}
	return b.String()
}

// Print returns a tree drawing of the element tree below root, one line
// per element. Text content is shown abbreviated.
func Print(root *dom.Element) string {
	if root == nil {
		return "<nil>\n"
	}
	p := tp.NewWithRoot(nodeValue(root))
	printChildren(p, root)
	return p.String()
}

func nodeValue(e *dom.Element) string {
	if t := e.Text(); t != "" {
		return fmt.Sprintf("%s %q", Label(e), shorten(t, 20))
	}
	return Label(e)
}

func printChildren(p tp.Tree, e *dom.Element) {
	for _, ch := range e.Children() {
		if ch.ChildCount() == 0 {
			p.AddNode(nodeValue(ch))
			continue
		}
		branch := p.AddBranch(nodeValue(ch))
		printChildren(branch, ch)
	}
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root element, a
// Writer, and optionally a Styler and a list of style parameter groups.
// If a Styler is given, the diagram will include all styles belonging to
// one of the parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(root *dom.Element, w io.Writer, styler Styler, styleGroups ...string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if len(styleGroups) == 0 {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, names: make(map[*dom.Element]string), styler: styler, params: &gparams}
	if root != nil {
		if err = g.nodes(root); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given an element and a testing.T, it will
// create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format. Dotty returns the name of the image file.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *dom.Element, styler Styler, t *testing.T) string {
	tmpfile, err := os.CreateTemp(".", "dom.*.svg")
	if err != nil {
		t.Error(err)
		return ""
	}
	tmpfile.Close()
	t.Logf("writing DOM tree image to %s\n", tmpfile.Name())
	if err := WriteSVG(root, styler, tmpfile.Name()); err != nil {
		t.Error(err)
	}
	return tmpfile.Name()
}

// WriteSVG draws the tree under root with GraphViz and writes the image
// in SVG format to a file. It needs the `dot` command of GraphViz.
func WriteSVG(root *dom.Element, styler Styler, path string) error {
	tmpfile, err := os.CreateTemp("", "dom.*.dot")
	if err != nil {
		return err
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	if err := ToGraphViz(root, tmpfile, styler); err != nil {
		return err
	}
	if err := tmpfile.Close(); err != nil {
		return err
	}
	cmd := exec.Command("dot", "-Tsvg", "-o"+path, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running dot: %w", err)
	}
	return nil
}

type graph struct {
	w      io.Writer
	names  map[*dom.Element]string
	styler Styler
	params *graphParamsType
}

type node struct {
	E    *dom.Element
	Name string
}

// Label is used by the node template.
func (n node) Label() string {
	return Label(n.E)
}

func (g *graph) name(e *dom.Element) string {
	name := g.names[e]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.names)+1)
		g.names[e] = name
	}
	return name
}

func (g *graph) nodes(e *dom.Element) error {
	if err := g.domNode(e); err != nil {
		return err
	}
	for _, ch := range e.Children() {
		if err := g.nodes(ch); err != nil {
			return err
		}
		if err := g.params.EdgeTmpl.Execute(g.w, edge{node{e, g.name(e)}, node{ch, g.name(ch)}}); err != nil {
			return err
		}
	}
	return nil
}

func (g *graph) domNode(e *dom.Element) error {
	if err := g.params.NodeTmpl.Execute(g.w, node{e, g.name(e)}); err != nil {
		return err
	}
	if g.styler == nil {
		return nil
	}
	return g.domStyles(e)
}

func (g *graph) domStyles(e *dom.Element) error {
	pmap := g.styler.Styles(e)
	var prev *style.PropertyGroup
	for _, s := range g.params.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		if err := g.params.StylegroupTmpl.Execute(g.w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = g.params.PgedgeTmpl.Execute(g.w, pgedge{g.name(e), pg})
		} else {
			err = g.params.PgpgTmpl.Execute(g.w, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func shortText(n node) string {
	s := "\"\\\"" + shorten(n.E.Text(), 10) + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .E.IsComment }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
