package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
title: Demo
styles:
  - selectors: ["p"]
    rules: ["color: blue"]
body:
  - tag: div
    children:
      - tag: p
        text: Hello
`

func writeFile(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRender(t *testing.T) {
	out, _, err := execute("render", writeFile(t, page))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<html>\n  <head>\n    <title>Demo</title>\n"))
	assert.Contains(t, out, "    <div>\n      <p>Hello</p>\n    </div>\n")
	assert.Contains(t, out, "<style>\nhtml, body, div")
	assert.Contains(t, out, "}\np {\n  color: blue;\n}\n</style>")
}

func TestRenderIndent(t *testing.T) {
	path := writeFile(t, page)
	out, _, err := execute("render", path, "--indent", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "        <title>Demo</title>\n")
	out, _, err = execute("render", path, "--indent-string", "\t", "--base-level", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\t<html>\n\t\t<head>\n"))
}

func TestRenderCSSOnly(t *testing.T) {
	path := writeFile(t, page)
	out, _, err := execute("render", path, "--css-only")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "html, body, div"), "reset styles come first")
	assert.True(t, strings.HasSuffix(out, "}\np {\n  color: blue;\n}\n"))
	out, _, err = execute("render", path, "--css-only", "--no-reset")
	require.NoError(t, err)
	assert.Equal(t, "p {\n  color: blue;\n}\n", out)
}

func TestRenderTree(t *testing.T) {
	out, _, err := execute("render", writeFile(t, page), "--tree")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "html\n├── head\n"))
	assert.Contains(t, out, "p \"Hello\"")
}

func TestRenderDot(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "page.dot")
	_, _, err := execute("render", writeFile(t, page), "--dot", dot)
	require.NoError(t, err)
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph g {"))
}

func TestRenderSVG(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz dot not installed")
	}
	svg := filepath.Join(t.TempDir(), "page.svg")
	_, _, err := execute("render", writeFile(t, page), "--svg", svg)
	require.NoError(t, err)
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRenderBuildErrors(t *testing.T) {
	broken := "title: Broken\nbody:\n  - tag: frobnicate\n  - tag: p\n    text: ok\n"
	out, errout, err := execute("render", writeFile(t, broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 build error(s)")
	assert.Contains(t, errout, "frobnicate")
	assert.Contains(t, out, "<div class='build-error'></div>")
	assert.Contains(t, out, "<p>ok</p>")
	//
	_, _, err = execute("render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, _, err = execute("render")
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	out, _, err := execute("tags", "--void")
	require.NoError(t, err)
	tags := strings.Fields(out)
	assert.Contains(t, tags, "br")
	assert.Contains(t, tags, "input")
	assert.NotContains(t, tags, "div")
	out, _, err = execute("tags")
	require.NoError(t, err)
	assert.Contains(t, strings.Fields(out), "div")
}

func TestFlagConfig(t *testing.T) {
	cmd := renderCmd()
	conf := flagConfig(cmd.Flags())
	assert.False(t, conf.IsSet("markup.indent-width"))
	require.NoError(t, cmd.Flags().Parse([]string{"--indent", "3", "--base-level", "2"}))
	conf = flagConfig(cmd.Flags())
	assert.Equal(t, 3, conf.GetInt("markup.indent-width"))
	assert.Equal(t, 2, conf.GetInt("markup.baselevel"))
	assert.False(t, conf.IsSet("markup.indent"))
}

func TestVersion(t *testing.T) {
	out, _, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "markup dev\n", out)
}
