package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/domdbg"
	"github.com/npillmayer/markup/internal/document"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

type renderOptions struct {
	cssOnly bool
	noReset bool
	void    bool
	tree    bool
	dot     string
	svg     string
}

func renderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a document description",
		Long: `Render loads a YAML document description, builds the page and its
style sheet and writes the markup to standard output.

Elements which fail to build are rendered as placeholders. Build errors
are reported on standard error and yield a non-zero exit status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}
	cmd.Flags().Int("indent", len(dom.DefaultIndent), "number of spaces per indentation level")
	cmd.Flags().String("indent-string", "", "indentation string, takes precedence over --indent")
	cmd.Flags().Int("base-level", 0, "indentation level of the outermost element")
	cmd.Flags().BoolVar(&opts.cssOnly, "css-only", false, "output the style sheet only")
	cmd.Flags().BoolVar(&opts.noReset, "no-reset", false, "leave out the reset styles")
	cmd.Flags().BoolVar(&opts.void, "void", false, "refuse content for void elements and invalid attribute names")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "output a tree drawing instead of markup")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write a GraphViz diagram of the styled tree to `FILE`")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "draw the styled tree as SVG image to `FILE` (needs GraphViz)")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	doc, err := document.LoadFile(path)
	if err != nil {
		return err
	}
	bopts := document.Options{NoReset: opts.noReset}
	if opts.void {
		bopts.Registry = dom.StandardRegistry(dom.VoidPolicy)
	}
	out, buildErr := doc.Build(bopts)
	w := cmd.OutOrStdout()
	switch {
	case opts.cssOnly:
		_, err = fmt.Fprint(w, out.Sheet.String())
	case opts.tree:
		_, err = fmt.Fprint(w, domdbg.Print(out.Page.Root()))
	default:
		err = dom.RendererFromConfig(flagConfig(cmd.Flags())).RenderTo(w, out.Page.Root())
	}
	if err != nil {
		return err
	}
	if opts.dot != "" {
		if err = writeDot(opts.dot, out); err != nil {
			return err
		}
	}
	if opts.svg != "" {
		if err = domdbg.WriteSVG(out.Page.Root(), styles(out), opts.svg); err != nil {
			return err
		}
		tracer().Infof("wrote image to %s", opts.svg)
	}
	if buildErr != nil {
		errs := multierr.Errors(buildErr)
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, e)
		}
		return fmt.Errorf("%s: %d build error(s)", path, len(errs))
	}
	return nil
}

// styles applies the sheet of a document to its page.
func styles(out *document.Output) domdbg.Styler {
	smap, err := out.Sheet.Apply(out.Page.Root())
	if err != nil {
		tracer().Infof("warning: %v", err)
	}
	return smap
}

func writeDot(path string, out *document.Output) error {
	smap := styles(out)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = domdbg.ToGraphViz(out.Page.Root(), f, smap); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("wrote diagram to %s", path)
	return f.Close()
}

// renderFlags maps renderer configuration keys to command line flags.
var renderFlags = map[string]string{
	"markup.indent":       "indent-string",
	"markup.indent-width": "indent",
	"markup.baselevel":    "base-level",
}

// flagConfig collects the renderer flags given on the command line.
func flagConfig(flags *pflag.FlagSet) schuko.Configuration {
	conf := testconfig.Conf{}
	for key, name := range renderFlags {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		v := f.Value.String()
		if key != "markup.indent" {
			v = strings.TrimSpace(v)
		}
		conf[key] = v
	}
	return conf
}
