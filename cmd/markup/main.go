/*
Command markup renders YAML document descriptions to HTML markup.

    markup render page.yaml --indent 4
    markup render page.yaml --css-only
    markup tags

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

// tracer traces with key 'markup.cli'.
func tracer() tracing.Trace {
	return tracing.Select("markup.cli")
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "markup",
		Short: "Render document descriptions to HTML markup",
		Long: `Markup builds element trees and style sheets from YAML document
descriptions and renders them as indented HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(level)
		},
	}
	cmd.PersistentFlags().StringVar(&level, "trace", "error", "trace level (error, info, debug)")
	cmd.AddCommand(
		renderCmd(),
		tagsCmd(),
		versionCmd(),
	)
	return cmd
}

// setupTracing routes all tracers to the Go standard logger (on stderr).
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Debugf("trace level is %s", tracer().GetTraceLevel())
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "markup %s\n", version)
		},
	}
}
