package main

import (
	"fmt"

	"github.com/npillmayer/markup/dom"
	"github.com/spf13/cobra"
)

func tagsCmd() *cobra.Command {
	var void bool
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags known to the element registry",
		Run: func(cmd *cobra.Command, args []string) {
			reg := dom.StandardRegistry(nil)
			for _, tag := range reg.Tags() {
				if void && dom.OmissionFor(tag) != dom.EndMustBeOmitted {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
		},
	}
	cmd.Flags().BoolVar(&void, "void", false, "list void elements only")
	return cmd
}
