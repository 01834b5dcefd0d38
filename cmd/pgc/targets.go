package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/pgc/compiler/gen"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the supported languages and drivers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, t := range gen.Targets() {
			line := t.String()
			if len(t.Options) > 0 {
				line += " (requires: " + strings.Join(t.Options, ", ") + ")"
			}
			fmt.Fprintln(w, line)
		}
	},
}
