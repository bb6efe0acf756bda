package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/chempath"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of chempath",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chempath version %s\n", strings.TrimSpace(chempath.Version))
		},
	}
}
