package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/chempath/internal/config"
	"github.com/aretw0/chempath/internal/presentation/tui"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitError       = 1 // invalid input or any other failure
	exitSearchLimit = 2
)

// Execute adds all child commands to the root command and runs it.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, domain.ErrSearchLimit) {
		return exitSearchLimit
	}
	return exitError
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "chempath",
		Short: "chempath finds the shortest reaction path between organic compounds",
		Long: `chempath models textbook functional-group transformations and finds the
fewest reactions that turn a start compound into a target compound.

A compound is a functional group plus a carbon count, for example
"alkyl_bromide 2" (C2H5Br) or "carboxylic_acid 1" (H-COOH).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if isTerminal(cmd.OutOrStdout()) {
				tui.PrintBanner(cmd.OutOrStdout())
			}
			cmd.Help()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file (missing file = defaults)")
	rootCmd.PersistentFlags().String("log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Override log format (text, json)")

	rootCmd.AddCommand(
		newFindCmd(a),
		newRulesCmd(),
		newGroupsCmd(),
		newGraphCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
