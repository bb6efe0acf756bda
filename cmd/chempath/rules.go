package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/chempath/internal/presentation/tui"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/rules"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the reaction rules in application order",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return writeRules(cmd.OutOrStdout(), rules.Default(), format)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json, markdown")
	return cmd
}

func writeRules(w io.Writer, set rules.Set, format string) error {
	switch format {
	case "text":
		for i, info := range set.Infos() {
			line := fmt.Sprintf("%2d. %-26s %s -> %s (carbons: %s)", i+1, info.Name, info.From, info.To, info.Carbons)
			if info.Requirement != "" {
				line += ", requires " + info.Requirement
			}
			fmt.Fprintln(w, line)
		}
		return nil
	case "markdown":
		_, err := io.WriteString(w, tui.RulesMarkdown(set))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(set.Infos())
	default:
		return fmt.Errorf("unknown format %q (want text, json or markdown)", format)
	}
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List functional groups and their minimum carbon counts",
		Run: func(cmd *cobra.Command, args []string) {
			io.WriteString(cmd.OutOrStdout(), tui.GroupsText())
			names := make([]string, 0, len(domain.Groups()))
			for _, g := range domain.Groups() {
				names = append(names, strings.ToLower(strings.ReplaceAll(g.String(), " ", "_")))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nAccepted spellings include: %s\n", strings.Join(names, ", "))
		},
	}
}
