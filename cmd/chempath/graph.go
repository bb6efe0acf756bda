package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/chempath/internal/presentation/graph"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <group> <carbons>",
		Short: "Export the reaction neighbourhood of a compound",
		Long: `Explores the compounds reachable from the given one, breadth-first, and
outputs a Mermaid diagram (graph LR) of them and the reactions between them.

With --to, the shortest path to that compound is highlighted.`,
		Example: `  chempath graph alcohol 1
  chempath graph alkane 2 --limit 15 --to "alkyl bromide" --to-carbons 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Search.ExploreLimit
			}
			format, _ := cmd.Flags().GetString("format")
			toGroup, _ := cmd.Flags().GetString("to")
			toCarbons, _ := cmd.Flags().GetInt("to-carbons")

			carbons, err := domain.ParseCarbons(domain.SideStart, args[1])
			if err != nil {
				return err
			}
			start, err := domain.ResolveCompound(domain.SideStart, args[0], carbons)
			if err != nil {
				return err
			}

			planner := a.planner(nil)
			g := planner.Explore(start, limit)

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(g)
			case "mermaid":
			default:
				return fmt.Errorf("unknown format %q (want mermaid or json)", format)
			}

			var overlay *graph.GraphOverlay
			if toGroup != "" {
				target, err := domain.ResolveCompound(domain.SideTarget, toGroup, toCarbons)
				if err != nil {
					return err
				}
				res, err := planner.FindPath(cmd.Context(), start, target)
				if err != nil {
					return err
				}
				overlay = &graph.GraphOverlay{Target: target.Key()}
				if res.Found {
					overlay.PathNodes = res.Path.Formulas()
				} else {
					a.logger.Warn("no path to highlight", "target", target.Key())
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(g, overlay))
			return nil
		},
	}
	cmd.Flags().Int("limit", 0, "Maximum number of compounds to include (default from config)")
	cmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid, json")
	cmd.Flags().String("to", "", "Highlight the shortest path to this group")
	cmd.Flags().Int("to-carbons", 1, "Carbon count of the --to compound")
	return cmd
}
