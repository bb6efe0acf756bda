package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/chempath"
	"github.com/aretw0/chempath/internal/presentation/graph"
	"github.com/aretw0/chempath/internal/presentation/tui"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/spf13/cobra"
)

func newFindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <start-group> <start-carbons> <target-group> <target-carbons>",
		Short: "Find the shortest reaction path between two compounds",
		Long: `Runs a breadth-first search from the start compound and prints the
compounds and reactions along the shortest path, or "No path found!".

Group names are case-insensitive; spaces, '-' and '_' are ignored.`,
		Example: `  chempath find alkyl_bromide 2 alkane 2
  chempath find "carboxylate salt" 3 alkane 2 --format json`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			pretty, _ := cmd.Flags().GetBool("pretty")
			if cmd.Flags().Changed("max-visited") {
				a.cfg.Search.MaxVisited, _ = cmd.Flags().GetInt("max-visited")
			}

			q, err := parseQuery(args)
			if err != nil {
				return err
			}

			planner := a.planner(a.cache())
			res, err := planner.Plan(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, format, pretty)
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format: text, markdown, rich, json, mermaid (default: rich on a terminal, text otherwise)")
	cmd.Flags().Bool("pretty", false, "Render formula digits as subscripts")
	cmd.Flags().Int("max-visited", 0, "Abort after discovering this many compounds (0 = unbounded; default from config)")
	return cmd
}

// parseQuery validates the four positional arguments.
func parseQuery(args []string) (chempath.Query, error) {
	sc, err := domain.ParseCarbons(domain.SideStart, args[1])
	if err != nil {
		return chempath.Query{}, err
	}
	tc, err := domain.ParseCarbons(domain.SideTarget, args[3])
	if err != nil {
		return chempath.Query{}, err
	}
	return chempath.Query{
		StartGroup:    args[0],
		StartCarbons:  sc,
		TargetGroup:   args[2],
		TargetCarbons: tc,
	}, nil
}

func writeResult(w io.Writer, res *chempath.Result, format string, pretty bool) error {
	opts := tui.Options{Pretty: pretty}
	if format == "" {
		format = "text"
		if isTerminal(w) {
			format = "rich"
		}
	}

	switch format {
	case "text":
		_, err := io.WriteString(w, tui.FormatText(res.Outcome, opts))
		return err
	case "markdown":
		_, err := io.WriteString(w, tui.FormatMarkdown(res.Outcome, opts))
		return err
	case "rich":
		render, err := tui.NewRenderer(0)
		if err != nil {
			return err
		}
		out, err := render(tui.FormatMarkdown(res.Outcome, opts))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "mermaid":
		if !res.Found {
			_, err := fmt.Fprintln(w, tui.NoPathMessage)
			return err
		}
		overlay := &graph.GraphOverlay{PathNodes: res.Path.Formulas(), Target: res.Target.Key()}
		_, err := io.WriteString(w, graph.GenerateMermaid(graph.PathGraph(res.Path), overlay))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, markdown, rich, json or mermaid)", format)
	}
}
