package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/dijkstra"
)

func newDijkstraCmd(a *app) *cobra.Command {
	var (
		graphPath string
		from, to  string
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest paths from one node of a CSV edge list",
		Long: "Load a directed graph from a CSV file with the header source,destination,weight,\n" +
			"run Dijkstra from --from and print every distance. With --to the path is printed too.",
		Example: "  dsakit dijkstra --graph graph_edges.csv --from A --to E --trace",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("graph") {
				graphPath = a.cfg.Dijkstra.Graph
			}
			if !cmd.Flags().Changed("trace") {
				trace = a.cfg.Dijkstra.Trace
			}

			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			a.log.Info().Str("graph", graphPath).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")

			if !g.HasNode(from) {
				return fmt.Errorf("start node %q is not in the graph (nodes: %s)", from, strings.Join(g.Nodes(), ", "))
			}
			if to != "" && !g.HasNode(to) {
				return fmt.Errorf("target node %q is not in the graph (nodes: %s)", to, strings.Join(g.Nodes(), ", "))
			}

			out := cmd.OutOrStdout()
			opts := []dijkstra.Option{dijkstra.Source(from)}
			if trace {
				opts = append(opts, dijkstra.WithOnStep(func(s dijkstra.Step) error {
					printStep(out, s)
					return nil
				}))
			}

			res, err := dijkstra.Dijkstra(g, opts...)
			if err != nil {
				return err
			}
			a.log.Debug().Int("finalized", len(res.Order)).Msg("dijkstra finished")

			printDistances(out, g, res)

			if to == "" {
				return nil
			}
			p, err := res.PathTo(to)
			if errors.Is(err, dijkstra.ErrNoPath) {
				fmt.Fprintf(out, "\nno path from %s to %s\n", from, to)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nshortest path %s -> %s: %s (total %d)\n", from, to, p, p.Distance)

			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "graph_edges.csv", "CSV edge list (source,destination,weight)")
	cmd.Flags().StringVar(&from, "from", "", "start node")
	cmd.Flags().StringVar(&to, "to", "", "target node; prints the path when set")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every finalization step")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func loadGraph(path string) (*dijkstra.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	g, err := dijkstra.LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func formatDistance(d int64) string {
	if d == dijkstra.Infinity {
		return "∞"
	}

	return fmt.Sprint(d)
}

// printDistances writes one row per node in sorted order.
func printDistances(w io.Writer, g *dijkstra.Graph, res *dijkstra.Result) {
	fmt.Fprintf(w, "distances from %s:\n", res.Source)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tVIA")
	for _, id := range g.Nodes() {
		via := res.Prev[id]
		if via == "" {
			via = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, formatDistance(res.Dist[id]), via)
	}
	tw.Flush()
}

func printStep(w io.Writer, s dijkstra.Step) {
	fmt.Fprintf(w, "step %d: finalize %s (distance %d)\n", s.Index, s.Node, s.Distance)
	for _, r := range s.Updated {
		fmt.Fprintf(w, "  update %s: %s -> %d\n", r.Node, formatDistance(r.Old), r.New)
	}
	parts := make([]string, 0, len(s.Frontier))
	for _, it := range s.Frontier {
		parts = append(parts, fmt.Sprintf("%s:%d", it.Value, it.Priority))
	}
	fmt.Fprintf(w, "  heap: [%s]\n", strings.Join(parts, " "))
}
