package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/dijkstra"
)

// graphViews lists the accepted --show values in print order.
var graphViews = []string{"adjacency", "edges", "stats"}

func newGraphCmd(a *app) *cobra.Command {
	var (
		graphPath string
		show      string
	)

	cmd := &cobra.Command{
		Use:     "graph",
		Short:   "Inspect a CSV edge list: adjacency list, edge table or statistics",
		Example: "  dsakit graph --graph graph_edges.csv --show adjacency",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("graph") {
				graphPath = a.cfg.Dijkstra.Graph
			}

			var views []string
			switch show {
			case "all":
				views = graphViews
			case "adjacency", "edges", "stats":
				views = []string{show}
			default:
				return fmt.Errorf("unknown view %q (want %s or all)", show, strings.Join(graphViews, ", "))
			}

			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			a.log.Info().Str("graph", graphPath).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")

			out := cmd.OutOrStdout()
			for i, v := range views {
				if i > 0 {
					fmt.Fprintln(out)
				}
				switch v {
				case "adjacency":
					printAdjacency(out, g)
				case "edges":
					printEdges(out, g)
				case "stats":
					printGraphStats(out, g)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "graph_edges.csv", "CSV edge list (source,destination,weight)")
	cmd.Flags().StringVar(&show, "show", "stats", "view: adjacency, edges, stats or all")

	return cmd
}

func printAdjacency(w io.Writer, g *dijkstra.Graph) {
	fmt.Fprintln(w, "adjacency list:")
	for _, id := range g.Nodes() {
		nbrs, _ := g.Neighbors(id)
		if len(nbrs) == 0 {
			fmt.Fprintf(w, "  %s -> (no outgoing edges)\n", id)
			continue
		}
		parts := make([]string, 0, len(nbrs))
		for _, e := range nbrs {
			parts = append(parts, fmt.Sprintf("%s(%d)", e.To, e.Weight))
		}
		fmt.Fprintf(w, "  %s -> %s\n", id, strings.Join(parts, ", "))
	}
}

func printEdges(w io.Writer, g *dijkstra.Graph) {
	fmt.Fprintf(w, "edges: %d\n", g.EdgeCount())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tWEIGHT")
	for _, e := range g.Edges() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.From, e.To, e.Weight)
	}
	tw.Flush()
}

func printGraphStats(w io.Writer, g *dijkstra.Graph) {
	st := g.Stats()
	fmt.Fprintf(w, "nodes: %d\n", st.Nodes)
	fmt.Fprintf(w, "edges: %d\n", st.Edges)
	fmt.Fprintf(w, "average out-degree: %.2f\n", st.AvgOutDegree)
	fmt.Fprintf(w, "density: %.3f\n", st.Density)
	fmt.Fprintln(w, "out-degree:")
	for _, id := range g.Nodes() {
		fmt.Fprintf(w, "  %s: %d\n", id, st.OutDegree[id])
	}
}
