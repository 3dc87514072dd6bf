package main

import (
	"fmt"
	"os"

	"github.com/momenmotaz/ergo/diagram"
	"github.com/momenmotaz/ergo/erd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file.erd>",
	Short: "Parse an ERD file and emit its positioned diagram graph as JSON",
	Long:  "Run the full forward pipeline: parse, expand to a diagram graph, lay out coordinates, and emit {nodes, edges} JSON for a renderer.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().Bool("no-layout", false, "Skip the layout pass and leave all rectangles zeroed")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	noLayout, _ := cmd.Flags().GetBool("no-layout")
	verbose := viper.GetBool("verbose")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	doc, err := erd.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	g := diagram.FromDocument(doc)
	if !noLayout {
		diagram.Layout(g)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Graph: %d nodes, %d edges\n", len(g.Nodes), len(g.Edges))
	}

	var data []byte
	if viper.GetBool("compact") {
		data, err = diagram.EncodeGraph(g)
	} else {
		data, err = diagram.EncodeGraphIndent(g)
	}
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
