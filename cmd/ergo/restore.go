package main

import (
	"fmt"
	"os"

	"github.com/momenmotaz/ergo/diagram"
	"github.com/momenmotaz/ergo/erd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <graph.json>",
	Short: "Reconstruct ERD source text from an edited diagram graph",
	Long:  "Run the reverse pipeline: decode a {nodes, edges} graph JSON file, re-derive the document, and print canonical ERD source. Structural warnings go to stderr.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading graph file: %w", err)
	}

	g, err := diagram.DecodeGraph(data)
	if err != nil {
		return err
	}

	doc, warnings := diagram.ToDocument(g)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Restored: %d entities, %d relationships\n", len(doc.Entities), len(doc.Relationships))
	}

	fmt.Print(erd.Print(doc))
	return nil
}
