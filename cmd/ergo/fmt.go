package main

import (
	"fmt"
	"os"

	"github.com/momenmotaz/ergo/erd"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file.erd>",
	Short: "Reprint an ERD file in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write the result back to the file instead of stdout")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	doc, err := erd.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	out := erd.Print(doc)
	if write {
		if err := os.WriteFile(args[0], []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing formatted file: %w", err)
		}
		return nil
	}

	fmt.Print(out)
	return nil
}
