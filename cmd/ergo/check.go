package main

import (
	"fmt"
	"os"

	"github.com/momenmotaz/ergo/erd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.erd>",
	Short: "Parse and lint an ERD file",
	Long:  "Parse an ERD file and report syntax errors and structural diagnostics without producing output.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Treat warnings as errors")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	verbose := viper.GetBool("verbose")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	doc, err := erd.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsed: %d entities, %d relationships\n", len(doc.Entities), len(doc.Relationships))
	}

	diagnostics := erd.Validate(doc)
	failed := false
	for _, d := range diagnostics {
		fmt.Fprintln(os.Stderr, d)
		if d.Severity == erd.Error || (strict && d.Severity == erd.Warning) {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("check failed with %d finding(s)", len(diagnostics))
	}

	fmt.Fprintf(os.Stderr, "OK: %s\n", args[0])
	return nil
}
