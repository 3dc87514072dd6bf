package main

import (
	"fmt"
	"os"

	"github.com/momenmotaz/ergo/erd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var astCmd = &cobra.Command{
	Use:   "ast <file.erd>",
	Short: "Parse an ERD file and emit its AST as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	doc, err := erd.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	var data []byte
	if viper.GetBool("compact") {
		data, err = erd.EncodeDocument(doc)
	} else {
		data, err = erd.EncodeDocumentIndent(doc)
	}
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
