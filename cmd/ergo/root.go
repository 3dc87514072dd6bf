package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ergo",
	Short: "ERD pipeline toolkit",
	Long:  "Ergo parses entity-relationship description files into diagram graphs for rendering, and restores edited graphs back to source text.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("compact", false, "Emit compact JSON instead of indented")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("compact", rootCmd.PersistentFlags().Lookup("compact"))
}

func initConfig() {
	viper.SetEnvPrefix("ERGO")
	viper.AutomaticEnv()
}
