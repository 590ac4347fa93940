package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags, k6-style.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lzav CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(rootCmd.OutOrStdout(), "lzav", version)
	},
}
