package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/lzav"
)

var boundCmd = &cobra.Command{
	Use:   "bound <size-or-file>",
	Short: "Print the worst-case compressed size for a given source length",
	Long: `Print CompressBound(n) for n bytes of source.

The argument is either a plain byte count or a path to an existing file,
in which case its size on disk is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runBound,
}

func runBound(cmd *cobra.Command, args []string) error {
	arg := args[0]

	var srcLen int
	if info, err := fs.Stat(arg); err == nil {
		srcLen = int(info.Size())
	} else {
		n, perr := parseSize(arg)
		if perr != nil {
			return fmt.Errorf("%q is neither an existing file nor a byte count: %w", arg, perr)
		}
		srcLen = n
	}

	fmt.Fprintln(rootCmd.OutOrStdout(), lzav.CompressBound(srcLen))
	return nil
}

func parseSize(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}
