package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/woozymasta/lzav"
)

var (
	compressOut     string
	compressScratch bool
)

var compressCmd = &cobra.Command{
	Use:   "compress <input-file>",
	Short: "Compress a single file with the LZAV codec",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompress,
}

func init() {
	flags := compressCmd.Flags()
	flags.StringVarP(&compressOut, "out", "o", "", "output file path (default: <input>.lzav)")
	flags.BoolVarP(&compressScratch, "scratch-pool", "s", false, "reuse a pooled hash-table scratch buffer")
}

func runCompress(cmd *cobra.Command, args []string) error {
	in := args[0]
	out := compressOut
	if out == "" {
		out = in + ".lzav"
	}

	src, err := afero.ReadFile(fs, in)
	if err != nil {
		return err
	}

	dst := make([]byte, lzav.CompressBound(len(src)))

	opts := &lzav.CompressOptions{Logger: log}

	var scratch []byte
	useScratch := compressScratch || (loadedCfg != nil && loadedCfg.ScratchPool)
	if useScratch {
		pool := lzav.NewScratchPool(len(src))
		scratch = pool.Get()
		defer pool.Put(scratch)
	}

	n, err := lzav.CompressWithOptions(src, dst, scratch, opts)
	if err != nil {
		printErr(err)
		return err
	}

	if err := afero.WriteFile(fs, out, dst[:n], 0o644); err != nil {
		return err
	}

	printOK(fmt.Sprintf("compressed %d -> %d bytes (%s)", len(src), n, out))
	return nil
}
