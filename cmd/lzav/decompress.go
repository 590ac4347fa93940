package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/woozymasta/lzav"
)

var (
	decompressOut string
	decompressLen byteSize
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <input-file>",
	Short: "Decompress a single LZAV-compressed file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecompress,
}

func init() {
	flags := decompressCmd.Flags()
	flags.StringVarP(&decompressOut, "out", "o", "", "output file path (default: strip .lzav suffix)")
	flags.VarP(&decompressLen, "length", "l", "original decompressed length, e.g. 4096 or 4KiB (required)")
	_ = decompressCmd.MarkFlagRequired("length")
}

func runDecompress(cmd *cobra.Command, args []string) error {
	in := args[0]
	out := decompressOut
	if out == "" {
		out = strings.TrimSuffix(in, ".lzav")
		if out == in {
			out = in + ".out"
		}
	}

	src, err := afero.ReadFile(fs, in)
	if err != nil {
		return err
	}

	dst := make([]byte, int(decompressLen))
	opts := &lzav.DecompressOptions{Logger: log}
	n, err := lzav.DecompressWithOptions(src, dst, int(decompressLen), opts)
	if err != nil {
		printErr(err)
		return err
	}

	if err := afero.WriteFile(fs, out, dst[:n], 0o644); err != nil {
		return err
	}

	printOK(fmt.Sprintf("decompressed %d -> %d bytes (%s)", len(src), n, out))
	return nil
}

// byteSize is a pflag.Value accepting plain byte counts or a suffixed form
// like "4KiB"/"2MB", so --length reads naturally for larger test files.
type byteSize int64

func (b *byteSize) String() string { return strconv.FormatInt(int64(*b), 10) }
func (b *byteSize) Type() string   { return "byteSize" }

func (b *byteSize) Set(s string) error {
	s = strings.TrimSpace(s)
	mult := int64(1)
	for suffix, m := range map[string]int64{
		"KiB": 1 << 10, "MiB": 1 << 20,
		"KB": 1000, "MB": 1000 * 1000,
	} {
		if strings.HasSuffix(s, suffix) {
			mult = m
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", s, err)
	}
	*b = byteSize(n * mult)
	return nil
}
