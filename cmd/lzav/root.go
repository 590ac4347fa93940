// Package main implements the lzav CLI: single-file compress/decompress
// and a bound calculator around the root lzav package.
package main

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fs is the filesystem the CLI reads and writes through. Tests swap this
// for afero.NewMemMapFs() so file handling is exercised without touching
// disk, the same pattern k6 uses for its own fs layer.
var fs afero.Fs = afero.NewOsFs()

var (
	log       = logrus.New()
	verbose   bool
	cfgPath   string
	loadedCfg *cliConfig
	errColor  = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "lzav",
	Short: "lzav compresses and decompresses single files with the LZAV codec",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		cfg, err := loadConfig(fs, cfgPath)
		if err != nil {
			return err
		}
		loadedCfg = cfg
		if cfg.LogLevel != "" && !verbose {
			lvl, err := logrus.ParseLevel(cfg.LogLevel)
			if err == nil {
				log.SetLevel(lvl)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file (optional)")

	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(boundCmd)
	rootCmd.AddCommand(versionCmd)
}

func printErr(err error) {
	errColor.Fprintln(rootCmd.ErrOrStderr(), "error:", err)
}

func printOK(msg string) {
	okColor.Fprintln(rootCmd.OutOrStdout(), msg)
}
