package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/iconbuilder"
	"github.com/setanarut/iconbuilder/config"
	"github.com/setanarut/iconbuilder/iconset"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iconbuilder",
	Short: "Recolor, synthesize and package macOS application icons",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			log.SetOutput(io.Discard)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "JSON config file (defaults to the red and black theme)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress warnings")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// packagerFor picks the container writer from the output extension.
func packagerFor(out string, cfg *config.Config) (iconset.Packager, iconbuilder.IconSizeSet, error) {
	if strings.EqualFold(filepath.Ext(out), ".ico") {
		set := iconbuilder.WindowsIconSet()
		return iconset.ICO{Sizes: set}, set, nil
	}
	set, err := cfg.SizeSet()
	if err != nil {
		return nil, nil, err
	}
	return iconset.Iconutil{}, set, nil
}

// writeIcon resamples icon and packages it at out.
func writeIcon(ctx context.Context, out string, icon *iconbuilder.PixelBuffer, cfg *config.Config) error {
	p, set, err := packagerFor(out, cfg)
	if err != nil {
		return err
	}
	filter, err := cfg.ResampleFilter()
	if err != nil {
		return err
	}
	fmt.Printf("Packaging %d renditions (%s) → %s\n", len(set), filter, out)
	if err := iconset.Write(ctx, out, icon, set, filter, p); err != nil {
		return fmt.Errorf("packaging: %w", err)
	}
	if info, err := os.Stat(out); err == nil {
		fmt.Printf("Output: %s (%d bytes, %.1f KB)\n", out, info.Size(), float64(info.Size())/1024)
	}
	return nil
}
