package main

import (
	"fmt"

	"github.com/setanarut/iconbuilder"
	"github.com/setanarut/iconbuilder/utils"
	"github.com/spf13/cobra"
)

var recolorCmd = &cobra.Command{
	Use:   "recolor",
	Short: "Remap an icon's luminance through a color ramp and package it",
	RunE:  runRecolor,
}

func init() {
	recolorCmd.Flags().StringP("input", "i", "", "Source image (png, jpeg, gif, bmp, tiff, webp)")
	recolorCmd.Flags().StringP("output", "o", "", "Output icon container (.icns or .ico)")
	recolorCmd.Flags().String("preview", "", "Also save the recolored artwork as an image")
	recolorCmd.Flags().String("ramp-from", "", "Build the ramp from the palette of this reference image")
	recolorCmd.Flags().Int("colors", 5, "Palette size when using --ramp-from")
	recolorCmd.Flags().String("method", "dominantcolor", "Palette method (dominantcolor, kmeans)")
	recolorCmd.MarkFlagRequired("input")
	recolorCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(recolorCmd)
}

func runRecolor(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	previewPath, _ := cmd.Flags().GetString("preview")
	rampFrom, _ := cmd.Flags().GetString("ramp-from")
	colors, _ := cmd.Flags().GetInt("colors")
	method, _ := cmd.Flags().GetString("method")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var ramp *iconbuilder.ColorRamp
	if rampFrom != "" {
		ref, err := utils.ReadImage(rampFrom)
		if err != nil {
			return fmt.Errorf("reading reference: %w", err)
		}
		ramp, _, err = utils.RampFromImage(ref, colors, utils.ParsePaletteMethod(method))
		if err != nil {
			return err
		}
	} else {
		ramp, err = cfg.ColorRamp()
		if err != nil {
			return err
		}
	}

	src, err := utils.ReadImage(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Printf("Recoloring %s with a %d-band ramp\n", inputPath, ramp.Len())
	icon, err := iconbuilder.RecolorIcon(src, ramp, cfg.RecolorPost.Options())
	if err != nil {
		return fmt.Errorf("recolor: %w", err)
	}

	if previewPath != "" {
		if err := utils.SaveBuffer(icon, previewPath); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		fmt.Printf("Preview: %s\n", previewPath)
	}
	return writeIcon(cmd.Context(), outputPath, icon, cfg)
}
