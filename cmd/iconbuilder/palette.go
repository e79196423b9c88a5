package main

import (
	"fmt"

	"github.com/setanarut/iconbuilder/utils"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [file]",
	Short: "Extract a palette and the ramp it would produce",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

func init() {
	paletteCmd.Flags().Int("colors", 5, "Number of colors")
	paletteCmd.Flags().String("method", "dominantcolor", "Palette method (dominantcolor, kmeans)")
	paletteCmd.Flags().String("swatch", "", "Save palette swatches to this image")
	paletteCmd.Flags().String("ramp", "", "Save the resulting ramp strip to this image")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	colors, _ := cmd.Flags().GetInt("colors")
	method, _ := cmd.Flags().GetString("method")
	swatchPath, _ := cmd.Flags().GetString("swatch")
	rampPath, _ := cmd.Flags().GetString("ramp")

	img, err := utils.ReadImage(args[0])
	if err != nil {
		return err
	}
	ramp, swatches, err := utils.RampFromImage(img, colors, utils.ParsePaletteMethod(method))
	if err != nil {
		return err
	}
	for i, b := range ramp.Bands() {
		fmt.Printf("[%3d,%3d) %s %5.1f%%\n", b.Lo, b.Hi, b.Color.Hex(), swatches[i].Weight*100)
	}

	if swatchPath != "" {
		if err := utils.SavePalette(utils.Colors(swatches), 64, swatchPath); err != nil {
			return fmt.Errorf("writing swatches: %w", err)
		}
	}
	if rampPath != "" {
		if err := utils.SaveRamp(ramp, 32, rampPath); err != nil {
			return fmt.Errorf("writing ramp: %w", err)
		}
	}
	return nil
}
