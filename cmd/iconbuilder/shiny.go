package main

import (
	"fmt"

	"github.com/setanarut/iconbuilder"
	"github.com/setanarut/iconbuilder/utils"
	"github.com/spf13/cobra"
)

var shinyCmd = &cobra.Command{
	Use:   "shiny",
	Short: "Synthesize a metallic icon from scratch and package it",
	RunE:  runShiny,
}

func init() {
	shinyCmd.Flags().StringP("output", "o", "", "Output icon container (.icns or .ico)")
	shinyCmd.Flags().String("preview", "", "Also save the full-size artwork as an image")
	shinyCmd.Flags().Int("size", 0, "Canvas size in pixels (default from config)")
	shinyCmd.Flags().String("monogram", "", "Block-glyph monogram, up to two of P, 2, E, X")
	shinyCmd.Flags().String("label", "", "Block-glyph label under the monogram")
	shinyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(shinyCmd)
}

func runShiny(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	previewPath, _ := cmd.Flags().GetString("preview")
	size, _ := cmd.Flags().GetInt("size")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	iconCfg := cfg.ShinyIcon()
	if size > 0 {
		iconCfg.Size = size
	}
	if cmd.Flags().Changed("monogram") {
		iconCfg.Monogram, _ = cmd.Flags().GetString("monogram")
	}
	if cmd.Flags().Changed("label") {
		iconCfg.Label, _ = cmd.Flags().GetString("label")
	}

	fmt.Printf("Synthesizing %dx%d metallic icon\n", iconCfg.Size, iconCfg.Size)
	icon, err := iconbuilder.ShinyIcon(iconCfg)
	if err != nil {
		return fmt.Errorf("synthesis: %w", err)
	}
	if previewPath != "" {
		if err := utils.SaveBuffer(icon, previewPath); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		fmt.Printf("Preview: %s\n", previewPath)
	}
	return writeIcon(cmd.Context(), outputPath, icon, cfg)
}
