package main

import (
	"fmt"

	"github.com/setanarut/iconbuilder"
	"github.com/setanarut/iconbuilder/utils"
	"github.com/spf13/cobra"
)

var backgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Synthesize a metallic installer window background",
	RunE:  runBackground,
}

func init() {
	backgroundCmd.Flags().StringP("output", "o", "", "Output image")
	backgroundCmd.Flags().String("font", "", "Font file for the title (default from config, Go Bold as fallback)")
	backgroundCmd.Flags().String("title", "", "Title text")
	backgroundCmd.Flags().String("subtitle", "", "Subtitle text")
	backgroundCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(backgroundCmd)
}

func runBackground(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	fontPath, _ := cmd.Flags().GetString("font")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if fontPath == "" {
		fontPath = cfg.FontPath
	}
	bgCfg := cfg.ShinyBackground()
	if cmd.Flags().Changed("title") {
		bgCfg.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("subtitle") {
		bgCfg.Subtitle, _ = cmd.Flags().GetString("subtitle")
	}

	fmt.Printf("Synthesizing %dx%d background\n", bgCfg.W, bgCfg.H)
	bg, err := iconbuilder.ShinyBackground(bgCfg, iconbuilder.SystemFonts(fontPath))
	if err != nil {
		return fmt.Errorf("synthesis: %w", err)
	}
	if err := utils.SaveBuffer(bg, outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("Output: %s\n", outputPath)
	return nil
}
