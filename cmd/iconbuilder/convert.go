package main

import (
	"fmt"

	"github.com/setanarut/iconbuilder"
	"github.com/setanarut/iconbuilder/utils"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Package an existing image as an icon container",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Source image")
	convertCmd.Flags().StringP("output", "o", "", "Output icon container (.icns or .ico)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	src, err := utils.ReadBuffer(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if src.W != src.H {
		fmt.Printf("Cropped to square: %dx%d\n", min(src.W, src.H), min(src.W, src.H))
	}
	return writeIcon(cmd.Context(), outputPath, iconbuilder.SquareCrop(src), cfg)
}
