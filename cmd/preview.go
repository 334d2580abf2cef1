package cmd

import (
	"fmt"

	"github.com/mj1618/designer-cli/internal/designer"
	"github.com/mj1618/designer-cli/internal/model"
	"github.com/mj1618/designer-cli/internal/preview"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a wireframe PNG of a designer file",
	Long: `Render each control that has a position and size as an outlined box
labeled with its text (or name). Child positions are relative to their
container, as in the designer.

Examples:
  designer-cli preview MainForm.Designer.cs -o main.png
  designer-cli preview --width 800 --height 600 -o login.png Login.Designer.vb`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("output", "o", "", "PNG file to write (required)")
	previewCmd.Flags().Int("width", 0, "Canvas width in pixels (0 = fit to controls)")
	previewCmd.Flags().Int("height", 0, "Canvas height in pixels (0 = fit to controls)")
	previewCmd.Flags().Int("margin", 12, "Margin added around a fitted canvas")
	previewCmd.MarkFlagRequired("output")
}

func runPreview(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	margin, _ := cmd.Flags().GetInt("margin")

	nodes, err := convertFile(args[0], designer.Options{})
	if err != nil {
		return err
	}
	return renderPreview(nodes, outPath, preview.Options{Width: width, Height: height, Margin: margin})
}

func renderPreview(nodes []*model.Node, path string, opts preview.Options) error {
	img, err := preview.Render(nodes, opts)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := preview.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Infof("wrote %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
