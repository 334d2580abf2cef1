package cmd

import (
	"errors"

	"github.com/mj1618/designer-cli/internal/designer"
	"github.com/mj1618/designer-cli/internal/model"
	"github.com/spf13/cobra"
)

// errDifferent is returned with --exit-code when the files differ.
var errDifferent = errors.New("designer files differ")

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Compare the UI trees of two designer files",
	Long: `Convert two designer files and report controls that were added, removed
or changed. Controls are matched by their path of container names, so a
control moved into another container is reported as removed and added.

Examples:
  designer-cli diff old/MainForm.Designer.cs MainForm.Designer.cs
  designer-cli diff --exit-code a.Designer.vb b.Designer.vb`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Bool("exit-code", false, "Exit with status 1 when the files differ")
	diffCmd.Flags().StringP("output", "o", "", "Write output to this file instead of stdout")
}

func runDiff(cmd *cobra.Command, args []string) error {
	exitCode, _ := cmd.Flags().GetBool("exit-code")
	outPath, _ := cmd.Flags().GetString("output")

	diff, err := diffFiles(args[0], args[1])
	if err != nil {
		return err
	}
	if err := writeResult(cmd, outPath, diff); err != nil {
		return err
	}
	if exitCode && !diff.Empty() {
		return errDifferent
	}
	return nil
}

func diffFiles(oldPath, newPath string) (model.NodeDiff, error) {
	prev, err := convertFile(oldPath, designer.Options{})
	if err != nil {
		return model.NodeDiff{}, err
	}
	curr, err := convertFile(newPath, designer.Options{})
	if err != nil {
		return model.NodeDiff{}, err
	}
	return model.DiffNodes(model.Flatten(prev), model.Flatten(curr)), nil
}
