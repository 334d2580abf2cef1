package cmd

import (
	"github.com/mj1618/designer-cli/internal/designer"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the control types the converter recognizes",
	Long:  "List the WinForms control types the converter recognizes and the UI type each becomes, in scan order.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeResult(cmd, "", designer.Types())
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
