package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mj1618/designer-cli/internal/output"
	"github.com/mj1618/designer-cli/internal/version"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("designer-cli")

var rootCmd = &cobra.Command{
	Use:   "designer-cli",
	Short: "Convert WinForms designer files into UI node trees",
	Long: `Convert WinForms designer files (*.Designer.cs, *.Designer.vb) into a
hierarchical UI description. Controls, their position, size, text and
visibility, and their parent/child composition are recovered from the
generated source text.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "json", "Output format: json, yaml")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity on stderr (repeatable)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetCount("verbose")
		commonlog.Configure(verbose, nil)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		return nil
	}
}

// createFile opens an output file for writing. Tests replace it.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeResult serializes v in the current output format to path, or to the
// command's stdout when path is empty.
func writeResult(cmd *cobra.Command, path string, v interface{}) error {
	if path == "" {
		return output.Write(cmd.OutOrStdout(), output.OutputFormat, v)
	}

	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := output.Write(f, output.OutputFormat, v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
