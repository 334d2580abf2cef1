package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/mj1618/designer-cli/internal/designer"
	"github.com/mj1618/designer-cli/internal/model"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file...]",
	Short: "Convert designer files into a UI node tree",
	Long: `Convert one or more WinForms designer files into a tree of UI nodes.

The dialect follows the file extension: .vb files use Me/New, everything
else uses this/new. With no files (or "-") the source is read from stdin
and --name supplies the file name used to pick the dialect.

One file prints its node array; several files print a list of
{file, nodes} entries in argument order.

Examples:
  designer-cli convert MainForm.Designer.cs
  designer-cli convert --format yaml --types input Login.Designer.vb
  cat Form1.Designer.vb | designer-cli convert --name Form1.Designer.vb
  designer-cli convert --control groupBox1 MainForm.Designer.cs
  designer-cli convert --type-prefix RadJav.GUI. -o ui.json *.Designer.cs`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "Write output to this file instead of stdout")
	convertCmd.Flags().Bool("flat", false, "Flatten the tree into a list with path breadcrumbs")
	convertCmd.Flags().String("types", "", "Comma-separated types to keep, e.g. \"Button,input\" (meta-types: input, static, container)")
	convertCmd.Flags().String("type-prefix", "", "Prefix for every emitted type, e.g. \"RadJav.GUI.\"")
	convertCmd.Flags().Bool("strict", false, "Fail when a file contains no convertible controls")
	convertCmd.Flags().Int("jobs", runtime.NumCPU(), "Files to convert in parallel")
	convertCmd.Flags().String("name", "stdin.Designer.cs", "File name for stdin input (selects the dialect)")
	convertCmd.Flags().String("control", "", "Only output the subtree rooted at the control with this name")
}

func runConvert(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	flat, _ := cmd.Flags().GetBool("flat")
	typesFlag, _ := cmd.Flags().GetString("types")
	typePrefix, _ := cmd.Flags().GetString("type-prefix")
	strict, _ := cmd.Flags().GetBool("strict")
	jobs, _ := cmd.Flags().GetInt("jobs")
	name, _ := cmd.Flags().GetString("name")
	control, _ := cmd.Flags().GetString("control")

	opts := designer.Options{TypePrefix: typePrefix}

	var results []fileResult
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		nodes, err := convertReader(cmd.InOrStdin(), name, opts)
		if err != nil {
			return err
		}
		results = []fileResult{{File: name, Nodes: nodes}}
	} else {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		var err error
		results, err = convertFiles(ctx, args, jobs, opts)
		if err != nil {
			return err
		}
	}

	types := model.ExpandTypes(splitList(typesFlag))
	for i := range results {
		r := &results[i]
		if model.CountNodes(r.Nodes) == 0 {
			if strict {
				return fmt.Errorf("%s: %w", r.File, errNoControls)
			}
			log.Warningf("%s: %s", r.File, errNoControls)
		}
		if control != "" {
			n := model.FindByName(r.Nodes, control)
			if n == nil {
				return fmt.Errorf("%s: control %q: %w", r.File, control, errControlNotFound)
			}
			r.Nodes = []*model.Node{n}
		}
		if filtered := model.FilterByType(r.Nodes, types); filtered != nil {
			r.Nodes = filtered
		} else {
			r.Nodes = []*model.Node{}
		}
	}

	return writeResult(cmd, outPath, shapeResults(results, flat))
}

// shapeResults picks the printed shape: a bare list for a single input,
// otherwise one entry per file.
func shapeResults(results []fileResult, flat bool) interface{} {
	if len(results) == 1 {
		if flat {
			return flatList(results[0].Nodes)
		}
		return results[0].Nodes
	}

	if !flat {
		return results
	}
	type flatFileResult struct {
		File  string           `yaml:"file"  json:"file"`
		Nodes []model.FlatNode `yaml:"nodes" json:"nodes"`
	}
	out := make([]flatFileResult, len(results))
	for i, r := range results {
		out[i] = flatFileResult{File: r.File, Nodes: flatList(r.Nodes)}
	}
	return out
}

func flatList(nodes []*model.Node) []model.FlatNode {
	if flat := model.Flatten(nodes); flat != nil {
		return flat
	}
	return []model.FlatNode{}
}
