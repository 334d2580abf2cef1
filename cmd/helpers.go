package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mj1618/designer-cli/internal/designer"
	"github.com/mj1618/designer-cli/internal/model"
	"golang.org/x/sync/errgroup"
)

// errNoControls is returned in strict mode when a file yields no nodes.
var errNoControls = errors.New("no convertible controls found")

// errControlNotFound is returned when --control names no converted control.
var errControlNotFound = errors.New("control not found")

// fileResult is one converted file.
type fileResult struct {
	File  string        `yaml:"file"  json:"file"`
	Nodes []*model.Node `yaml:"nodes" json:"nodes"`
}

// readDesignerFile returns the text of a designer file.
func readDesignerFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// convertFile reads and converts one designer file.
func convertFile(path string, opts designer.Options) ([]*model.Node, error) {
	src, err := readDesignerFile(path)
	if err != nil {
		return nil, err
	}
	nodes := designer.ParseWithOptions(src, path, opts)
	log.Debugf("converted %s: %d nodes", path, model.CountNodes(nodes))
	return nodes, nil
}

// convertReader converts designer text read from r. name selects the dialect.
func convertReader(r io.Reader, name string, opts designer.Options) ([]*model.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return designer.ParseWithOptions(string(data), name, opts), nil
}

// convertFiles converts paths concurrently, at most jobs at a time, and
// returns results in the order of paths.
func convertFiles(ctx context.Context, paths []string, jobs int, opts designer.Options) ([]fileResult, error) {
	results := make([]fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nodes, err := convertFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = fileResult{File: path, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
