package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/designer-cli/internal/designer"
	"github.com/mj1618/designer-cli/internal/model"
	"github.com/mj1618/designer-cli/internal/output"
	"github.com/mj1618/designer-cli/internal/preview"
)

func (s *Server) handleConvert(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	source, ok := params["source"].(string)
	if !ok {
		return mcp.NewToolResultError("source parameter is required"), nil
	}
	fileName := stringParam(params, "file_name", "")
	if fileName == "" {
		return mcp.NewToolResultError("file_name parameter is required"), nil
	}
	format, err := output.ParseFormat(stringParam(params, "format", string(output.FormatJSON)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := designer.Options{TypePrefix: stringParam(params, "type_prefix", "")}
	nodes := designer.ParseWithOptions(source, fileName, opts)
	s.log.Debugf("convert %s: %d nodes", fileName, model.CountNodes(nodes))

	return encodeResult(format, nodes), nil
}

func (s *Server) handleConvertFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}
	format, err := output.ParseFormat(stringParam(params, "format", string(output.FormatJSON)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if boolParam(params, "refresh", false) {
		s.cache.Invalidate(path)
	}
	opts := designer.Options{TypePrefix: stringParam(params, "type_prefix", "")}
	nodes, err := s.cache.ConvertFile(path, opts)
	if err != nil {
		s.log.Errorf("convert_file %s: %s", path, err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.log.Debugf("convert_file %s: %d nodes", path, model.CountNodes(nodes))

	if types := splitList(stringParam(params, "types", "")); len(types) > 0 {
		nodes = model.FilterByType(nodes, model.ExpandTypes(types))
	}
	if boolParam(params, "flat", false) {
		flat := model.Flatten(nodes)
		if flat == nil {
			flat = []model.FlatNode{}
		}
		return encodeResult(format, flat), nil
	}
	if nodes == nil {
		nodes = []*model.Node{}
	}
	return encodeResult(format, nodes), nil
}

func (s *Server) handlePreviewFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	if boolParam(params, "refresh", false) {
		s.cache.Invalidate(path)
	}
	nodes, err := s.cache.ConvertFile(path, designer.Options{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	img, err := preview.Render(nodes, preview.Options{
		Width:  intParam(params, "width", 0),
		Height: intParam(params, "height", 0),
		Margin: intParam(params, "margin", 12),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := preview.WritePNG(&buf, img); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
				MIMEType: "image/png",
			},
		},
	}, nil
}

func (s *Server) handleListTypes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := output.ParseFormat(stringParam(request.GetArguments(), "format", string(output.FormatJSON)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return encodeResult(format, designer.Types()), nil
}

func (s *Server) handleClearCache(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if path := stringParam(request.GetArguments(), "path", ""); path != "" {
		s.cache.Invalidate(path)
		s.log.Debugf("clear_cache %s", path)
		return mcp.NewToolResultText(fmt.Sprintf("cleared cached conversions of %s", path)), nil
	}
	n := s.cache.InvalidateAll()
	s.log.Debugf("clear_cache: dropped %d entries", n)
	return mcp.NewToolResultText(fmt.Sprintf("cleared %d cached conversions", n)), nil
}

// encodeResult serializes v as tool result text.
func encodeResult(format output.Format, v interface{}) *mcp.CallToolResult {
	data, err := output.Marshal(format, v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(strings.TrimSuffix(string(data), "\n"))
}

// stringParam extracts a string parameter from tool arguments.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// intParam extracts an integer parameter; JSON numbers arrive as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// boolParam extracts a boolean parameter from tool arguments.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
