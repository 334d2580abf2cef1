// Package server exposes the designer converter as MCP tools.
package server

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/designer-cli/internal/version"
	"github.com/tliron/commonlog"
)

// Name is the MCP server name reported to clients.
const Name = "designer-cli"

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the file conversion cache.
type Server struct {
	cache *ResultCache
	mcp   *mcpserver.MCPServer
	log   commonlog.Logger
}

// New creates an MCP server with all converter tools registered.
func New(cfg Config) *Server {
	s := &Server{
		cache: NewResultCache(cfg.CacheTTL),
		log:   commonlog.GetLogger("designer-cli.server"),
	}
	s.mcp = mcpserver.NewMCPServer(Name, version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport. It blocks until
// the transport stops.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		s.log.Info("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.log.Infof("serving MCP over streamable HTTP on %s", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("convert",
			mcp.WithDescription("Convert WinForms designer source text (C# or VB) into a JSON tree of UI nodes"),
			mcp.WithString("source", mcp.Description("Full text of the designer file"), mcp.Required()),
			mcp.WithString("file_name", mcp.Description("File name; a .vb extension selects the Visual Basic dialect"), mcp.Required()),
			mcp.WithString("type_prefix", mcp.Description("Prefix for every emitted type, e.g. 'RadJav.GUI.'")),
			mcp.WithString("format", mcp.Description("Output format: json, yaml (default: json)")),
		),
		s.handleConvert,
	)

	s.mcp.AddTool(
		mcp.NewTool("convert_file",
			mcp.WithDescription("Read a WinForms designer file from disk and convert it into a tree of UI nodes"),
			mcp.WithString("path", mcp.Description("Path to the .Designer.cs or .Designer.vb file"), mcp.Required()),
			mcp.WithString("type_prefix", mcp.Description("Prefix for every emitted type")),
			mcp.WithString("types", mcp.Description("Comma-separated types to keep (e.g. 'Button,input')")),
			mcp.WithBoolean("flat", mcp.Description("Flatten the tree into a list with path breadcrumbs")),
			mcp.WithBoolean("refresh", mcp.Description("Discard any cached conversion of this file first")),
			mcp.WithString("format", mcp.Description("Output format: json, yaml (default: json)")),
		),
		s.handleConvertFile,
	)

	s.mcp.AddTool(
		mcp.NewTool("preview_file",
			mcp.WithDescription("Render a wireframe PNG of the controls in a WinForms designer file"),
			mcp.WithString("path", mcp.Description("Path to the designer file"), mcp.Required()),
			mcp.WithNumber("width", mcp.Description("Canvas width in pixels (0 = fit)")),
			mcp.WithNumber("height", mcp.Description("Canvas height in pixels (0 = fit)")),
			mcp.WithNumber("margin", mcp.Description("Margin around fitted canvas (default: 12)")),
			mcp.WithBoolean("refresh", mcp.Description("Discard any cached conversion of this file first")),
		),
		s.handlePreviewFile,
	)

	s.mcp.AddTool(
		mcp.NewTool("clear_cache",
			mcp.WithDescription("Discard cached file conversions, for one file or all of them"),
			mcp.WithString("path", mcp.Description("Only discard conversions of this file")),
		),
		s.handleClearCache,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_types",
			mcp.WithDescription("List the WinForms control types the converter recognizes, in scan order"),
			mcp.WithString("format", mcp.Description("Output format: json, yaml (default: json)")),
		),
		s.handleListTypes,
	)
}
