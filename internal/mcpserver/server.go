// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes recipe validation tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/barcart/barcart/internal/library"
	"github.com/barcart/barcart/internal/schema"
)

// Server wraps the MCP server with barcart tools.
type Server struct {
	mcp *server.MCPServer
	svc *library.Service
}

// New creates a new MCP server with all barcart tools registered.
func New(svc *library.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Barcart",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("validate_recipe",
		mcp.WithDescription("Validate recipe YAML content against the recipe schema and "+
			"return every violation found. Use this before saving a drafted recipe."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Recipe document as YAML text")),
	), s.validateRecipe)

	s.mcp.AddTool(mcp.NewTool("validate_file",
		mcp.WithDescription("Validate one recipe file from the library and return every violation found."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the recipe (e.g. sours/margarita.yaml)")),
	), s.validateFile)

	s.mcp.AddTool(mcp.NewTool("read_recipe",
		mcp.WithDescription("Read the raw YAML of a recipe file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the recipe")),
	), s.readRecipe)

	s.mcp.AddTool(mcp.NewTool("list_recipes",
		mcp.WithDescription("List all recipe files, or those under a specific folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for the whole library)")),
	), s.listRecipes)

	s.mcp.AddTool(mcp.NewTool("get_recipe_contract",
		mcp.WithDescription("Returns the canonical recipe format contract. "+
			"Call this before drafting recipes to ensure correct structure."),
	), s.getRecipeContract)

	s.mcp.AddResource(
		mcp.NewResource("barcart://recipe-format", "Recipe Format Contract",
			mcp.WithResourceDescription("Canonical recipe file format that all recipes must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRecipeFormatResource,
	)

	s.mcp.AddResource(
		mcp.NewResource("barcart://schema", "Recipe JSON Schema",
			mcp.WithResourceDescription("Machine-readable JSON Schema for recipe documents."),
			mcp.WithMIMEType("application/schema+json"),
		),
		s.readSchemaResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) validateRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fr := library.ValidateData("(inline)", []byte(content))
	return fileResultText(fr), nil
}

func (s *Server) validateFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fr := s.svc.ValidateFile(ctx, path)
	return fileResultText(fr), nil
}

func (s *Server) readRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.svc.Read(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) listRecipes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	metas, err := s.svc.List(ctx, folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, m := range metas {
		paths = append(paths, m.Path)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) getRecipeContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(RecipeFormatContract), nil
}

func (s *Server) readRecipeFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "barcart://recipe-format",
			MIMEType: "text/markdown",
			Text:     RecipeFormatContract,
		},
	}, nil
}

func (s *Server) readSchemaResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	out, err := schema.Generate()
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "barcart://schema",
			MIMEType: "application/schema+json",
			Text:     string(out),
		},
	}, nil
}

func fileResultText(fr library.FileResult) *mcp.CallToolResult {
	out, _ := json.MarshalIndent(fr, "", "  ")
	return mcp.NewToolResultText(string(out))
}
