package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/barcart/barcart/internal/library"
	"github.com/barcart/barcart/internal/testutil"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir, store := testutil.TestLibrary(t)
	return New(library.NewService(store)), dir
}

// callTool invokes a tool handler directly; mcp-go has no call-tool test
// helper, so the switch mirrors the registered names.
func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "validate_recipe":
		result, err = srv.validateRecipe(ctx, req)
	case "validate_file":
		result, err = srv.validateFile(ctx, req)
	case "read_recipe":
		result, err = srv.readRecipe(ctx, req)
	case "list_recipes":
		result, err = srv.listRecipes(ctx, req)
	case "get_recipe_contract":
		result, err = srv.getRecipeContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestValidateRecipeClean(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "validate_recipe", map[string]interface{}{
		"content": testutil.Margarita,
	})
	text := resultText(r)
	if !strings.Contains(text, `"violations": []`) {
		t.Errorf("expected empty violations, got %q", text)
	}
}

func TestValidateRecipeViolations(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "validate_recipe", map[string]interface{}{
		"content": "title: Broken Drink\ningredients: []\ninstructions: []\n",
	})
	text := resultText(r)
	if !strings.Contains(text, "missing_required") || !strings.Contains(text, `"version"`) {
		t.Errorf("expected a missing version violation, got %q", text)
	}
}

func TestValidateFile(t *testing.T) {
	srv, dir := testServer(t)
	testutil.WriteFile(t, dir, "margarita.yaml", testutil.Margarita)

	r := callTool(t, srv, "validate_file", map[string]interface{}{
		"path": "margarita.yaml",
	})
	text := resultText(r)
	if !strings.Contains(text, `"violations": []`) {
		t.Errorf("expected empty violations, got %q", text)
	}
}

func TestReadRecipeMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_recipe", map[string]interface{}{"path": "nope.yaml"})
	if !r.IsError {
		t.Error("expected error result for missing recipe")
	}
}

func TestListRecipes(t *testing.T) {
	srv, dir := testServer(t)
	testutil.WriteFile(t, dir, "a.yaml", testutil.Margarita)
	testutil.WriteFile(t, dir, "sours/b.yaml", testutil.Margarita)

	r := callTool(t, srv, "list_recipes", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "a.yaml") || !strings.Contains(text, "b.yaml") {
		t.Errorf("listing = %q", text)
	}
}

func TestGetRecipeContract(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_recipe_contract", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "title") || !strings.Contains(text, "ingredients") {
		t.Errorf("contract looks wrong: %q", text)
	}
}

func TestSchemaResource(t *testing.T) {
	srv, _ := testServer(t)
	contents, err := srv.readSchemaResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("readSchemaResource: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("len = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents type = %T", contents[0])
	}
	if !strings.Contains(tc.Text, "additionalProperties") {
		t.Error("schema resource should contain the closed-shape marker")
	}
}
