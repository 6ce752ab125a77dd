// Package mcp exposes the portal's reference data as MCP tools so assistants can cite the
// same provisions and cases the portal shows.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"legalgpt-portal/app"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/models"
	"legalgpt-portal/view"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const Version = "0.1.0"

// CategorySummary names a category and its size
type CategorySummary struct {
	Name       string `json:"name"`
	Provisions int    `json:"provisions"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []CategorySummary `json:"categories"`
}

type GetProvisionsRequest struct {
	Category string `json:"category"` // category name or "all"
}

type GetProvisionsResponse struct {
	Categories []models.Category `json:"categories"`
	Available  []string          `json:"available,omitempty"` // set when the category is unknown
}

type ListCasesRequest struct {
	Query string `json:"query"` // optional case-insensitive filter on title, court and summary
}

type ListCasesResponse struct {
	Cases []models.Case `json:"cases"`
}

type GetProjectRequest struct{}

type RenderSectionRequest struct {
	Section string `json:"section"` // section id
}

type RenderSectionResponse struct {
	Section  string `json:"section"`
	Markdown string `json:"markdown"`
}

// NewServer creates a new MCP server with the knowledge base tools. When a is non-nil the
// render_section tool is registered as well.
func NewServer(kb *knowledge.KnowledgeBase, a *app.App) *server.MCPServer {
	s := server.NewMCPServer(
		"Legal-GPT Reference MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	listCategoriesTool := mcp.NewTool("list_categories",
		mcp.WithDescription("List the US legal provision categories in display order with their provision counts"),
	)
	s.AddTool(listCategoriesTool, mcp.NewTypedToolHandler(listCategoriesHandler(kb)))

	getProvisionsTool := mcp.NewTool("get_provisions",
		mcp.WithDescription("Get the provisions of one category, or of every category with 'all'. An unknown category returns no provisions and lists the available ones"),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category name (e.g. 'Tort Law') or 'all'"),
		),
	)
	s.AddTool(getProvisionsTool, mcp.NewTypedToolHandler(getProvisionsHandler(kb)))

	listCasesTool := mcp.NewTool("list_cases",
		mcp.WithDescription("List landmark Supreme Court cases with court, citation, summary and key holding"),
		mcp.WithString("query",
			mcp.Description("Optional text to filter cases by title, court or summary"),
		),
	)
	s.AddTool(listCasesTool, mcp.NewTypedToolHandler(listCasesHandler(kb)))

	getProjectTool := mcp.NewTool("get_project",
		mcp.WithDescription("Get the project description, features, acknowledgments and terms of use"),
	)
	s.AddTool(getProjectTool, mcp.NewTypedToolHandler(getProjectHandler(kb)))

	if a != nil {
		renderSectionTool := mcp.NewTool("render_section",
			mcp.WithDescription("Render one portal section as Markdown"),
			mcp.WithString("section",
				mcp.Required(),
				mcp.Description("Section id: consultation, provisions, cases or about"),
			),
		)
		s.AddTool(renderSectionTool, mcp.NewTypedToolHandler(renderSectionHandler(a)))
	}

	return s
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	responseBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseBytes)), nil
}

func listCategoriesHandler(kb *knowledge.KnowledgeBase) func(ctx context.Context, request mcp.CallToolRequest, args ListCategoriesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ListCategoriesRequest) (*mcp.CallToolResult, error) {
		resp := ListCategoriesResponse{Categories: []CategorySummary{}}
		for _, name := range kb.Categories() {
			provisions, _ := kb.Provisions(name)
			resp.Categories = append(resp.Categories, CategorySummary{Name: name, Provisions: len(provisions)})
		}
		return jsonResult(resp)
	}
}

func getProvisionsHandler(kb *knowledge.KnowledgeBase) func(ctx context.Context, request mcp.CallToolRequest, args GetProvisionsRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetProvisionsRequest) (*mcp.CallToolResult, error) {
		if args.Category == "" {
			return mcp.NewToolResultError("category is required"), nil
		}
		resp := GetProvisionsResponse{Categories: kb.Select(args.Category)}
		if args.Category != knowledge.AllCategories && !kb.HasCategory(args.Category) {
			resp.Available = kb.Categories()
		}
		return jsonResult(resp)
	}
}

func listCasesHandler(kb *knowledge.KnowledgeBase) func(ctx context.Context, request mcp.CallToolRequest, args ListCasesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ListCasesRequest) (*mcp.CallToolResult, error) {
		q := strings.ToLower(strings.TrimSpace(args.Query))
		resp := ListCasesResponse{Cases: []models.Case{}}
		for _, c := range kb.Cases() {
			haystack := strings.ToLower(c.Title + " " + c.Court + " " + c.Summary)
			if q == "" || strings.Contains(haystack, q) {
				resp.Cases = append(resp.Cases, c)
			}
		}
		return jsonResult(resp)
	}
}

func getProjectHandler(kb *knowledge.KnowledgeBase) func(ctx context.Context, request mcp.CallToolRequest, args GetProjectRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetProjectRequest) (*mcp.CallToolResult, error) {
		return jsonResult(kb.Project())
	}
}

func renderSectionHandler(a *app.App) func(ctx context.Context, request mcp.CallToolRequest, args RenderSectionRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args RenderSectionRequest) (*mcp.CallToolResult, error) {
		if args.Section == "" {
			return mcp.NewToolResultError("section is required"), nil
		}
		node := a.SectionNode(app.SectionID(args.Section))
		if node == nil {
			return mcp.NewToolResultError(fmt.Sprintf("unknown section %q", args.Section)), nil
		}
		md, err := view.Markdown(node)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render section: %v", err)), nil
		}
		return jsonResult(RenderSectionResponse{Section: args.Section, Markdown: md})
	}
}

// NewHTTPServer wraps s in the streamable HTTP transport
func NewHTTPServer(s *server.MCPServer, endpoint string) *server.StreamableHTTPServer {
	if endpoint == "" {
		endpoint = "/mcp"
	}
	return server.NewStreamableHTTPServer(s, server.WithEndpointPath(endpoint))
}
