package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query    string `json:"query" jsonschema:"the AR/VR development question (10 to 500 characters)"`
	Category string `json:"category,omitempty" jsonschema:"optional category hint: Unity, Unreal, Shader or General"`
}

// AskOutput is the output schema for the ask tool. It mirrors the
// response schema shown to CLI users.
type AskOutput struct {
	Query              string          `json:"query"`
	Category           string          `json:"category"`
	SubTasks           []SubTaskOutput `json:"subtasks"`
	CodeSnippet        string          `json:"code_snippet"`
	BestPractices      []string        `json:"best_practices"`
	Gotchas            []string        `json:"gotchas"`
	DifficultyRating   int             `json:"difficulty_rating"`
	DocumentationLinks []string        `json:"documentation_links"`
	EstimatedTime      string          `json:"estimated_time"`
}

// SubTaskOutput is one implementation step in an ask response.
type SubTaskOutput struct {
	Description string `json:"description"`
	CodeSnippet string `json:"code_snippet,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// DiagnoseInput is the input schema for the diagnose tool.
type DiagnoseInput struct {
	ErrorLog string `json:"error_log" jsonschema:"the error log or stack trace to diagnose"`
	Context  string `json:"context,omitempty" jsonschema:"optional context about what the code was doing"`
}

// DiagnoseOutput is the output schema for the diagnose tool.
type DiagnoseOutput struct {
	ErrorType      string   `json:"error_type"`
	Analysis       string   `json:"analysis"`
	Fix            string   `json:"fix"`
	CodeFix        string   `json:"code_fix,omitempty"`
	PreventionTips []string `json:"prevention_tips,omitempty"`
}

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Query    string `json:"query" jsonschema:"the search query for the offline document index"`
	Category string `json:"category,omitempty" jsonschema:"optional category filter: Unity, Unreal, Shader or General"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of documents to return (default 5)"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single indexed document.
type DocumentOutput struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	Category   string  `json:"category"`
	URL        string  `json:"url,omitempty"`
	Similarity float64 `json:"similarity"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer an AR/VR development question with subtasks, code, best practices, gotchas and documentation links",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "diagnose",
		Description: "Diagnose an AR/VR runtime error log and suggest a fix",
	}, s.handleDiagnose)

	if s.ports.Index != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "retrieve",
			Description: "Search the offline document index",
		}, s.handleRetrieve)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	req := domain.QueryRequest{Query: input.Query}
	if input.Category != "" {
		category, err := domain.ParseCategory(input.Category)
		if err != nil {
			return nil, AskOutput{}, err
		}
		req.Category = category
	}

	resp, err := s.ports.Assistant.Answer(ctx, req)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Query:              resp.Query,
		Category:           string(resp.Category),
		SubTasks:           make([]SubTaskOutput, len(resp.SubTasks)),
		CodeSnippet:        resp.CodeSnippet,
		BestPractices:      resp.BestPractices,
		Gotchas:            resp.Gotchas,
		DifficultyRating:   resp.DifficultyRating,
		DocumentationLinks: resp.DocumentationLinks,
		EstimatedTime:      resp.EstimatedTime,
	}
	for i := range resp.SubTasks {
		output.SubTasks[i] = SubTaskOutput{
			Description: resp.SubTasks[i].Description,
			CodeSnippet: resp.SubTasks[i].CodeSnippet,
			Explanation: resp.SubTasks[i].Explanation,
		}
	}

	return nil, output, nil
}

// handleDiagnose handles the diagnose tool invocation.
func (s *Server) handleDiagnose(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DiagnoseInput,
) (*mcp.CallToolResult, DiagnoseOutput, error) {
	diag := s.ports.Debug.Diagnose(input.ErrorLog, input.Context)

	return nil, DiagnoseOutput{
		ErrorType:      diag.ErrorType,
		Analysis:       diag.Analysis,
		Fix:            diag.Fix,
		CodeFix:        diag.CodeFix,
		PreventionTips: diag.PreventionTips,
	}, nil
}

// handleRetrieve handles the retrieve tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 5
	}

	var category domain.Category
	if input.Category != "" {
		parsed, err := domain.ParseCategory(input.Category)
		if err != nil {
			return nil, RetrieveOutput{}, err
		}
		category = parsed
	}

	docs, err := s.ports.Index.Retrieve(ctx, input.Query, category, limit)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentOutput{
			ID:         docs[i].ID,
			Title:      docs[i].Title,
			Content:    docs[i].Content,
			Source:     docs[i].Source,
			Category:   string(docs[i].Category),
			URL:        docs[i].URL,
			Similarity: docs[i].Similarity,
		}
	}

	return nil, output, nil
}
