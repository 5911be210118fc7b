package mcpserver

import (
	"context"
	"strings"

	"digitaltwin-rag-be/internal/dto"
	"digitaltwin-rag-be/internal/service"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the digital twin to MCP clients over stdio.
type Server struct {
	twinService    service.ITwinService
	profileService service.IProfileService
	server         *mcp.Server
}

func NewServer(twinService service.ITwinService, profileService service.IProfileService) *Server {
	impl := &mcp.Implementation{
		Name:    "digital-twin",
		Version: Version,
	}

	s := &Server{
		twinService:    twinService,
		profileService: profileService,
		server:         mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// QueryInput is the input schema for the query_digital_twin tool.
type QueryInput struct {
	Question       string `json:"question" jsonschema:"question to ask the digital twin"`
	CompanyContext string `json:"company_context,omitempty" jsonschema:"company name to tailor the answer for"`
}

// QueryOutput is the output schema for the query_digital_twin tool.
type QueryOutput struct {
	Response     string `json:"response"`
	QueryType    string `json:"query_type"`
	SourcesCount int    `json:"sources_count"`
}

// QuestionsOutput is the output schema for the get_sample_questions tool.
type QuestionsOutput struct {
	Questions []string `json:"questions"`
}

// ConnectionOutput is the output schema for the test_connection tool.
type ConnectionOutput struct {
	Status      string `json:"status"`
	Provider    string `json:"provider"`
	VectorCount int64  `json:"vector_count"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_digital_twin",
		Description: "Ask the digital twin an interview question and get a grounded answer",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sample_questions",
		Description: "Get sample questions to ask the digital twin",
	}, s.handleSampleQuestions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "test_connection",
		Description: "Test connection to the digital twin knowledge base",
	}, s.handleTestConnection)
}

func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: Question is required"}},
			IsError: true,
		}, QueryOutput{}, nil
	}

	res, err := s.twinService.Ask(ctx, &dto.AskRequest{
		Question:       input.Question,
		CompanyContext: input.CompanyContext,
	})
	if err != nil {
		return nil, QueryOutput{}, err
	}

	return nil, QueryOutput{
		Response:     res.Response,
		QueryType:    res.QueryType,
		SourcesCount: res.SourcesCount,
	}, nil
}

func (s *Server) handleSampleQuestions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, QuestionsOutput, error) {
	var questions []string
	for _, group := range s.profileService.SampleQuestions() {
		questions = append(questions, group.Questions...)
	}
	return nil, QuestionsOutput{Questions: questions}, nil
}

func (s *Server) handleTestConnection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ConnectionOutput, error) {
	status, err := s.profileService.Status(ctx)
	if err != nil {
		return nil, ConnectionOutput{}, err
	}

	out := ConnectionOutput{
		Status:      "ok",
		Provider:    status.Provider,
		VectorCount: status.VectorCount,
	}
	if !status.Ready {
		out.Status = "unreachable"
	}
	return nil, out, nil
}
