package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rwx-cloud/longlines/internal/cli"
	"github.com/rwx-cloud/longlines/internal/text"
	"go.uber.org/zap"
)

type ServeConfig struct {
	Version string
	Logger  *zap.SugaredLogger
}

// Serve runs the server over stdin and stdout until the client disconnects.
func Serve(ctx context.Context, config ServeConfig) error {
	server := NewServer(ServerConfig(config))
	return server.Run(ctx, &mcp.StdioTransport{})
}

type Server struct {
	ms  *mcp.Server
	log *zap.SugaredLogger
}

type ServerConfig struct {
	Version string
	Logger  *zap.SugaredLogger
}

func NewServer(config ServerConfig) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "longlines-mcp-server",
		Version: config.Version,
	}, &mcp.ServerOptions{})

	log := config.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	server := &Server{ms: mcpServer, log: log}
	server.addTools()

	return server
}

func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.ms.Run(ctx, transport)
}

func (s *Server) addTools() {
	mcp.AddTool(s.ms, &mcp.Tool{
		Name: "wrap_text",
		Description: `Insert line breaks into text so that no line is longer than max_length characters.

Lines are broken at spaces. A word longer than max_length is kept whole on its own line.
Existing line breaks (CR, LF, form feed) are normalized to a single LF, and every output
line ends with LF. Text that already fits, or a max_length below 1, is returned unchanged.

Strategies:
- frame (default): greedy breaking at the last space that keeps the line within the limit
- reflow: fills each line with as many whole words as fit`,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
	}, s.wrapText)
}

type WrapTextInput struct {
	Text      string `json:"text,omitempty" jsonschema:"The text to wrap"`
	MaxLength *int   `json:"max_length,omitempty" jsonschema:"The maximum line length. Defaults to 60"`
	Strategy  string `json:"strategy,omitempty" jsonschema:"Either frame or reflow. Defaults to frame"`
}

type WrapTextOutput struct {
	Lines []string `json:"lines" jsonschema:"The wrapped lines without terminators"`
}

func (s *Server) wrapText(ctx context.Context, req *mcp.CallToolRequest, input WrapTextInput) (*mcp.CallToolResult, WrapTextOutput, error) {
	strategy, err := cli.ParseStrategy(input.Strategy)
	if err != nil {
		return nil, WrapTextOutput{}, err
	}

	maxLength := text.DefaultMaxLength
	if input.MaxLength != nil {
		maxLength = *input.MaxLength
	}

	wrapped := strategy.Wrap(input.Text, maxLength)
	s.log.Debugw("wrap_text", "bytes", len(input.Text), "max-length", maxLength, "strategy", strategy)

	return mcpToolTextResult(wrapped), WrapTextOutput{Lines: text.SplitLines(wrapped)}, nil
}

func mcpToolTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: text,
			},
		},
	}
}
