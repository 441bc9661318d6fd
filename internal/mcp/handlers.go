package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/deepdive/internal/demo"
)

// customers holds the records the customer resource can read.
var customers = map[string]string{
	"123": `{"id":"123","name":"Jane Doe","email":"customer@example.com","plan":"pro"}`,
}

// toolHandler checks the required parameters of t and returns its canned
// result.
func (s *Server) toolHandler(t demo.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		for _, p := range t.Params {
			if !p.Required {
				continue
			}
			if err := requireParam(request, p); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		if t.Name == demo.ToolCreateInvoice {
			if amount := request.GetFloat("amount", 0); amount <= 0 {
				return mcp.NewToolResultError(fmt.Sprintf("invalid parameter amount: must be positive, got %v", amount)), nil
			}
		}

		return mcp.NewToolResultText(t.Result), nil
	}
}

func requireParam(request mcp.CallToolRequest, p demo.Param) error {
	var err error
	switch p.Type {
	case "number":
		_, err = request.RequireFloat(p.Name)
	default:
		var v string
		v, err = request.RequireString(p.Name)
		if err == nil && strings.TrimSpace(v) == "" {
			err = fmt.Errorf("empty value")
		}
	}
	if err != nil {
		return fmt.Errorf("missing required parameter: %s", p.Name)
	}
	return nil
}

// handleReadCustomer returns the JSON record for a customer:// URI.
func (s *Server) handleReadCustomer(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	id := strings.TrimPrefix(uri, "customer://")
	record, ok := customers[id]
	if !ok {
		return nil, fmt.Errorf("customer not found: %s", id)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     record,
		},
	}, nil
}
