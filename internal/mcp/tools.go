package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/deepdive/internal/demo"
)

type catalogTool struct {
	spec demo.Tool
	tool mcp.Tool
}

// catalogTools converts the demo catalog into MCP tool definitions.
func catalogTools() []catalogTool {
	out := make([]catalogTool, 0, len(demo.Catalog))
	for _, t := range demo.Catalog {
		out = append(out, catalogTool{spec: t, tool: newTool(t)})
	}
	return out
}

func newTool(t demo.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		popts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			popts = append(popts, mcp.Required())
		}
		if p.Type == "number" {
			opts = append(opts, mcp.WithNumber(p.Name, popts...))
		} else {
			opts = append(opts, mcp.WithString(p.Name, popts...))
		}
	}
	return mcp.NewTool(t.Name, opts...)
}

// customerResource serves customer records by id, e.g. customer://123.
var customerResource = mcp.NewResourceTemplate(
	"customer://{id}",
	"customer_data",
	mcp.WithTemplateDescription("Customer information"),
	mcp.WithTemplateMIMEType("application/json"),
)
