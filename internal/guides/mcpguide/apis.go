package mcpguide

import (
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type apiMethodRow struct {
	Method, Purpose, Direction string
}

func (r apiMethodRow) Cells() []string { return []string{r.Method, r.Purpose, r.Direction} }

const (
	clientToServer = "Client → Server"
	serverToClient = "Server → Client"
)

var apiMethods = []apiMethodRow{
	{"initialize", "Initialize connection between client and server", clientToServer},
	{"initialized", "Confirm successful initialization", serverToClient},
	{"tools/list", "Get list of available tools", clientToServer},
	{"tools/call", "Execute a specific tool", clientToServer},
	{"resources/list", "Get list of available resources", clientToServer},
	{"resources/read", "Read data from a resource", clientToServer},
	{"notifications/initialized", "Notify about successful initialization", serverToClient},
	{"notifications/tools/list_changed", "Notify about tool list changes", serverToClient},
}

const clientInit = `// Initialize MCP client
const client = new Client({
  name: "my-ai-app",
  version: "1.0.0"
});

// Connect to server
await client.connect(transport);

// Initialize connection
const initResult = await client.request({
  method: "initialize",
  params: {
    protocolVersion: "2024-11-05",
    capabilities: {
      tools: {},
      resources: {}
    },
    clientInfo: {
      name: "my-ai-app",
      version: "1.0.0"
    }
  }
});

console.log("Initialized:", initResult);`

const serverInit = `// MCP Server implementation
import { McpServer } from "@modelcontextprotocol/sdk/server/mcp.js";

const server = new McpServer({
  name: "billing-server",
  version: "1.0.0"
});

// Handle initialization
server.setRequestHandler("initialize", async (request) => {
  return {
    protocolVersion: "2024-11-05",
    capabilities: {
      tools: {
        listChanged: true
      },
      resources: {
        subscribe: true,
        listChanged: true
      }
    },
    serverInfo: {
      name: "billing-server",
      version: "1.0.0"
    }
  };
});`

const registerTool = `// Register a billing tool
server.registerTool("create_invoice", {
  description: "Create a new invoice",
  inputSchema: {
    type: "object",
    properties: {
      amount: {
        type: "number",
        description: "Invoice amount"
      },
      currency: {
        type: "string",
        description: "Currency code (e.g., USD, EUR)"
      },
      customer_email: {
        type: "string",
        format: "email",
        description: "Customer email address"
      }
    },
    required: ["amount", "currency", "customer_email"]
  }
}, async (params) => {
  const { amount, currency, customer_email } = params;

  // Create invoice logic
  const invoice = {
    id: generateId(),
    amount,
    currency,
    customer_email,
    status: "draft",
    created_at: new Date().toISOString()
  };

  // Store invoice
  invoices.set(invoice.id, invoice);

  return {
    content: [
      {
        type: "text",
        text: JSON.stringify({
          success: true,
          invoice_id: invoice.id,
          message: "Invoice created successfully"
        })
      }
    ]
  };
});`

const useTool = `// List available tools
const toolsResult = await client.request({
  method: "tools/list"
});

console.log("Available tools:", toolsResult.tools);

// Call the create_invoice tool
const invoiceResult = await client.request({
  method: "tools/call",
  params: {
    name: "create_invoice",
    arguments: {
      amount: 150.00,
      currency: "USD",
      customer_email: "customer@example.com"
    }
  }
});

console.log("Invoice created:", invoiceResult);`

const defineResource = `// Register a resource
server.registerResource("customer_data", {
  description: "Customer information",
  mimeType: "application/json"
}, async (uri) => {
  const customerId = uri.path.split('/').pop();
  const customer = customers.get(customerId);

  if (!customer) {
    throw new Error("Customer not found");
  }

  return {
    contents: [
      {
        uri: uri,
        mimeType: "application/json",
        text: JSON.stringify(customer)
      }
    ]
  };
});`

const accessResource = `// List available resources
const resourcesResult = await client.request({
  method: "resources/list"
});

console.log("Available resources:", resourcesResult.resources);

// Read customer data
const customerData = await client.request({
  method: "resources/read",
  params: {
    uri: "customer://123"
  }
});

console.log("Customer data:", customerData);`

const errorHandling = `// Client-side error handling
try {
  const result = await client.request({
    method: "tools/call",
    params: {
      name: "create_invoice",
      arguments: invalidParams
    }
  });
} catch (error) {
  if (error.code === -32602) {
    console.error("Invalid parameters:", error.message);
  } else if (error.code === -32603) {
    console.error("Internal server error:", error.message);
  } else {
    console.error("Unknown error:", error);
  }
}

// Server-side error handling
server.registerTool("risky_operation", {
  description: "An operation that might fail",
  inputSchema: { /* ... */ }
}, async (params) => {
  try {
    // Perform risky operation
    const result = await performRiskyOperation(params);

    return {
      content: [
        {
          type: "text",
          text: JSON.stringify({ success: true, result })
        }
      ]
    };
  } catch (error) {
    return {
      content: [
        {
          type: "text",
          text: JSON.stringify({
            success: false,
            error: error.message
          })
        }
      ],
      isError: true
    };
  }
});`

func js(caption, src string) content.Code {
	return content.Code{Lang: "javascript", Caption: caption, Source: src}
}

func apis(st *session.State) content.Section {
	panel := content.DemoPanel{Connection: st.Demo}
	if o, ok := st.TakeFlash(demo.ActionInitialize, demo.ActionListTools, demo.ActionCallTool); ok {
		panel.Outcome = &o
	}

	return content.Section{
		Header: "🔧 MCP APIs & Examples",
		Blocks: []content.Block{
			h3("📡 MCP API Overview"),
			md("MCP provides a standardized set of APIs that enable AI applications to interact with external systems.\n" +
				"The protocol defines specific message types and formats for different operations."),

			h3("🛠️ Core API Methods"),
			content.NewTable([]string{"Method", "Purpose", "Direction"}, apiMethods),

			h3("💻 Code Examples"),
			h4("1. Connection Initialization"),
			halves(
				[]content.Block{js("Client Side (JavaScript/TypeScript)", clientInit)},
				[]content.Block{js("Server Side (TypeScript)", serverInit)},
			),

			h4("2. Tool Registration and Usage"),
			halves(
				[]content.Block{js("Server: Register Tool", registerTool)},
				[]content.Block{js("Client: Use Tool", useTool)},
			),

			h4("3. Resource Access"),
			halves(
				[]content.Block{js("Server: Define Resource", defineResource)},
				[]content.Block{js("Client: Access Resource", accessResource)},
			),

			h4("4. Error Handling"),
			js("", errorHandling),

			h3("🎮 Interactive MCP Example"),
			md("Try out a simulated MCP interaction:"),
			panel,
		},
	}
}
