package demo

// Tool names of the simulated billing server, in listing order.
const (
	ToolCreateInvoice = "create_invoice"
	ToolSendEmail     = "send_email"
	ToolGetCustomer   = "get_customer"
	ToolUpdateBilling = "update_billing"
)

// InvoiceCreatedResult is the canned result of create_invoice.
const InvoiceCreatedResult = "Invoice #12345 created successfully"

// Param describes one tool argument.
type Param struct {
	Name        string
	Type        string // "string" or "number"
	Description string
	Required    bool
}

// Tool is one entry of the simulated billing server catalog.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	// Result is the canned text returned when the tool is called.
	Result string
}

// Catalog is the ordered tool list shared by the dashboard panel and the
// stdio MCP server.
var Catalog = []Tool{
	{
		Name:        ToolCreateInvoice,
		Description: "Create a new invoice",
		Params: []Param{
			{Name: "amount", Type: "number", Description: "Invoice amount", Required: true},
			{Name: "currency", Type: "string", Description: "Currency code (e.g., USD, EUR)", Required: true},
			{Name: "customer_email", Type: "string", Description: "Customer email address", Required: true},
		},
		Result: InvoiceCreatedResult,
	},
	{
		Name:        ToolSendEmail,
		Description: "Send an email to a customer",
		Params: []Param{
			{Name: "to", Type: "string", Description: "Recipient email address", Required: true},
			{Name: "subject", Type: "string", Description: "Email subject", Required: true},
			{Name: "body", Type: "string", Description: "Email body"},
		},
		Result: "Email queued for delivery",
	},
	{
		Name:        ToolGetCustomer,
		Description: "Look up customer information",
		Params: []Param{
			{Name: "customer_id", Type: "string", Description: "Customer identifier", Required: true},
		},
		Result: `{"id":"123","name":"Jane Doe","email":"customer@example.com","plan":"pro"}`,
	},
	{
		Name:        ToolUpdateBilling,
		Description: "Update a customer's billing details",
		Params: []Param{
			{Name: "customer_id", Type: "string", Description: "Customer identifier", Required: true},
			{Name: "plan", Type: "string", Description: "New billing plan"},
		},
		Result: "Billing details updated",
	},
}

// ToolNames returns the catalog names in order.
func ToolNames() []string {
	names := make([]string, len(Catalog))
	for i, t := range Catalog {
		names[i] = t.Name
	}
	return names
}

// LookupTool finds a catalog entry by name.
func LookupTool(name string) (Tool, bool) {
	for _, t := range Catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}
