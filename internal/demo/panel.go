package demo

// Connection is the simulated MCP connection owned by one dashboard session.
// It starts disconnected and Initialize is the only transition.
type Connection struct {
	Connected bool `json:"connected"`
}

// Status returns the display label of the connection.
func (c *Connection) Status() string {
	if c.Connected {
		return "Connected"
	}
	return "Disconnected"
}

// Action names one of the panel buttons.
type Action string

const (
	ActionInitialize Action = "initialize"
	ActionListTools  Action = "list-tools"
	ActionCallTool   Action = "call-tool"
	ActionRunCode    Action = "run-code"
)

// ParseAction maps a route or message value to a panel action.
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionInitialize, ActionListTools, ActionCallTool:
		return a, true
	}
	return "", false
}

// Outcome kinds map onto the alert styles the dashboard renders.
const (
	KindSuccess = "success"
	KindWarning = "warning"
	KindResult  = "result"
)

// NotConnectedMessage is the warning shown when a tool button is pressed
// before the connection is initialized.
const NotConnectedMessage = "Please initialize connection first"

// Outcome is what one button press renders.
type Outcome struct {
	Action  Action   `json:"action"`
	Kind    string   `json:"kind"`
	Message string   `json:"message,omitempty"`
	Lines   []string `json:"lines,omitempty"`
	Code    string   `json:"code,omitempty"`
}

// Warning reports whether the outcome is the "not connected" branch.
func (o Outcome) Warning() bool { return o.Kind == KindWarning }

// Initialize marks the connection as initialized. Calling it again has no
// further effect.
func Initialize(c *Connection) Outcome {
	c.Connected = true
	return Outcome{
		Action:  ActionInitialize,
		Kind:    KindSuccess,
		Message: "✅ MCP connection initialized!",
	}
}

// ListTools returns the tool names in catalog order, or the warning when the
// connection has not been initialized.
func ListTools(c *Connection) Outcome {
	if !c.Connected {
		return notConnected(ActionListTools)
	}
	return Outcome{
		Action:  ActionListTools,
		Kind:    KindResult,
		Message: "Available tools:",
		Lines:   ToolNames(),
	}
}

// CallTool simulates a create_invoice call.
func CallTool(c *Connection) Outcome {
	if !c.Connected {
		return notConnected(ActionCallTool)
	}
	return Outcome{
		Action: ActionCallTool,
		Kind:   KindResult,
		Lines: []string{
			"Tool called: " + ToolCreateInvoice,
			"Result: " + InvoiceCreatedResult,
		},
	}
}

// Run dispatches a panel action. Actions that are not panel buttons leave
// the connection alone and return a warning.
func Run(c *Connection, a Action) Outcome {
	switch a {
	case ActionInitialize:
		return Initialize(c)
	case ActionListTools:
		return ListTools(c)
	case ActionCallTool:
		return CallTool(c)
	default:
		return Outcome{Action: a, Kind: KindWarning, Message: "Unsupported panel action: " + string(a)}
	}
}

// RunCode pretends to execute code typed into the exercise editor.
func RunCode(src string) Outcome {
	return Outcome{
		Action:  ActionRunCode,
		Kind:    KindSuccess,
		Message: "Code executed! (This is a simulation)",
		Code:    "Output: Agent created successfully!",
	}
}

func notConnected(a Action) Outcome {
	return Outcome{Action: a, Kind: KindWarning, Message: NotConnectedMessage}
}
