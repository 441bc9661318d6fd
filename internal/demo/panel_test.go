package demo

import "testing"

func TestToolButtonsWarnBeforeInitialize(t *testing.T) {
	var c Connection

	for _, out := range []Outcome{ListTools(&c), CallTool(&c)} {
		if !out.Warning() {
			t.Errorf("%s: expected warning branch, got %q", out.Action, out.Kind)
		}
		if out.Message != NotConnectedMessage {
			t.Errorf("%s: message = %q, want %q", out.Action, out.Message, NotConnectedMessage)
		}
		if len(out.Lines) != 0 {
			t.Errorf("%s: expected no lines, got %v", out.Action, out.Lines)
		}
	}
	if c.Connected {
		t.Error("tool buttons must not connect")
	}
}

func TestListToolsAfterInitialize(t *testing.T) {
	var c Connection
	Initialize(&c)

	out := ListTools(&c)
	if out.Warning() {
		t.Fatal("expected success branch after Initialize")
	}
	want := []string{"create_invoice", "send_email", "get_customer", "update_billing"}
	if len(out.Lines) != len(want) {
		t.Fatalf("got %d tools, want %d", len(out.Lines), len(want))
	}
	for i, name := range want {
		if out.Lines[i] != name {
			t.Errorf("tool[%d] = %q, want %q", i, out.Lines[i], name)
		}
	}
}

func TestCallToolAfterInitialize(t *testing.T) {
	var c Connection
	Initialize(&c)

	out := CallTool(&c)
	want := []string{
		"Tool called: create_invoice",
		"Result: Invoice #12345 created successfully",
	}
	if len(out.Lines) != 2 {
		t.Fatalf("got %v, want %v", out.Lines, want)
	}
	for i := range want {
		if out.Lines[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, out.Lines[i], want[i])
		}
	}
}

func TestInitializeIdempotent(t *testing.T) {
	for n := 1; n <= 5; n++ {
		var c Connection
		var last Outcome
		for i := 0; i < n; i++ {
			last = Initialize(&c)
		}
		if !c.Connected {
			t.Errorf("n=%d: expected connected", n)
		}
		if last.Kind != KindSuccess || last.Message != "✅ MCP connection initialized!" {
			t.Errorf("n=%d: unexpected outcome %+v", n, last)
		}
	}
}

func TestRunDispatch(t *testing.T) {
	var c Connection
	if out := Run(&c, ActionCallTool); !out.Warning() {
		t.Error("expected warning before initialize")
	}
	Run(&c, ActionInitialize)
	if out := Run(&c, ActionListTools); out.Action != ActionListTools || out.Warning() {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestRunRejectsNonPanelActions(t *testing.T) {
	var c Connection
	Initialize(&c)

	for _, a := range []Action{ActionRunCode, "shutdown", ""} {
		out := Run(&c, a)
		if !out.Warning() {
			t.Errorf("Run(%q): expected warning, got %+v", a, out)
		}
		if len(out.Lines) != 0 {
			t.Errorf("Run(%q) should not call a tool, got %v", a, out.Lines)
		}
		if out.Action != a {
			t.Errorf("Run(%q): action = %q", a, out.Action)
		}
	}
	if !c.Connected {
		t.Error("rejected actions must not change the connection")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
		ok   bool
	}{
		{"initialize", ActionInitialize, true},
		{"list-tools", ActionListTools, true},
		{"call-tool", ActionCallTool, true},
		{"run-code", "", false},
		{"shutdown", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAction(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRunCode(t *testing.T) {
	out := RunCode("class MyAgent: pass")
	if out.Message != "Code executed! (This is a simulation)" {
		t.Errorf("message = %q", out.Message)
	}
	if out.Code != "Output: Agent created successfully!" {
		t.Errorf("code = %q", out.Code)
	}
}

func TestCatalogMatchesNames(t *testing.T) {
	for _, name := range ToolNames() {
		tool, ok := LookupTool(name)
		if !ok {
			t.Fatalf("LookupTool(%q) not found", name)
		}
		if tool.Result == "" {
			t.Errorf("%s has no canned result", name)
		}
	}
	if _, ok := LookupTool("delete_everything"); ok {
		t.Error("unexpected tool found")
	}
}
