package agentguide

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/session"
)

func TestEveryTabRenders(t *testing.T) {
	app := New()
	headers := []string{
		"🏗️ AI Agent Fundamentals",
		"🏛️ Agent Architectures & Patterns",
		"⚙️ Implementation Patterns",
		"🚀 Advanced Techniques",
		"🏭 Production Considerations",
		"💪 Hands-On Exercises",
	}
	if len(app.Tabs) != len(headers) {
		t.Fatalf("got %d tabs", len(app.Tabs))
	}

	st := session.New("t", ID)
	for i, tab := range app.Tabs {
		sec, err := app.RenderTab(tab.ID, st)
		if err != nil {
			t.Fatalf("RenderTab(%s): %v", tab.ID, err)
		}
		if sec.Header != headers[i] {
			t.Errorf("tab %s header = %q, want %q", tab.ID, sec.Header, headers[i])
		}
		if !st.Visited(tab.ID) {
			t.Errorf("tab %s not marked visited", tab.ID)
		}
	}
}

func TestUnknownTab(t *testing.T) {
	if _, err := New().RenderTab("nope", session.New("t", ID)); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestStepHeadings(t *testing.T) {
	sec, _ := New().RenderTab(TabFundamentals, session.New("t", ID))
	var steps []string
	for _, b := range sec.Blocks {
		if h, ok := b.(content.Heading); ok && h.Style == content.HeadingStep {
			steps = append(steps, h.Text)
		}
	}
	want := "Step 1: Understanding AI Agents|Step 2: Types of AI Agents|Step 3: Core Components"
	if got := strings.Join(steps, "|"); got != want {
		t.Errorf("steps = %s", got)
	}
}

func findEditor(sec content.Section) (content.CodeEditor, bool) {
	for _, b := range sec.Blocks {
		if e, ok := b.(content.CodeEditor); ok {
			return e, true
		}
	}
	return content.CodeEditor{}, false
}

func TestExercisesEditorKeepsCode(t *testing.T) {
	app := New()
	st := session.New("t", ID)
	st.Code = "class Mine: pass"
	st.SetFlash(demo.RunCode(st.Code))

	sec, _ := app.RenderTab(TabExercises, st)
	ed, ok := findEditor(sec)
	if !ok {
		t.Fatal("exercises tab has no editor")
	}
	if ed.Code != "class Mine: pass" {
		t.Errorf("editor code = %q", ed.Code)
	}
	if ed.Outcome == nil || ed.Outcome.Message != "Code executed! (This is a simulation)" {
		t.Fatalf("outcome = %+v", ed.Outcome)
	}
	if ed.Outcome.Code != "Output: Agent created successfully!" {
		t.Errorf("output = %q", ed.Outcome.Code)
	}

	sec, _ = app.RenderTab(TabExercises, st)
	ed, _ = findEditor(sec)
	if ed.Outcome != nil {
		t.Error("outcome should be consumed after one render")
	}
}

func TestExerciseOrder(t *testing.T) {
	if len(Exercises) != 4 {
		t.Fatalf("got %d exercises", len(Exercises))
	}
	for i, ex := range Exercises {
		if !strings.HasPrefix(ex.Title, "Exercise "+string(rune('1'+i))+":") {
			t.Errorf("exercise %d title = %q", i, ex.Title)
		}
	}
	if Exercises[0].StarterCode == "" {
		t.Error("first exercise should ship starter code")
	}
}

func TestMasterWorkerDiagram(t *testing.T) {
	f := masterWorker()
	if len(f.Data) != 4 || len(f.Layout.Annotations) != 3 {
		t.Errorf("nodes=%d arrows=%d", len(f.Data), len(f.Layout.Annotations))
	}
	if f.Data[0].Marker.Size != 60 || f.Data[1].Marker.Size != 40 {
		t.Errorf("sizes = %d, %d", f.Data[0].Marker.Size, f.Data[1].Marker.Size)
	}
}
