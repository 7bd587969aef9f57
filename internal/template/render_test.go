package template

import (
	"strings"
	"testing"
)

func TestRenderBody(t *testing.T) {
	habit := HabitData{
		Name:      "Morning pages",
		Category:  "personal",
		Frequency: "daily",
		Priority:  "high",
	}

	got := RenderBody("{{habit.name}} ({{habit.category}}, {{habit.frequency}}, {{habit.priority}})", habit)
	want := "Morning pages (personal, daily, high)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderBodyLeavesUnknownVariables(t *testing.T) {
	got := RenderBody("{{habit.name}} {{unknown.var}}", HabitData{Name: "Run"})
	if got != "Run {{unknown.var}}" {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultPromptBodyRenders(t *testing.T) {
	got := RenderBody(DefaultPromptBody, HabitData{Name: "Read", Category: "learning", Frequency: "daily"})
	if strings.Contains(got, "{{habit.") {
		t.Fatalf("unrendered variables remain: %q", got)
	}
}
