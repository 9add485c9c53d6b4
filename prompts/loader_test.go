package prompts

import (
	"testing"

	"github.com/spf13/afero"
)

func TestGetPrompt_DefaultWhenNoTemplatesDir(t *testing.T) {
	got, err := GetPrompt(KeyBreakdownSystem, "")
	if err != nil {
		t.Fatalf("GetPrompt: %v", err)
	}
	if got != BreakdownSystemPrompt {
		t.Errorf("expected built-in default, got %q", got)
	}
}

func TestGetPrompt_CustomOverride(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/templates/breakdown_system_prompt.txt", []byte("custom persona"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	prev := SetFs(mem)
	defer SetFs(prev)

	got, err := GetPrompt(KeyBreakdownSystem, "/templates")
	if err != nil {
		t.Fatalf("GetPrompt: %v", err)
	}
	if got != "custom persona" {
		t.Errorf("got %q, want custom override", got)
	}

	// Missing file falls back to the default.
	got, err = GetPrompt(KeyBreakdownUser, "/templates")
	if err != nil {
		t.Fatalf("GetPrompt: %v", err)
	}
	if got != BreakdownUserPrompt {
		t.Errorf("expected default for missing override, got %q", got)
	}
}

func TestGetPrompt_UnknownKey(t *testing.T) {
	if _, err := GetPrompt(PromptKey("Nope"), ""); err == nil {
		t.Error("expected error for unknown key")
	}
}
