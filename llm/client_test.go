package llm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"zendo/types"
)

type stubProvider struct {
	out types.BreakdownOutput
	err error
}

func (s *stubProvider) BreakdownTask(ctx context.Context, input string) (types.BreakdownOutput, error) {
	return s.out, s.err
}

func TestClient_EmptyInputIsAnError(t *testing.T) {
	c := NewClient(&stubProvider{}, time.Second, nil)
	if _, err := c.Breakdown(context.Background(), "   "); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestClient_ProviderFailureFallsBack(t *testing.T) {
	c := NewClient(&stubProvider{err: fmt.Errorf("boom")}, time.Second, nil)
	out, err := c.Breakdown(context.Background(), "buy groceries")
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	want := Fallback("buy groceries")
	if out.RefinedTitle != want.RefinedTitle || out.Priority != want.Priority || len(out.Subtasks) != 0 {
		t.Errorf("got %+v, want exact fallback %+v", out, want)
	}
}

func TestClient_OfflineShortCircuits(t *testing.T) {
	provider := &stubProvider{out: types.BreakdownOutput{RefinedTitle: "should not be used"}}
	c := NewClient(provider, time.Second, func() bool { return false })
	out, err := c.Breakdown(context.Background(), "plan party")
	if err != nil {
		t.Fatalf("offline path must not error: %v", err)
	}
	if out.RefinedTitle != "plan party" {
		t.Errorf("offline must use fallback, got %+v", out)
	}
}

func TestClient_SanitizesModelOutput(t *testing.T) {
	provider := &stubProvider{out: types.BreakdownOutput{
		RefinedTitle: "  Organize the garage  ",
		Priority:     "URGENT!!",
		Subtasks:     []string{" one ", "", "two", "three", "four", "five", "six"},
	}}
	c := NewClient(provider, time.Second, nil)
	out, err := c.Breakdown(context.Background(), "garage")
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if out.RefinedTitle != "Organize the garage" {
		t.Errorf("title not trimmed: %q", out.RefinedTitle)
	}
	if out.Priority != "Medium" {
		t.Errorf("unknown priority must default to Medium, got %q", out.Priority)
	}
	if len(out.Subtasks) != MaxSubtasks {
		t.Errorf("got %d subtasks, want cap of %d", len(out.Subtasks), MaxSubtasks)
	}
	if out.Subtasks[0] != "one" || out.Subtasks[1] != "two" {
		t.Errorf("blank subtasks must be dropped, got %v", out.Subtasks)
	}
}

func TestClient_EmptyTitleFallsBackToInput(t *testing.T) {
	provider := &stubProvider{out: types.BreakdownOutput{Priority: "High"}}
	c := NewClient(provider, time.Second, nil)
	out, err := c.Breakdown(context.Background(), "water plants")
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if out.RefinedTitle != "water plants" {
		t.Errorf("empty title must fall back to input, got %q", out.RefinedTitle)
	}
	if out.Priority != "High" {
		t.Errorf("valid priority must survive, got %q", out.Priority)
	}
}

func TestTryExtractBreakdownJSON(t *testing.T) {
	raw := "Here you go:\n```json\n{\"refinedTitle\":\"Do it\",\"priority\":\"Low\",\"subtasks\":[\"a\"]}\n```"
	out, ok := tryExtractBreakdownJSON(raw)
	if !ok {
		t.Fatal("expected JSON to be extracted from fenced response")
	}
	if out.RefinedTitle != "Do it" || out.Priority != "Low" || len(out.Subtasks) != 1 {
		t.Errorf("unexpected parse: %+v", out)
	}

	if _, ok := tryExtractBreakdownJSON("no json here"); ok {
		t.Error("expected extraction to fail on plain text")
	}
}
