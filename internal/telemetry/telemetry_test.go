package telemetry

import (
	"testing"

	"github.com/posthog/posthog-go"
)

type captureEnqueuer struct {
	messages []posthog.Message
	closed   bool
}

func (c *captureEnqueuer) Enqueue(msg posthog.Message) error {
	c.messages = append(c.messages, msg)
	return nil
}

func (c *captureEnqueuer) Close() error {
	c.closed = true
	return nil
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	client, err := New(false, "key", "", "anon", "1.0")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := client.(Noop); !ok {
		t.Errorf("disabled telemetry must yield Noop, got %T", client)
	}

	client, err = New(true, "", "", "anon", "1.0")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := client.(Noop); !ok {
		t.Errorf("missing API key must yield Noop, got %T", client)
	}
}

func TestPostHogClient_TrackAddsStandardProperties(t *testing.T) {
	enq := &captureEnqueuer{}
	c := &PostHogClient{client: enq, anonymousID: "anon-id", version: "1.2.3"}

	c.Track(EventTaskAdded, map[string]any{"has_subtasks": true})

	if len(enq.messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(enq.messages))
	}
	capture, ok := enq.messages[0].(posthog.Capture)
	if !ok {
		t.Fatalf("unexpected message type %T", enq.messages[0])
	}
	if capture.DistinctId != "anon-id" || capture.Event != EventTaskAdded {
		t.Errorf("unexpected capture: %+v", capture)
	}
	if capture.Properties["app_version"] != "1.2.3" {
		t.Errorf("app_version missing from properties: %v", capture.Properties)
	}
	if capture.Properties["has_subtasks"] != true {
		t.Errorf("custom property lost: %v", capture.Properties)
	}
	if capture.Properties["$process_person_profile"] != false {
		t.Error("person profile processing must be disabled")
	}
}

func TestAnonymousID_StableAcrossLoads(t *testing.T) {
	dir := t.TempDir()
	first, err := AnonymousID(dir)
	if err != nil {
		t.Fatalf("AnonymousID: %v", err)
	}
	second, err := AnonymousID(dir)
	if err != nil {
		t.Fatalf("AnonymousID: %v", err)
	}
	if first == "" || first != second {
		t.Errorf("anonymous ID must persist: %q vs %q", first, second)
	}
}
