// Package telemetry manages anonymous usage reporting. Events carry no
// task content, only command names and coarse outcome flags.
package telemetry

import (
	"io"
	"runtime"
	"time"

	"github.com/posthog/posthog-go"
)

// Event names. Keep this list short; anything task-specific stays out.
const (
	EventTaskAdded      = "task_added"
	EventTaskToggled    = "task_toggled"
	EventTaskDeleted    = "task_deleted"
	EventSubtaskToggled = "subtask_toggled"
	EventBreakdownRun   = "breakdown_run"
	EventServeStarted   = "serve_started"
)

// Client is the interface for telemetry clients, so commands never care
// whether reporting is enabled.
type Client interface {
	// Track enqueues an event without blocking. No-op when disabled.
	Track(event string, properties map[string]any)

	// Close flushes pending events.
	Close() error
}

// enqueuer is the slice of the PostHog client we use; tests substitute it.
type enqueuer interface {
	io.Closer
	Enqueue(msg posthog.Message) error
}

// PostHogClient sends events to PostHog with an anonymous distinct ID.
type PostHogClient struct {
	client      enqueuer
	anonymousID string
	version     string
}

// New creates a telemetry client. It returns a Noop client when reporting
// is disabled or no API key is configured.
func New(enabled bool, apiKey, host, anonymousID, version string) (Client, error) {
	if !enabled || apiKey == "" {
		return Noop{}, nil
	}

	cfg := posthog.Config{
		// The CLI exits quickly, so flush small batches fast.
		BatchSize: 10,
		Interval:  time.Second,
		Logger:    silentLogger{},
	}
	if host != "" {
		cfg.Endpoint = host
	}

	client, err := posthog.NewWithConfig(apiKey, cfg)
	if err != nil {
		return nil, err
	}
	return &PostHogClient{client: client, anonymousID: anonymousID, version: version}, nil
}

func (c *PostHogClient) Track(event string, properties map[string]any) {
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	props.Set("os", runtime.GOOS)
	props.Set("arch", runtime.GOARCH)
	props.Set("app_version", c.version)
	// Keep telemetry anonymous: no person profiles.
	props.Set("$process_person_profile", false)

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.anonymousID,
		Event:      event,
		Properties: props,
	})
}

func (c *PostHogClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Noop is a telemetry client that does nothing.
type Noop struct{}

func (Noop) Track(event string, properties map[string]any) {}
func (Noop) Close() error                                  { return nil }

// silentLogger keeps PostHog transport warnings out of CLI output.
type silentLogger struct{}

func (silentLogger) Debugf(string, ...interface{}) {}
func (silentLogger) Logf(string, ...interface{})   {}
func (silentLogger) Warnf(string, ...interface{})  {}
func (silentLogger) Errorf(string, ...interface{}) {}
