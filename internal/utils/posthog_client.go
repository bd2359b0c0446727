package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// defaultPosthogEndpoint is used when POSTHOG_ENDPOINT is unset.
const defaultPosthogEndpoint = "https://eu.i.posthog.com"

// PosthogClientWrapper reports API usage events. Without an API key every call is a no-op.
type PosthogClientWrapper struct {
	client posthog.Client
	logger *slog.Logger
}

// InitializePosthogClient connects to PostHog when apiKey is set. Failures disable
// analytics instead of stopping the service.
func InitializePosthogClient(apiKey, endpoint string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Info("PostHog API key not set, usage analytics disabled")
		return &PosthogClientWrapper{}
	}
	if endpoint == "" {
		endpoint = defaultPosthogEndpoint
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("PostHog client setup failed, usage analytics disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	logger.Info("PostHog client initialized", slog.String("endpoint", endpoint))
	return &PosthogClientWrapper{client: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.client != nil
}

// Enqueue queues one event for distinctID. Delivery is asynchronous.
func (w *PosthogClientWrapper) Enqueue(distinctID, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	capture := posthog.Capture{DistinctId: distinctID, Event: event, Properties: properties}
	if err := w.client.Enqueue(capture); err != nil {
		w.logger.Warn("PostHog enqueue failed", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.client.Close(); err != nil {
		w.logger.Warn("PostHog close failed", slog.String("error", err.Error()))
	}
}
