package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome labels recorded with RPC and tool call metrics.
const (
	RPCOutcomeSuccess = "success"
	RPCOutcomeError   = "error"

	ToolCallOutcomeSuccess = "success"
	ToolCallOutcomeError   = "error"
)

// CustomMetrics records mcpbridge-specific measurements.
// The mediator and API server depend only on this interface; when telemetry
// is disabled they receive the no-op implementation and record into the void.
type CustomMetrics interface {
	// RecordRPC records one dispatched JSON-RPC method call.
	RecordRPC(ctx context.Context, method, outcome string, duration time.Duration)

	// RecordToolCall records one tool invocation.
	RecordToolCall(ctx context.Context, tool, outcome string, duration time.Duration)
}

// noopCustomMetrics discards all measurements.
type noopCustomMetrics struct{}

// NewNoopCustomMetrics returns a CustomMetrics that does nothing.
func NewNoopCustomMetrics() CustomMetrics {
	return &noopCustomMetrics{}
}

func (n *noopCustomMetrics) RecordRPC(context.Context, string, string, time.Duration)      {}
func (n *noopCustomMetrics) RecordToolCall(context.Context, string, string, time.Duration) {}

// otelCustomMetrics records measurements through OpenTelemetry instruments.
type otelCustomMetrics struct {
	rpcCount    metric.Int64Counter
	rpcDuration metric.Float64Histogram

	toolCallCount    metric.Int64Counter
	toolCallDuration metric.Float64Histogram
}

// NewOtelCustomMetrics creates the instruments on the given meter.
func NewOtelCustomMetrics(meter metric.Meter) (CustomMetrics, error) {
	rpcCount, err := meter.Int64Counter(
		"mcpbridge.rpc.calls",
		metric.WithDescription("Number of JSON-RPC method calls dispatched"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc call counter: %w", err)
	}
	rpcDuration, err := meter.Float64Histogram(
		"mcpbridge.rpc.duration",
		metric.WithDescription("Duration of JSON-RPC method calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc duration histogram: %w", err)
	}
	toolCallCount, err := meter.Int64Counter(
		"mcpbridge.tool.calls",
		metric.WithDescription("Number of tool invocations"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool call counter: %w", err)
	}
	toolCallDuration, err := meter.Float64Histogram(
		"mcpbridge.tool.duration",
		metric.WithDescription("Duration of tool invocations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool duration histogram: %w", err)
	}

	return &otelCustomMetrics{
		rpcCount:         rpcCount,
		rpcDuration:      rpcDuration,
		toolCallCount:    toolCallCount,
		toolCallDuration: toolCallDuration,
	}, nil
}

func (m *otelCustomMetrics) RecordRPC(ctx context.Context, method, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	)
	m.rpcCount.Add(ctx, 1, attrs)
	m.rpcDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *otelCustomMetrics) RecordToolCall(ctx context.Context, tool, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	)
	m.toolCallCount.Add(ctx, 1, attrs)
	m.toolCallDuration.Record(ctx, duration.Seconds(), attrs)
}
