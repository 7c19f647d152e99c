// Package telemetry provides OpenTelemetry metrics for the mcpbridge server.
package telemetry

import (
	"context"
	"fmt"

	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Config controls telemetry initialization.
type Config struct {
	ServiceName string
	Enabled     bool
}

// Providers bundles the OpenTelemetry providers created at startup.
// When telemetry is disabled, Init returns a Providers whose methods are
// all safe no-ops, so call sites never branch on the enabled flag.
type Providers struct {
	serviceName string
	enabled     bool

	meterProvider *sdkmetric.MeterProvider

	// Meter creates instruments for custom metrics.
	Meter metric.Meter
}

// Init sets up the metrics pipeline with a Prometheus exporter.
// The exporter registers with the default Prometheus registry, so the
// metrics surface through the promhttp handler mounted by the API server.
func Init(_ context.Context, c *Config) (*Providers, error) {
	p := &Providers{
		serviceName: c.ServiceName,
		enabled:     c.Enabled,
	}
	if !c.Enabled {
		return p, nil
	}

	exporter, err := otelprom.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	p.Meter = p.meterProvider.Meter(c.ServiceName)

	return p, nil
}

// IsEnabled returns true if telemetry was enabled at initialization.
func (p *Providers) IsEnabled() bool {
	return p.enabled
}

// ServiceName returns the service name telemetry was initialized with.
func (p *Providers) ServiceName() string {
	return p.serviceName
}

// Shutdown flushes and stops the providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}
