package services

import (
	"context"
	"io"
	"log/slog"

	"finance-ledger/internal/events"

	"github.com/prometheus/client_golang/prometheus"
)

type recordingPublisher struct {
	published []*events.LedgerEvent
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, event *events.LedgerEvent) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, event)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func newTestLogger() LedgerLoggerInterface {
	return NewLedgerLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}
