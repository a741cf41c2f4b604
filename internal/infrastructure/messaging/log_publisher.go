package messaging

import (
	"context"
	"log/slog"

	"github.com/chynaenye/microinsurance-predictor/pkg/events"
)

// LogPublisher implements port.EventPublisher by writing each domain event to
// the structured log. The assessment pipeline has no broker; downstream
// consumers tail the event log instead.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a new log-backed event publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish writes domain events to the log.
func (p *LogPublisher) Publish(_ context.Context, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		p.logger.Info("publishing event",
			slog.String("event_id", evt.EventID().String()),
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID().String()),
			slog.String("aggregate_type", evt.AggregateType()),
			slog.Int("payload_size", len(evt.Payload())),
		)

		p.logger.Debug("event payload",
			slog.String("event_type", evt.EventType()),
			slog.String("payload", string(evt.Payload())),
		)
	}

	return nil
}
