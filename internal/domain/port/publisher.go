package port

import (
	"context"

	"github.com/chynaenye/microinsurance-predictor/pkg/events"
)

// EventPublisher delivers domain events to interested consumers. Publishing
// happens after the assessment has been computed; a delivery failure must not
// invalidate the assessment itself.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
