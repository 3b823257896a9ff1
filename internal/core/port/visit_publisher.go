package port

import (
	"context"

	"adrelay/internal/core/domain"
)

// VisitPublisher ships raw visit events to downstream consumers. Delivery is
// best effort from the caller's point of view.
type VisitPublisher interface {
	PublishVisit(ctx context.Context, event domain.VisitEvent) error
}
