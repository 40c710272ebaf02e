package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

// Dispatcher receives the events drained from an aggregate after its unit of
// work commits. Delivery (broker, outbox relay) lives behind this interface,
// outside this service.
type Dispatcher interface {
	Dispatch(ctx context.Context, events []domain.Event) error
}

// LogDispatcher writes each event as a JSON line. It stands in for a real
// pipeline in tests and local runs.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(_ context.Context, events []domain.Event) error {
	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.EventName(), err)
		}
		log.Printf("event %s: %s", e.EventName(), data)
	}
	return nil
}
