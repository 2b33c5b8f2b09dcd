package usecase

import (
	"context"
	"encoding/json"
)

// emitOutboxEvent записывает событие инвентаря в outbox внутри текущей транзакции.
func emitOutboxEvent(ctx context.Context, repo OutboxRepository, eventType OutboxEventType, entity string, id int64, name, url string) error {
	payload, err := json.Marshal(EventPayload{
		Entity: entity,
		ID:     id,
		Name:   name,
		URL:    url,
	})
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, NewOutboxEvent(eventType, id, payload))
	return err
}
