package converter

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// ItemModel представляет запись таблицы items в PostgreSQL.
// Остатки по размерам хранятся плоскими колонками.
type ItemModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CategoryID  *int64     `db:"category_id"`
	Price       int64      `db:"price"`
	StockNone   int32      `db:"stock_none"`
	StockSmall  int32      `db:"stock_small"`
	StockMedium int32      `db:"stock_medium"`
	StockLarge  int32      `db:"stock_large"`
	StockXL     int32      `db:"stock_extra_large"`
	ImageKey    *string    `db:"image_key"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	EntityID    int64                   `db:"entity_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
