package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	CountItemsReferencing(ctx context.Context, categoryID int64) (int64, error)
	CreateIfAbsent(ctx context.Context, category *domain.Category) (*domain.Category, bool, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteByID(ctx context.Context, id int64) error
}

type ItemRepository interface {
	ListAll(ctx context.Context) ([]ItemInfo, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]ItemInfo, error)
	FindByID(ctx context.Context, id int64) (*ItemInfo, error)
	FindByName(ctx context.Context, name string) (*domain.Item, error)
	CreateIfAbsent(ctx context.Context, item *domain.Item) (*domain.Item, bool, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	DeleteByID(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Fetch(ctx context.Context, key string) (*domain.Image, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetItem(ctx context.Context, id int64) (*ItemInfo, error)
	SetItem(ctx context.Context, info *ItemInfo) error
	DeleteItems(ctx context.Context, ids []int64) error
}
