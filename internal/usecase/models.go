package usecase

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/intake"
	"github.com/DRSN-tech/inventory-backend/internal/validation"
	"github.com/google/uuid"
)

// CATEGORY USECASE

// SaveCategoryReq — сырые поля формы категории.
type SaveCategoryReq struct {
	Name        string
	Description string
}

// SaveCategoryRes — исход создания/обновления категории.
// Ровно одно из трёх: Category (записано), Existing (дубликат по имени),
// Violations (форма перерисовывается с Fields).
type SaveCategoryRes struct {
	Category   *domain.Category
	Existing   *domain.Category
	Violations []validation.FieldError
	Fields     map[string]string
}

type CategoryListRes struct {
	Categories []domain.Category
	Items      []ItemInfo
}

type CategoryDetailRes struct {
	Category *domain.Category
	Items    []ItemInfo
}

// CategoryDeleteRes — исход удаления: при наличии ссылающихся товаров
// удаление блокируется и Items перечисляет их.
type CategoryDeleteRes struct {
	Category *domain.Category
	Items    []ItemInfo
	Deleted  bool
}

// ITEM USECASE

// SaveItemReq — сырые поля формы товара с необязательным файлом изображения.
// RemoveImage — явный флаг «без файла» при обновлении.
type SaveItemReq struct {
	Name         string
	Description  string
	CategoryName string
	Price        string
	Small        string
	Medium       string
	Large        string
	ExtraLarge   string
	Image        *intake.File
	RemoveImage  bool
}

type SaveItemRes struct {
	Item       *domain.Item
	Existing   *domain.Item
	Violations []validation.FieldError
	Fields     map[string]string
	Categories []domain.Category // список категорий для перерисовки формы
}

// ItemInfo — DTO товара с подтянутым именем категории.
type ItemInfo struct {
	ID           int64
	Name         string
	Description  string
	PriceCents   int64
	CategoryID   *int64
	CategoryName *string
	Sizes        domain.SizeStock
	ImageKey     *string
}

type ItemListRes struct {
	Items []ItemInfo
}

type ItemDetailRes struct {
	Item         *ItemInfo
	ImageDataURI *string
}

// ItemFormRes — данные формы товара: категории для выбора и,
// при обновлении, текущее состояние товара.
type ItemFormRes struct {
	Item       *ItemInfo
	Categories []domain.Category
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	CategoryCreated OutboxEventType = "category.created"
	CategoryUpdated OutboxEventType = "category.updated"
	CategoryDeleted OutboxEventType = "category.deleted"
	ItemCreated     OutboxEventType = "item.created"
	ItemUpdated     OutboxEventType = "item.updated"
	ItemDeleted     OutboxEventType = "item.deleted"
)

// OutboxEvent — событие инвентаря, записываемое в одной транзакции с изменением
// и публикуемое в Kafka фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	EntityID    int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// EventPayload — JSON-тело события инвентаря.
type EventPayload struct {
	Entity string `json:"entity"`
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	EntityID int64
	Payload  []byte
}

// MAPPERS

func NewOutboxEvent(eventType OutboxEventType, entityID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		EntityID:  entityID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(entityID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		EntityID: entityID,
		Payload:  payload,
	}
}

func NewSaveCategoryReq(name, description string) *SaveCategoryReq {
	return &SaveCategoryReq{
		Name:        name,
		Description: description,
	}
}

func NewItemInfo(item *domain.Item, categoryName *string) *ItemInfo {
	return &ItemInfo{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		PriceCents:   item.PriceCents,
		CategoryID:   item.CategoryID,
		CategoryName: categoryName,
		Sizes:        item.Sizes,
		ImageKey:     item.ImageKey,
	}
}

// URL возвращает каноническое расположение товара.
func (i *ItemInfo) URL() string {
	return (&domain.Item{ID: i.ID}).URL()
}

// PriceString возвращает цену товара с двумя знаками после запятой.
func (i *ItemInfo) PriceString() string {
	return domain.PriceString(i.PriceCents)
}
