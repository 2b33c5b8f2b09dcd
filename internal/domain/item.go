package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SizeStock хранит остатки товара по размерным классам.
// None используется только для безразмерных товаров и при создании всегда равен нулю.
type SizeStock struct {
	None       int32
	Small      int32
	Medium     int32
	Large      int32
	ExtraLarge int32
}

// Item описывает товар.
// Цена хранится в копейках. Категория — необязательная ссылка по идентификатору,
// изображение лежит в S3 и представлено ключом объекта.
type Item struct {
	ID          int64
	Name        string
	Description string
	CategoryID  *int64
	PriceCents  int64
	Sizes       SizeStock
	ImageKey    *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewItem(name, description string, categoryID *int64, priceCents int64, sizes SizeStock) *Item {
	return &Item{
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
		PriceCents:  priceCents,
		Sizes:       sizes,
	}
}

// URL возвращает каноническое расположение товара.
func (i *Item) URL() string {
	return fmt.Sprintf("/api/v1/item/%d", i.ID)
}

// PriceString возвращает цену с двумя знаками после запятой ("12" -> "12.00").
func PriceString(priceCents int64) string {
	return decimal.NewFromInt(priceCents).Shift(-2).StringFixed(2)
}

// NewSizeStock собирает остатки по размерам для создаваемого товара, None всегда 0.
func NewSizeStock(small, medium, large, extraLarge int32) SizeStock {
	return SizeStock{
		None:       0,
		Small:      small,
		Medium:     medium,
		Large:      large,
		ExtraLarge: extraLarge,
	}
}
