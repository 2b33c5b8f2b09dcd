package domain

import (
	"fmt"
	"time"
)

// Category описывает категорию товара.
// Имя категории уникально и служит ключом дедупликации при создании.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewCategory(name, description string) *Category {
	return &Category{
		Name:        name,
		Description: description,
	}
}

// URL возвращает каноническое расположение категории.
func (c *Category) URL() string {
	return fmt.Sprintf("/api/v1/category/%d", c.ID)
}
