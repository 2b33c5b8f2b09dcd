package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/validation"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

// CategoryUseCase реализует бизнес-логику управления категориями товаров.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	itemRepo     ItemRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	txManager    TxManager
	logger       logger.Logger
}

func NewCategoryUC(
	categoryRepo CategoryRepository,
	itemRepo ItemRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	txManager TxManager,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// categoryRules — правила валидации формы категории.
func categoryRules() []validation.Rule {
	return []validation.Rule{
		{Field: "name", Trim: true, Constraints: []validation.Constraint{validation.Length(3, 50)}},
		{Field: "description", Trim: true, Constraints: []validation.Constraint{validation.Length(0, 400)}},
	}
}

// List возвращает категории по имени и все товары для перекрёстного отображения.
func (c *CategoryUseCase) List(ctx context.Context) (*CategoryListRes, error) {
	const op = "CategoryUseCase.List"

	categories, err := c.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryListRes{Categories: categories, Items: items}, nil
}

// Detail возвращает категорию и ссылающиеся на неё товары.
func (c *CategoryUseCase) Detail(ctx context.Context, id int64) (*CategoryDetailRes, error) {
	const op = "CategoryUseCase.Detail"

	category, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if category == nil {
		return nil, e.ErrCategoryNotFound
	}

	items, err := c.itemRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryDetailRes{Category: category, Items: items}, nil
}

// Create обрабатывает отправку формы создания категории.
// Дубликат по имени не создаёт вторую запись: возвращается существующая (Existing).
func (c *CategoryUseCase) Create(ctx context.Context, req *SaveCategoryReq) (*SaveCategoryRes, error) {
	const op = "CategoryUseCase.Create"

	fields, violations := validation.Apply(categoryRules(), map[string]string{
		"name":        req.Name,
		"description": req.Description,
	})
	if len(violations) > 0 {
		return &SaveCategoryRes{Violations: violations, Fields: fields}, nil
	}

	res := &SaveCategoryRes{Fields: fields}
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		created, inserted, err := c.categoryRepo.CreateIfAbsent(ctx, domain.NewCategory(fields["name"], fields["description"]))
		if err != nil {
			return err
		}

		if !inserted {
			res.Existing = created
			return nil
		}

		res.Category = created
		return emitOutboxEvent(ctx, c.outboxRepo, CategoryCreated, "category", created.ID, created.Name, created.URL())
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// UpdateForm возвращает категорию для предзаполнения формы обновления.
func (c *CategoryUseCase) UpdateForm(ctx context.Context, id int64) (*CategoryDetailRes, error) {
	return c.Detail(ctx, id)
}

// Update обрабатывает отправку формы обновления категории.
func (c *CategoryUseCase) Update(ctx context.Context, id int64, req *SaveCategoryReq) (*SaveCategoryRes, error) {
	const op = "CategoryUseCase.Update"

	fields, violations := validation.Apply(categoryRules(), map[string]string{
		"name":        req.Name,
		"description": req.Description,
	})
	if len(violations) > 0 {
		return &SaveCategoryRes{Violations: violations, Fields: fields}, nil
	}

	existing, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing == nil {
		return nil, e.ErrCategoryNotFound
	}

	res := &SaveCategoryRes{Fields: fields}
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err := c.categoryRepo.Update(ctx, &domain.Category{
			ID:          id,
			Name:        fields["name"],
			Description: fields["description"],
		})
		if err != nil {
			return err
		}

		res.Category = updated
		return emitOutboxEvent(ctx, c.outboxRepo, CategoryUpdated, "category", updated.ID, updated.Name, updated.URL())
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Кэш товаров содержит имя категории, сбрасываем ссылающиеся записи.
	c.invalidateCategoryItems(ctx, id)

	return res, nil
}

// DeleteForm возвращает категорию и её товары для страницы подтверждения удаления.
func (c *CategoryUseCase) DeleteForm(ctx context.Context, id int64) (*CategoryDeleteRes, error) {
	const op = "CategoryUseCase.DeleteForm"

	category, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if category == nil {
		return nil, e.ErrCategoryNotFound
	}

	items, err := c.itemRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryDeleteRes{Category: category, Items: items}, nil
}

// Delete удаляет категорию, если на неё не ссылается ни один товар.
// Иначе удаление блокируется и возвращается список ссылающихся товаров.
func (c *CategoryUseCase) Delete(ctx context.Context, id int64) (*CategoryDeleteRes, error) {
	const op = "CategoryUseCase.Delete"

	category, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if category == nil {
		return nil, e.ErrCategoryNotFound
	}

	count, err := c.categoryRepo.CountItemsReferencing(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if count > 0 {
		items, err := c.itemRepo.ListByCategory(ctx, id)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		return &CategoryDeleteRes{Category: category, Items: items}, nil
	}

	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		if err := c.categoryRepo.DeleteByID(ctx, id); err != nil {
			return err
		}
		return emitOutboxEvent(ctx, c.outboxRepo, CategoryDeleted, "category", category.ID, category.Name, category.URL())
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryDeleteRes{Category: category, Deleted: true}, nil
}

// invalidateCategoryItems сбрасывает кэш товаров категории, не прерывая запрос при ошибке.
func (c *CategoryUseCase) invalidateCategoryItems(ctx context.Context, categoryID int64) {
	items, err := c.itemRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		c.logger.Warnf("failed to list items for cache invalidation: %v", err)
		return
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	if len(ids) == 0 {
		return
	}

	if err := c.cacheRepo.DeleteItems(ctx, ids); err != nil {
		c.logger.Warnf("failed to invalidate item cache: %v", err)
	}
}
