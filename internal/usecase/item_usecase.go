package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/infrastructure"
	"github.com/DRSN-tech/inventory-backend/internal/intake"
	"github.com/DRSN-tech/inventory-backend/internal/validation"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemUseCase реализует бизнес-логику управления товарами.
type ItemUseCase struct {
	itemRepo     ItemRepository
	categoryRepo CategoryRepository
	imageRepo    ImageRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	txManager    TxManager
	logger       logger.Logger
}

func NewItemUC(
	itemRepo ItemRepository,
	categoryRepo CategoryRepository,
	imageRepo ImageRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	txManager TxManager,
	logger logger.Logger,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// itemRules — правила валидации формы товара.
// Пустые остатки по размерам считаются нулевыми.
func itemRules() []validation.Rule {
	return []validation.Rule{
		{Field: "name", Trim: true, Constraints: []validation.Constraint{validation.Length(2, 50)}},
		{Field: "description", Trim: true, Constraints: []validation.Constraint{validation.Length(0, 400)}},
		{Field: "category", Trim: true},
		{Field: "price", Trim: true, Constraints: []validation.Constraint{validation.NonNegativeDecimal()}},
		{Field: "small", Trim: true, Default: "0", Constraints: []validation.Constraint{validation.NonNegativeInt()}},
		{Field: "medium", Trim: true, Default: "0", Constraints: []validation.Constraint{validation.NonNegativeInt()}},
		{Field: "large", Trim: true, Default: "0", Constraints: []validation.Constraint{validation.NonNegativeInt()}},
		{Field: "extraLarge", Trim: true, Default: "0", Constraints: []validation.Constraint{validation.NonNegativeInt()}},
	}
}

// List возвращает товары с подтянутыми категориями, отсортированные по категории.
func (i *ItemUseCase) List(ctx context.Context) (*ItemListRes, error) {
	const op = "ItemUseCase.List"

	items, err := i.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ItemListRes{Items: items}, nil
}

// Detail возвращает товар с категорией и изображением в виде data-URI.
// Информация о товаре читается через кэш, изображение — напрямую из S3.
func (i *ItemUseCase) Detail(ctx context.Context, id int64) (*ItemDetailRes, error) {
	const op = "ItemUseCase.Detail"

	info, err := i.cacheRepo.GetItem(ctx, id)
	if err != nil {
		i.logger.Warnf("item cache read failed: %v", err)
	}

	if info == nil {
		info, err = i.itemRepo.FindByID(ctx, id)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if info == nil {
			return nil, e.ErrItemNotFound
		}

		// Фоновое добавление товара в кэш
		go func(cached ItemInfo) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := i.cacheRepo.SetItem(bgCtx, &cached); err != nil {
				i.logger.Warnf("failed to cache item in background: %v", e.Wrap(op, err))
			}
		}(*info)
	}

	res := &ItemDetailRes{Item: info}
	if info.ImageKey != nil {
		image, err := i.imageRepo.Fetch(ctx, *info.ImageKey)
		if err != nil {
			i.logger.Warnf("failed to fetch item image: %v", e.Wrap(op, err))
		} else {
			mimeType := "image/jpeg"
			if image.MimeType != nil && *image.MimeType != "" {
				mimeType = *image.MimeType
			}
			dataURI := domain.DataURI(mimeType, image.Bytes)
			res.ImageDataURI = &dataURI
		}
	}

	return res, nil
}

// CreateForm возвращает данные формы создания товара.
// Без единой категории создание товара невозможно.
func (i *ItemUseCase) CreateForm(ctx context.Context) (*ItemFormRes, error) {
	const op = "ItemUseCase.CreateForm"

	categories, err := i.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(categories) == 0 {
		return nil, e.ErrNoCategories
	}

	return &ItemFormRes{Categories: categories}, nil
}

// Create обрабатывает отправку формы создания товара.
// Категория резолвится по имени и может остаться пустой, если имя не найдено.
// Дубликат по имени не создаёт вторую запись: возвращается существующая.
func (i *ItemUseCase) Create(ctx context.Context, req *SaveItemReq) (*SaveItemRes, error) {
	const op = "ItemUseCase.Create"

	fields, violations := i.validateItem(req)
	if len(violations) > 0 {
		return i.invalidRes(ctx, fields, violations)
	}

	item, err := i.buildItem(ctx, fields)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Загрузка изображения до транзакции; при неуспехе записи объект зачищается.
	var uploadedKey *string
	if req.Image != nil {
		key, err := i.uploadImage(ctx, fields["name"], req.Image)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		item.ImageKey = &key
		uploadedKey = &key
	}

	res := &SaveItemRes{Fields: fields}
	err = i.txManager.Do(ctx, func(ctx context.Context) error {
		created, inserted, err := i.itemRepo.CreateIfAbsent(ctx, item)
		if err != nil {
			return err
		}

		if !inserted {
			res.Existing = created
			return nil
		}

		res.Item = created
		return emitOutboxEvent(ctx, i.outboxRepo, ItemCreated, "item", created.ID, created.Name, created.URL())
	})
	if err != nil || res.Existing != nil {
		i.cleanupImage(uploadedKey)
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// UpdateForm возвращает товар и список категорий для предзаполнения формы обновления.
func (i *ItemUseCase) UpdateForm(ctx context.Context, id int64) (*ItemFormRes, error) {
	const op = "ItemUseCase.UpdateForm"

	info, err := i.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if info == nil {
		return nil, e.ErrItemNotFound
	}

	categories, err := i.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ItemFormRes{Item: info, Categories: categories}, nil
}

// Update обрабатывает отправку формы обновления товара.
// Судьба изображения определяется ровно одним из трёх вариантов:
// заменить новым файлом, удалить по явному флагу или сохранить как было.
func (i *ItemUseCase) Update(ctx context.Context, id int64, req *SaveItemReq) (*SaveItemRes, error) {
	const op = "ItemUseCase.Update"

	fields, violations := i.validateItem(req)
	if len(violations) > 0 {
		return i.invalidRes(ctx, fields, violations)
	}

	current, err := i.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if current == nil {
		return nil, e.ErrItemNotFound
	}

	item, err := i.buildItem(ctx, fields)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	item.ID = id
	item.Sizes.None = current.Sizes.None

	action := domain.DecideImageAction(req.Image != nil, req.RemoveImage)

	var uploadedKey *string
	switch action {
	case domain.ImageRetain:
		item.ImageKey = current.ImageKey
	case domain.ImageClear:
		item.ImageKey = nil
	case domain.ImageReplace:
		key, err := i.uploadImage(ctx, fields["name"], req.Image)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		item.ImageKey = &key
		uploadedKey = &key
	}

	res := &SaveItemRes{Fields: fields}
	err = i.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err := i.itemRepo.Update(ctx, item)
		if err != nil {
			return err
		}

		res.Item = updated
		return emitOutboxEvent(ctx, i.outboxRepo, ItemUpdated, "item", updated.ID, updated.Name, updated.URL())
	})
	if err != nil {
		i.cleanupImage(uploadedKey)
		return nil, e.Wrap(op, err)
	}

	// Прежний объект осиротел после замены или очистки.
	if action != domain.ImageRetain {
		i.cleanupImage(current.ImageKey)
	}

	if err := i.cacheRepo.DeleteItems(ctx, []int64{id}); err != nil {
		i.logger.Warnf("failed to invalidate item cache: %v", e.Wrap(op, err))
	}

	return res, nil
}

// Delete безусловно удаляет товар по идентификатору вместе с его изображением.
func (i *ItemUseCase) Delete(ctx context.Context, id int64) error {
	const op = "ItemUseCase.Delete"

	info, err := i.itemRepo.FindByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if info == nil {
		// Товар уже удалён, повторное удаление не ошибка.
		return nil
	}

	err = i.txManager.Do(ctx, func(ctx context.Context) error {
		if err := i.itemRepo.DeleteByID(ctx, id); err != nil {
			return err
		}
		return emitOutboxEvent(ctx, i.outboxRepo, ItemDeleted, "item", info.ID, info.Name, info.URL())
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	i.cleanupImage(info.ImageKey)

	if err := i.cacheRepo.DeleteItems(ctx, []int64{id}); err != nil {
		i.logger.Warnf("failed to invalidate item cache: %v", e.Wrap(op, err))
	}

	return nil
}

// validateItem прогоняет поля формы и необязательный файл через валидацию.
func (i *ItemUseCase) validateItem(req *SaveItemReq) (map[string]string, []validation.FieldError) {
	fields, violations := validation.Apply(itemRules(), map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"category":    req.CategoryName,
		"price":       req.Price,
		"small":       req.Small,
		"medium":      req.Medium,
		"large":       req.Large,
		"extraLarge":  req.ExtraLarge,
	})

	if err := intake.Validate(req.Image); err != nil {
		violations = append(violations, validation.FieldError{Field: "image", Message: err.Error()})
	}

	return fields, violations
}

// invalidRes собирает ответ о нарушениях вместе со списком категорий для перерисовки формы.
func (i *ItemUseCase) invalidRes(ctx context.Context, fields map[string]string, violations []validation.FieldError) (*SaveItemRes, error) {
	categories, err := i.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &SaveItemRes{
		Violations: violations,
		Fields:     fields,
		Categories: categories,
	}, nil
}

// buildItem собирает доменный товар из нормализованных полей формы.
func (i *ItemUseCase) buildItem(ctx context.Context, fields map[string]string) (*domain.Item, error) {
	priceCents, err := priceToCents(fields["price"])
	if err != nil {
		return nil, err
	}

	sizes, err := sizesFromFields(fields)
	if err != nil {
		return nil, err
	}

	// Категория резолвится по имени; несуществующее имя оставляет товар без категории.
	var categoryID *int64
	category, err := i.categoryRepo.FindByName(ctx, fields["category"])
	if err != nil {
		return nil, err
	}
	if category != nil {
		categoryID = &category.ID
	}

	return domain.NewItem(fields["name"], fields["description"], categoryID, priceCents, sizes), nil
}

// uploadImage сохраняет изображение товара в S3 и возвращает ключ объекта.
func (i *ItemUseCase) uploadImage(ctx context.Context, itemName string, file *intake.File) (string, error) {
	ext, err := infrastructure.GetExtensionFromMIME(file.MimeType)
	if err != nil {
		return "", err
	}

	imageID := uuid.NewString()
	objKey := fmt.Sprintf("items/%s-%s.%s", itemName, imageID, ext)
	image := domain.NewImage(imageID, "", objKey, file.Data, &file.Size, &file.MimeType)

	return i.imageRepo.Upload(ctx, image)
}

// cleanupImage удаляет осиротевший объект из S3, не прерывая запрос при ошибке.
func (i *ItemUseCase) cleanupImage(key *string) {
	if key == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := i.imageRepo.Delete(ctx, *key); err != nil {
		i.logger.Warnf("failed to delete orphaned image %s: %v", *key, err)
	}
}

// priceToCents переводит проверенную цену в копейки с двумя знаками точности.
func priceToCents(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, err
	}

	return d.Round(2).Shift(2).IntPart(), nil
}

// sizesFromFields собирает остатки по размерам, None при создании всегда 0.
func sizesFromFields(fields map[string]string) (domain.SizeStock, error) {
	parse := func(field string) (int32, error) {
		n, err := strconv.ParseInt(fields[field], 10, 32)
		if err != nil {
			return 0, err
		}
		return int32(n), nil
	}

	small, err := parse("small")
	if err != nil {
		return domain.SizeStock{}, err
	}
	medium, err := parse("medium")
	if err != nil {
		return domain.SizeStock{}, err
	}
	large, err := parse("large")
	if err != nil {
		return domain.SizeStock{}, err
	}
	extraLarge, err := parse("extraLarge")
	if err != nil {
		return domain.SizeStock{}, err
	}

	return domain.NewSizeStock(small, medium, large, extraLarge), nil
}
