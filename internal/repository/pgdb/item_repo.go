package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ItemRepo реализует репозиторий товаров поверх PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
	conv converter.ItemConverter
}

func NewItemRepo(pool *pgxpool.Pool, conv converter.ItemConverter) *ItemRepo {
	return &ItemRepo{
		pool: pool,
		conv: conv,
	}
}

const itemInfoColumns = `
	it.id, it.name, it.description, it.price, it.category_id, cat.name,
	it.stock_none, it.stock_small, it.stock_medium, it.stock_large, it.stock_extra_large,
	it.image_key
`

func scanItemInfo(row pgx.Row) (*usecase.ItemInfo, error) {
	var info usecase.ItemInfo
	err := row.Scan(
		&info.ID, &info.Name, &info.Description, &info.PriceCents, &info.CategoryID, &info.CategoryName,
		&info.Sizes.None, &info.Sizes.Small, &info.Sizes.Medium, &info.Sizes.Large, &info.Sizes.ExtraLarge,
		&info.ImageKey,
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ListAll возвращает все товары с именами категорий, отсортированные по категории,
// внутри категории — по имени товара. Товары без категории идут первыми.
func (i *ItemRepo) ListAll(ctx context.Context) ([]usecase.ItemInfo, error) {
	query := `
		SELECT ` + itemInfoColumns + `
		FROM items it
		LEFT JOIN categories cat ON it.category_id = cat.id
		ORDER BY cat.name NULLS FIRST, it.name;
	`

	return i.queryInfos(ctx, query)
}

// ListByCategory возвращает товары, ссылающиеся на категорию.
func (i *ItemRepo) ListByCategory(ctx context.Context, categoryID int64) ([]usecase.ItemInfo, error) {
	query := `
		SELECT ` + itemInfoColumns + `
		FROM items it
		LEFT JOIN categories cat ON it.category_id = cat.id
		WHERE it.category_id = $1
		ORDER BY it.name;
	`

	return i.queryInfos(ctx, query, categoryID)
}

func (i *ItemRepo) queryInfos(ctx context.Context, query string, args ...any) ([]usecase.ItemInfo, error) {
	rows, err := i.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ItemInfo, 0)
	for rows.Next() {
		info, err := scanItemInfo(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// FindByID возвращает товар с именем категории, nil при отсутствии.
func (i *ItemRepo) FindByID(ctx context.Context, id int64) (*usecase.ItemInfo, error) {
	query := `
		SELECT ` + itemInfoColumns + `
		FROM items it
		LEFT JOIN categories cat ON it.category_id = cat.id
		WHERE it.id = $1;
	`

	info, err := scanItemInfo(i.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return info, nil
}

// FindByName возвращает товар по точному имени, nil при отсутствии.
func (i *ItemRepo) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	query := `
		SELECT id, name, description, category_id, price,
			stock_none, stock_small, stock_medium, stock_large, stock_extra_large,
			image_key, created_at, updated_at
		FROM items
		WHERE name = $1;
	`

	var model converter.ItemModel
	err := i.pool.QueryRow(ctx, query, name).Scan(
		&model.ID, &model.Name, &model.Description, &model.CategoryID, &model.Price,
		&model.StockNone, &model.StockSmall, &model.StockMedium, &model.StockLarge, &model.StockXL,
		&model.ImageKey, &model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return i.conv.ToEntity(&model), nil
}

// CreateIfAbsent атомарно создаёт товар по уникальному имени.
// При конфликте имён возвращается уже существующая запись и inserted=false,
// её данные не трогаются.
func (i *ItemRepo) CreateIfAbsent(ctx context.Context, item *domain.Item) (*domain.Item, bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH inserted AS (
			INSERT INTO items (
				name, description, category_id, price,
				stock_none, stock_small, stock_medium, stock_large, stock_extra_large,
				image_key
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (name) DO NOTHING
			RETURNING
				id, name, description, category_id, price,
				stock_none, stock_small, stock_medium, stock_large, stock_extra_large,
				image_key, created_at, updated_at
		)
		SELECT
			id, name, description, category_id, price,
			stock_none, stock_small, stock_medium, stock_large, stock_extra_large,
			image_key, created_at, updated_at,
			true AS inserted
		FROM inserted

		UNION ALL

		SELECT
			id, name, description, category_id, price,
			stock_none, stock_small, stock_medium, stock_large, stock_extra_large,
			image_key, created_at, updated_at,
			false AS inserted
		FROM items
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM inserted);
	`

	model := i.conv.ToModel(item)
	var stored converter.ItemModel
	var inserted bool
	err = tx.QueryRow(ctx, query,
		model.Name, model.Description, model.CategoryID, model.Price,
		model.StockNone, model.StockSmall, model.StockMedium, model.StockLarge, model.StockXL,
		model.ImageKey,
	).Scan(
		&stored.ID, &stored.Name, &stored.Description, &stored.CategoryID, &stored.Price,
		&stored.StockNone, &stored.StockSmall, &stored.StockMedium, &stored.StockLarge, &stored.StockXL,
		&stored.ImageKey, &stored.CreatedAt, &stored.UpdatedAt, &inserted,
	)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return i.conv.ToEntity(&stored), inserted, nil
}

// Update перезаписывает товар по идентификатору.
func (i *ItemRepo) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE items
		SET
			name = $2, description = $3, category_id = $4, price = $5,
			stock_none = $6, stock_small = $7, stock_medium = $8, stock_large = $9, stock_extra_large = $10,
			image_key = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING
			id, name, description, category_id, price,
			stock_none, stock_small, stock_medium, stock_large, stock_extra_large,
			image_key, created_at, updated_at;
	`

	model := i.conv.ToModel(item)
	var stored converter.ItemModel
	err = tx.QueryRow(ctx, query,
		model.ID, model.Name, model.Description, model.CategoryID, model.Price,
		model.StockNone, model.StockSmall, model.StockMedium, model.StockLarge, model.StockXL,
		model.ImageKey,
	).Scan(
		&stored.ID, &stored.Name, &stored.Description, &stored.CategoryID, &stored.Price,
		&stored.StockNone, &stored.StockSmall, &stored.StockMedium, &stored.StockLarge, &stored.StockXL,
		&stored.ImageKey, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return i.conv.ToEntity(&stored), nil
}

// DeleteByID удаляет товар. Отсутствие записи не считается ошибкой.
func (i *ItemRepo) DeleteByID(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1;`, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
