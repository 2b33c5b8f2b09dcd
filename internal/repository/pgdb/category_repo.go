package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// ListAll возвращает все категории, отсортированные по имени.
func (c *CategoryRepo) ListAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.CategoryModel
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

// FindByID возвращает категорию по идентификатору, nil при отсутствии.
func (c *CategoryRepo) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Description, &model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// FindByName возвращает категорию по точному имени, nil при отсутствии.
func (c *CategoryRepo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE name = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, name).Scan(
		&model.ID, &model.Name, &model.Description, &model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// CountItemsReferencing возвращает число товаров, ссылающихся на категорию.
func (c *CategoryRepo) CountItemsReferencing(ctx context.Context, categoryID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM items WHERE category_id = $1;`

	var count int64
	if err := c.pool.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// CreateIfAbsent атомарно создаёт категорию по уникальному имени.
// При конфликте имён возвращается уже существующая запись и inserted=false,
// описание существующей записи не трогается.
func (c *CategoryRepo) CreateIfAbsent(ctx context.Context, category *domain.Category) (*domain.Category, bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH inserted AS (
			INSERT INTO categories (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
			RETURNING id, name, description, created_at, updated_at
		)
		SELECT id, name, description, created_at, updated_at, true AS inserted
		FROM inserted

		UNION ALL

		SELECT id, name, description, created_at, updated_at, false AS inserted
		FROM categories
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM inserted);
	`

	var model converter.CategoryModel
	var inserted bool
	err = tx.QueryRow(ctx, query, category.Name, category.Description).Scan(
		&model.ID, &model.Name, &model.Description, &model.CreatedAt, &model.UpdatedAt, &inserted,
	)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), inserted, nil
}

// Update обновляет имя и описание категории.
func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE categories
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, created_at, updated_at;
	`

	var model converter.CategoryModel
	err = tx.QueryRow(ctx, query, category.ID, category.Name, category.Description).Scan(
		&model.ID, &model.Name, &model.Description, &model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// DeleteByID удаляет категорию. Отсутствие записи не считается ошибкой.
func (c *CategoryRepo) DeleteByID(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
