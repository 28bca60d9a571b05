package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
)

const (
	selectCategoryQuery = `SELECT id, name, description, created_at, updated_at FROM category`

	insertCategoryQuery = `INSERT INTO category (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`

	insertCategoryWithIDQuery = `INSERT INTO category (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
)

// CategoryRepository implements repository.CategoryStore on SQLite.
type CategoryRepository struct {
	db *sql.DB
}

var _ repository.CategoryStore = (*CategoryRepository)(nil)

// NewCategoryRepository creates a new CategoryRepository instance.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindOneByID returns found=false without an error when the category does not exist.
func (r *CategoryRepository) FindOneByID(ctx context.Context, id int64) (*model.Category, bool, error) {
	if err := requireConnection(r.db); err != nil {
		return nil, false, err
	}

	stmt, err := r.db.PrepareContext(ctx, selectCategoryQuery+` WHERE id = ?`)
	if err != nil {
		return nil, false, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	category, err := scanCategory(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to query category: %w", err)
	}

	return category, true, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*model.Category, error) {
	if err := requireConnection(r.db); err != nil {
		return nil, err
	}

	stmt, err := r.db.PrepareContext(ctx, selectCategoryQuery+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []*model.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return categories, nil
}

// Create stores the category. A non-zero ID is written as given, otherwise the store assigns one.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := requireConnection(r.db); err != nil {
		return nil, err
	}

	category.InitMeta()
	query := insertCategoryQuery
	args := []interface{}{category.Name, category.Description, formatTimestamp(category.CreatedAt), formatTimestamp(category.UpdatedAt)}
	if category.ID != 0 {
		query = insertCategoryWithIDQuery
		args = append([]interface{}{category.ID}, args...)
	}

	err := withinTransaction(ctx, r.db, func(exec dbExecutor) error {
		result, err := execAffecting(ctx, exec, query, args...)
		if err != nil {
			return fmt.Errorf("failed to insert category: %w", err)
		}
		if category.ID != 0 {
			return nil
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read category id: %w", err)
		}
		category.ID = id
		return nil
	})
	if err != nil {
		slog.Error("category create rolled back", slog.String("name", category.Name), slog.Any("err", err))
		return nil, fmt.Errorf("failed to create category: %w: %w", repository.ErrPersistence, err)
	}

	return category, nil
}

// DeleteByID removes the category together with its products and their variant rows.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := requireConnection(r.db); err != nil {
		return err
	}

	err := withinTransaction(ctx, r.db, func(exec dbExecutor) error {
		_, err := execAffecting(ctx, exec, `DELETE FROM category WHERE id = ?`, id)
		return err
	})
	if errors.Is(err, errNoRowsAffected) {
		return fmt.Errorf("category %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w: %w", id, repository.ErrPersistence, err)
	}

	return nil
}

// Products returns the base rows of every product in the category ordered by id.
func (r *CategoryRepository) Products(ctx context.Context, categoryID int64) ([]*model.Product, error) {
	if err := requireConnection(r.db); err != nil {
		return nil, err
	}

	stmt, err := r.db.PrepareContext(ctx, baseProductTable.selectSQL+` WHERE p.category_id = ? ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products of category %d: %w", categoryID, err)
	}
	defer rows.Close()

	products := []*model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

// LoadProducts fills category.Products.
func (r *CategoryRepository) LoadProducts(ctx context.Context, category *model.Category) error {
	products, err := r.Products(ctx, category.ID)
	if err != nil {
		return err
	}
	category.Products = products
	return nil
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var (
		category             model.Category
		createdAt, updatedAt string
	)
	if err := row.Scan(&category.ID, &category.Name, &category.Description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if category.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at for category %d: %w", category.ID, err)
	}
	if category.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("invalid updated_at for category %d: %w", category.ID, err)
	}

	return &category, nil
}
