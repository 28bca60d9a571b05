package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
)

var baseProductTable = productTable[*model.Product]{
	kind:      "product",
	selectSQL: `SELECT ` + productColumns + ` FROM product p`,
	args:      func(*model.Product) []interface{} { return nil },
	scan:      scanProduct,
}

// ProductRepository reads and writes the shared product rows regardless of variant.
type ProductRepository struct {
	productStore[*model.Product]
}

var _ repository.ProductStore[*model.Product] = (*ProductRepository)(nil)

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{productStore[*model.Product]{db: db, table: baseProductTable}}
}

// FindCategory returns the category owning the product.
func (r *ProductRepository) FindCategory(ctx context.Context, product *model.Product) (*model.Category, bool, error) {
	if err := requireConnection(r.db); err != nil {
		return nil, false, err
	}

	stmt, err := r.db.PrepareContext(ctx, selectCategoryQuery+` WHERE id = ?`)
	if err != nil {
		return nil, false, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	category, err := scanCategory(stmt.QueryRowContext(ctx, product.CategoryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to query category of product %d: %w", product.ID, err)
	}

	return category, true, nil
}
