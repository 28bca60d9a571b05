package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/iyhunko/draft-shop/internal/model"
)

var (
	errNoRowsAffected  = errors.New("statement affected no rows")
	errVariantMismatch = errors.New("product belongs to another variant")
)

const (
	productColumns = `p.id, p.name, p.photos, p.price, p.description, p.quantity, p.category_id, p.created_at, p.updated_at`

	insertProductQuery = `INSERT INTO product (name, photos, price, description, quantity, category_id, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	updateProductQuery = `UPDATE product SET
	          name = ?, photos = ?, price = ?, description = ?, quantity = ?,
	          category_id = ?, created_at = ?, updated_at = ?
	          WHERE id = ?`
)

// baseInsert writes the shared product row and stores the generated identifier in core.
// It must run inside a transaction owned by the caller.
func baseInsert(ctx context.Context, exec dbExecutor, core *model.ProductCore) (int64, error) {
	result, err := execAffecting(ctx, exec, insertProductQuery,
		core.Name, core.Photos, core.Price, core.Description, core.Quantity, core.CategoryID,
		formatTimestamp(core.CreatedAt), formatTimestamp(core.UpdatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read product id: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("store returned invalid product id %d", id)
	}

	core.ID = id
	return id, nil
}

// baseUpdate rewrites the shared product row by id.
// It must run inside a transaction owned by the caller.
func baseUpdate(ctx context.Context, exec dbExecutor, core *model.ProductCore) error {
	id, err := core.PersistedID()
	if err != nil {
		return err
	}

	_, err = execAffecting(ctx, exec, updateProductQuery,
		core.Name, core.Photos, core.Price, core.Description, core.Quantity, core.CategoryID,
		formatTimestamp(core.CreatedAt), formatTimestamp(core.UpdatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}

	return nil
}

// coreRow collects the scanned product columns of one row.
type coreRow struct {
	core      *model.ProductCore
	createdAt string
	updatedAt string
}

func (r *coreRow) dest() []interface{} {
	return []interface{}{
		&r.core.ID, &r.core.Name, &r.core.Photos, &r.core.Price, &r.core.Description,
		&r.core.Quantity, &r.core.CategoryID, &r.createdAt, &r.updatedAt,
	}
}

func (r *coreRow) finish() error {
	var err error
	if r.core.CreatedAt, err = parseTimestamp(r.createdAt); err != nil {
		return fmt.Errorf("invalid created_at for product %d: %w", r.core.ID, err)
	}
	if r.core.UpdatedAt, err = parseTimestamp(r.updatedAt); err != nil {
		return fmt.Errorf("invalid updated_at for product %d: %w", r.core.ID, err)
	}
	return nil
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var product model.Product
	cr := coreRow{core: &product.ProductCore}
	if err := row.Scan(cr.dest()...); err != nil {
		return nil, err
	}
	if err := cr.finish(); err != nil {
		return nil, err
	}
	return &product, nil
}
