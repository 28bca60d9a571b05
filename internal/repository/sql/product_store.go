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

// productTable describes how one product variant maps onto the product table and its subtype table.
type productTable[T model.Item] struct {
	kind      string
	selectSQL string

	// insertSQL and upsertSQL take product_id first, then args(item). Both are empty for base products.
	insertSQL        string
	upsertSQL        string
	// otherVariantsSQL counts the rows a product_id has in the subtype tables of other variants.
	otherVariantsSQL string
	args             func(item T) []interface{}
	scan             func(row rowScanner) (T, error)
}

func (t productTable[T]) subtypeArgs(id int64, item T) []interface{} {
	return append([]interface{}{id}, t.args(item)...)
}

// productStore implements repository.ProductStore for any variant described by a productTable.
type productStore[T model.Item] struct {
	db    *sql.DB
	table productTable[T]
}

// FindOneByID joins the product row with its subtype row. A missing row is reported with found=false.
func (s *productStore[T]) FindOneByID(ctx context.Context, id int64) (T, bool, error) {
	var zero T
	if err := requireConnection(s.db); err != nil {
		return zero, false, err
	}

	stmt, err := s.db.PrepareContext(ctx, s.table.selectSQL+` WHERE p.id = ?`)
	if err != nil {
		return zero, false, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	item, err := s.table.scan(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("failed to query %s: %w", s.table.kind, err)
	}

	return item, true, nil
}

// FindAll returns every row of the variant ordered by id.
func (s *productStore[T]) FindAll(ctx context.Context) ([]T, error) {
	return s.query(ctx, s.table.selectSQL+` ORDER BY p.id`)
}

// List returns one page of the variant ordered by id.
func (s *productStore[T]) List(ctx context.Context, query repository.Query) ([]T, error) {
	return s.query(ctx, s.table.selectSQL+` WHERE p.id > ? ORDER BY p.id LIMIT ?`, query.After(), query.EffectiveLimit())
}

func (s *productStore[T]) query(ctx context.Context, sqlQuery string, args ...interface{}) ([]T, error) {
	if err := requireConnection(s.db); err != nil {
		return nil, err
	}

	stmt, err := s.db.PrepareContext(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table.kind, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := s.table.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.table.kind, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// Create inserts the product row and the subtype row in one transaction.
// An already persisted item is returned unchanged. On failure the transaction is rolled back,
// the item keeps no identifier and the error wraps repository.ErrPersistence.
func (s *productStore[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	core := item.Core()
	if core.IsPersisted() {
		return item, nil
	}
	if err := requireConnection(s.db); err != nil {
		return zero, err
	}

	core.InitMeta()
	err := withinTransaction(ctx, s.db, func(exec dbExecutor) error {
		id, err := baseInsert(ctx, exec, core)
		if err != nil {
			return err
		}
		if s.table.insertSQL == "" {
			return nil
		}
		if _, err := execAffecting(ctx, exec, s.table.insertSQL, s.table.subtypeArgs(id, item)...); err != nil {
			return fmt.Errorf("failed to insert %s: %w", s.table.kind, err)
		}
		return nil
	})
	if err != nil {
		core.ID = 0
		slog.Error("product create rolled back", slog.String("kind", s.table.kind), slog.Any("err", err))
		return zero, fmt.Errorf("failed to create %s: %w: %w", s.table.kind, repository.ErrPersistence, err)
	}

	slog.Debug("product created", slog.String("kind", s.table.kind), slog.Int64("product_id", core.ID))
	return item, nil
}

// Update rewrites the product row and the subtype row in one transaction.
// It fails with model.ErrUninitializedID when the item was never persisted.
func (s *productStore[T]) Update(ctx context.Context, item T) (T, error) {
	var zero T
	core := item.Core()
	id, err := core.PersistedID()
	if err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", s.table.kind, err)
	}
	if err := requireConnection(s.db); err != nil {
		return zero, err
	}

	err = withinTransaction(ctx, s.db, func(exec dbExecutor) error {
		if err := baseUpdate(ctx, exec, core); err != nil {
			return err
		}
		if s.table.upsertSQL == "" {
			return nil
		}
		if err := s.requireVariant(ctx, exec, id); err != nil {
			return err
		}
		if _, err := execAffecting(ctx, exec, s.table.upsertSQL, s.table.subtypeArgs(id, item)...); err != nil {
			return fmt.Errorf("failed to write %s %d: %w", s.table.kind, id, err)
		}
		return nil
	})
	if err != nil {
		slog.Error("product update rolled back", slog.String("kind", s.table.kind), slog.Int64("product_id", id), slog.Any("err", err))
		return zero, fmt.Errorf("failed to update %s: %w: %w", s.table.kind, repository.ErrPersistence, err)
	}

	return item, nil
}

// requireVariant fails when the product already belongs to another variant.
func (s *productStore[T]) requireVariant(ctx context.Context, exec dbExecutor, id int64) error {
	if s.table.otherVariantsSQL == "" {
		return nil
	}

	stmt, err := exec.PrepareContext(ctx, s.table.otherVariantsSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare variant check: %w", err)
	}
	defer stmt.Close()

	var count int
	if err := stmt.QueryRowContext(ctx, id).Scan(&count); err != nil {
		return fmt.Errorf("failed to check variant of product %d: %w", id, err)
	}
	if count > 0 {
		return fmt.Errorf("product %d is not a %s: %w", id, s.table.kind, errVariantMismatch)
	}
	return nil
}
