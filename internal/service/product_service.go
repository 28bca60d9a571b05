package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iyhunko/draft-shop/internal/metrics"
	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
	"github.com/iyhunko/draft-shop/internal/sqs"
)

const (
	KindProduct    = "product"
	KindClothing   = "clothing"
	KindElectronic = "electronic"

	directionAdd    = "add"
	directionRemove = "remove"
)

// Publisher sends catalog notifications.
type Publisher interface {
	PublishProductMessage(ctx context.Context, msg sqs.ProductMessage) error
}

// CategoryFinder looks up the category a product refers to.
type CategoryFinder interface {
	FindOneByID(ctx context.Context, id int64) (result *model.Category, found bool, err error)
}

// ProductService runs catalog operations for one product variant.
type ProductService[T model.Item] struct {
	store      repository.ProductStore[T]
	publisher  Publisher
	categories CategoryFinder
	kind       string
	now        func() time.Time
}

// NewProductService creates a service for the given variant. publisher may be nil.
func NewProductService[T model.Item](store repository.ProductStore[T], publisher Publisher, kind string) *ProductService[T] {
	return &ProductService[T]{
		store:     store,
		publisher: publisher,
		kind:      kind,
		now:       time.Now,
	}
}

// WithCategories makes Create and Update reject products whose category does not exist.
func (ps *ProductService[T]) WithCategories(categories CategoryFinder) *ProductService[T] {
	ps.categories = categories
	return ps
}

func (ps *ProductService[T]) Kind() string {
	return ps.kind
}

func (ps *ProductService[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := ps.validate(ctx, item); err != nil {
		return zero, err
	}

	created, err := ps.store.Create(ctx, item)
	if err != nil {
		ps.recordFailure(err)
		return zero, err
	}

	metrics.ProductsCreated.WithLabelValues(ps.kind).Inc()
	ps.publish(ctx, sqs.ActionCreated, created)

	return created, nil
}

// Get returns found=false when no product of this variant has the id.
func (ps *ProductService[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	return ps.store.FindOneByID(ctx, id)
}

func (ps *ProductService[T]) List(ctx context.Context, query repository.Query) ([]T, error) {
	return ps.store.List(ctx, query)
}

// Update persists every field of item and refreshes its update timestamp.
func (ps *ProductService[T]) Update(ctx context.Context, item T) (T, error) {
	var zero T
	if err := ps.validate(ctx, item); err != nil {
		return zero, err
	}

	item.Core().Touch(ps.now())
	updated, err := ps.store.Update(ctx, item)
	if err != nil {
		ps.recordFailure(err)
		return zero, err
	}

	ps.publish(ctx, sqs.ActionUpdated, updated)
	return updated, nil
}

// Restock adds n units to the stored product.
func (ps *ProductService[T]) Restock(ctx context.Context, id int64, n int) (T, error) {
	return ps.adjustStock(ctx, id, directionAdd, func(item T) error {
		return item.AddStocks(n)
	})
}

// Withdraw removes n units from the stored product. The stored row is unchanged on error.
func (ps *ProductService[T]) Withdraw(ctx context.Context, id int64, n int) (T, error) {
	return ps.adjustStock(ctx, id, directionRemove, func(item T) error {
		return item.RemoveStocks(n)
	})
}

func (ps *ProductService[T]) adjustStock(ctx context.Context, id int64, direction string, apply func(T) error) (T, error) {
	var zero T
	item, found, err := ps.store.FindOneByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, fmt.Errorf("%s %d: %w", ps.kind, id, repository.ErrNotFound)
	}

	if err := apply(item); err != nil {
		return zero, err
	}

	item.Core().Touch(ps.now())
	updated, err := ps.store.Update(ctx, item)
	if err != nil {
		ps.recordFailure(err)
		return zero, err
	}

	metrics.StockAdjustments.WithLabelValues(ps.kind, direction).Inc()
	ps.publish(ctx, sqs.ActionStockChanged, updated)

	return updated, nil
}

func (ps *ProductService[T]) validate(ctx context.Context, item T) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if ps.categories == nil {
		return nil
	}

	categoryID := item.Core().CategoryID
	_, found, err := ps.categories.FindOneByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to look up category %d: %w", categoryID, err)
	}
	if !found {
		return fmt.Errorf("category %d does not exist: %w", categoryID, ErrInvalidCategory)
	}
	return nil
}

func (ps *ProductService[T]) recordFailure(err error) {
	if errors.Is(err, repository.ErrPersistence) {
		metrics.PersistenceFailures.WithLabelValues(ps.kind).Inc()
	}
}

func (ps *ProductService[T]) publish(ctx context.Context, action string, item T) {
	if ps.publisher == nil {
		return
	}

	core := item.Core()
	msg := sqs.ProductMessage{
		Action:    action,
		Kind:      ps.kind,
		ProductID: core.ID,
		Name:      core.Name,
		Price:     core.Price,
		Quantity:  core.Quantity,
	}
	if err := ps.publisher.PublishProductMessage(ctx, msg); err != nil {
		// the write already committed
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", action),
			slog.String("kind", ps.kind), slog.Int64("product_id", core.ID))
	}
}
