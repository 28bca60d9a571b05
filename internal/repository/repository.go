package repository

import (
	"context"
	"errors"

	"github.com/iyhunko/draft-shop/internal/model"
)

var (
	// ErrConnectionNotSet is returned when a repository was built without a database handle.
	ErrConnectionNotSet = errors.New("database connection is not set")

	// ErrPersistence marks a write that was rolled back.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotFound is returned by operations that require an existing row.
	ErrNotFound = errors.New("resource not found")
)

// ProductStore defines the capabilities shared by every product variant store.
type ProductStore[T model.Item] interface {
	// FindOneByID returns found=false without an error when no row matches.
	FindOneByID(ctx context.Context, id int64) (result T, found bool, err error)
	FindAll(ctx context.Context) ([]T, error)
	List(ctx context.Context, query Query) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
}

// CategoryStore defines the operations available on categories.
type CategoryStore interface {
	FindOneByID(ctx context.Context, id int64) (result *model.Category, found bool, err error)
	FindAll(ctx context.Context) ([]*model.Category, error)
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteByID(ctx context.Context, id int64) error
	Products(ctx context.Context, categoryID int64) ([]*model.Product, error)
	LoadProducts(ctx context.Context, category *model.Category) error
}
