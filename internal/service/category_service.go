package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
)

// ErrInvalidCategory is returned when a category fails validation.
var ErrInvalidCategory = errors.New("invalid category")

// ProductCategoryFinder resolves base product rows and their owning category.
type ProductCategoryFinder interface {
	FindOneByID(ctx context.Context, id int64) (*model.Product, bool, error)
	FindCategory(ctx context.Context, product *model.Product) (*model.Category, bool, error)
}

type CategoryService struct {
	categories repository.CategoryStore
	products   ProductCategoryFinder
}

func NewCategoryService(categories repository.CategoryStore, products ProductCategoryFinder) *CategoryService {
	return &CategoryService{
		categories: categories,
		products:   products,
	}
}

// Create stores a category. A non-zero id is kept as given.
func (cs *CategoryService) Create(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidCategory)
	}
	if id < 0 {
		return nil, fmt.Errorf("id %d is negative: %w", id, ErrInvalidCategory)
	}

	return cs.categories.Create(ctx, &model.Category{
		ID:          id,
		Name:        name,
		Description: description,
	})
}

// Get returns repository.ErrNotFound when the category does not exist.
func (cs *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	category, found, err := cs.categories.FindOneByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("category %d: %w", id, repository.ErrNotFound)
	}
	return category, nil
}

func (cs *CategoryService) List(ctx context.Context) ([]*model.Category, error) {
	return cs.categories.FindAll(ctx)
}

// Delete removes the category with all of its products.
func (cs *CategoryService) Delete(ctx context.Context, id int64) error {
	return cs.categories.DeleteByID(ctx, id)
}

// WithProducts returns the category with its products loaded.
func (cs *CategoryService) WithProducts(ctx context.Context, id int64) (*model.Category, error) {
	category, err := cs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cs.categories.LoadProducts(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ProductCategory returns the category owning the product.
func (cs *CategoryService) ProductCategory(ctx context.Context, productID int64) (*model.Category, error) {
	product, found, err := cs.products.FindOneByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("product %d: %w", productID, repository.ErrNotFound)
	}

	category, found, err := cs.products.FindCategory(ctx, product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("category of product %d: %w", productID, repository.ErrNotFound)
	}
	return category, nil
}
