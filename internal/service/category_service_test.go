package service_test

import (
	"context"
	"testing"

	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
	"github.com/iyhunko/draft-shop/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryStore is a mock implementation of repository.CategoryStore.
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) FindOneByID(ctx context.Context, id int64) (*model.Category, bool, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*model.Category)
	return category, args.Bool(1), args.Error(2)
}

func (m *MockCategoryStore) FindAll(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*model.Category)
	return categories, args.Error(1)
}

func (m *MockCategoryStore) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	created, _ := args.Get(0).(*model.Category)
	return created, args.Error(1)
}

func (m *MockCategoryStore) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryStore) Products(ctx context.Context, categoryID int64) ([]*model.Product, error) {
	args := m.Called(ctx, categoryID)
	products, _ := args.Get(0).([]*model.Product)
	return products, args.Error(1)
}

func (m *MockCategoryStore) LoadProducts(ctx context.Context, category *model.Category) error {
	return m.Called(ctx, category).Error(0)
}

// MockProductFinder is a mock implementation of service.ProductCategoryFinder.
type MockProductFinder struct {
	mock.Mock
}

func (m *MockProductFinder) FindOneByID(ctx context.Context, id int64) (*model.Product, bool, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Bool(1), args.Error(2)
}

func (m *MockProductFinder) FindCategory(ctx context.Context, product *model.Product) (*model.Category, bool, error) {
	args := m.Called(ctx, product)
	category, _ := args.Get(0).(*model.Category)
	return category, args.Bool(1), args.Error(2)
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores category", func(t *testing.T) {
		store := new(MockCategoryStore)
		store.On("Create", ctx, mock.MatchedBy(func(c *model.Category) bool {
			return c.ID == 42 && c.Name == "Puzzles"
		})).Return(&model.Category{ID: 42, Name: "Puzzles"}, nil)

		category, err := service.NewCategoryService(store, nil).Create(ctx, 42, "Puzzles", "")

		require.NoError(t, err)
		assert.Equal(t, int64(42), category.ID)
		store.AssertExpectations(t)
	})

	t.Run("blank name", func(t *testing.T) {
		store := new(MockCategoryStore)

		_, err := service.NewCategoryService(store, nil).Create(ctx, 0, " ", "")

		assert.ErrorIs(t, err, service.ErrInvalidCategory)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_WithProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("loads products", func(t *testing.T) {
		store := new(MockCategoryStore)
		category := &model.Category{ID: 2, Name: "Toys"}
		store.On("FindOneByID", ctx, int64(2)).Return(category, true, nil)
		store.On("LoadProducts", ctx, category).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Category).Products = []*model.Product{{ProductCore: model.ProductCore{ID: 9}}}
		}).Return(nil)

		result, err := service.NewCategoryService(store, nil).WithProducts(ctx, 2)

		require.NoError(t, err)
		require.Len(t, result.Products, 1)
		assert.Equal(t, int64(9), result.Products[0].ID)
	})

	t.Run("unknown category", func(t *testing.T) {
		store := new(MockCategoryStore)
		store.On("FindOneByID", ctx, int64(3)).Return(nil, false, nil)

		_, err := service.NewCategoryService(store, nil).WithProducts(ctx, 3)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		store.AssertNotCalled(t, "LoadProducts", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_ProductCategory(t *testing.T) {
	ctx := context.Background()
	product := &model.Product{ProductCore: model.ProductCore{ID: 5, CategoryID: 2}}

	t.Run("found", func(t *testing.T) {
		finder := new(MockProductFinder)
		finder.On("FindOneByID", ctx, int64(5)).Return(product, true, nil)
		finder.On("FindCategory", ctx, product).Return(&model.Category{ID: 2, Name: "Toys"}, true, nil)

		category, err := service.NewCategoryService(new(MockCategoryStore), finder).ProductCategory(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Toys", category.Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		finder := new(MockProductFinder)
		finder.On("FindOneByID", ctx, int64(6)).Return(nil, false, nil)

		_, err := service.NewCategoryService(new(MockCategoryStore), finder).ProductCategory(ctx, 6)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	store := new(MockCategoryStore)
	store.On("DeleteByID", ctx, int64(2)).Return(repository.ErrNotFound)

	err := service.NewCategoryService(store, nil).Delete(ctx, 2)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
