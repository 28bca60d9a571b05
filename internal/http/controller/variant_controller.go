package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
	"github.com/iyhunko/draft-shop/internal/service"
)

// VariantController handles HTTP requests for one product variant.
// R is the response body rendered for a single item.
type VariantController[T model.Item, R any] struct {
	service *service.ProductService[T]
	newItem func() T
	bind    func(c *gin.Context, item T) error
	render  func(item T) R
}

func NewClothingController(svc *service.ProductService[*model.Clothing]) *VariantController[*model.Clothing, ClothingResponse] {
	return &VariantController[*model.Clothing, ClothingResponse]{
		service: svc,
		newItem: func() *model.Clothing { return &model.Clothing{} },
		bind:    bindClothing,
		render:  toClothingResponse,
	}
}

func NewElectronicController(svc *service.ProductService[*model.Electronic]) *VariantController[*model.Electronic, ElectronicResponse] {
	return &VariantController[*model.Electronic, ElectronicResponse]{
		service: svc,
		newItem: func() *model.Electronic { return &model.Electronic{} },
		bind:    bindElectronic,
		render:  toElectronicResponse,
	}
}

func bindClothing(c *gin.Context, clothing *model.Clothing) error {
	var req ClothingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}
	req.apply(&clothing.ProductCore)
	clothing.Size = req.Size
	clothing.Color = req.Color
	clothing.Type = req.Type
	clothing.MaterialFee = req.MaterialFee
	return nil
}

func bindElectronic(c *gin.Context, electronic *model.Electronic) error {
	var req ElectronicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}
	req.apply(&electronic.ProductCore)
	electronic.Brand = req.Brand
	electronic.WarrantyFee = req.WarrantyFee
	return nil
}

func (vc *VariantController[T, R]) Create(c *gin.Context) {
	item := vc.newItem()
	if err := vc.bind(c, item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := vc.service.Create(c.Request.Context(), item)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vc.render(created))
}

func (vc *VariantController[T, R]) List(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}

	items, err := vc.service.List(c.Request.Context(), *query)
	if err != nil {
		writeError(c, err)
		return
	}

	response := ListResponse[R]{Items: make([]R, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, vc.render(item))
	}
	if len(items) > 0 {
		response.NextPageToken = nextPageToken(query, len(items), items[len(items)-1].Core().ID)
	}

	c.JSON(http.StatusOK, response)
}

func (vc *VariantController[T, R]) Get(c *gin.Context) {
	item, ok := vc.load(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, vc.render(item))
}

// Update replaces every writable field of a stored item.
func (vc *VariantController[T, R]) Update(c *gin.Context) {
	item, ok := vc.load(c)
	if !ok {
		return
	}
	if err := vc.bind(c, item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := vc.service.Update(c.Request.Context(), item)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, vc.render(updated))
}

func (vc *VariantController[T, R]) AddStock(c *gin.Context) {
	vc.adjustStock(c, vc.service.Restock)
}

func (vc *VariantController[T, R]) RemoveStock(c *gin.Context) {
	vc.adjustStock(c, vc.service.Withdraw)
}

func (vc *VariantController[T, R]) adjustStock(c *gin.Context, adjust func(ctx context.Context, id int64, n int) (T, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := adjust(c.Request.Context(), id, *req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, vc.render(item))
}

func (vc *VariantController[T, R]) load(c *gin.Context) (T, bool) {
	var zero T
	id, ok := parseID(c)
	if !ok {
		return zero, false
	}

	item, found, err := vc.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return zero, false
	}
	if !found {
		writeError(c, fmt.Errorf("%s %d: %w", vc.service.Kind(), id, repository.ErrNotFound))
		return zero, false
	}

	return item, true
}
