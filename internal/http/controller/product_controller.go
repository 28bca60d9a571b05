package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
	"github.com/iyhunko/draft-shop/internal/service"
)

// ProductController serves read access to base product rows of every variant.
type ProductController struct {
	products   *service.ProductService[*model.Product]
	categories *service.CategoryService
}

// NewProductController creates a new ProductController with the given services.
func NewProductController(products *service.ProductService[*model.Product], categories *service.CategoryService) *ProductController {
	return &ProductController{
		products:   products,
		categories: categories,
	}
}

// ListProducts handles the HTTP GET request for listing products with pagination.
func (pc *ProductController) ListProducts(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}

	products, err := pc.products.List(c.Request.Context(), *query)
	if err != nil {
		writeError(c, err)
		return
	}

	response := ListResponse[ProductResponse]{Items: make([]ProductResponse, 0, len(products))}
	for _, product := range products {
		response.Items = append(response.Items, toBaseProductResponse(product))
	}
	if len(products) > 0 {
		response.NextPageToken = nextPageToken(query, len(products), products[len(products)-1].ID)
	}

	c.JSON(http.StatusOK, response)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, found, err := pc.products.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		writeError(c, fmt.Errorf("product %d: %w", id, repository.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, toBaseProductResponse(product))
}

// GetProductCategory handles the HTTP GET request for the category owning a product.
func (pc *ProductController) GetProductCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := pc.categories.ProductCategory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(category))
}
