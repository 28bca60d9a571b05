package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/draft-shop/internal/service"
)

// CategoryController handles HTTP requests for category operations.
type CategoryController struct {
	categories *service.CategoryService
}

func NewCategoryController(categories *service.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// CreateCategoryRequest represents the request body for creating a category.
// A zero ID lets the store assign one.
type CreateCategoryRequest struct {
	ID          int64  `json:"id" binding:"gte=0"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := cc.categories.Create(c.Request.Context(), req.ID, req.Name, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := ListResponse[CategoryResponse]{Items: make([]CategoryResponse, 0, len(categories))}
	for _, category := range categories {
		response.Items = append(response.Items, toCategoryResponse(category))
	}

	c.JSON(http.StatusOK, response)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := cc.categories.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// ListCategoryProducts handles the HTTP GET request for the products of one category.
func (cc *CategoryController) ListCategoryProducts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := cc.categories.WithProducts(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response := ListResponse[ProductResponse]{Items: make([]ProductResponse, 0, len(category.Products))}
	for _, product := range category.Products {
		response.Items = append(response.Items, toBaseProductResponse(product))
	}

	c.JSON(http.StatusOK, response)
}

// DeleteCategory removes the category together with its products.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.categories.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}
