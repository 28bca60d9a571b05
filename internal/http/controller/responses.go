package controller

import "github.com/iyhunko/draft-shop/internal/model"

// ProductRequest holds the fields shared by every product variant.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Price       int64    `json:"price" binding:"gte=0"`
	Quantity    int      `json:"quantity" binding:"gte=0"`
	CategoryID  int64    `json:"category_id" binding:"required,gt=0"`
}

func (r ProductRequest) apply(core *model.ProductCore) {
	core.Name = r.Name
	core.Description = r.Description
	core.Photos = model.Photos(r.Photos)
	if core.Photos == nil {
		core.Photos = model.Photos{}
	}
	core.Price = r.Price
	core.Quantity = r.Quantity
	core.CategoryID = r.CategoryID
}

// ClothingRequest represents the request body for creating or replacing clothing.
type ClothingRequest struct {
	ProductRequest
	Size        string `json:"size"`
	Color       string `json:"color"`
	Type        string `json:"type"`
	MaterialFee int64  `json:"material_fee" binding:"gte=0"`
}

// ElectronicRequest represents the request body for creating or replacing electronics.
type ElectronicRequest struct {
	ProductRequest
	Brand       string `json:"brand"`
	WarrantyFee int64  `json:"warranty_fee" binding:"gte=0"`
}

// StockRequest represents the request body for stock adjustments.
type StockRequest struct {
	Amount *int `json:"amount" binding:"required"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Price       int64    `json:"price"`
	Quantity    int      `json:"quantity"`
	CategoryID  int64    `json:"category_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type ClothingResponse struct {
	ProductResponse
	Size        string `json:"size"`
	Color       string `json:"color"`
	Type        string `json:"type"`
	MaterialFee int64  `json:"material_fee"`
}

type ElectronicResponse struct {
	ProductResponse
	Brand       string `json:"brand"`
	WarrantyFee int64  `json:"warranty_fee"`
}

// CategoryResponse represents the response body for a category. Products is only set when loaded.
type CategoryResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	Products    []ProductResponse `json:"products,omitempty"`
}

// ListResponse represents a page of items.
type ListResponse[R any] struct {
	Items         []R    `json:"items"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

func toProductResponse(core *model.ProductCore) ProductResponse {
	photos := []string(core.Photos)
	if photos == nil {
		photos = []string{}
	}
	return ProductResponse{
		ID:          core.ID,
		Name:        core.Name,
		Description: core.Description,
		Photos:      photos,
		Price:       core.Price,
		Quantity:    core.Quantity,
		CategoryID:  core.CategoryID,
		CreatedAt:   core.CreatedAt.Format(timeLayout),
		UpdatedAt:   core.UpdatedAt.Format(timeLayout),
	}
}

func toBaseProductResponse(product *model.Product) ProductResponse {
	return toProductResponse(&product.ProductCore)
}

func toClothingResponse(clothing *model.Clothing) ClothingResponse {
	return ClothingResponse{
		ProductResponse: toProductResponse(&clothing.ProductCore),
		Size:            clothing.Size,
		Color:           clothing.Color,
		Type:            clothing.Type,
		MaterialFee:     clothing.MaterialFee,
	}
}

func toElectronicResponse(electronic *model.Electronic) ElectronicResponse {
	return ElectronicResponse{
		ProductResponse: toProductResponse(&electronic.ProductCore),
		Brand:           electronic.Brand,
		WarrantyFee:     electronic.WarrantyFee,
	}
}

func toCategoryResponse(category *model.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt.Format(timeLayout),
		UpdatedAt:   category.UpdatedAt.Format(timeLayout),
	}
	for _, product := range category.Products {
		resp.Products = append(resp.Products, toBaseProductResponse(product))
	}
	return resp
}
