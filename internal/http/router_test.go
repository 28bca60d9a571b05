package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/draft-shop/internal/config"
	httpAPI "github.com/iyhunko/draft-shop/internal/http"
	"github.com/iyhunko/draft-shop/internal/http/controller"
	"github.com/iyhunko/draft-shop/internal/model"
	reposql "github.com/iyhunko/draft-shop/internal/repository/sql"
	"github.com/iyhunko/draft-shop/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := reposql.StartDB(context.Background(), config.DB{Path: filepath.Join(t.TempDir(), "shop.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	productRepo := reposql.NewProductRepository(db)
	categoryRepo := reposql.NewCategoryRepository(db)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)

	gin.SetMode(gin.TestMode)
	return httpAPI.InitRouter(gin.New(), httpAPI.Controllers{
		Base:       controller.New(),
		Categories: controller.NewCategoryController(categoryService),
		Products: controller.NewProductController(
			service.NewProductService[*model.Product](productRepo, nil, service.KindProduct).
				WithCategories(categoryRepo), categoryService),
		Clothing: controller.NewClothingController(
			service.NewProductService[*model.Clothing](reposql.NewClothingRepository(db), nil, service.KindClothing).
				WithCategories(categoryRepo)),
		Electronic: controller.NewElectronicController(
			service.NewProductService[*model.Electronic](reposql.NewElectronicRepository(db), nil, service.KindElectronic).
				WithCategories(categoryRepo)),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func createCategory(t *testing.T, router *gin.Engine, name string) int64 {
	t.Helper()
	w, response := doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(response["id"].(float64))
}

func createClothing(t *testing.T, router *gin.Engine, categoryID int64) int64 {
	t.Helper()
	w, response := doJSON(t, router, http.MethodPost, "/clothing", map[string]interface{}{
		"name":         "Linen shirt",
		"photos":       []string{"front.png"},
		"price":        2500,
		"quantity":     8,
		"category_id":  categoryID,
		"size":         "M",
		"color":        "white",
		"type":         "shirt",
		"material_fee": 300,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(response["id"].(float64))
}

func TestRouter_Ping(t *testing.T) {
	router := setupRouter(t)

	w, response := doJSON(t, router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", response["message"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestClothingAPI(t *testing.T) {
	router := setupRouter(t)
	categoryID := createCategory(t, router, "Apparel")
	id := createClothing(t, router, categoryID)
	path := fmt.Sprintf("/clothing/%d", id)

	t.Run("get created clothing", func(t *testing.T) {
		w, response := doJSON(t, router, http.MethodGet, path, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Linen shirt", response["name"])
		assert.Equal(t, []interface{}{"front.png"}, response["photos"])
		assert.Equal(t, float64(8), response["quantity"])
		assert.Equal(t, "white", response["color"])
		assert.NotEmpty(t, response["created_at"])
	})

	t.Run("stock changes", func(t *testing.T) {
		w, response := doJSON(t, router, http.MethodPost, path+"/stock/remove", map[string]int{"amount": 2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, float64(6), response["quantity"])

		w, response = doJSON(t, router, http.MethodPost, path+"/stock/add", map[string]int{"amount": 6})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, float64(12), response["quantity"])

		w, _ = doJSON(t, router, http.MethodPost, path+"/stock/remove", map[string]int{"amount": 13})
		assert.Equal(t, http.StatusConflict, w.Code)

		w, _ = doJSON(t, router, http.MethodPost, path+"/stock/add", map[string]int{"amount": -1})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = doJSON(t, router, http.MethodPost, path+"/stock/add", map[string]int{"amount": math.MaxInt})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = doJSON(t, router, http.MethodPost, path+"/stock/add", map[string]int{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		_, response = doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, float64(12), response["quantity"])
	})

	t.Run("replace clothing", func(t *testing.T) {
		w, response := doJSON(t, router, http.MethodPut, path, map[string]interface{}{
			"name":         "Linen shirt",
			"price":        2700,
			"quantity":     12,
			"category_id":  categoryID,
			"size":         "L",
			"color":        "navy",
			"type":         "shirt",
			"material_fee": 300,
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "navy", response["color"])
		assert.Equal(t, float64(2700), response["price"])
		assert.Equal(t, []interface{}{}, response["photos"])
	})

	t.Run("invalid requests", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/clothing", map[string]interface{}{"price": 10, "category_id": categoryID})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = doJSON(t, router, http.MethodGet, "/clothing/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = doJSON(t, router, http.MethodGet, "/clothing/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, _ = doJSON(t, router, http.MethodGet, "/clothing?token=not-a-token", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		shirt := map[string]interface{}{
			"name":         "Wool sweater",
			"price":        4000,
			"quantity":     1,
			"category_id":  999,
			"size":         "S",
			"color":        "grey",
			"type":         "sweater",
			"material_fee": 100,
		}

		w, _ := doJSON(t, router, http.MethodPost, "/clothing", shirt)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w, _ = doJSON(t, router, http.MethodPut, path, shirt)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w, response := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(categoryID), response["category_id"])
	})

	t.Run("clothing is not an electronic", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, fmt.Sprintf("/electronics/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestElectronicsAPI_Pagination(t *testing.T) {
	router := setupRouter(t)
	categoryID := createCategory(t, router, "Gadgets")

	for _, brand := range []string{"Sony", "Philips", "Bose"} {
		w, _ := doJSON(t, router, http.MethodPost, "/electronics", map[string]interface{}{
			"name":         brand + " radio",
			"price":        3200,
			"quantity":     1,
			"category_id":  categoryID,
			"brand":        brand,
			"warranty_fee": 100,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w, response := doJSON(t, router, http.MethodGet, "/electronics?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, response["items"], 2)
	token, ok := response["next_page_token"].(string)
	require.True(t, ok)

	w, response = doJSON(t, router, http.MethodGet, "/electronics?limit=2&token="+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := response["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Bose", items[0].(map[string]interface{})["brand"])
	assert.Nil(t, response["next_page_token"])
}

func TestCategoryAPI(t *testing.T) {
	router := setupRouter(t)
	categoryID := createCategory(t, router, "Apparel")
	clothingID := createClothing(t, router, categoryID)

	t.Run("explicit id", func(t *testing.T) {
		w, response := doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"id": 42, "name": "Puzzles"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(42), response["id"])

		w, _ = doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"description": "no name"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list categories", func(t *testing.T) {
		w, response := doJSON(t, router, http.MethodGet, "/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, response["items"], 2)
	})

	t.Run("products of a category", func(t *testing.T) {
		w, response := doJSON(t, router, http.MethodGet, fmt.Sprintf("/categories/%d/products", categoryID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		items := response["items"].([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, float64(clothingID), items[0].(map[string]interface{})["id"])

		w, _ = doJSON(t, router, http.MethodGet, "/categories/777/products", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("category of a product", func(t *testing.T) {
		w, response := doJSON(t, router, http.MethodGet, fmt.Sprintf("/products/%d/category", clothingID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Apparel", response["name"])

		w, response = doJSON(t, router, http.MethodGet, fmt.Sprintf("/products/%d", clothingID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Linen shirt", response["name"])
		assert.Nil(t, response["color"])
	})

	t.Run("delete cascades", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/clothing/%d", clothingID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, response := doJSON(t, router, http.MethodGet, "/products", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, response["items"])

		w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
