package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/draft-shop/internal/http/controller"
	"github.com/iyhunko/draft-shop/internal/http/middleware"
	"github.com/iyhunko/draft-shop/internal/model"
)

// Controllers groups the handlers mounted by InitRouter.
type Controllers struct {
	Base       *controller.Controller
	Categories *controller.CategoryController
	Products   *controller.ProductController
	Clothing   *controller.VariantController[*model.Clothing, controller.ClothingResponse]
	Electronic *controller.VariantController[*model.Electronic, controller.ElectronicResponse]
}

// variantRoutes is implemented by every VariantController instantiation.
type variantRoutes interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	AddStock(c *gin.Context)
	RemoveStock(c *gin.Context)
}

func InitRouter(server *gin.Engine, ctrs Controllers) *gin.Engine {
	// RequestID runs first so recovery and request logs carry the id.
	server.Use(middleware.RequestID(), middleware.Recovery(), middleware.Logger(), middleware.CORS())

	server.GET("/ping", ctrs.Base.Ping)

	categories := server.Group("/categories")
	{
		categories.GET("", ctrs.Categories.ListCategories)
		categories.POST("", ctrs.Categories.CreateCategory)
		categories.GET("/:id", ctrs.Categories.GetCategory)
		categories.GET("/:id/products", ctrs.Categories.ListCategoryProducts)
		categories.DELETE("/:id", ctrs.Categories.DeleteCategory)
	}

	products := server.Group("/products")
	{
		products.GET("", ctrs.Products.ListProducts)
		products.GET("/:id", ctrs.Products.GetProduct)
		products.GET("/:id/category", ctrs.Products.GetProductCategory)
	}

	mountVariant(server.Group("/clothing"), ctrs.Clothing)
	mountVariant(server.Group("/electronics"), ctrs.Electronic)

	return server
}

func mountVariant(group *gin.RouterGroup, ctr variantRoutes) {
	group.POST("", ctr.Create)
	group.GET("", ctr.List)
	group.GET("/:id", ctr.Get)
	group.PUT("/:id", ctr.Update)
	group.POST("/:id/stock/add", ctr.AddStock)
	group.POST("/:id/stock/remove", ctr.RemoveStock)
}
