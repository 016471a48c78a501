package catalog

import (
	"safety-forms-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, catalogService *CatalogService) {
	catalogController := &CatalogController{CatalogService: catalogService}

	catalogGroup := r.Group("/api/forms/catalog")
	catalogGroup.Use(middlewares.AuthMiddleware())
	{
		catalogGroup.GET("", catalogController.GetCatalog)
	}
}
