package formbuilder

import (
	"safety-forms-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, service *FormBuilderService) {
	controller := &FormBuilderController{Service: service}

	formGroup := r.Group("/api/forms")
	formGroup.Use(middlewares.AuthMiddleware())
	{
		formGroup.POST("/import", controller.ImportForm)
		formGroup.POST("/import/bulk", controller.BulkImport)
		formGroup.POST("/import/sync", controller.SyncImport)
		formGroup.POST("/import/workbook", controller.ImportWorkbook)
		formGroup.GET("/exists", controller.FormExists)
		formGroup.GET("/archive", controller.ListArchive)
		formGroup.GET("/:id/export", controller.ExportForm)
		formGroup.DELETE("/:id", controller.DeleteTemplate)
		formGroup.DELETE("", controller.DeleteByCodes)
	}
}
