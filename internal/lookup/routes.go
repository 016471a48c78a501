package lookup

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, lookupService LookupServiceAPI) {
	lookupController := &LookupController{Service: lookupService}

	lookupGroup := r.Group("/lookup")
	{
		lookupGroup.GET("/cor-elements", lookupController.GetAllCorElements)
		lookupGroup.GET("/cor-elements/:number", lookupController.GetCorElementByNumber)
		lookupGroup.GET("/field-types", lookupController.GetFieldTypes)
		lookupGroup.GET("/frequencies", lookupController.GetFrequencies)
	}
}
