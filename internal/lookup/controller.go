package lookup

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LookupController struct {
	Service LookupServiceAPI
}

func (lc *LookupController) GetAllCorElements(c *gin.Context) {
	elements, err := lc.Service.GetAllCorElements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "COR elements fetched successfully",
		"cor_elements": elements,
	})
}

func (lc *LookupController) GetCorElementByNumber(c *gin.Context) {
	numberStr := strings.TrimSpace(c.Param("number"))
	number, err := strconv.Atoi(numberStr)
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid element number is required"})
		return
	}

	element, err := lc.Service.GetCorElementByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "COR element not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "COR element fetched successfully",
		"cor_element": element,
	})
}

func (lc *LookupController) GetFieldTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Field types fetched successfully",
		"field_types": lc.Service.GetFieldTypes(),
	})
}

func (lc *LookupController) GetFrequencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Frequencies fetched successfully",
		"frequencies": lc.Service.GetFrequencies(),
	})
}
