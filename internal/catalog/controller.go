package catalog

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"safety-forms-api/internal/formbuilder"
)

type CatalogController struct {
	CatalogService CatalogServiceAPI
}

// GET /api/forms/catalog?company_id=...&last_modified=...
//
// last_modified should be the timestamp of the catalog the client has cached
// offline. Accepted formats:
// - RFC3339 / RFC3339Nano (recommended)
// - unix milliseconds (e.g., 1708451234567)
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	scope := formbuilder.CompanyScope(strings.TrimSpace(c.Query("company_id")))

	clientLM, err := parseOptionalTime(c.Query("last_modified"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid last_modified (use RFC3339 or unix ms)"})
		return
	}

	res, err := cc.CatalogService.GetCatalogIfModified(scope, clientLM)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !res.LastModified.IsZero() {
		c.Header("Last-Modified", res.LastModified.UTC().Format(time.RFC3339Nano))
	}

	if res.NotModified {
		c.JSON(http.StatusOK, gin.H{
			"not_modified":  true,
			"last_modified": res.LastModified,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"not_modified":  false,
		"last_modified": res.LastModified,
		"count":         len(res.Templates),
		"templates":     res.Templates,
	})
}

func parseOptionalTime(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}

	// unix milliseconds
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		t := time.Unix(0, ms*int64(time.Millisecond))
		return &t, nil
	}

	return nil, strconv.ErrSyntax
}
