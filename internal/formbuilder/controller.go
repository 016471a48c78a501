package formbuilder

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"safety-forms-api/internal/util"

	"github.com/gin-gonic/gin"
)

type FormBuilderController struct {
	Service FormBuilderServiceAPI
}

func scopeFromQuery(c *gin.Context) TenantScope {
	return CompanyScope(strings.TrimSpace(c.Query("company_id")))
}

// POST /api/forms/import?company_id=...
func (fc *FormBuilderController) ImportForm(c *gin.Context) {
	var cfg FormConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := fc.Service.ImportFormFromJSON(cfg, scopeFromQuery(c))
	if err != nil {
		if strings.HasPrefix(err.Error(), "invalid form config") {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"template_id": id})
}

// POST /api/forms/import/bulk?company_id=...
func (fc *FormBuilderController) BulkImport(c *gin.Context) {
	var cfgs []FormConfig
	if err := c.ShouldBindJSON(&cfgs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := fc.Service.BulkImportForms(cfgs, scopeFromQuery(c))
	c.JSON(http.StatusOK, result)
}

// POST /api/forms/import/sync?company_id=...&skip_existing=true
//
// Idempotent variant: configs whose code already exists in the scope are
// skipped unless skip_existing=false.
func (fc *FormBuilderController) SyncImport(c *gin.Context) {
	var cfgs []FormConfig
	if err := c.ShouldBindJSON(&cfgs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skipExisting := true
	if raw := strings.TrimSpace(c.Query("skip_existing")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip_existing (use true or false)"})
			return
		}
		skipExisting = parsed
	}

	result := fc.Service.BulkImportFormsIfNotExists(cfgs, scopeFromQuery(c), skipExisting)
	c.JSON(http.StatusOK, result)
}

// POST /api/forms/import/workbook?company_id=... (multipart, field "file")
func (fc *FormBuilderController) ImportWorkbook(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workbook file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	cfgs, err := ParseWorkbook(f)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result := fc.Service.BulkImportFormsIfNotExists(cfgs, scopeFromQuery(c), true)
	c.JSON(http.StatusOK, result)
}

// GET /api/forms/exists?code=...&company_id=...
func (fc *FormBuilderController) FormExists(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	exists := fc.Service.FormExists(code, scopeFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"code": code, "exists": exists})
}

// GET /api/forms/:id/export
func (fc *FormBuilderController) ExportForm(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid template id is required"})
		return
	}

	doc, err := fc.Service.ExportFormJSON(id)
	if err != nil {
		if errors.Is(err, errTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", doc)
}

// GET /api/forms/archive?company_id=...
func (fc *FormBuilderController) ListArchive(c *gin.Context) {
	urls, err := fc.Service.ListArchivedConfigs(scopeFromQuery(c))
	if err != nil {
		if errors.Is(err, errArchiveDisabled) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(urls), "archives": urls})
}

// DELETE /api/forms/:id
func (fc *FormBuilderController) DeleteTemplate(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid template id is required"})
		return
	}

	deleted := fc.Service.DeleteFormTemplate(id)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DELETE /api/forms?codes=a,b&company_id=...
func (fc *FormBuilderController) DeleteByCodes(c *gin.Context) {
	codes := util.ParseCommaSeparatedCodes(c.QueryArray("codes"))
	if len(codes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "codes is required"})
		return
	}

	count := fc.Service.DeleteFormsByCode(codes, scopeFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}
