package catalog

import (
	"time"

	"gorm.io/gorm"

	"safety-forms-api/internal/formbuilder"
)

type CatalogService struct {
	DB *gorm.DB
}

type GetCatalogResult struct {
	NotModified  bool
	LastModified time.Time
	Templates    []formbuilder.FormTemplate
}

// GetCatalogIfModified:
// - Loads every active template visible to the scope (the tenant's own plus
//   the global set; global scope sees only the global set).
// - If clientLastModified is present and no template is newer => NotModified=true.
func (s *CatalogService) GetCatalogIfModified(scope formbuilder.TenantScope, clientLastModified *time.Time) (*GetCatalogResult, error) {
	q := s.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Preload("Sections.Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Preload("Workflow").
		Where("is_active = ?", true).
		Order("form_code asc")

	if scope.IsGlobal() {
		q = q.Where("company_id IS NULL")
	} else {
		q = q.Where("(company_id IS NULL OR company_id = ?)", *scope.CompanyID())
	}

	var templates []formbuilder.FormTemplate
	if err := q.Find(&templates).Error; err != nil {
		return nil, err
	}

	var lastModified time.Time
	for _, t := range templates {
		if t.UpdatedAt.After(lastModified) {
			lastModified = t.UpdatedAt
		}
	}

	// If the client has a cached catalog, only resend when something is newer
	if clientLastModified != nil && len(templates) > 0 {
		if !lastModified.After(*clientLastModified) {
			return &GetCatalogResult{NotModified: true, LastModified: lastModified}, nil
		}
	}

	return &GetCatalogResult{NotModified: false, LastModified: lastModified, Templates: templates}, nil
}
