package catalog

import (
	"time"

	"safety-forms-api/internal/formbuilder"
)

type CatalogServiceAPI interface {
	GetCatalogIfModified(scope formbuilder.TenantScope, clientLastModified *time.Time) (*GetCatalogResult, error)
}
