package formbuilder

import "gorm.io/gorm"

// TenantScope says whose templates an operation touches: one company's, or
// the global catalog. It owns the "company_id = ?" vs "company_id IS NULL"
// distinction so callers never juggle nullable strings.
type TenantScope struct {
	companyID *string
}

func GlobalScope() TenantScope {
	return TenantScope{}
}

func CompanyScope(companyID string) TenantScope {
	if companyID == "" {
		return TenantScope{}
	}
	return TenantScope{companyID: &companyID}
}

func (s TenantScope) IsGlobal() bool {
	return s.companyID == nil
}

// CompanyID returns the nullable column value for persistence.
func (s TenantScope) CompanyID() *string {
	return s.companyID
}

func (s TenantScope) Apply(q *gorm.DB) *gorm.DB {
	if s.companyID == nil {
		return q.Where("company_id IS NULL")
	}
	return q.Where("company_id = ?", *s.companyID)
}

func (s TenantScope) String() string {
	if s.companyID == nil {
		return "global"
	}
	return *s.companyID
}
