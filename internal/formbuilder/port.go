package formbuilder

type FormBuilderServiceAPI interface {
	ImportFormFromJSON(cfg FormConfig, scope TenantScope) (int64, error)
	BulkImportForms(cfgs []FormConfig, scope TenantScope) ImportResult
	BulkImportFormsIfNotExists(cfgs []FormConfig, scope TenantScope, skipExisting bool) ImportResult
	FormExists(code string, scope TenantScope) bool
	DeleteFormTemplate(templateID int64) bool
	DeleteFormsByCode(codes []string, scope TenantScope) int64
	ExportFormJSON(templateID int64) ([]byte, error)
	ListArchivedConfigs(scope TenantScope) ([]string, error)
}
