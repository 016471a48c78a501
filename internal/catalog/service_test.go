package catalog

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"safety-forms-api/internal/formbuilder"
)

var testDBSeq uint64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	id := atomic.AddUint64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:catalog_test_%d?mode=memory&cache=shared", id)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(
		&formbuilder.FormTemplate{},
		&formbuilder.FormSection{},
		&formbuilder.FormField{},
		&formbuilder.FormWorkflow{},
	); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func importTemplate(t *testing.T, db *gorm.DB, code string, scope formbuilder.TenantScope) int64 {
	t.Helper()

	importer := &formbuilder.FormBuilderService{DB: db}
	cfg := formbuilder.FormConfig{
		Code:       code,
		Name:       "Form " + code,
		CorElement: 5,
		Frequency:  "daily",
		Sections: []formbuilder.SectionConfig{
			{
				Title: "Main",
				Fields: []formbuilder.FieldConfig{
					{Code: "note", Label: "Note", FieldType: formbuilder.FieldTypeText},
				},
			},
		},
		Workflow: &formbuilder.WorkflowConfig{SubmitToRole: "supervisor", NotifyRoles: []string{}, SyncPriority: 3},
	}

	id, err := importer.ImportFormFromJSON(cfg, scope)
	if err != nil {
		t.Fatalf("import %s: %v", code, err)
	}
	return id
}

func TestGetCatalogIfModified_ScopeVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := &CatalogService{DB: db}

	importTemplate(t, db, "global-01", formbuilder.GlobalScope())
	importTemplate(t, db, "acme-01", formbuilder.CompanyScope("acme"))
	importTemplate(t, db, "other-01", formbuilder.CompanyScope("other"))

	res, err := svc.GetCatalogIfModified(formbuilder.CompanyScope("acme"), nil)
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if res.NotModified {
		t.Fatal("first fetch must not be not_modified")
	}
	if len(res.Templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(res.Templates))
	}
	// Ordered by code: acme-01 then global-01.
	if res.Templates[0].FormCode != "acme-01" || res.Templates[1].FormCode != "global-01" {
		t.Fatalf("unexpected codes: %s, %s", res.Templates[0].FormCode, res.Templates[1].FormCode)
	}

	global, err := svc.GetCatalogIfModified(formbuilder.GlobalScope(), nil)
	if err != nil {
		t.Fatalf("get global catalog: %v", err)
	}
	if len(global.Templates) != 1 || global.Templates[0].FormCode != "global-01" {
		t.Fatalf("global scope leaked tenant templates: %+v", global.Templates)
	}
}

func TestGetCatalogIfModified_PreloadsHierarchy(t *testing.T) {
	db := newTestDB(t)
	svc := &CatalogService{DB: db}

	importTemplate(t, db, "daily-01", formbuilder.GlobalScope())

	res, err := svc.GetCatalogIfModified(formbuilder.GlobalScope(), nil)
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if len(res.Templates) != 1 {
		t.Fatalf("got %d templates", len(res.Templates))
	}

	tpl := res.Templates[0]
	if len(tpl.Sections) != 1 || len(tpl.Sections[0].Fields) != 1 {
		t.Fatalf("hierarchy not preloaded: %+v", tpl)
	}
	if tpl.Workflow == nil {
		t.Fatal("workflow not preloaded")
	}
	if res.LastModified.IsZero() {
		t.Fatal("expected a last_modified stamp")
	}
}

func TestGetCatalogIfModified_NotModified(t *testing.T) {
	db := newTestDB(t)
	svc := &CatalogService{DB: db}

	importTemplate(t, db, "daily-01", formbuilder.GlobalScope())

	first, err := svc.GetCatalogIfModified(formbuilder.GlobalScope(), nil)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	cached := first.LastModified
	second, err := svc.GetCatalogIfModified(formbuilder.GlobalScope(), &cached)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if !second.NotModified {
		t.Fatal("expected not_modified with a fresh client timestamp")
	}
	if len(second.Templates) != 0 {
		t.Fatal("not_modified response should not carry templates")
	}

	// A new import invalidates the client's cache.
	time.Sleep(10 * time.Millisecond)
	importTemplate(t, db, "daily-02", formbuilder.GlobalScope())

	third, err := svc.GetCatalogIfModified(formbuilder.GlobalScope(), &cached)
	if err != nil {
		t.Fatalf("third fetch: %v", err)
	}
	if third.NotModified {
		t.Fatal("expected a refresh after a new import")
	}
	if len(third.Templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(third.Templates))
	}
}

func TestGetCatalogIfModified_SkipsInactive(t *testing.T) {
	db := newTestDB(t)
	svc := &CatalogService{DB: db}

	id := importTemplate(t, db, "retired-01", formbuilder.GlobalScope())
	if err := db.Model(&formbuilder.FormTemplate{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	res, err := svc.GetCatalogIfModified(formbuilder.GlobalScope(), nil)
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if len(res.Templates) != 0 {
		t.Fatalf("inactive template leaked: %+v", res.Templates)
	}
}

func TestGetCatalogIfModified_EmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := &CatalogService{DB: db}

	stale := time.Now()
	res, err := svc.GetCatalogIfModified(formbuilder.GlobalScope(), &stale)
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if res.NotModified {
		t.Fatal("empty catalog must not report not_modified")
	}
	if len(res.Templates) != 0 {
		t.Fatalf("got %d templates", len(res.Templates))
	}
}
