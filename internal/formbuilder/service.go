package formbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"safety-forms-api/internal/logs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultSyncPriority = 3

type FormBuilderService struct {
	DB   *gorm.DB
	Logs *logs.LogService

	// StrictExists flips FormExists from fail-open (store error reads as
	// "not found") to fail-closed (reads as "exists", so idempotent bulk
	// runs skip rather than risking a duplicate).
	StrictExists bool

	// ArchiveBucket receives a JSON copy of each imported config.
	// Empty disables archiving.
	ArchiveBucket string
}

// ImportFormFromJSON persists one config as a template with its sections,
// fields and workflow. All four stages run in a single transaction: a failure
// at any stage leaves no rows behind.
func (s *FormBuilderService) ImportFormFromJSON(cfg FormConfig, scope TenantScope) (int64, error) {
	if violations := ValidateFormConfig(&cfg); len(violations) > 0 {
		return 0, fmt.Errorf("invalid form config: %s", strings.Join(violations, "; "))
	}

	var templateID int64

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		template := FormTemplate{
			CompanyID:            scope.CompanyID(),
			FormCode:             strings.TrimSpace(cfg.Code),
			Name:                 strings.TrimSpace(cfg.Name),
			Description:          cfg.Description,
			CorElement:           cfg.CorElement,
			Frequency:            cfg.Frequency,
			EstimatedTimeMinutes: cfg.EstimatedTimeMinutes,
			Icon:                 cfg.Icon,
			Color:                cfg.Color,
			IsMandatory:          cfg.IsMandatory,
			IsActive:             true,
		}
		if err := tx.Create(&template).Error; err != nil {
			return fmt.Errorf("failed to create form template: %w", err)
		}

		for _, sectionCfg := range cfg.Sections {
			conditional, err := toJSON(sectionCfg.ConditionalLogic)
			if err != nil {
				return fmt.Errorf("failed to encode conditional logic for section %q: %w", sectionCfg.Title, err)
			}

			section := FormSection{
				FormTemplateID:   template.ID,
				Title:            sectionCfg.Title,
				Description:      optionalText(sectionCfg.Description),
				OrderIndex:       sectionCfg.OrderIndex,
				IsRepeatable:     sectionCfg.IsRepeatable,
				ConditionalLogic: conditional,
			}
			if err := tx.Create(&section).Error; err != nil {
				return fmt.Errorf("failed to create section %q: %w", sectionCfg.Title, err)
			}

			fields := make([]FormField, 0, len(sectionCfg.Fields))
			for _, fieldCfg := range sectionCfg.Fields {
				row, err := buildFieldRow(section.ID, &fieldCfg)
				if err != nil {
					return fmt.Errorf("failed to encode field %q in section %q: %w", fieldCfg.Code, sectionCfg.Title, err)
				}
				fields = append(fields, row)
			}
			if len(fields) > 0 {
				if err := tx.Create(&fields).Error; err != nil {
					return fmt.Errorf("failed to create fields for section %q: %w", sectionCfg.Title, err)
				}
			}
		}

		taskTemplate, err := toJSON(cfg.Workflow.TaskTemplate)
		if err != nil {
			return fmt.Errorf("failed to encode task template: %w", err)
		}

		notifyRoles := cfg.Workflow.NotifyRoles
		if notifyRoles == nil {
			notifyRoles = []string{}
		}

		syncPriority := cfg.Workflow.SyncPriority
		if syncPriority == 0 {
			syncPriority = defaultSyncPriority
		}

		workflow := FormWorkflow{
			FormTemplateID:   template.ID,
			SubmitToRole:     cfg.Workflow.SubmitToRole,
			NotifyRoles:      notifyRoles,
			CreatesTask:      cfg.Workflow.CreatesTask,
			TaskTemplate:     taskTemplate,
			SyncPriority:     syncPriority,
			RequiresApproval: cfg.Workflow.RequiresApproval,
		}
		if err := tx.Create(&workflow).Error; err != nil {
			return fmt.Errorf("failed to create workflow: %w", err)
		}

		templateID = template.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.archiveConfig(&cfg, scope)

	return templateID, nil
}

// BulkImportForms imports a list sequentially, never stopping on an
// individual failure. Each item produces one log line; the run id ties the
// lines of one batch together.
func (s *FormBuilderService) BulkImportForms(cfgs []FormConfig, scope TenantScope) ImportResult {
	return s.bulkImport(cfgs, scope, false, false)
}

// BulkImportFormsIfNotExists behaves like BulkImportForms but, with
// skipExisting, omits configs whose code already exists in the scope.
// Skipped items are excluded from every counter except Skipped.
func (s *FormBuilderService) BulkImportFormsIfNotExists(cfgs []FormConfig, scope TenantScope, skipExisting bool) ImportResult {
	return s.bulkImport(cfgs, scope, true, skipExisting)
}

func (s *FormBuilderService) bulkImport(cfgs []FormConfig, scope TenantScope, idempotent, skipExisting bool) ImportResult {
	result := ImportResult{
		RunID:       uuid.NewString(),
		Errors:      []ImportError{},
		ImportedIDs: []int64{},
	}

	codes := make([]string, 0, len(cfgs))

	for _, cfg := range cfgs {
		codes = append(codes, strings.TrimSpace(cfg.Code))

		if idempotent && skipExisting && s.FormExists(cfg.Code, scope) {
			result.Skipped++
			s.logItem("info", "bulk_import", fmt.Sprintf("skipped %s: already exists", cfg.Name), cfg.Code, scope, result.RunID)
			continue
		}

		result.Total++

		id, err := s.ImportFormFromJSON(cfg, scope)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ImportError{FormName: cfg.Name, Error: err.Error()})
			s.logItem("error", "bulk_import", fmt.Sprintf("failed to import %s: %v", cfg.Name, err), cfg.Code, scope, result.RunID)
			continue
		}

		result.Successful++
		result.ImportedIDs = append(result.ImportedIDs, id)
		s.logItem("info", "bulk_import", fmt.Sprintf("imported %s", cfg.Name), cfg.Code, scope, result.RunID)
	}

	s.logRunSummary(&result, codes, scope)

	return result
}

// logRunSummary writes one end-of-run line carrying every code the batch
// touched, so runs can be found by any of their codes via the logs search.
func (s *FormBuilderService) logRunSummary(result *ImportResult, codes []string, scope TenantScope) {
	message := fmt.Sprintf("bulk run finished: %d imported, %d failed, %d skipped",
		result.Successful, result.Failed, result.Skipped)

	if s.Logs == nil {
		log.Printf("formbuilder [info] bulk_import_summary: %s", message)
		return
	}

	entry := logs.SystemLog{
		Level:     "info",
		Service:   "formbuilder",
		Action:    "bulk_import_summary",
		Message:   message,
		CompanyID: scope.CompanyID(),
		Codes:     codes,
	}
	metadata := map[string]interface{}{"run_id": result.RunID}

	if err := s.Logs.Log(entry, metadata); err != nil {
		log.Printf("formbuilder: log write failed: %v", err)
	}
}

// FormExists reports whether a template with the code exists in the scope.
// Store errors never propagate: the default is fail-open ("not found"), or
// fail-closed ("exists") with StrictExists. Either way a diagnostic log line
// is written.
func (s *FormBuilderService) FormExists(code string, scope TenantScope) bool {
	var count int64
	err := scope.Apply(s.DB.Model(&FormTemplate{}).Where("form_code = ?", strings.TrimSpace(code))).
		Count(&count).Error
	if err != nil {
		s.logItem("error", "exists_check", fmt.Sprintf("existence check for %s failed: %v", code, err), code, scope, "")
		return s.StrictExists
	}
	return count > 0
}

// DeleteFormTemplate removes a template by id. Sections, fields and the
// workflow go with it through the ON DELETE CASCADE constraints. Returns
// false both when nothing matched and when the store errored.
func (s *FormBuilderService) DeleteFormTemplate(templateID int64) bool {
	res := s.DB.Delete(&FormTemplate{}, templateID)
	if res.Error != nil {
		s.logItem("error", "delete", fmt.Sprintf("failed to delete template %d: %v", templateID, res.Error), "", GlobalScope(), "")
		return false
	}
	return res.RowsAffected > 0
}

// DeleteFormsByCode removes every template whose code is in the list, scoped
// the same way as FormExists. Returns the number of rows deleted, 0 on error.
func (s *FormBuilderService) DeleteFormsByCode(codes []string, scope TenantScope) int64 {
	if len(codes) == 0 {
		return 0
	}

	res := scope.Apply(s.DB.Where("form_code IN ?", codes)).Delete(&FormTemplate{})
	if res.Error != nil {
		s.logItem("error", "delete", fmt.Sprintf("failed to delete templates by code: %v", res.Error), "", scope, "")
		return 0
	}
	return res.RowsAffected
}

func (s *FormBuilderService) logItem(level, action, message, formCode string, scope TenantScope, runID string) {
	if s.Logs == nil {
		log.Printf("formbuilder [%s] %s: %s", level, action, message)
		return
	}

	entry := logs.SystemLog{
		Level:     level,
		Service:   "formbuilder",
		Action:    action,
		Message:   message,
		CompanyID: scope.CompanyID(),
	}
	if code := strings.TrimSpace(formCode); code != "" {
		entry.FormCode = &code
	}

	var metadata interface{}
	if runID != "" {
		metadata = map[string]interface{}{"run_id": runID}
	}

	if err := s.Logs.Log(entry, metadata); err != nil {
		log.Printf("formbuilder: log write failed: %v", err)
	}
}

func buildFieldRow(sectionID int64, cfg *FieldConfig) (FormField, error) {
	options, err := cfg.Options.JSON()
	if err != nil {
		return FormField{}, err
	}

	rules := datatypes.JSON([]byte("{}"))
	if cfg.ValidationRules != nil {
		encoded, err := toJSON(cfg.ValidationRules)
		if err != nil {
			return FormField{}, err
		}
		rules = encoded
	}

	conditional, err := toJSON(cfg.ConditionalLogic)
	if err != nil {
		return FormField{}, err
	}

	width := cfg.Width
	if width == "" {
		width = "full"
	}

	return FormField{
		FormSectionID:    sectionID,
		FieldCode:        cfg.Code,
		Label:            cfg.Label,
		FieldType:        cfg.FieldType,
		Placeholder:      optionalText(cfg.Placeholder),
		HelpText:         optionalText(cfg.HelpText),
		DefaultValue:     optionalText(cfg.DefaultValue),
		Options:          options,
		ValidationRules:  rules,
		ConditionalLogic: conditional,
		OrderIndex:       cfg.OrderIndex,
		Width:            width,
	}, nil
}

// toJSON renders v for a nullable jsonb column; nil input stays NULL.
func toJSON(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case *ConditionalLogic:
		if t == nil {
			return nil, nil
		}
	case *ValidationRules:
		if t == nil {
			return nil, nil
		}
	case map[string]interface{}:
		if t == nil {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func optionalText(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

var errTemplateNotFound = errors.New("form template not found")
