package formbuilder

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"gorm.io/gorm"
)

// ExportFormJSON reconstructs the canonical config document for a stored
// template. Key order matches the authored document shape so exported files
// diff cleanly against their sources.
func (s *FormBuilderService) ExportFormJSON(templateID int64) ([]byte, error) {
	var template FormTemplate
	err := s.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Preload("Sections.Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Preload("Workflow").
		First(&template, templateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errTemplateNotFound
		}
		return nil, err
	}

	doc := orderedmap.New()
	doc.Set("code", template.FormCode)
	doc.Set("name", template.Name)
	doc.Set("description", template.Description)
	doc.Set("cor_element", template.CorElement)
	doc.Set("frequency", template.Frequency)
	doc.Set("estimated_time_minutes", template.EstimatedTimeMinutes)
	doc.Set("icon", template.Icon)
	doc.Set("color", template.Color)
	doc.Set("is_mandatory", template.IsMandatory)

	sections := make([]*orderedmap.OrderedMap, 0, len(template.Sections))
	for _, section := range template.Sections {
		sec := orderedmap.New()
		sec.Set("title", section.Title)
		if section.Description != nil {
			sec.Set("description", *section.Description)
		}
		sec.Set("order_index", section.OrderIndex)
		sec.Set("is_repeatable", section.IsRepeatable)
		if err := setRawJSON(sec, "conditional_logic", section.ConditionalLogic); err != nil {
			return nil, fmt.Errorf("failed to decode conditional logic for section %q: %w", section.Title, err)
		}

		fields := make([]*orderedmap.OrderedMap, 0, len(section.Fields))
		for _, field := range section.Fields {
			f := orderedmap.New()
			f.Set("code", field.FieldCode)
			f.Set("label", field.Label)
			f.Set("field_type", field.FieldType)
			if field.Placeholder != nil {
				f.Set("placeholder", *field.Placeholder)
			}
			if field.HelpText != nil {
				f.Set("help_text", *field.HelpText)
			}
			if field.DefaultValue != nil {
				f.Set("default_value", *field.DefaultValue)
			}
			if err := setRawJSON(f, "options", field.Options); err != nil {
				return nil, fmt.Errorf("failed to decode options for field %q: %w", field.FieldCode, err)
			}
			if len(field.ValidationRules) > 0 && string(field.ValidationRules) != "{}" {
				if err := setRawJSON(f, "validation_rules", field.ValidationRules); err != nil {
					return nil, fmt.Errorf("failed to decode validation rules for field %q: %w", field.FieldCode, err)
				}
			}
			if err := setRawJSON(f, "conditional_logic", field.ConditionalLogic); err != nil {
				return nil, fmt.Errorf("failed to decode conditional logic for field %q: %w", field.FieldCode, err)
			}
			f.Set("order_index", field.OrderIndex)
			f.Set("width", field.Width)
			fields = append(fields, f)
		}
		sec.Set("fields", fields)
		sections = append(sections, sec)
	}
	doc.Set("sections", sections)

	if template.Workflow != nil {
		wf := orderedmap.New()
		wf.Set("submit_to_role", template.Workflow.SubmitToRole)
		wf.Set("notify_roles", []string(template.Workflow.NotifyRoles))
		wf.Set("creates_task", template.Workflow.CreatesTask)
		if err := setRawJSON(wf, "task_template", template.Workflow.TaskTemplate); err != nil {
			return nil, fmt.Errorf("failed to decode task template: %w", err)
		}
		wf.Set("sync_priority", template.Workflow.SyncPriority)
		wf.Set("requires_approval", template.Workflow.RequiresApproval)
		doc.Set("workflow", wf)
	}

	return json.MarshalIndent(doc, "", "  ")
}

func setRawJSON(o *orderedmap.OrderedMap, key string, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	o.Set(key, v)
	return nil
}
