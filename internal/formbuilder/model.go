package formbuilder

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// FormConfig is the declarative template document authored outside the
// system. It is immutable input: importing never mutates it.
type FormConfig struct {
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	CorElement           int             `json:"cor_element"`
	Frequency            string          `json:"frequency"`
	EstimatedTimeMinutes int             `json:"estimated_time_minutes"`
	Icon                 string          `json:"icon"`
	Color                string          `json:"color"`
	IsMandatory          bool            `json:"is_mandatory"`
	Sections             []SectionConfig `json:"sections"`
	Workflow             *WorkflowConfig `json:"workflow"`
}

type SectionConfig struct {
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	OrderIndex       int               `json:"order_index"`
	IsRepeatable     bool              `json:"is_repeatable"`
	ConditionalLogic *ConditionalLogic `json:"conditional_logic,omitempty"`
	Fields           []FieldConfig     `json:"fields"`
}

type FieldConfig struct {
	Code             string            `json:"code"`
	Label            string            `json:"label"`
	FieldType        string            `json:"field_type"`
	Placeholder      string            `json:"placeholder,omitempty"`
	HelpText         string            `json:"help_text,omitempty"`
	DefaultValue     string            `json:"default_value,omitempty"`
	Options          OptionList        `json:"options,omitempty"`
	ValidationRules  *ValidationRules  `json:"validation_rules,omitempty"`
	ConditionalLogic *ConditionalLogic `json:"conditional_logic,omitempty"`
	OrderIndex       int               `json:"order_index"`
	Width            string            `json:"width,omitempty"`
}

type ValidationRules struct {
	Required bool     `json:"required,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// ConditionalLogic references another field in the same form by code.
// The reference is resolved at render time, never enforced by the store.
type ConditionalLogic struct {
	FieldCode string      `json:"field_code"`
	Operator  string      `json:"operator"`
	Value     interface{} `json:"value"`
}

type WorkflowConfig struct {
	SubmitToRole     string                 `json:"submit_to_role"`
	NotifyRoles      []string               `json:"notify_roles"`
	CreatesTask      bool                   `json:"creates_task,omitempty"`
	TaskTemplate     map[string]interface{} `json:"task_template,omitempty"`
	SyncPriority     int                    `json:"sync_priority"`
	RequiresApproval bool                   `json:"requires_approval,omitempty"`
}

// Field types accepted by the wizard clients.
const (
	FieldTypeText            = "text"
	FieldTypeTextarea        = "textarea"
	FieldTypeNumber          = "number"
	FieldTypeDate            = "date"
	FieldTypeTime            = "time"
	FieldTypeDropdown        = "dropdown"
	FieldTypeRadio           = "radio"
	FieldTypeCheckbox        = "checkbox"
	FieldTypeMultiselect     = "multiselect"
	FieldTypeSignature       = "signature"
	FieldTypePhoto           = "photo"
	FieldTypeFile            = "file"
	FieldTypeGPS             = "gps"
	FieldTypeWorkerSelect    = "worker_select"
	FieldTypeJobsiteSelect   = "jobsite_select"
	FieldTypeEquipmentSelect = "equipment_select"
)

var fieldTypes = map[string]bool{
	FieldTypeText:            true,
	FieldTypeTextarea:        true,
	FieldTypeNumber:          true,
	FieldTypeDate:            true,
	FieldTypeTime:            true,
	FieldTypeDropdown:        true,
	FieldTypeRadio:           true,
	FieldTypeCheckbox:        true,
	FieldTypeMultiselect:     true,
	FieldTypeSignature:       true,
	FieldTypePhoto:           true,
	FieldTypeFile:            true,
	FieldTypeGPS:             true,
	FieldTypeWorkerSelect:    true,
	FieldTypeJobsiteSelect:   true,
	FieldTypeEquipmentSelect: true,
}

// selectionTypes are field types that cannot render without options.
var selectionTypes = map[string]bool{
	FieldTypeDropdown:    true,
	FieldTypeRadio:       true,
	FieldTypeCheckbox:    true,
	FieldTypeMultiselect: true,
}

type FormTemplate struct {
	ID                   int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyID            *string   `json:"company_id" gorm:"size:100;index"`
	FormCode             string    `json:"form_code" gorm:"size:150;not null;index"`
	Name                 string    `json:"name" gorm:"type:text;not null"`
	Description          string    `json:"description" gorm:"type:text;not null;default:''"`
	CorElement           int       `json:"cor_element" gorm:"not null"`
	Frequency            string    `json:"frequency" gorm:"size:20;not null"`
	EstimatedTimeMinutes int       `json:"estimated_time_minutes" gorm:"not null;default:0"`
	Icon                 string    `json:"icon" gorm:"size:100;not null;default:''"`
	Color                string    `json:"color" gorm:"size:20;not null;default:''"`
	IsMandatory          bool      `json:"is_mandatory" gorm:"not null;default:false"`
	IsActive             bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt            time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"not null;autoUpdateTime"`

	Sections []FormSection `json:"sections,omitempty" gorm:"foreignKey:FormTemplateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Workflow *FormWorkflow `json:"workflow,omitempty" gorm:"foreignKey:FormTemplateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (FormTemplate) TableName() string { return "form_templates" }

type FormSection struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	FormTemplateID   int64          `json:"form_template_id" gorm:"not null;index"`
	Title            string         `json:"title" gorm:"type:text;not null"`
	Description      *string        `json:"description,omitempty" gorm:"type:text"`
	OrderIndex       int            `json:"order_index" gorm:"not null;default:0"`
	IsRepeatable     bool           `json:"is_repeatable" gorm:"not null;default:false"`
	ConditionalLogic datatypes.JSON `json:"conditional_logic,omitempty" gorm:"type:jsonb"`
	CreatedAt        time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`

	Fields []FormField `json:"fields,omitempty" gorm:"foreignKey:FormSectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (FormSection) TableName() string { return "form_sections" }

type FormField struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	FormSectionID    int64          `json:"form_section_id" gorm:"not null;index;uniqueIndex:uq_form_fields_section_code"`
	FieldCode        string         `json:"field_code" gorm:"size:150;not null;uniqueIndex:uq_form_fields_section_code"`
	Label            string         `json:"label" gorm:"type:text;not null"`
	FieldType        string         `json:"field_type" gorm:"size:50;not null"`
	Placeholder      *string        `json:"placeholder,omitempty" gorm:"type:text"`
	HelpText         *string        `json:"help_text,omitempty" gorm:"type:text"`
	DefaultValue     *string        `json:"default_value,omitempty" gorm:"type:text"`
	Options          datatypes.JSON `json:"options,omitempty" gorm:"type:jsonb"`
	ValidationRules  datatypes.JSON `json:"validation_rules" gorm:"type:jsonb;not null"`
	ConditionalLogic datatypes.JSON `json:"conditional_logic,omitempty" gorm:"type:jsonb"`
	OrderIndex       int            `json:"order_index" gorm:"not null;default:0"`
	Width            string         `json:"width" gorm:"size:10;not null;default:'full'"`
	CreatedAt        time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (FormField) TableName() string { return "form_fields" }

type FormWorkflow struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	FormTemplateID   int64          `json:"form_template_id" gorm:"not null;uniqueIndex"`
	SubmitToRole     string         `json:"submit_to_role" gorm:"size:100;not null"`
	NotifyRoles      pq.StringArray `json:"notify_roles" gorm:"type:text[]"`
	CreatesTask      bool           `json:"creates_task" gorm:"not null;default:false"`
	TaskTemplate     datatypes.JSON `json:"task_template,omitempty" gorm:"type:jsonb"`
	SyncPriority     int            `json:"sync_priority" gorm:"not null;default:3"`
	RequiresApproval bool           `json:"requires_approval" gorm:"not null;default:false"`
	CreatedAt        time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (FormWorkflow) TableName() string { return "form_workflows" }

type ImportError struct {
	FormName string `json:"form_name"`
	Error    string `json:"error"`
}

// ImportResult reports one bulk run. Skipped items (idempotent mode) are not
// counted in Total, so Total == Successful + Failed always holds.
type ImportResult struct {
	RunID       string        `json:"run_id"`
	Total       int           `json:"total"`
	Successful  int           `json:"successful"`
	Failed      int           `json:"failed"`
	Skipped     int           `json:"skipped"`
	Errors      []ImportError `json:"errors"`
	ImportedIDs []int64       `json:"imported_ids"`
}
