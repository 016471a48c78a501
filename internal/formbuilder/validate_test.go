package formbuilder

import (
	"strings"
	"testing"
)

func minimalConfig() FormConfig {
	return FormConfig{
		Code:       "daily-01",
		Name:       "Daily Check",
		CorElement: 7,
		Frequency:  "daily",
		Sections: []SectionConfig{
			{
				Title:      "Main",
				OrderIndex: 0,
				Fields: []FieldConfig{
					{Code: "ok", Label: "All OK?", FieldType: FieldTypeRadio, Options: StringOptions("yes", "no"), OrderIndex: 0},
				},
			},
		},
		Workflow: &WorkflowConfig{SubmitToRole: "supervisor", NotifyRoles: []string{}, SyncPriority: 3},
	}
}

func hasViolation(t *testing.T, violations []string, substr string) {
	t.Helper()
	for _, v := range violations {
		if strings.Contains(v, substr) {
			return
		}
	}
	t.Fatalf("expected a violation containing %q, got %#v", substr, violations)
}

func TestValidateFormConfig_ValidMinimal(t *testing.T) {
	cfg := minimalConfig()
	if got := ValidateFormConfig(&cfg); len(got) != 0 {
		t.Fatalf("expected no violations, got %#v", got)
	}
}

func TestValidateFormConfig_MissingName(t *testing.T) {
	cfg := minimalConfig()
	cfg.Name = "   "

	got := ValidateFormConfig(&cfg)
	if len(got) == 0 {
		t.Fatal("expected violations, got none")
	}
	hasViolation(t, got, "name")
}

func TestValidateFormConfig_MissingCode(t *testing.T) {
	cfg := minimalConfig()
	cfg.Code = ""

	hasViolation(t, ValidateFormConfig(&cfg), "code is required")
}

func TestValidateFormConfig_CorElementRange(t *testing.T) {
	for _, bad := range []int{0, 1, 15, -3} {
		cfg := minimalConfig()
		cfg.CorElement = bad
		hasViolation(t, ValidateFormConfig(&cfg), "cor_element")
	}

	for _, ok := range []int{2, 7, 14} {
		cfg := minimalConfig()
		cfg.CorElement = ok
		for _, v := range ValidateFormConfig(&cfg) {
			if strings.Contains(v, "cor_element") {
				t.Fatalf("cor_element %d flagged: %q", ok, v)
			}
		}
	}
}

func TestValidateFormConfig_NoSections(t *testing.T) {
	cfg := minimalConfig()
	cfg.Sections = nil

	hasViolation(t, ValidateFormConfig(&cfg), "at least one section")
}

func TestValidateFormConfig_NoWorkflow(t *testing.T) {
	cfg := minimalConfig()
	cfg.Workflow = nil

	hasViolation(t, ValidateFormConfig(&cfg), "workflow is required")
}

func TestValidateFormConfig_AccumulatesAllViolations(t *testing.T) {
	cfg := FormConfig{CorElement: 99}

	got := ValidateFormConfig(&cfg)
	if len(got) < 4 {
		t.Fatalf("expected at least 4 violations, got %d: %#v", len(got), got)
	}
	hasViolation(t, got, "code is required")
	hasViolation(t, got, "name is required")
	hasViolation(t, got, "cor_element")
	hasViolation(t, got, "at least one section")
	hasViolation(t, got, "workflow is required")
}

func TestValidateFormConfig_SectionIdentifiedByTitle(t *testing.T) {
	cfg := minimalConfig()
	cfg.Sections[0].Fields = nil

	hasViolation(t, ValidateFormConfig(&cfg), `section "Main": at least one field`)
}

func TestValidateFormConfig_BlankSectionTitle_UsesOrdinal(t *testing.T) {
	cfg := minimalConfig()
	cfg.Sections[0].Title = ""

	hasViolation(t, ValidateFormConfig(&cfg), "section 1: title is required")
}

func TestValidateFormConfig_FieldChecks(t *testing.T) {
	cfg := minimalConfig()
	cfg.Sections[0].Fields = []FieldConfig{
		{Code: "", Label: "No code", FieldType: FieldTypeText},
		{Code: "no_label", Label: " ", FieldType: FieldTypeText},
		{Code: "weird", Label: "Weird", FieldType: "telepathy"},
		{Code: "untyped", Label: "Untyped", FieldType: ""},
	}

	got := ValidateFormConfig(&cfg)
	hasViolation(t, got, "field 1: code is required")
	hasViolation(t, got, `field "no_label": label is required`)
	hasViolation(t, got, `unknown field_type "telepathy"`)
	hasViolation(t, got, `field "untyped": field_type is required`)
}

func TestValidateFormConfig_SelectionTypeRequiresOptions(t *testing.T) {
	for _, ft := range []string{FieldTypeDropdown, FieldTypeRadio, FieldTypeCheckbox, FieldTypeMultiselect} {
		cfg := minimalConfig()
		cfg.Sections[0].Fields = []FieldConfig{
			{Code: "pick", Label: "Pick one", FieldType: ft},
		}
		hasViolation(t, ValidateFormConfig(&cfg), "require at least one option")

		cfg.Sections[0].Fields[0].Options = StringOptions("a")
		for _, v := range ValidateFormConfig(&cfg) {
			if strings.Contains(v, "option") {
				t.Fatalf("%s with one option still flagged: %q", ft, v)
			}
		}
	}
}

func TestValidateFormConfig_ConditionalLogicResolves(t *testing.T) {
	cfg := minimalConfig()
	cfg.Sections[0].Fields = append(cfg.Sections[0].Fields, FieldConfig{
		Code: "detail", Label: "Detail", FieldType: FieldTypeTextarea, OrderIndex: 1,
		ConditionalLogic: &ConditionalLogic{FieldCode: "ok", Operator: "equals", Value: "no"},
	})

	if got := ValidateFormConfig(&cfg); len(got) != 0 {
		t.Fatalf("resolvable reference flagged: %#v", got)
	}

	cfg.Sections[0].Fields[1].ConditionalLogic.FieldCode = "tpyo"
	hasViolation(t, ValidateFormConfig(&cfg), `references unknown field "tpyo"`)
}

func TestValidateFormConfig_SectionConditionalLogicResolves(t *testing.T) {
	cfg := minimalConfig()
	cfg.Sections = append(cfg.Sections, SectionConfig{
		Title:            "Details",
		OrderIndex:       1,
		ConditionalLogic: &ConditionalLogic{FieldCode: "missing", Operator: "equals", Value: "x"},
		Fields: []FieldConfig{
			{Code: "note", Label: "Note", FieldType: FieldTypeText},
		},
	})

	hasViolation(t, ValidateFormConfig(&cfg), `section "Details": conditional logic references unknown field "missing"`)
}
