package formbuilder

import (
	"fmt"
	"strings"
)

const (
	corElementMin = 2
	corElementMax = 14
)

// ValidateFormConfig statically checks a config before any persistence is
// attempted. It accumulates every violation rather than stopping at the
// first; an empty result means the config is importable.
func ValidateFormConfig(cfg *FormConfig) []string {
	var violations []string

	if strings.TrimSpace(cfg.Code) == "" {
		violations = append(violations, "form code is required")
	}
	if strings.TrimSpace(cfg.Name) == "" {
		violations = append(violations, "form name is required")
	}
	if cfg.CorElement < corElementMin || cfg.CorElement > corElementMax {
		violations = append(violations,
			fmt.Sprintf("cor_element must be between %d and %d, got %d", corElementMin, corElementMax, cfg.CorElement))
	}
	if len(cfg.Sections) == 0 {
		violations = append(violations, "at least one section is required")
	}
	if cfg.Workflow == nil {
		violations = append(violations, "workflow is required")
	}

	for i, section := range cfg.Sections {
		secRef := sectionRef(&section, i)

		if strings.TrimSpace(section.Title) == "" {
			violations = append(violations, fmt.Sprintf("%s: title is required", secRef))
		}
		if len(section.Fields) == 0 {
			violations = append(violations, fmt.Sprintf("%s: at least one field is required", secRef))
		}

		for j, field := range section.Fields {
			fieldRef := fieldRef(&field, j)

			if strings.TrimSpace(field.Code) == "" {
				violations = append(violations, fmt.Sprintf("%s, %s: code is required", secRef, fieldRef))
			}
			if strings.TrimSpace(field.Label) == "" {
				violations = append(violations, fmt.Sprintf("%s, %s: label is required", secRef, fieldRef))
			}
			if field.FieldType == "" {
				violations = append(violations, fmt.Sprintf("%s, %s: field_type is required", secRef, fieldRef))
			} else if !fieldTypes[field.FieldType] {
				violations = append(violations,
					fmt.Sprintf("%s, %s: unknown field_type %q", secRef, fieldRef, field.FieldType))
			}
			if selectionTypes[field.FieldType] && len(field.Options) == 0 {
				violations = append(violations,
					fmt.Sprintf("%s, %s: %s fields require at least one option", secRef, fieldRef, field.FieldType))
			}
		}
	}

	violations = append(violations, validateConditionalRefs(cfg)...)

	return violations
}

// validateConditionalRefs resolves every conditional-logic field_code against
// the form's own field codes. The references are weak (by identifier only),
// so a typo would otherwise produce a silently dead rule at render time.
func validateConditionalRefs(cfg *FormConfig) []string {
	known := map[string]bool{}
	for _, section := range cfg.Sections {
		for _, field := range section.Fields {
			code := strings.TrimSpace(field.Code)
			if code != "" {
				known[code] = true
			}
		}
	}

	var violations []string
	for i, section := range cfg.Sections {
		secRef := sectionRef(&section, i)

		if cl := section.ConditionalLogic; cl != nil && !known[strings.TrimSpace(cl.FieldCode)] {
			violations = append(violations,
				fmt.Sprintf("%s: conditional logic references unknown field %q", secRef, cl.FieldCode))
		}

		for j, field := range section.Fields {
			if cl := field.ConditionalLogic; cl != nil && !known[strings.TrimSpace(cl.FieldCode)] {
				violations = append(violations,
					fmt.Sprintf("%s, %s: conditional logic references unknown field %q",
						secRef, fieldRef(&field, j), cl.FieldCode))
			}
		}
	}
	return violations
}

// sectionRef identifies a section by title, falling back to its ordinal when
// the title itself is the missing value.
func sectionRef(section *SectionConfig, idx int) string {
	if strings.TrimSpace(section.Title) == "" {
		return fmt.Sprintf("section %d", idx+1)
	}
	return fmt.Sprintf("section %q", section.Title)
}

func fieldRef(field *FieldConfig, idx int) string {
	if strings.TrimSpace(field.Code) == "" {
		return fmt.Sprintf("field %d", idx+1)
	}
	return fmt.Sprintf("field %q", field.Code)
}
