package formbuilder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	formsSheet  = "Forms"
	fieldsSheet = "Fields"
)

// ParseWorkbook reads a two-sheet template catalog: "Forms" holds one row per
// template (metadata and workflow), "Fields" one row per field, grouped into
// sections by form_code plus section_title in row order. The result feeds the
// bulk importer.
func ParseWorkbook(r io.Reader) ([]FormConfig, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	defer f.Close()

	formRows, err := sheetRows(f, formsSheet)
	if err != nil {
		return nil, err
	}
	fieldRows, err := sheetRows(f, fieldsSheet)
	if err != nil {
		return nil, err
	}

	configs, byCode, err := parseFormRows(formRows)
	if err != nil {
		return nil, err
	}

	if err := parseFieldRows(fieldRows, byCode); err != nil {
		return nil, err
	}

	out := make([]FormConfig, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, *cfg)
	}
	return out, nil
}

type headerIndex map[string]int

func (h headerIndex) get(row []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook is missing the %q sheet: %w", sheet, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("the %q sheet is empty", sheet)
	}
	return rows, nil
}

func indexHeaders(header []string) headerIndex {
	idx := headerIndex{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			idx[name] = i
		}
	}
	return idx
}

func parseFormRows(rows [][]string) ([]*FormConfig, map[string]*FormConfig, error) {
	headers := indexHeaders(rows[0])

	var ordered []*FormConfig
	byCode := map[string]*FormConfig{}

	for i, row := range rows[1:] {
		code := headers.get(row, "code")
		if code == "" {
			return nil, nil, fmt.Errorf("forms row %d: code is required", i+2)
		}
		if _, dup := byCode[code]; dup {
			return nil, nil, fmt.Errorf("forms row %d: duplicate code %q", i+2, code)
		}

		cfg := &FormConfig{
			Code:                 code,
			Name:                 headers.get(row, "name"),
			Description:          headers.get(row, "description"),
			CorElement:           parseIntCell(headers.get(row, "cor_element")),
			Frequency:            headers.get(row, "frequency"),
			EstimatedTimeMinutes: parseIntCell(headers.get(row, "estimated_time_minutes")),
			Icon:                 headers.get(row, "icon"),
			Color:                headers.get(row, "color"),
			IsMandatory:          parseBoolCell(headers.get(row, "is_mandatory")),
			Workflow: &WorkflowConfig{
				SubmitToRole:     headers.get(row, "submit_to_role"),
				NotifyRoles:      splitCell(headers.get(row, "notify_roles"), ","),
				CreatesTask:      parseBoolCell(headers.get(row, "creates_task")),
				SyncPriority:     parseIntCell(headers.get(row, "sync_priority")),
				RequiresApproval: parseBoolCell(headers.get(row, "requires_approval")),
			},
		}

		ordered = append(ordered, cfg)
		byCode[code] = cfg
	}

	return ordered, byCode, nil
}

func parseFieldRows(rows [][]string, byCode map[string]*FormConfig) error {
	headers := indexHeaders(rows[0])

	for i, row := range rows[1:] {
		formCode := headers.get(row, "form_code")
		cfg, ok := byCode[formCode]
		if !ok {
			return fmt.Errorf("fields row %d: unknown form_code %q", i+2, formCode)
		}

		sectionTitle := headers.get(row, "section_title")
		section := findSection(cfg, sectionTitle)
		if section == nil {
			cfg.Sections = append(cfg.Sections, SectionConfig{
				Title:        sectionTitle,
				OrderIndex:   parseIntCell(headers.get(row, "section_order")),
				IsRepeatable: parseBoolCell(headers.get(row, "section_repeatable")),
			})
			section = &cfg.Sections[len(cfg.Sections)-1]
		}

		field := FieldConfig{
			Code:         headers.get(row, "field_code"),
			Label:        headers.get(row, "label"),
			FieldType:    headers.get(row, "field_type"),
			Placeholder:  headers.get(row, "placeholder"),
			HelpText:     headers.get(row, "help_text"),
			DefaultValue: headers.get(row, "default_value"),
			Options:      StringOptions(splitCell(headers.get(row, "options"), "|")...),
			OrderIndex:   parseIntCell(headers.get(row, "order_index")),
			Width:        headers.get(row, "width"),
		}
		if parseBoolCell(headers.get(row, "required")) {
			field.ValidationRules = &ValidationRules{Required: true}
		}

		section.Fields = append(section.Fields, field)
	}

	return nil
}

func findSection(cfg *FormConfig, title string) *SectionConfig {
	for i := range cfg.Sections {
		if cfg.Sections[i].Title == title {
			return &cfg.Sections[i]
		}
	}
	return nil
}

func parseIntCell(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func parseBoolCell(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

func splitCell(v, sep string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
