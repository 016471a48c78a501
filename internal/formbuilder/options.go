package formbuilder

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionList is the canonical option encoding. Config documents may supply
// either plain strings or {value,label} objects; both decode into this type
// so downstream code never re-inspects runtime shape.
type OptionList []FieldOption

func (l *OptionList) UnmarshalJSON(data []byte) error {
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("options must be an array: %w", err)
	}
	*l = normalizeOptions(raw)
	return nil
}

// normalizeOptions converts the two permitted option shapes into the
// canonical one. The encoding is decided by the first element only; option
// lists are expected to be uniform. Empty or absent input yields nil.
func normalizeOptions(raw []interface{}) OptionList {
	if len(raw) == 0 {
		return nil
	}

	out := make(OptionList, 0, len(raw))

	if _, ok := raw[0].(string); ok {
		for _, v := range raw {
			s, _ := v.(string)
			out = append(out, FieldOption{Value: s, Label: s})
		}
		return out
	}

	for _, v := range raw {
		m, _ := v.(map[string]interface{})
		var opt FieldOption
		if s, ok := m["value"].(string); ok {
			opt.Value = s
		}
		if s, ok := m["label"].(string); ok {
			opt.Label = s
		}
		out = append(out, opt)
	}
	return out
}

// StringOptions builds an option list from plain values, label = value.
func StringOptions(values ...string) OptionList {
	if len(values) == 0 {
		return nil
	}
	out := make(OptionList, 0, len(values))
	for _, v := range values {
		out = append(out, FieldOption{Value: v, Label: v})
	}
	return out
}

// JSON renders the list for the jsonb column; nil means "no options".
func (l OptionList) JSON() (datatypes.JSON, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
