package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeForm reads a YAML form file into F. Keys are the API's JSON field
// names (service_id, date_from, ...), so the document is bridged through
// JSON. Unknown keys are rejected.
func DecodeForm[F any](data []byte) (F, error) {
	var form F

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return form, fmt.Errorf("parse form: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return form, fmt.Errorf("convert form: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		return form, fmt.Errorf("decode form: %w", err)
	}
	return form, nil
}
