package codec

import "github.com/goccy/go-yaml"

// YAML is a codec backed by github.com/goccy/go-yaml.
// Struct fields are keyed by their `yaml` tags, falling back to `json` tags.
type YAML struct{}

// Marshal encodes the value to YAML.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal decodes the YAML data into v.
func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Name returns the unique name of the codec ("yaml").
func (YAML) Name() string { return "yaml" }
