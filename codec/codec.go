// Package codec centralizes encoding of exported results.
//
// Codecs are selected by name so command-line flags and file extensions can
// pick one without importing the concrete type.
package codec

import (
	"fmt"
	"sort"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml", "yml":
		return YAML{}, true
	case "msgpack":
		return MsgPack{}, true
	default:
		return nil, false
	}
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	names := []string{"json", "go-json", "yaml", "msgpack"}
	sort.Strings(names)
	return names
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
