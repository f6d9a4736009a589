package codec

import "github.com/vmihailenco/msgpack/v5"

// MsgPack is a compact binary codec backed by github.com/vmihailenco/msgpack/v5.
// Struct fields are keyed by their `msgpack` tags.
type MsgPack struct{}

// Marshal encodes the value to MessagePack.
func (MsgPack) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

// Unmarshal decodes the MessagePack data into v.
func (MsgPack) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Name returns the unique name of the codec ("msgpack").
func (MsgPack) Name() string { return "msgpack" }
