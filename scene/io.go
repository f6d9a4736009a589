package scene

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/clusterviz/codec"
)

// Compression selects the stream compression applied on export.
type Compression uint8

const (
	// CompressionNone writes the encoded scene as is.
	CompressionNone Compression = iota
	// CompressionLZ4 uses the LZ4 frame format.
	CompressionLZ4
	// CompressionZSTD uses Zstandard.
	CompressionZSTD
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// ParseCompression maps "none", "lz4" and "zstd"/"zst" to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "zst":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("unsupported compression: %s", s)
	}
}

// FormatFromPath derives codec and compression from a file name such as
// "scene.yaml.zst". Unknown or missing extensions yield codec.Default.
func FormatFromPath(path string) (codec.Codec, Compression) {
	name := filepath.Base(path)
	comp := CompressionNone
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		comp = CompressionZSTD
		name = strings.TrimSuffix(name, filepath.Ext(name))
	case ".lz4":
		comp = CompressionLZ4
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if c, ok := codec.ByName(ext); ok {
		return c, comp
	}
	return codec.Default, comp
}

// Write encodes s with c and writes it to w, compressed as requested.
func Write(w io.Writer, s Scene, c codec.Codec, comp Compression) error {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scene (%s): %w", c.Name(), err)
	}

	switch comp {
	case CompressionNone:
		_, err = w.Write(data)
		return err
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		return zw.Close()
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if _, err := enc.Write(data); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported compression: %s", comp)
	}
}

// Read decodes a scene written by Write.
func Read(r io.Reader, c codec.Codec, comp Compression) (Scene, error) {
	if c == nil {
		c = codec.Default
	}

	var src io.Reader
	switch comp {
	case CompressionNone:
		src = r
	case CompressionLZ4:
		src = lz4.NewReader(r)
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return Scene{}, err
		}
		defer dec.Close()
		src = dec
	default:
		return Scene{}, fmt.Errorf("unsupported compression: %s", comp)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return Scene{}, err
	}

	var s Scene
	if err := c.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("decode scene (%s): %w", c.Name(), err)
	}
	return s, nil
}
