package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown fixture format")

// Format names a document encoding.
type Format string

const (
	YAML    Format = "yaml"
	TOML    Format = "toml"
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

const zstdExt = ".zst"

// FormatOf picks the format from a file name. A trailing ".zst" marks a
// zstd-compressed document and is reported separately.
func FormatOf(path string) (f Format, compressed bool, err error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, zstdExt) {
		compressed = true
		name = strings.TrimSuffix(name, zstdExt)
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return YAML, compressed, nil
	case ".toml":
		return TOML, compressed, nil
	case ".json":
		return JSON, compressed, nil
	case ".msgpack", ".mp":
		return MsgPack, compressed, nil
	}
	return "", compressed, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Decode parses data as a document in format f.
func Decode(data []byte, f Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, doc)
	case TOML:
		err = toml.Unmarshal(data, doc)
	case JSON:
		err = json.Unmarshal(data, doc)
	case MsgPack:
		err = msgpack.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s fixture: %w", f, err)
	}
	return doc, nil
}

// Encode renders doc in format f.
func Encode(doc *Document, f Format) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(doc)
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encode toml fixture: %w", err)
		}
		return buf.Bytes(), nil
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	case MsgPack:
		return msgpack.Marshal(doc)
	}
	return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// LoadDocument reads and decodes the document at path.
func LoadDocument(path string) (*Document, error) {
	f, compressed, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if compressed {
		if data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return Decode(data, f)
}

// Load reads the document at path and builds its graph.
func Load(path string) (*Graph, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Save writes doc to path in the format its extension names.
func Save(path string, doc *Document) error {
	f, compressed, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(doc, f)
	if err != nil {
		return err
	}
	if compressed {
		if data, err = compress(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
