// Package codec encodes layout documents as JSON or YAML.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/bnema/splitpane/internal/domain/entity"
)

// Format selects the wire encoding of a layout document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported layout format %q", s)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Marshal encodes doc. Documents that fail validation are not encoded.
func Marshal(doc *entity.LayoutDocument, format Format) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml layout: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml layout: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json layout: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported layout format %q", format)
	}
}

// Unmarshal decodes and validates a document. Unknown fields are rejected.
// Every failure wraps entity.ErrInvalidDocument.
func Unmarshal(data []byte, format Format) (*entity.LayoutDocument, error) {
	return Decode(bytes.NewReader(data), format)
}

// Decode is the streaming form of Unmarshal.
func Decode(r io.Reader, format Format) (*entity.LayoutDocument, error) {
	var doc entity.LayoutDocument

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err)
		}
	case FormatJSON, "":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err)
		}
	default:
		return nil, fmt.Errorf("unsupported layout format %q", format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		return &entity.DocumentError{Reason: "document is empty"}
	}
	return &entity.DocumentError{Reason: err.Error()}
}
