// Package structured encodes boarding sequences as JSON or YAML documents.
package structured

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// Ensure encoders implement the interface.
var (
	_ driven.SequenceEncoder = (*JSONEncoder)(nil)
	_ driven.SequenceEncoder = (*YAMLEncoder)(nil)
)

// document is the top-level shape of structured exports.
type document struct {
	Count    int                    `json:"count" yaml:"count"`
	Sequence []domain.SequenceEntry `json:"sequence" yaml:"sequence"`
}

func newDocument(entries []domain.SequenceEntry) document {
	if entries == nil {
		entries = []domain.SequenceEntry{}
	}
	return document{Count: len(entries), Sequence: entries}
}

// JSONEncoder writes indented JSON.
type JSONEncoder struct{}

// NewJSONEncoder creates a new JSON encoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Format returns the export format this encoder produces.
func (e *JSONEncoder) Format() domain.ExportFormat {
	return domain.ExportFormatJSON
}

// MIMEType returns the content type of the encoded output.
func (e *JSONEncoder) MIMEType() string {
	return "application/json"
}

// Encode serialises the entries in rank order.
func (e *JSONEncoder) Encode(entries []domain.SequenceEntry) ([]byte, error) {
	return json.MarshalIndent(newDocument(entries), "", "  ")
}

// YAMLEncoder writes YAML with two-space indentation.
type YAMLEncoder struct{}

// NewYAMLEncoder creates a new YAML encoder.
func NewYAMLEncoder() *YAMLEncoder {
	return &YAMLEncoder{}
}

// Format returns the export format this encoder produces.
func (e *YAMLEncoder) Format() domain.ExportFormat {
	return domain.ExportFormatYAML
}

// MIMEType returns the content type of the encoded output.
func (e *YAMLEncoder) MIMEType() string {
	return "application/yaml"
}

// Encode serialises the entries in rank order.
func (e *YAMLEncoder) Encode(entries []domain.SequenceEntry) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(entries)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
