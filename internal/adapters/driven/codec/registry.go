// Package codec wires the sequence encoders into a registry keyed by export format.
package codec

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.EncoderRegistry = (*Registry)(nil)

// Registry maps export formats to their encoders.
type Registry struct {
	encoders map[domain.ExportFormat]driven.SequenceEncoder
}

// NewRegistry creates an empty encoder registry.
func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[domain.ExportFormat]driven.SequenceEncoder),
	}
}

// Register adds an encoder under its own format, replacing any previous one.
func (r *Registry) Register(enc driven.SequenceEncoder) {
	r.encoders[enc.Format()] = enc
}

// Get returns the encoder for a format.
func (r *Registry) Get(format domain.ExportFormat) (driven.SequenceEncoder, error) {
	enc, ok := r.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	return enc, nil
}

// Has returns true if an encoder is registered for the format.
func (r *Registry) Has(format domain.ExportFormat) bool {
	_, ok := r.encoders[format]
	return ok
}

// Formats returns the registered formats, known formats first in their
// canonical order.
func (r *Registry) Formats() []domain.ExportFormat {
	formats := make([]domain.ExportFormat, 0, len(r.encoders))
	for _, f := range domain.AllExportFormats() {
		if r.Has(f) {
			formats = append(formats, f)
		}
	}
	var extra []domain.ExportFormat
	for f := range r.encoders {
		if !slices.Contains(formats, f) {
			extra = append(extra, f)
		}
	}
	slices.Sort(extra)
	return append(formats, extra...)
}
