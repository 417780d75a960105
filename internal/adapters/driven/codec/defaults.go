package codec

import (
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec/pdf"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec/structured"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec/tabular"
)

// RegisterDefaults registers all built-in encoders with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(tabular.NewEncoder())
	r.Register(structured.NewJSONEncoder())
	r.Register(structured.NewYAMLEncoder())
	r.Register(pdf.NewEncoder(""))
}

// NewDefaultRegistry returns a registry holding every built-in encoder.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
