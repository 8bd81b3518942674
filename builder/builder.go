package builder

import (
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
	"github.com/geomodel/brep/vindex"
)

// Builder is the only component permitted to mutate a GeoModel and its
// companion vertex index (spec §4.5). Its only state of its own beyond
// the two pointers is whether EndModel has run, matching the teacher's
// builder.Builder, which wraps a *core.Graph and exposes construction
// methods without introducing a competing data model.
type Builder struct {
	Model *geomodel.GeoModel
	Index *vindex.Index
	ended bool
}

// New wraps an existing model and vertex index. Use NewModel to create
// both from scratch.
func New(model *geomodel.GeoModel, index *vindex.Index) *Builder {
	return &Builder{Model: model, Index: index}
}

// NewModel creates a brand-new, empty GeoModel (with its universe region)
// and a matching empty vertex index, both using epsilon as their
// colocation tolerance, and returns a Builder over them.
func NewModel(name string, epsilon float64) *Builder {
	return &Builder{
		Model: geomodel.New(name, epsilon),
		Index: vindex.New(epsilon),
	}
}

// requireKind is a small local helper used by several constructors to
// reject an id whose Kind is not want with ErrKindMismatch, since
// builder's own sentinel vocabulary is distinct from geomodel's.
func (b *Builder) requireKind(id entity.ID, want entity.Kind) error {
	if id.Kind != want {
		return ErrKindMismatch
	}
	return nil
}
