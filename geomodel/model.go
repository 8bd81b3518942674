package geomodel

import (
	"sync"

	"github.com/geomodel/brep/entity"
)

// GeoModel owns the entire entity graph of a B-Rep model: the mesh
// entities (Corner/Line/Surface/Region) and the geological entities
// (Contact/Interface/Layer), plus the distinguished universe Region and
// the global vertex-merge tolerance.
//
// Two RWMutexes split the lock surface between the mesh kinds and the
// geological kinds (the two kind groups of entity/kind.go), so a reader
// walking Surfaces never contends with a writer appending a Layer.
type GeoModel struct {
	meshMu sync.RWMutex
	corners   []*Corner
	lines     []*Line
	surfaces  []*Surface
	regions   []*Region
	universe  *Region

	geoMu      sync.RWMutex
	contacts   []*Contact
	interfaces []*Interface
	layers     []*Layer

	name    string
	epsilon float64
}

// New returns an empty GeoModel with the given name and the vertex-merge
// tolerance epsilon (spec §4.1 C4; typically geomath.EpsilonFromDiagonal
// of the model's eventual bounding box). The universe region (index 0 of
// kind Region, conventionally named "universe") is created eagerly since
// every Surface's FindRegion side always resolves to either a concrete
// Region or the universe.
func New(name string, epsilon float64) *GeoModel {
	m := &GeoModel{name: name, epsilon: epsilon}
	u := &Region{base: newBase(entity.ID{Kind: entity.Region, Index: 0})}
	u.name = "universe"
	m.regions = append(m.regions, u)
	m.universe = u
	return m
}

// Name returns the model's name.
func (m *GeoModel) Name() string { return m.name }

// Epsilon returns the vertex-merge tolerance in effect for this model.
func (m *GeoModel) Epsilon() float64 { return m.epsilon }

// SetEpsilon updates the vertex-merge tolerance. It does not retroactively
// re-merge the shared vertex index; callers that shrink epsilon after
// vertices were merged under a looser tolerance get undefined dedup
// behavior, matching the documented contract of component C4.
func (m *GeoModel) SetEpsilon(eps float64) { m.epsilon = eps }

func (m *GeoModel) isMeshKind(k entity.Kind) bool {
	switch k {
	case entity.Corner, entity.Line, entity.Surface, entity.Region:
		return true
	default:
		return false
	}
}
