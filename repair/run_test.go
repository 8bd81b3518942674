package repair_test

import (
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/mesh"
	"github.com/geomodel/brep/repair"
	"github.com/geomodel/brep/vindex"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMergesColocatedVertices(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("repair-test", 1e-3)
	a := b.Index.AddPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	c := b.Index.AddPoint(r3.Vector{X: 0, Y: 0, Z: 1e-6})
	_ = a
	_ = c

	s := repair.Run(b, repair.ColocatedVertices)
	assert.Equal(t, 1, s.MergedVertices)
	assert.True(t, s.Dirty())
}

// TestRunResyncsCanonicalIDsAfterMerge reproduces the scenario
// ColocatedVertices repair exists for: two points registered as distinct
// canonical ids (as if they were just outside epsilon when their owning
// Corners were created) that a later merge pass collapses into one. Each
// Corner's canonical_id attribute must end up pointing at the survivor,
// not the tombstoned id, preserving C4's mapping-consistency contract.
func TestRunResyncsCanonicalIDsAfterMerge(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("repair-test", 1e-3)

	c0 := b.Model.CreateEntity(entity.Corner)
	corner0, err := b.Model.Corner(c0)
	require.NoError(t, err)
	corner0.Vertex = mesh.NewVertexArray()
	corner0.Vertex.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0})

	c1 := b.Model.CreateEntity(entity.Corner)
	corner1, err := b.Model.Corner(c1)
	require.NoError(t, err)
	corner1.Vertex = mesh.NewVertexArray()
	corner1.Vertex.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 1e-6})

	a := b.Index.AddPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, b.Index.AttachOccurrence(a, vindex.Occurrence{Entity: c0, LocalIndex: 0}))
	corner0.Vertex.SetCanonicalID(0, a)

	d := b.Index.AddPoint(r3.Vector{X: 0, Y: 0, Z: 1e-6})
	require.NoError(t, b.Index.AttachOccurrence(d, vindex.Occurrence{Entity: c1, LocalIndex: 0}))
	corner1.Vertex.SetCanonicalID(0, d)

	s := repair.Run(b, repair.ColocatedVertices)
	require.Equal(t, 1, s.MergedVertices)

	survivor, ok := b.Index.Lookup(r3.Vector{X: 0, Y: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, survivor, corner0.Vertex.CanonicalID(0))
	assert.Equal(t, survivor, corner1.Vertex.CanonicalID(0))
}

func TestRunIsNoopOnCleanModel(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("repair-test", 1e-6)
	c0, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	c1, err := b.FindOrCreateCorner(r3.Vector{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	_, err = b.FindOrCreateLine(c0, c1)
	require.NoError(t, err)

	s := repair.Run(b, repair.All)
	assert.False(t, s.Dirty())
}

// TestSummaryDirtyIgnoresDetectionOnlyCounts asserts that a Summary with
// only DegenerateEdges/DegeneratePolygons set reports Dirty() == false,
// since countDegenerate never mutates the model it scans.
func TestSummaryDirtyIgnoresDetectionOnlyCounts(t *testing.T) {
	t.Parallel()
	s := repair.Summary{DegenerateEdges: 2, DegeneratePolygons: 1}
	assert.False(t, s.Dirty())

	s.ErasedVertices = 1
	assert.True(t, s.Dirty())
}

func TestEraseIsolatedVertices(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("repair-test", 1e-6)
	b.Index.AddPoint(r3.Vector{X: 9, Y: 9, Z: 9}) // never attached to any entity

	s := repair.Run(b, repair.IsolatedVertices)
	assert.Equal(t, 1, s.ErasedVertices)
	assert.Equal(t, 0, b.Index.NbPoints())
}

func TestRebuildContactsDropsEmptyContact(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("repair-test", 1e-6)
	stale := b.Model.CreateEntity(entity.Contact)
	require.True(t, b.Model.Valid(stale))

	s := repair.Run(b, repair.Contacts)
	assert.Equal(t, 1, s.RebuiltContacts)
	assert.False(t, b.Model.Valid(stale))
}
