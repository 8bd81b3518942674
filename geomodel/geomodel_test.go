package geomodel_test

import (
	"testing"

	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelHasUniverse(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	assert.Equal(t, 1, m.NbEntities(entity.Region))
	u := m.Universe()
	require.NotNil(t, u)
	assert.Equal(t, "universe", u.Name())
}

func TestCreateEntityAndAccessors(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)

	c0 := m.CreateEntity(entity.Corner)
	c1 := m.CreateEntity(entity.Corner)
	assert.Equal(t, entity.ID{Kind: entity.Corner, Index: 0}, c0)
	assert.Equal(t, entity.ID{Kind: entity.Corner, Index: 1}, c1)
	assert.Equal(t, 2, m.NbEntities(entity.Corner))

	line := m.CreateEntity(entity.Line)
	require.NoError(t, m.AddBoundary(line, c0))
	require.NoError(t, m.AddBoundary(line, c1))

	l, err := m.Line(line)
	require.NoError(t, err)
	assert.Equal(t, []entity.ID{c0, c1}, l.Boundaries())

	corner0, err := m.Corner(c0)
	require.NoError(t, err)
	assert.Equal(t, []entity.ID{line}, corner0.InBoundaries())

	_, err = m.Corner(line)
	assert.ErrorIs(t, err, geomodel.ErrWrongKind)

	_, err = m.Corner(entity.ID{Kind: entity.Corner, Index: 99})
	assert.ErrorIs(t, err, geomodel.ErrEntityNotFound)
}

func TestBoundarySidesTrackRegionBoundaries(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)

	surf := m.CreateEntity(entity.Surface)
	region := m.CreateEntity(entity.Region)
	require.NoError(t, m.AddBoundary(region, surf, true))

	r, err := m.Region(region)
	require.NoError(t, err)
	require.Len(t, r.BoundarySides, 1)
	assert.True(t, r.BoundarySides[0])

	got, err := m.FindRegion(surf, true)
	require.NoError(t, err)
	assert.Equal(t, region, got)

	got, err = m.FindRegion(surf, false)
	require.NoError(t, err)
	assert.Equal(t, m.Universe().ID(), got)
}

func TestRemoveBoundaryIsSymmetric(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	corner := m.CreateEntity(entity.Corner)
	line := m.CreateEntity(entity.Line)
	require.NoError(t, m.AddBoundary(line, corner))

	require.NoError(t, m.RemoveBoundary(line, corner))

	l, err := m.Line(line)
	require.NoError(t, err)
	assert.Empty(t, l.Boundaries())

	c, err := m.Corner(corner)
	require.NoError(t, err)
	assert.Empty(t, c.InBoundaries())
}

func TestParentChildLink(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	contact := m.CreateEntity(entity.Contact)
	line := m.CreateEntity(entity.Line)

	require.NoError(t, m.AddChild(contact, line))

	l, err := m.Line(line)
	require.NoError(t, err)
	assert.Equal(t, contact, l.Parent())

	ct, err := m.Contact(contact)
	require.NoError(t, err)
	assert.Equal(t, []entity.ID{line}, ct.Children())

	require.NoError(t, m.RemoveChild(contact, line))
	l, _ = m.Line(line)
	assert.Equal(t, entity.NoID, l.Parent())
}

func TestDeleteEntityTombstones(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	corner := m.CreateEntity(entity.Corner)
	require.NoError(t, m.DeleteEntity(corner))
	assert.False(t, m.Valid(corner))

	u := m.Universe()
	assert.Error(t, m.DeleteEntity(u.ID()))
}

func TestEntitiesOnVOI(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	c0 := m.CreateEntity(entity.Corner)
	c1 := m.CreateEntity(entity.Corner)
	line := m.CreateEntity(entity.Line)
	require.NoError(t, m.AddBoundary(line, c0))
	require.NoError(t, m.AddBoundary(line, c1))

	surf := m.CreateEntity(entity.Surface)
	require.NoError(t, m.AddBoundary(surf, line))
	require.NoError(t, m.AddBoundary(m.Universe().ID(), surf, true))

	voi := m.EntitiesOnVOI()
	assert.Contains(t, voi, surf)
	assert.Contains(t, voi, line)
	assert.Contains(t, voi, c0)
	assert.Contains(t, voi, c1)
}

// TestEntitiesOnVOISkipsStaleReferences guards against a panic when the
// universe (or a Surface) still references an id DeleteEntity has
// tombstoned — DeleteEntity's own contract leaves that cleanup to package
// closure, so EntitiesOnVOI must tolerate it rather than assume callers
// always ran closure first.
func TestEntitiesOnVOISkipsStaleReferences(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	c0 := m.CreateEntity(entity.Corner)
	c1 := m.CreateEntity(entity.Corner)
	line := m.CreateEntity(entity.Line)
	require.NoError(t, m.AddBoundary(line, c0))
	require.NoError(t, m.AddBoundary(line, c1))

	surf := m.CreateEntity(entity.Surface)
	require.NoError(t, m.AddBoundary(surf, line))
	require.NoError(t, m.AddBoundary(m.Universe().ID(), surf, true))

	require.NoError(t, m.DeleteEntity(surf))

	assert.NotPanics(t, func() {
		voi := m.EntitiesOnVOI()
		assert.NotContains(t, voi, surf)
	})
}

func TestAddInBoundaryPopulatesOneSidedly(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	contact := m.CreateEntity(entity.Contact)
	ifc := m.CreateEntity(entity.Interface)

	require.NoError(t, m.AddInBoundary(contact, ifc))

	ct, err := m.Contact(contact)
	require.NoError(t, err)
	assert.Equal(t, []entity.ID{ifc}, ct.InBoundaries())

	i, err := m.Interface(ifc)
	require.NoError(t, err)
	assert.Empty(t, i.Boundaries(), "AddInBoundary must not write the reciprocal Boundaries() side")
}

func TestAddInBoundaryRejectsIncompatibleKinds(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	contact := m.CreateEntity(entity.Contact)
	surf := m.CreateEntity(entity.Surface)

	err := m.AddInBoundary(contact, surf)
	assert.ErrorIs(t, err, entity.ErrIncompatibleKind)
}

func TestAddBoundaryRejectsIncompatibleKinds(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	region := m.CreateEntity(entity.Region)
	corner := m.CreateEntity(entity.Corner)

	err := m.AddBoundary(region, corner)
	assert.ErrorIs(t, err, entity.ErrIncompatibleKind)
}

func TestSetParentRejectsIncompatibleKinds(t *testing.T) {
	t.Parallel()
	m := geomodel.New("test", 1e-6)
	line := m.CreateEntity(entity.Line)
	surf := m.CreateEntity(entity.Surface)

	err := m.SetParent(line, surf)
	assert.ErrorIs(t, err, entity.ErrIncompatibleKind)
}
