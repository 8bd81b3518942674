package builder_test

import (
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopyMacroTopologyWiresChildren exercises the second, kind-ordered
// wiring pass: dst must end up with the same Interface->Surface,
// Contact->Line and Contact->Interface (InBoundaries) links src holds, not
// just the right entity counts.
func TestCopyMacroTopologyWiresChildren(t *testing.T) {
	t.Parallel()
	src := buildUnitSquare(t)
	require.NoError(t, src.EndModel())

	// dst must have the same mesh entities as src (buildUnitSquare is
	// deterministic, so Corner/Line/Surface ids line up) but no geological
	// entities of its own yet, so CopyMacroTopology's index-correspondence
	// between src and dst geological ids holds.
	dst := buildUnitSquare(t)

	require.NoError(t, src.CopyMacroTopology(dst))

	srcIfc, err := src.Model.Interface(entity.ID{Kind: entity.Interface, Index: 0})
	require.NoError(t, err)
	dstIfc, err := dst.Model.Interface(entity.ID{Kind: entity.Interface, Index: 0})
	require.NoError(t, err)
	assert.ElementsMatch(t, srcIfc.Children(), dstIfc.Children())

	srcContact, err := src.Model.Contact(entity.ID{Kind: entity.Contact, Index: 0})
	require.NoError(t, err)
	dstContact, err := dst.Model.Contact(entity.ID{Kind: entity.Contact, Index: 0})
	require.NoError(t, err)
	assert.ElementsMatch(t, srcContact.Children(), dstContact.Children())
	assert.Equal(t, srcContact.InBoundaries(), dstContact.InBoundaries())
	assert.NotEmpty(t, dstContact.InBoundaries())
}

// TestCopyMacroTopologyRejectsNonEmptyDestination guards the index
// correspondence CopyMacroTopology's wiring pass depends on: dst must not
// already have geological entities of its own.
func TestCopyMacroTopologyRejectsNonEmptyDestination(t *testing.T) {
	t.Parallel()
	src := buildUnitSquare(t)
	require.NoError(t, src.EndModel())

	dst := buildUnitSquare(t)
	require.NoError(t, dst.EndModel()) // dst now has its own Interface/Contact

	err := src.CopyMacroTopology(dst)
	assert.ErrorIs(t, err, builder.ErrDestinationNotEmpty)
}
