// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Context is attached at the call site via buildErrorf(method, ...).
package builder

import (
	"errors"
	"fmt"
)

// ErrKindMismatch indicates an id of the wrong entity.Kind was passed to a
// constructor that requires a specific kind (e.g. FindOrCreateLine given a
// Surface id as an endpoint).
var ErrKindMismatch = errors.New("builder: entity kind mismatch")

// ErrWrongCornerCount indicates a Line constructor was given a boundary
// list whose length is not exactly two.
var ErrWrongCornerCount = errors.New("builder: line requires exactly two corners")

// ErrEmptyGeometry indicates a geometry setter was called with zero
// vertices/polygons/cells.
var ErrEmptyGeometry = errors.New("builder: empty geometry")

// ErrModelNotEnded indicates CopyMacroTopology or another closure op was
// invoked on a model that EndModel has not yet finalized.
var ErrModelNotEnded = errors.New("builder: model not ended")

// ErrAlreadyEnded indicates EndModel was called twice on the same model.
var ErrAlreadyEnded = errors.New("builder: model already ended")

// ErrDestinationNotEmpty indicates CopyMacroTopology was given a dst that
// already holds geological entities of its own, breaking the index
// correspondence CopyMacroTopology's wiring pass relies on.
var ErrDestinationNotEmpty = errors.New("builder: copy destination already has geological entities")

// buildErrorf wraps err with a method-context prefix, matching the
// teacher's builderErrorf contract: "<Method>: <err>".
func buildErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// Method name tokens, used exclusively as the first argument to
// buildErrorf so error messages carry a stable, greppable prefix.
const (
	MethodFindOrCreateCorner   = "FindOrCreateCorner"
	MethodFindOrCreateLine     = "FindOrCreateLine"
	MethodFindOrCreateContact  = "FindOrCreateContact"
	MethodAppendLineVertex     = "AppendLineVertex"
	MethodAppendSurfacePolygon = "AppendSurfacePolygon"
	MethodSetRegionCells       = "SetRegionCells"
	MethodBuildContacts        = "BuildContacts"
	MethodBuildInterfaces      = "BuildInterfaces"
	MethodBuildLayers          = "BuildLayers"
	MethodEndModel             = "EndModel"
	MethodCopyMacroTopology    = "CopyMacroTopology"
	MethodDeleteEntity         = "DeleteEntity"
	MethodSetName              = "SetName"
	MethodSetGeologicalFeature = "SetGeologicalFeature"
	MethodAddBoundary          = "AddBoundary"
	MethodAddInBoundary        = "AddInBoundary"
	MethodSetParent            = "SetParent"
	MethodAddChild             = "AddChild"
)
