package vindex

import "github.com/geomodel/brep/entity"

// Occurrence names one (entity, local vertex index) pair that shares a
// canonical point.
type Occurrence struct {
	Entity     entity.ID
	LocalIndex int
}
