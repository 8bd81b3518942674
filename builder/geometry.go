package builder

import (
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/mesh"
	"github.com/geomodel/brep/vindex"
	"github.com/golang/geo/r3"
)

// AppendLineVertex appends an interior vertex to an existing Line's
// polyline geometry and registers it with the shared vertex index.
func (b *Builder) AppendLineVertex(lineID entity.ID, p r3.Vector) error {
	line, err := b.Model.Line(lineID)
	if err != nil {
		return buildErrorf(MethodAppendLineVertex, err)
	}
	local := line.Geometry.AppendVertex(p)
	canon := b.Index.FindOrCreate(p)
	if err := b.Index.AttachOccurrence(canon, vindex.Occurrence{Entity: lineID, LocalIndex: local}); err != nil {
		return buildErrorf(MethodAppendLineVertex, err)
	}
	line.Geometry.SetCanonicalID(local, canon)
	return nil
}

// AppendSurfacePolygon appends one polygon to a Surface's mesh, given
// positions for each of its corners (new vertices are appended to the
// Surface's own vertex array and deduplicated against the shared index;
// callers that already know the Surface-local vertex indices should call
// Surface.Geometry.AppendPolygon directly instead).
func (b *Builder) AppendSurfacePolygon(surfaceID entity.ID, positions []r3.Vector) error {
	if len(positions) < 3 {
		return buildErrorf(MethodAppendSurfacePolygon, ErrEmptyGeometry)
	}
	surf, err := b.Model.Surface(surfaceID)
	if err != nil {
		return buildErrorf(MethodAppendSurfacePolygon, err)
	}
	if surf.Geometry == nil {
		surf.Geometry = mesh.NewPolygonMesh()
	}
	corners := make([]uint32, len(positions))
	for i, p := range positions {
		local := surf.Geometry.AppendVertex(p)
		corners[i] = uint32(local)
		canon := b.Index.FindOrCreate(p)
		if err := b.Index.AttachOccurrence(canon, vindex.Occurrence{Entity: surfaceID, LocalIndex: local}); err != nil {
			return buildErrorf(MethodAppendSurfacePolygon, err)
		}
		surf.Geometry.SetCanonicalID(local, canon)
	}
	surf.Geometry.AppendPolygon(corners)
	return nil
}

// SetRegionCells appends one volume cell of the given type to a Region's
// mesh, mirroring AppendSurfacePolygon's vertex-dedup behavior for Regions.
func (b *Builder) SetRegionCells(regionID entity.ID, cellType mesh.CellType, positions []r3.Vector) error {
	region, err := b.Model.Region(regionID)
	if err != nil {
		return buildErrorf(MethodSetRegionCells, err)
	}
	if region.Geometry == nil {
		region.Geometry = mesh.NewCellMesh()
	}
	verts := make([]uint32, len(positions))
	for i, p := range positions {
		local := region.Geometry.AppendVertex(p)
		verts[i] = uint32(local)
		canon := b.Index.FindOrCreate(p)
		if err := b.Index.AttachOccurrence(canon, vindex.Occurrence{Entity: regionID, LocalIndex: local}); err != nil {
			return buildErrorf(MethodSetRegionCells, err)
		}
		region.Geometry.SetCanonicalID(local, canon)
	}
	if _, err := region.Geometry.AppendCell(cellType, verts); err != nil {
		return buildErrorf(MethodSetRegionCells, err)
	}
	return nil
}
