package validity

import (
	"context"
	"os"
	"path/filepath"

	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
	"github.com/geomodel/brep/ioformats/meshexport"
	"go.uber.org/zap"
)

// Config configures a single Check call.
type Config struct {
	// DebugDir, if non-empty, receives one Medit .mesh artifact per
	// violation, named "<invariant>_<id>.mesh", replacing the original
	// tool's single global validity_errors_directory (spec's Design Notes
	// explicitly drop that process-global in favor of an explicit,
	// per-call directory).
	DebugDir string
	// ExampleLimit caps how many example Violations Report keeps per
	// CheckMode; 0 defaults to 5.
	ExampleLimit int
	// Logger receives one Info line per completed check class and a Warn
	// line when a debug artifact cannot be written. A nil Logger disables
	// logging (zap.NewNop() semantics).
	Logger *zap.Logger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// writeDebugArtifact writes v's entity as a Medit .mesh file under
// cfg.DebugDir, named "<invariant>_<id>.mesh" (SPEC_FULL.md §6.4). Surface
// and Region entities render their own mesh; every other kind renders an
// empty placeholder mesh since it carries no mesh.PolygonMesh/CellMesh of
// its own. Failures to write are logged and otherwise swallowed, since a
// validity report must not itself fail a CI run that only wanted to
// observe the model.
func writeDebugArtifact(model *geomodel.GeoModel, cfg Config, checkName string, v Violation) {
	if cfg.DebugDir == "" {
		return
	}
	path := filepath.Join(cfg.DebugDir, checkName+"_"+v.Entity.String()+".mesh")
	f, err := os.Create(path)
	if err != nil {
		cfg.logger().Warn("validity: failed to create debug artifact", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	ctx := context.Background()
	var writeErr error
	switch v.Entity.Kind {
	case entity.Surface:
		if surf, serr := model.Surface(v.Entity); serr == nil {
			writeErr = meshexport.SaveSurface(ctx, surf, f)
			break
		}
		writeErr = meshexport.SaveEmpty(f)
	case entity.Region:
		if region, rerr := model.Region(v.Entity); rerr == nil {
			writeErr = meshexport.SaveRegion(ctx, region, int(v.Entity.Index), f)
			break
		}
		writeErr = meshexport.SaveEmpty(f)
	default:
		writeErr = meshexport.SaveEmpty(f)
	}
	if writeErr != nil {
		cfg.logger().Warn("validity: failed to write debug artifact", zap.String("path", path), zap.Error(writeErr))
	}
}
