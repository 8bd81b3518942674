package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/internal/metrics"
	"github.com/geomodel/brep/ioformats/gocad"
	"github.com/geomodel/brep/ioformats/meshexport"
	"github.com/geomodel/brep/repair"
	"github.com/geomodel/brep/validity"
	"github.com/geomodel/brep/vindex"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("geomconvert", flag.ContinueOnError)
	inModel := fs.String("in:model", "", "path to a Gocad .ml structural model to load (required)")
	inMesh := fs.String("in:mesh", "", "path to a Medit .mesh volume mesh, layered onto the loaded model's Regions")
	outModel := fs.String("out:model", "", "path to write the (possibly repaired) model as Gocad .ml")
	outMesh := fs.String("out:mesh", "", "path to write the model's Region volume meshes as Medit .mesh")
	configPath := fs.String("config", "", "YAML file supplying defaults for the flags above plus validity/repair options")
	repairFlag := fs.Bool("repair", false, "run the repair pipeline before validity checking and export")
	debugDir := fs.String("debug-dir", "", "directory to receive one .mesh artifact per validity violation")
	validityMode := fs.String("validity", "all", "validity checks to run: none, topology, geometry, or all")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := &fileConfig{Epsilon: 1e-6, ValidityMode: "all"}
	if *configPath != "" {
		fileCfg, err := loadFileConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "geomconvert:", err)
			return 1
		}
		cfg = fileCfg
	}
	overlayFlags(fs, cfg, *inModel, *inMesh, *outModel, *outMesh, *debugDir, *validityMode, *repairFlag)

	if cfg.InModel == "" {
		fmt.Fprintln(os.Stderr, "geomconvert: --in:model is required")
		return 1
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	if err := convert(context.Background(), cfg, log, m); err != nil {
		log.Error("geomconvert: failed", zap.Error(err))
		return 1
	}
	return 0
}

func overlayFlags(fs *flag.FlagSet, cfg *fileConfig, inModel, inMesh, outModel, outMesh, debugDir, validityMode string, repairFlag bool) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["in:model"] || cfg.InModel == "" {
		cfg.InModel = inModel
	}
	if set["in:mesh"] || cfg.InMesh == "" {
		cfg.InMesh = inMesh
	}
	if set["out:model"] || cfg.OutModel == "" {
		cfg.OutModel = outModel
	}
	if set["out:mesh"] || cfg.OutMesh == "" {
		cfg.OutMesh = outMesh
	}
	if set["debug-dir"] || cfg.DebugDir == "" {
		cfg.DebugDir = debugDir
	}
	if set["validity"] {
		cfg.ValidityMode = validityMode
	}
	if set["repair"] {
		cfg.Repair = repairFlag
	}
}

func convert(ctx context.Context, cfg *fileConfig, log *zap.Logger, m *metrics.Collector) error {
	inFile, err := os.Open(cfg.InModel)
	if err != nil {
		return fmt.Errorf("open in:model: %w", err)
	}
	model, err := gocad.Load(ctx, inFile)
	inFile.Close()
	if err != nil {
		m.ObserveConversion("gocad", "model", "error")
		return fmt.Errorf("load in:model: %w", err)
	}
	m.ObserveConversion("gocad", "model", "ok")
	log.Info("loaded model", zap.String("path", cfg.InModel), zap.String("name", model.Name()))

	index := vindex.BuildFromModel(model, model.Epsilon())
	b := builder.New(model, index)

	if cfg.InMesh != "" {
		meshFile, err := os.Open(cfg.InMesh)
		if err != nil {
			return fmt.Errorf("open in:mesh: %w", err)
		}
		err = meshexport.LoadInto(ctx, meshFile, b)
		meshFile.Close()
		if err != nil {
			return fmt.Errorf("load in:mesh: %w", err)
		}
		log.Info("layered volume mesh", zap.String("path", cfg.InMesh))
	}

	if cfg.Repair {
		summary := repair.Run(b, repair.All)
		m.ObserveRepair("merged_vertices", summary.MergedVertices)
		m.ObserveRepair("degenerate_edges", summary.DegenerateEdges)
		m.ObserveRepair("degenerate_polygons", summary.DegeneratePolygons)
		m.ObserveRepair("reordered_lines", summary.ReorderedLines)
		m.ObserveRepair("erased_vertices", summary.ErasedVertices)
		m.ObserveRepair("rebuilt_contacts", summary.RebuiltContacts)
		log.Info("repair complete", zap.Bool("dirty", summary.Dirty()))
	}

	mode, err := parseValidityMode(cfg.ValidityMode)
	if err != nil {
		return err
	}
	if mode != 0 {
		report := validity.Check(model, mode, validity.Config{DebugDir: cfg.DebugDir, Logger: log})
		for check, count := range report.Counts {
			m.ObserveViolations(fmt.Sprintf("%d", check), count)
		}
		if !report.Valid() {
			log.Warn("validity violations found", zap.Int("total", report.Total()))
			return fmt.Errorf("model failed validity checks (%d violations)", report.Total())
		}
		log.Info("validity checks passed")
	}

	if cfg.OutModel != "" {
		outFile, err := os.Create(cfg.OutModel)
		if err != nil {
			return fmt.Errorf("create out:model: %w", err)
		}
		err = gocad.Save(ctx, model, outFile)
		outFile.Close()
		if err != nil {
			return fmt.Errorf("save out:model: %w", err)
		}
		log.Info("wrote model", zap.String("path", cfg.OutModel))
	}

	if cfg.OutMesh != "" {
		outFile, err := os.Create(cfg.OutMesh)
		if err != nil {
			return fmt.Errorf("create out:mesh: %w", err)
		}
		err = meshexport.SaveModel(ctx, model, outFile)
		outFile.Close()
		if err != nil {
			return fmt.Errorf("save out:mesh: %w", err)
		}
		log.Info("wrote volume mesh", zap.String("path", cfg.OutMesh))
	}

	return nil
}

func parseValidityMode(name string) (validity.CheckMode, error) {
	switch name {
	case "", "none":
		return 0, nil
	case "topology":
		return validity.Topology, nil
	case "geometry":
		return validity.Geometry, nil
	case "all":
		return validity.All, nil
	default:
		return 0, fmt.Errorf("unknown validity mode %q (want none, topology, geometry, or all)", name)
	}
}
