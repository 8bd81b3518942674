package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/internal/metrics"
	"github.com/geomodel/brep/ioformats/gocad"
	"github.com/golang/geo/r3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeSampleModel(t *testing.T, path string) {
	t.Helper()
	b := builder.NewModel("sample", 1e-6)
	c0, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	c1, err := b.FindOrCreateCorner(r3.Vector{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	c2, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	l0, err := b.FindOrCreateLine(c0, c1)
	require.NoError(t, err)
	l1, err := b.FindOrCreateLine(c1, c2)
	require.NoError(t, err)
	l2, err := b.FindOrCreateLine(c2, c0)
	require.NoError(t, err)
	surf := b.Model.CreateEntity(entity.Surface)
	require.NoError(t, b.Model.SetGeologicalFeature(surf, "horizon"))
	for _, l := range []entity.ID{l0, l1, l2} {
		require.NoError(t, b.Model.AddBoundary(surf, l))
	}
	require.NoError(t, b.AppendSurfacePolygon(surf, []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
	}))
	require.NoError(t, b.EndModel())

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gocad.Save(context.Background(), b.Model, f))
}

func TestConvertRoundTripsModelThroughCLIPipeline(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ml")
	out := filepath.Join(dir, "out.ml")
	writeSampleModel(t, in)

	cfg := &fileConfig{InModel: in, OutModel: out, ValidityMode: "all", Epsilon: 1e-6}
	log := zap.NewNop()
	m := metrics.New(prometheus.NewRegistry())

	require.NoError(t, convert(context.Background(), cfg, log, m))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TSURF")
}

func TestParseValidityModeRejectsUnknown(t *testing.T) {
	_, err := parseValidityMode("bogus")
	assert.Error(t, err)
}

func TestConvertFailsWithoutInModel(t *testing.T) {
	cfg := &fileConfig{}
	log := zap.NewNop()
	m := metrics.New(prometheus.NewRegistry())
	err := convert(context.Background(), cfg, log, m)
	assert.Error(t, err)
}

func TestOverlayFlagsFavorsExplicitFlagsOverFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("in:model", "from-flag.ml", "")
	require.NoError(t, fs.Parse([]string{"--in:model", "from-flag.ml"}))

	cfg := &fileConfig{InModel: "from-file.ml", OutModel: "from-file-out.ml"}
	overlayFlags(fs, cfg, "from-flag.ml", "", "", "", "", "all", false)

	assert.Equal(t, "from-flag.ml", cfg.InModel)
	assert.Equal(t, "from-file-out.ml", cfg.OutModel)
}
