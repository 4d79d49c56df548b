package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showcase = "../../internal/catalog/testdata/shapes.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20) // header + 19 kinds
	assert.True(t, strings.HasPrefix(lines[0], "KIND"))
	assert.Contains(t, out, "sphere")
	assert.Contains(t, out, "lat_slices, lon_slices")
}

func TestBuildGLB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "showcase.glb")
	out, err := run(t, "build", showcase, "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 6 meshes")

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	assert.Len(t, doc.Meshes, 6)
	assert.Equal(t, "floor", doc.Meshes[0].Name)
}

func TestBuildOnlyAndDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "meshtools.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("export:\n  output_dir: "+dir+"\n"), 0644))

	_, err := run(t, "--config", cfgPath, "build", showcase, "--only", "ball,crate")
	require.NoError(t, err)

	doc, err := gltf.Open(filepath.Join(dir, "shapes.glb"))
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 2)
	assert.Equal(t, "ball", doc.Meshes[0].Name)
	assert.Equal(t, "crate", doc.Meshes[1].Name)
}

func TestBuildUnknownShape(t *testing.T) {
	_, err := run(t, "build", showcase, "--only", "nope", "-o", filepath.Join(t.TempDir(), "x.glb"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no shape named "nope"`)
	assert.Contains(t, err.Error(), "crate_outline")
}

func TestPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.png")
	out, err := run(t, "preview", showcase, "-o", path, "--size", "96", "--view", "side")
	require.NoError(t, err)
	assert.Contains(t, out, "96x96 side view")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
}

func TestPreviewBadView(t *testing.T) {
	_, err := run(t, "preview", showcase, "--view", "iso", "-o", filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", showcase, "--only", "crate,ball")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "crate "))
	fields := strings.Fields(lines[1])
	assert.Equal(t, []string{"crate", "aabb3", "36", "0", "12"}, fields[:5])
	assert.True(t, strings.HasPrefix(lines[3], "total"))
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", showcase, "ball", "--limit", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "ball (sphere)")
	assert.Contains(t, out, "[]geometry.VertexPCUTBN) (len=2)")
	assert.Contains(t, out, "[]uint32) (len=6)")
	assert.Contains(t, out, "Bitangent:")
}

func TestMissingCatalog(t *testing.T) {
	_, err := run(t, "stats", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "shapes.glb"), defaultOutput("out", "/data/shapes.yaml", ".glb"))
	assert.Equal(t, "props.png", defaultOutput(".", "props.yml", ".png"))
}
