// Package export writes generated meshes as glTF 2.0 documents.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/catalog"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
)

// Options controls document layout.
type Options struct {
	// DoubleSided marks the shared material double sided, useful for 2D
	// shapes and open quads.
	DoubleSided bool
}

// Document builds a glTF document with one mesh and one node per item.
func Document(items []catalog.Item, opts Options) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "vertex_color",
		DoubleSided: opts.DoubleSided,
	})
	for _, it := range items {
		AddMesh(doc, it.Name, &it.Mesh)
	}
	return doc
}

// AddMesh appends mesh as a new glTF mesh and a node in the default scene,
// returning the mesh index. Unindexed meshes get a sequential index list.
func AddMesh(doc *gltf.Document, name string, mesh *geometry.Mesh[geometry.VertexPCUTBN]) uint32 {
	n := len(mesh.Vertices)
	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	tangents := make([][4]float32, n)
	uvs := make([][2]float32, n)
	colors := make([][4]uint8, n)

	for i, v := range mesh.Vertices {
		positions[i] = v.Position.Array()
		normals[i] = v.Normal.Normalize().Array()
		tangents[i] = tangent4(v)
		// glTF puts the UV origin at the top left
		uvs[i] = [2]float32{v.UV.X, 1 - v.UV.Y}
		colors[i] = v.Color.Array()
	}

	indices := mesh.Indices
	if !mesh.Indexed() {
		indices = make([]uint32, n)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	indicesAccessor := modeler.WriteIndices(doc, indices)
	attributes := map[string]uint32{
		gltf.POSITION:   modeler.WritePosition(doc, positions),
		gltf.NORMAL:     modeler.WriteNormal(doc, normals),
		gltf.TANGENT:    modeler.WriteTangent(doc, tangents),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
		gltf.COLOR_0:    modeler.WriteColor(doc, colors),
	}

	prim := &gltf.Primitive{
		Indices:    gltf.Index(indicesAccessor),
		Attributes: attributes,
	}
	if len(doc.Materials) > 0 {
		prim.Material = gltf.Index(0)
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{prim},
	})
	meshIndex := uint32(len(doc.Meshes) - 1)

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(meshIndex),
	})
	return meshIndex
}

// tangent4 packs the tangent with the bitangent sign in w, as glTF expects.
func tangent4(v geometry.VertexPCUTBN) [4]float32 {
	t := v.Tangent.Normalize()
	w := float32(1)
	if v.Normal.Cross(v.Tangent).Dot(v.Bitangent) < 0 {
		w = -1
	}
	return [4]float32{t.X, t.Y, t.Z, w}
}

// Encode writes doc as GLB when binary is set, otherwise as JSON with the
// buffers embedded as data URIs.
func Encode(w io.Writer, doc *gltf.Document, binary bool) error {
	if !binary {
		for _, b := range doc.Buffers {
			if b.URI == "" {
				b.EmbeddedResource()
			}
		}
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding gltf")
	}
	return nil
}

// IsBinaryPath reports whether path names a .glb file.
func IsBinaryPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".glb")
}

// Save writes items to path, choosing GLB or JSON by extension.
func Save(path string, items []catalog.Item, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := Encode(f, Document(items, opts), IsBinaryPath(path)); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
