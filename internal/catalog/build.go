package catalog

import (
	"github.com/pkg/errors"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// Item is one built shape.
type Item struct {
	Name string
	Kind Kind
	Mesh geometry.Mesh[geometry.VertexPCUTBN]
}

func (s *Shape) validate() error {
	info, ok := kinds[s.Kind]
	if !ok {
		return errors.Errorf("unknown kind %q", s.Kind)
	}
	switch {
	case s.Indexed && !info.Indexed:
		return errors.Errorf("kind %s has no indexed form", s.Kind)
	case s.Wired && !info.Wired:
		return errors.Errorf("kind %s has no wired form", s.Kind)
	case s.Indexed && s.Wired:
		return errors.New("indexed and wired are exclusive")
	case s.Tangents && !info.Is3D:
		return errors.Errorf("tangents need a 3D kind, got %s", s.Kind)
	}
	if _, err := ParseColor(s.Color); err != nil {
		return err
	}
	if _, err := s.uvRect(); err != nil {
		return err
	}
	if s.Transform != nil {
		if _, err := s.Transform.translation(); err != nil {
			return err
		}
	}
	_, err := info.prepare(s)
	return err
}

// Build generates the shape's mesh. 2D kinds are always unindexed; 3D kinds
// follow Indexed and Wired. When Tangents is set the tangent-space basis is
// recomputed, over a sequential index list for unindexed meshes.
func (s *Shape) Build() (geometry.Mesh[geometry.VertexPCUTBN], error) {
	var m geometry.Mesh[geometry.VertexPCUTBN]
	if err := s.validate(); err != nil {
		return m, errors.Wrapf(err, "shape %q", s.Name)
	}
	info := kinds[s.Kind]
	emit, _ := info.prepare(s)
	color, _ := ParseColor(s.Color)
	uv, _ := s.uvRect()
	emit(&m, color, uv)

	if s.Transform != nil {
		s.Transform.apply(m.Vertices, info.Is3D)
	}
	if s.Tangents {
		indices := m.Indices
		if !m.Indexed() {
			indices = make([]uint32, len(m.Vertices))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}
		geometry.CalculateTangentSpaceVectors(m.Vertices, indices, geometry.ComputeAll)
	}
	return m, nil
}

// Build generates every shape in order.
func (c *Catalog) Build() ([]Item, error) {
	items := make([]Item, 0, len(c.Shapes))
	for i := range c.Shapes {
		s := &c.Shapes[i]
		m, err := s.Build()
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Name: s.Name, Kind: s.Kind, Mesh: m})
	}
	return items, nil
}

func (t *Transform) translation() (math.Vec3, error) {
	switch len(t.Translate) {
	case 0:
		return math.Vec3{}, nil
	case 2:
		return math.Vec3{X: t.Translate[0], Y: t.Translate[1]}, nil
	case 3:
		return math.Vec3{X: t.Translate[0], Y: t.Translate[1], Z: t.Translate[2]}, nil
	}
	return math.Vec3{}, errors.Errorf("transform.translate: want 2 or 3 components, got %d", len(t.Translate))
}

func (t *Transform) scale() float32 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// Matrix returns translate * yaw * pitch * roll * scale.
func (t *Transform) Matrix() math.Mat4 {
	tr, _ := t.translation()
	s := t.scale()
	return math.Translate(tr.X, tr.Y, tr.Z).
		Mul(math.RotateZ(t.Yaw)).
		Mul(math.RotateY(t.Pitch)).
		Mul(math.RotateX(t.Roll)).
		Mul(math.Scale(s, s, s))
}

func (t *Transform) apply(verts []geometry.VertexPCUTBN, is3D bool) {
	if is3D {
		geometry.TransformVertexArray3D(verts, t.Matrix())
		return
	}
	tr, _ := t.translation()
	geometry.TransformVertexArrayXY3D(verts, t.scale(), t.Yaw, tr.XY())
}
