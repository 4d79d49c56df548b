// Package catalog loads declarative shape lists and builds them into meshes.
package catalog

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// Catalog is a named list of shapes.
type Catalog struct {
	Name   string  `yaml:"name"`
	Shapes []Shape `yaml:"shapes"`
}

// Shape describes one generator call. Which parameters are read depends on
// Kind; see the kind table in kinds.go.
type Shape struct {
	Name      string     `yaml:"name"`
	Kind      Kind       `yaml:"kind"`
	Color     string     `yaml:"color"`
	UVs       []float32  `yaml:"uvs"` // min x, min y, max x, max y
	Indexed   bool       `yaml:"indexed"`
	Wired     bool       `yaml:"wired"`
	Tangents  bool       `yaml:"tangents"`
	Transform *Transform `yaml:"transform"`

	Center   []float32   `yaml:"center"`
	Start    []float32   `yaml:"start"`
	End      []float32   `yaml:"end"`
	Mins     []float32   `yaml:"mins"`
	Maxs     []float32   `yaml:"maxs"`
	IBasis   []float32   `yaml:"i_basis"`
	JBasis   []float32   `yaml:"j_basis"`
	HalfDims []float32   `yaml:"half_dims"`
	Points   [][]float32 `yaml:"points"`

	Radius    float32 `yaml:"radius"`
	Thickness float32 `yaml:"thickness"`
	Size      float32 `yaml:"size"`
	Forward   float32 `yaml:"forward"`
	Aperture  float32 `yaml:"aperture"`
	MinZ      float32 `yaml:"min_z"`
	MaxZ      float32 `yaml:"max_z"`
	Slices    int     `yaml:"slices"`
	LatSlices int     `yaml:"lat_slices"`
	LonSlices int     `yaml:"lon_slices"`
}

// Transform is applied to a shape after it is generated: scale, then
// rotation (roll about X, pitch about Y, yaw about Z), then translation.
// Shapes of 2D kinds only honor scale, yaw and the XY translation.
type Transform struct {
	Scale     float32   `yaml:"scale"`
	Yaw       float32   `yaml:"yaw"`
	Pitch     float32   `yaml:"pitch"`
	Roll      float32   `yaml:"roll"`
	Translate []float32 `yaml:"translate"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every shape. Unnamed shapes are named after their kind
// and position so later errors and exports can refer to them.
func (c *Catalog) Validate() error {
	if len(c.Shapes) == 0 {
		return errors.New("catalog has no shapes")
	}
	seen := make(map[string]bool, len(c.Shapes))
	for i := range c.Shapes {
		s := &c.Shapes[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s_%d", s.Kind, i)
		}
		if seen[s.Name] {
			return errors.Errorf("duplicate shape name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "shape %q", s.Name)
		}
	}
	return nil
}

var namedColors = map[string]geometry.Rgba8{
	"white":   geometry.White,
	"black":   geometry.Black,
	"red":     geometry.Red,
	"green":   geometry.Green,
	"blue":    geometry.Blue,
	"yellow":  geometry.Yellow,
	"cyan":    geometry.Cyan,
	"magenta": geometry.Magenta,
	"gray":    geometry.Gray,
	"grey":    geometry.Gray,
}

// ParseColor accepts a preset name or #rrggbb / #rrggbbaa. Empty is white.
func ParseColor(s string) (geometry.Rgba8, error) {
	if s == "" {
		return geometry.White, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	raw, ok := strings.CutPrefix(s, "#")
	if !ok || (len(raw) != 6 && len(raw) != 8) {
		return geometry.Rgba8{}, errors.Errorf("unknown color %q", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return geometry.Rgba8{}, errors.Wrapf(err, "color %q", s)
	}
	c := geometry.Rgba8{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

func vec2(v []float32, field string) (math.Vec2, error) {
	if len(v) != 2 {
		return math.Vec2{}, errors.Errorf("%s: want 2 components, got %d", field, len(v))
	}
	return math.Vec2{X: v[0], Y: v[1]}, nil
}

func vec3(v []float32, field string) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, errors.Errorf("%s: want 3 components, got %d", field, len(v))
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func (s *Shape) uvRect() (math.AABB2, error) {
	if s.UVs == nil {
		return math.UnitAABB2, nil
	}
	if len(s.UVs) != 4 {
		return math.AABB2{}, errors.Errorf("uvs: want 4 components, got %d", len(s.UVs))
	}
	return math.AABB2{
		Mins: math.Vec2{X: s.UVs[0], Y: s.UVs[1]},
		Maxs: math.Vec2{X: s.UVs[2], Y: s.UVs[3]},
	}, nil
}
