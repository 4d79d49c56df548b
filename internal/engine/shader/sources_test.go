package shader

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeshVertexLocations(t *testing.T) {
	attribs := map[string]int{
		"aPos":       AttribPosition,
		"aColor":     AttribColor,
		"aUV":        AttribUV,
		"aTangent":   AttribTangent,
		"aBitangent": AttribBitangent,
		"aNormal":    AttribNormal,
	}
	for name, loc := range attribs {
		decl := fmt.Sprintf("layout (location = %d) in", loc)
		line := findLine(MeshVertex, name+";")
		assert.Contains(t, line, decl, "attribute %s", name)
	}
}

func TestFragmentModes(t *testing.T) {
	assert.Contains(t, MeshFragment, fmt.Sprintf("uMode == %d", ModeLit))
	assert.Contains(t, MeshFragment, fmt.Sprintf("uMode == %d", ModeNormals))
	assert.Contains(t, MeshFragment, fmt.Sprintf("uMode == %d", ModeTangents))
	assert.Contains(t, MeshFragment, fmt.Sprintf("uMode == %d", ModeUV))
}

func TestSourcesDeclareVersion(t *testing.T) {
	for i, src := range []string{MeshVertex, MeshFragment, LineVertex, LineFragment} {
		assert.True(t, strings.HasPrefix(strings.TrimSpace(src), "#version 410 core"), "source %d", i)
	}
}

func findLine(src, suffix string) string {
	for _, line := range strings.Split(src, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), suffix) {
			return line
		}
	}
	return ""
}
