package shader

// Attribute locations shared by MeshVertex and the renderer's vertex layout.
const (
	AttribPosition  = 0
	AttribColor     = 1
	AttribUV        = 2
	AttribTangent   = 3
	AttribBitangent = 4
	AttribNormal    = 5
)

// Shading modes selected through the uMode uniform of MeshFragment.
const (
	ModeUnlit int32 = iota
	ModeLit
	ModeNormals
	ModeTangents
	ModeUV
)

// MeshVertex transforms VertexPCUTBN data and forwards the tangent frame
// in world space.
const MeshVertex = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec2 aUV;
layout (location = 3) in vec3 aTangent;
layout (location = 4) in vec3 aBitangent;
layout (location = 5) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec4 vColor;
out vec2 vUV;
out vec3 vTangent;
out vec3 vBitangent;
out vec3 vNormal;

void main() {
	mat3 basis = mat3(uModel);
	vColor = aColor;
	vUV = aUV;
	vTangent = basis * aTangent;
	vBitangent = basis * aBitangent;
	vNormal = basis * aNormal;
	gl_Position = uProjection * uView * uModel * vec4(aPos, 1.0);
}
`

// MeshFragment shades with vertex color, optionally lit by a single sun, or
// visualizes the normal, tangent or UV as a color.
const MeshFragment = `
#version 410 core

in vec4 vColor;
in vec2 vUV;
in vec3 vTangent;
in vec3 vBitangent;
in vec3 vNormal;

uniform int uMode;
uniform vec3 uSunDir;
uniform vec3 uSunColor;
uniform vec3 uAmbient;

out vec4 FragColor;

void main() {
	if (uMode == 2) {
		FragColor = vec4(normalize(vNormal) * 0.5 + 0.5, 1.0);
		return;
	}
	if (uMode == 3) {
		FragColor = vec4(normalize(vTangent) * 0.5 + 0.5, 1.0);
		return;
	}
	if (uMode == 4) {
		FragColor = vec4(fract(vUV), 0.0, 1.0);
		return;
	}
	vec4 color = vColor;
	if (uMode == 1) {
		float d = max(dot(normalize(vNormal), uSunDir), 0.0);
		color.rgb *= min(uAmbient + uSunColor * d, vec3(1.0));
	}
	FragColor = color;
}
`

// LineVertex draws colored GL_LINES overlays.
const LineVertex = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uViewProj;

out vec4 vColor;

void main() {
	vColor = aColor;
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

// LineFragment passes the interpolated line color through.
const LineFragment = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`
