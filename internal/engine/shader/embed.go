package shader

import _ "embed"

// MeshVertexShader transforms colored surface vertices and their normals.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader applies headlight shading to per-vertex colors.
//
//go:embed mesh.frag
var MeshFragmentShader string

// LineVertexShader is the vertex shader for overlay lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader draws overlay lines in a single color.
//
//go:embed line.frag
var LineFragmentShader string
