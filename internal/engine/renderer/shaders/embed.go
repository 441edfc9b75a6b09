// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms lit meshes and applies door displacement.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades meshes with ambient, sky and door lights.
//
//go:embed scene.frag
var SceneFragmentShader string

// DepthVertexShader renders shadow casters from the sky light.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader is the empty depth-only fragment stage.
//
//go:embed depth.frag
var DepthFragmentShader string

// BackgroundVertexShader emits a fullscreen triangle.
//
//go:embed background.vert
var BackgroundVertexShader string

// BackgroundFragmentShader draws the daylight image behind the scene.
//
//go:embed background.frag
var BackgroundFragmentShader string

// LineVertexShader draws debug line segments.
//
//go:embed lines.vert
var LineVertexShader string

// LineFragmentShader colors debug lines.
//
//go:embed lines.frag
var LineFragmentShader string
