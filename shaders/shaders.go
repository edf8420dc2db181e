package shaders

import "embed"

// DefaultName is the shader file in FS which the program uses unless told
// otherwise.
const DefaultName = "boilerplate.shader"

// FS embeds the tagged vertex and fragment shader file. It makes it possible to
// generate a binary and just copy it to another machine.
//
//go:embed boilerplate.shader
var FS embed.FS
