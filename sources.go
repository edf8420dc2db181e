package main

import (
	"opengl-boilerplate/config"
	"opengl-boilerplate/shaders"
	"opengl-boilerplate/shadersrc"
)

// resolveShaderSources picks the vertex and fragment sources the program is
// going to compile: the inline ones, a tagged file from disk or the embedded
// tagged file.
func resolveShaderSources(cfg config.Config) (shadersrc.Bundle, error) {
	switch {
	case cfg.Inline:
		return shadersrc.Bundle{
			Vertex:   shaders.VertexSource,
			Fragment: shaders.FragmentSource,
		}, nil
	case cfg.ShaderFile != "":
		return shadersrc.LoadFile(cfg.ShaderFile)
	default:
		return shadersrc.Load(shaders.FS, shaders.DefaultName)
	}
}
