package models

import "embed"

// FS contains sample models which can be drawn with -model after being copied
// out, and which the mesh tests decode.
//
//go:embed square.obj
var FS embed.FS
