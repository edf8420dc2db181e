package mesh

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mokiat/go-data-front/decoder/obj"
	"github.com/xlab/linmath"
)

// ErrNoFaces is returned for OBJ files which do not describe any geometry.
var ErrNoFaces = errors.New("model has no faces")

// LoadOBJ decodes a Wavefront OBJ model. Only the x and y of each vertex are
// used and every vertex is white. Polygons are split into triangle fans.
func LoadOBJ(r io.Reader) (Mesh, error) {
	decoder := obj.NewDecoder(obj.DefaultLimits())
	model, err := decoder.Decode(r)
	if err != nil {
		return Mesh{}, fmt.Errorf("decoding obj: %w", err)
	}

	var m Mesh
	for _, object := range model.Objects {
		for _, objMesh := range object.Meshes {
			for faceIndex, face := range objMesh.Faces {
				if len(face.References) < 3 {
					return Mesh{}, fmt.Errorf(
						"object %q face %d has %d vertices, need at least 3",
						object.Name, faceIndex, len(face.References),
					)
				}

				first := uint32(len(m.Vertices))
				for _, ref := range face.References {
					vertex := model.GetVertexFromReference(ref)
					m.Vertices = append(m.Vertices, Vertex{
						Pos:   linmath.Vec2{float32(vertex.X), float32(vertex.Y)},
						Color: linmath.Vec3{1, 1, 1},
					})
				}

				for i := 1; i < len(face.References)-1; i++ {
					m.Indices = append(m.Indices, first, first+uint32(i), first+uint32(i+1))
				}
			}
		}
	}

	if len(m.Indices) == 0 {
		return Mesh{}, ErrNoFaces
	}

	return m, nil
}

// LoadOBJFile is LoadOBJ for a file on disk.
func LoadOBJFile(path string) (Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("opening model: %w", err)
	}
	defer f.Close()

	m, err := LoadOBJ(f)
	if err != nil {
		return Mesh{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
