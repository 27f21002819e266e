package scenery

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file and flattens its triangle
// primitives into a mesh.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var allTriangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, err
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, err
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			vertex := func(i uint32) Vertex {
				v := Vertex{}
				v.Position = Vector{
					float64(positions[i][0]),
					float64(positions[i][1]),
					float64(positions[i][2]),
				}
				if int(i) < len(normals) {
					v.Normal = Vector{
						float64(normals[i][0]),
						float64(normals[i][1]),
						float64(normals[i][2]),
					}
				}
				if int(i) < len(texCoords) {
					v.Texture = Vector{
						float64(texCoords[i][0]),
						float64(texCoords[i][1]),
						0,
					}
				}
				return v
			}

			for i := 0; i+2 < len(indices); i += 3 {
				t := NewTriangle(vertex(indices[i]), vertex(indices[i+1]), vertex(indices[i+2]))
				t.FixNormals()
				allTriangles = append(allTriangles, t)
			}
		}
	}

	if len(allTriangles) == 0 {
		return nil, fmt.Errorf("no triangles found in %s", path)
	}
	return NewTriangleMesh(allTriangles), nil
}
