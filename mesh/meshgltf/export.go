// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshgltf exports the contents of a [mesh.Mesh] as a glTF
// document, for inspecting a frame of debug geometry in other tools.
package meshgltf

import (
	"path/filepath"
	"strings"

	"cogentcore.org/bootstrap3d/mesh"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Export returns a glTF document with one node holding one mesh with
// the given name. The mesh has an indexed triangle primitive and a
// line primitive, each present only when not empty.
func Export(ms *mesh.Mesh, name string) *gltf.Document {
	doc := gltf.NewDocument()
	gm := &gltf.Mesh{Name: name}

	if ms.NumTris() > 0 {
		vs := ms.TriVertices()
		pos, col, tex := attributes(vs)
		prim := &gltf.Primitive{
			Mode:    gltf.PrimitiveTriangles,
			Indices: gltf.Index(modeler.WriteIndices(doc, ms.Indices())),
			Attributes: map[string]int{
				gltf.POSITION:   modeler.WritePosition(doc, pos),
				gltf.COLOR_0:    modeler.WriteColor(doc, col),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, tex),
			},
		}
		gm.Primitives = append(gm.Primitives, prim)
	}
	if ms.NumLines() > 0 {
		pos, col, _ := attributes(ms.LineVertices())
		prim := &gltf.Primitive{
			Mode: gltf.PrimitiveLines,
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, pos),
				gltf.COLOR_0:  modeler.WriteColor(doc, col),
			},
		}
		gm.Primitives = append(gm.Primitives, prim)
	}

	doc.Meshes = append(doc.Meshes, gm)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return doc
}

func attributes(vs []mesh.Vertex) (pos [][3]float32, col [][4]float32, tex [][2]float32) {
	pos = make([][3]float32, len(vs))
	col = make([][4]float32, len(vs))
	tex = make([][2]float32, len(vs))
	for i, v := range vs {
		pos[i] = v.Position.Vec3()
		col[i] = v.Color
		tex[i] = v.TexCoord
	}
	return
}

// Save exports ms to the given file, as binary glTF for a .glb
// extension and as JSON glTF otherwise.
func Save(ms *mesh.Mesh, name, file string) error {
	doc := Export(ms, name)
	if strings.EqualFold(filepath.Ext(file), ".glb") {
		return gltf.SaveBinary(doc, file)
	}
	return gltf.Save(doc, file)
}
