package generators

import "github.com/ob6160/SphereMap/core"

// Generator appends triangles to a shared mesh buffer. VertexCount is exactly
// how many vertices Generate appends.
type Generator interface {
	Generate(buf *core.MeshBuffer)
	VertexCount() int
}

// Build runs each generator against a fresh buffer and returns the range of
// vertices each one produced, in the order given.
func Build(gens ...Generator) (*core.MeshBuffer, []core.Range) {
	var total = 0
	for _, g := range gens {
		total += g.VertexCount()
	}
	var buf = core.NewMeshBuffer(total)
	var ranges = make([]core.Range, 0, len(gens))
	for _, g := range gens {
		var first = buf.Len()
		g.Generate(buf)
		ranges = append(ranges, core.Range{First: first, Count: buf.Len() - first})
	}
	return buf, ranges
}
