package march

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Corner offsets of a unit cube, indexed by mask bit.
var corners = [8][3]int{
	{0, 0, 0},
	{1, 0, 0},
	{1, 0, 1},
	{0, 0, 1},
	{0, 1, 0},
	{1, 1, 0},
	{1, 1, 1},
	{0, 1, 1},
}

// Corner returns the (x, y, z) offset of cube corner i, 0 <= i < 8.
func Corner(i int) [3]int {
	return corners[i]
}

// Edge names one of the twelve edges of a unit cube. The letter is the axis
// the edge runs along and the digits are the fixed coordinates on the other
// two axes, in x, y, z order.
type Edge uint8

const (
	EdgeX00 Edge = iota
	EdgeZ10
	EdgeX01
	EdgeZ00
	EdgeX10
	EdgeZ11
	EdgeX11
	EdgeZ01
	EdgeY00
	EdgeY10
	EdgeY11
	EdgeY01

	NumEdges = 12
)

type edgeGeometry struct {
	name      string
	offset    [3]int
	direction [3]int
	a, b      int // corner bits at offset and offset+direction
}

var edges = [NumEdges]edgeGeometry{
	EdgeX00: {"X00", [3]int{0, 0, 0}, [3]int{1, 0, 0}, 0, 1},
	EdgeZ10: {"Z10", [3]int{1, 0, 0}, [3]int{0, 0, 1}, 1, 2},
	EdgeX01: {"X01", [3]int{0, 0, 1}, [3]int{1, 0, 0}, 3, 2},
	EdgeZ00: {"Z00", [3]int{0, 0, 0}, [3]int{0, 0, 1}, 0, 3},
	EdgeX10: {"X10", [3]int{0, 1, 0}, [3]int{1, 0, 0}, 4, 5},
	EdgeZ11: {"Z11", [3]int{1, 1, 0}, [3]int{0, 0, 1}, 5, 6},
	EdgeX11: {"X11", [3]int{0, 1, 1}, [3]int{1, 0, 0}, 7, 6},
	EdgeZ01: {"Z01", [3]int{0, 1, 0}, [3]int{0, 0, 1}, 4, 7},
	EdgeY00: {"Y00", [3]int{0, 0, 0}, [3]int{0, 1, 0}, 0, 4},
	EdgeY10: {"Y10", [3]int{1, 0, 0}, [3]int{0, 1, 0}, 1, 5},
	EdgeY11: {"Y11", [3]int{1, 0, 1}, [3]int{0, 1, 0}, 2, 6},
	EdgeY01: {"Y01", [3]int{0, 0, 1}, [3]int{0, 1, 0}, 3, 7},
}

func (e Edge) String() string {
	if int(e) < NumEdges {
		return "Edge" + edges[e].name
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// Offset returns the corner the edge starts at.
func (e Edge) Offset() [3]int { return edges[e].offset }

// Direction returns the unit step from the offset corner to the other end.
func (e Edge) Direction() [3]int { return edges[e].direction }

// Corners returns the mask bits of the corners at the start and end of the edge.
func (e Edge) Corners() (a, b int) { return edges[e].a, edges[e].b }

// Parameter returns how far along an edge the isolevel is crossed, given the
// weights w0 at the offset corner and w1 at the far corner. Equal weights
// yield 0 (the offset corner); the result is clamped to [0, 1].
func Parameter(isolevel, w0, w1 float32) float32 {
	if w1 == w0 {
		return 0
	}
	t := (isolevel - w0) / (w1 - w0)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate returns the cube-local position where the isolevel crosses e.
func (e Edge) Interpolate(isolevel, w0, w1 float32) mgl32.Vec3 {
	g := edges[e]
	t := Parameter(isolevel, w0, w1)
	return mgl32.Vec3{
		float32(g.offset[0]) + t*float32(g.direction[0]),
		float32(g.offset[1]) + t*float32(g.direction[1]),
		float32(g.offset[2]) + t*float32(g.direction[2]),
	}
}
