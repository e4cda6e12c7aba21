package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lallassu/skyflyer/internal/flight"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// kindColors is the flat material of each drawable kind.
var kindColors = map[flight.DrawKind]mgl32.Vec3{
	flight.DrawGround: {0.25, 0.45, 0.2},
	flight.DrawCoin:   {1.0, 0.8, 0.1},
	flight.DrawBomb:   {0.12, 0.12, 0.14},
	flight.DrawHull:   {0.8, 0.15, 0.1},
	flight.DrawRotor:  {0.3, 0.3, 0.3},
	flight.DrawFlame:  {1.0, 0.55, 0.1},
}

var lightDir = mgl32.Vec3{-0.2, -1.0, -0.3}

type program struct {
	id                   uint32
	uModel, uView, uProj int32
	uColor               int32
}

func newProgram(vert, frag string) (program, error) {
	id, err := linkProgram(vert, frag)
	if err != nil {
		return program{}, err
	}
	return program{
		id:     id,
		uModel: gl.GetUniformLocation(id, gl.Str("uModel\x00")),
		uView:  gl.GetUniformLocation(id, gl.Str("uView\x00")),
		uProj:  gl.GetUniformLocation(id, gl.Str("uProjection\x00")),
		uColor: gl.GetUniformLocation(id, gl.Str("uColor\x00")),
	}, nil
}

// Renderer submits drawables as unit-cube stand-ins for the game meshes.
type Renderer struct {
	lit      program
	emissive program

	uViewPos  int32
	uLightDir int32
	uSpotPos  int32
	uSpotDir  int32

	cubeVAO   uint32
	cubeVBO   uint32
	cubeCount int32
}

// NewRenderer compiles both programs and uploads the cube mesh. It needs a
// current GL context.
func NewRenderer() (*Renderer, error) {
	lit, err := newProgram(litVertSrc, litFragSrc)
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	emissive, err := newProgram(litVertSrc, emissiveFragSrc)
	if err != nil {
		gl.DeleteProgram(lit.id)
		return nil, fmt.Errorf("emissive program: %w", err)
	}

	r := &Renderer{lit: lit, emissive: emissive}
	r.uViewPos = gl.GetUniformLocation(lit.id, gl.Str("uViewPos\x00"))
	r.uLightDir = gl.GetUniformLocation(lit.id, gl.Str("uLightDir\x00"))
	r.uSpotPos = gl.GetUniformLocation(lit.id, gl.Str("uSpotPos\x00"))
	r.uSpotDir = gl.GetUniformLocation(lit.id, gl.Str("uSpotDir\x00"))

	verts := cubeVertices()
	r.cubeCount = int32(len(verts) / 6)
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindVertexArray(r.cubeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	for _, id := range []uint32{r.lit.id, r.emissive.id} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Draw renders one frame of the scene. The plane carries a spotlight along
// its heading.
func (r *Renderer) Draw(items []flight.Drawable, view, proj mgl32.Mat4, plane *flight.Plane, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.BindVertexArray(r.cubeVAO)

	eye := view.Inv().Col(3).Vec3()
	spotPos, spotDir := plane.Position, plane.Front()

	gl.UseProgram(r.lit.id)
	r.frame(r.lit, view, proj)
	gl.Uniform3fv(r.uViewPos, 1, &eye[0])
	gl.Uniform3fv(r.uLightDir, 1, &lightDir[0])
	gl.Uniform3fv(r.uSpotPos, 1, &spotPos[0])
	gl.Uniform3fv(r.uSpotDir, 1, &spotDir[0])
	for i := range items {
		if items[i].Kind != flight.DrawFlame {
			r.submit(r.lit, &items[i])
		}
	}

	gl.UseProgram(r.emissive.id)
	r.frame(r.emissive, view, proj)
	for i := range items {
		if items[i].Kind == flight.DrawFlame {
			r.submit(r.emissive, &items[i])
		}
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) frame(p program, view, proj mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(p.uProj, 1, false, &proj[0])
}

func (r *Renderer) submit(p program, d *flight.Drawable) {
	col := kindColors[d.Kind]
	gl.UniformMatrix4fv(p.uModel, 1, false, &d.Model[0])
	gl.Uniform3fv(p.uColor, 1, &col[0])
	gl.DrawArrays(gl.TRIANGLES, 0, r.cubeCount)
}
