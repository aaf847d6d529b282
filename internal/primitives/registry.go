package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape names understood by the registry.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
	Plane    = "plane"
	Torus    = "torus"
)

// Shapes lists every shape the registry can draw.
var Shapes = []string{Cube, Sphere, Cylinder, Plane, Torus}

// Known reports whether shape is one of Shapes.
func Known(shape string) bool {
	for _, s := range Shapes {
		if s == shape {
			return true
		}
	}
	return false
}

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 32
	torusRadSeg    = 16
	torusSides     = 48
	// torusTube is the tube radius relative to the ring radius; the unit torus has ring radius 0.5.
	torusTube = 0.1
)

// cached is the unit mesh for one shape plus a material bound to the shared shader.
// defaultTex is the material's original albedo texture, restored after a textured draw.
type cached struct {
	mesh       rl.Mesh
	mtl        rl.Material
	defaultTex rl.Texture2D
}

// Registry owns one unit mesh per shape and the lit shader. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache  map[string]cached
	shader rl.Shader
	loaded bool
	view   [3]float32
	lights []Light
}

// NewRegistry returns a registry with nothing loaded.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]cached)}
}

// SetView sets the camera position and point lights for this frame. Call once per frame before drawing.
func (r *Registry) SetView(viewPos rl.Vector3, lights []Light) {
	r.view = [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	r.lights = lights
}

func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
}

// genMesh builds the unit mesh for shape. Every mesh fits in a 1×1×1 box around the origin
// once modelOffset is applied.
func genMesh(shape string) (rl.Mesh, bool) {
	switch shape {
	case Cube:
		return rl.GenMeshCube(1, 1, 1), true
	case Sphere:
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices), true
	case Cylinder:
		return rl.GenMeshCylinder(0.5, 1, cylinderSlices), true
	case Plane:
		return rl.GenMeshPlane(1, 1, 1, 1), true
	case Torus:
		return rl.GenMeshTorus(torusTube, 1, torusRadSeg, torusSides), true
	}
	return rl.Mesh{}, false
}

// modelOffset centres meshes whose origin is not their middle (raylib cylinder sits on Y=0).
func modelOffset(shape string) rl.Matrix {
	if shape == Cylinder {
		return rl.MatrixTranslate(0, -0.5, 0)
	}
	return rl.MatrixIdentity()
}

func (r *Registry) ensure(shape string) (cached, bool) {
	if c, ok := r.cache[shape]; ok {
		return c, true
	}
	mesh, ok := genMesh(shape)
	if !ok {
		return cached{}, false
	}
	r.ensureShader()
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		c.defaultTex = albedo.Texture
	}
	r.cache[shape] = c
	return c, true
}

// Style describes how one instance is shaded.
type Style struct {
	Color       rl.Color
	Texture     rl.Texture2D // zero ID = untextured
	Tiling      rl.Vector2   // texture repeat; zero = 1×1
	Unlit       bool         // flat colour, ignores lights (flames, photos)
	DoubleSided bool
	Clip        rl.Vector4 // world plane (normal, w); fragments behind it are discarded. Zero = no clip
}

// Draw draws one instance of shape with the given world transform.
// Must be called between BeginMode3D and EndMode3D, after SetView. Unknown shapes are skipped.
func (r *Registry) Draw(shape string, world rl.Matrix, st Style) {
	c, ok := r.ensure(shape)
	if !ok {
		return
	}
	textured := st.Texture.ID != 0 && rl.IsTextureValid(st.Texture)
	albedo := c.mtl.GetMap(rl.MapAlbedo)
	if albedo != nil {
		albedo.Color = st.Color
		if textured {
			albedo.Texture = st.Texture
		} else {
			albedo.Texture = c.defaultTex
		}
	}
	r.setUniforms(st, textured)
	if st.DoubleSided {
		rl.DisableBackfaceCulling()
	}
	rl.DrawMesh(c.mesh, c.mtl, rl.MatrixMultiply(modelOffset(shape), world))
	if st.DoubleSided {
		rl.EnableBackfaceCulling()
	}
}

// Unload releases meshes and the shader. Call before the window closes.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}
