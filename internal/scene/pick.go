package scene

import (
	"love-museum/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// planeHalfThickness gives planes a sliver of depth so a slab test can hit them.
const planeHalfThickness = 0.005

// localBounds returns the model-space box of a unit shape. Groups have none.
func localBounds(shape string) (rl.BoundingBox, bool) {
	switch shape {
	case primitives.Plane:
		return rl.NewBoundingBox(
			rl.NewVector3(-0.5, -planeHalfThickness, -0.5),
			rl.NewVector3(0.5, planeHalfThickness, 0.5),
		), true
	case primitives.Torus:
		return rl.NewBoundingBox(rl.NewVector3(-0.55, -0.55, -0.05), rl.NewVector3(0.55, 0.55, 0.05)), true
	case primitives.Cube, primitives.Sphere, primitives.Cylinder:
		return rl.NewBoundingBox(rl.NewVector3(-0.5, -0.5, -0.5), rl.NewVector3(0.5, 0.5, 0.5)), true
	}
	return rl.BoundingBox{}, false
}

// RayHits reports whether ray touches any shape in the subtree rooted at n, n included.
// A nil node (not mounted yet) never hits.
func RayHits(ray rl.Ray, n *Node) bool {
	if n == nil {
		return false
	}
	hit := false
	n.Walk(func(c *Node, world rl.Matrix) bool {
		if hit {
			return false
		}
		if box, ok := localBounds(c.Shape); ok && rayHitsBox(ray, box, world) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// rayHitsBox moves the ray into the shape's model space, where the box is axis aligned.
func rayHitsBox(ray rl.Ray, box rl.BoundingBox, world rl.Matrix) bool {
	inv := rl.MatrixInvert(world)
	origin := rl.Vector3Transform(ray.Position, inv)
	ahead := rl.Vector3Transform(rl.Vector3Add(ray.Position, ray.Direction), inv)
	local := rl.NewRay(origin, rl.Vector3Subtract(ahead, origin))
	return rl.GetRayCollisionBox(local, box).Hit
}

// CenterRay is the ray through the middle of the viewport: from the camera position along
// its look direction.
func CenterRay(cam rl.Camera3D) rl.Ray {
	dir := rl.Vector3Subtract(cam.Target, cam.Position)
	if rl.Vector3Length(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
	}
	return rl.NewRay(cam.Position, dir)
}
