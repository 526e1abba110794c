package core

// Hit describes where and how a ray struck a surface.
// T is the parametric distance along the ray, always greater than Epsilon.
// Normal is unit length and geometric: outward for spheres, the winding
// normal for triangles, never flipped toward the viewer.
type Hit struct {
	Point    Vec3
	Normal   Vec3
	T        float64
	Material *Material
}
