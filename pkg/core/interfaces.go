package core

// Hittable is anything a ray can intersect: a single shape or a whole world.
// Implementations must be safe for concurrent use and must not mutate
// themselves during Hit.
type Hittable interface {
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// Material decides how a surface responds to an incoming ray.
// Returning false signals that the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // Outgoing ray
	Attenuation Vec3 // Color attenuation applied to light arriving along Scattered
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the outside of the surface
	Material  Material // Material at the hit point
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
