package mathx

import "math"

// Camera projects world positions onto the screen. Yaw rotates about
// the world Y axis and pitch about the camera's X axis; a camera with
// zero yaw and pitch looks down -Z.
type Camera struct {
	Position Vec3
	Yaw      float64
	Pitch    float64
	FOV      float64 // vertical field of view, radians
	Aspect   float64
	Near     float64
	Far      float64
}

// NewCamera returns a camera with sane defaults for a chase view.
func NewCamera() *Camera {
	return &Camera{
		FOV:    60 * math.Pi / 180,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    10000,
	}
}

// Forward is the unit vector the camera looks along.
func (c *Camera) Forward() Vec3 {
	cp := math.Cos(c.Pitch)
	return Vec3{
		X: -math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Yaw) * cp,
	}
}

// Right is the camera's unit right vector.
func (c *Camera) Right() Vec3 {
	return Vec3{X: math.Cos(c.Yaw), Y: 0, Z: -math.Sin(c.Yaw)}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() Mat4 {
	return RotateX(-c.Pitch).Mul(RotateY(-c.Yaw)).Mul(Translate(c.Position.Scale(-1)))
}

// ViewProjection returns the combined world-to-clip matrix.
func (c *Camera) ViewProjection() Mat4 {
	return Perspective(c.FOV, c.Aspect, c.Near, c.Far).Mul(c.View())
}
