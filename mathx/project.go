package mathx

import "math"

// WorldToScreen projects a world position to pixel coordinates inside a
// viewport of the given size. The bool result reports whether the point
// is on screen: every NDC component within [-1, 1] and the point in
// front of the camera. A nil camera is treated as off screen.
func WorldToScreen(cam *Camera, p Vec3, viewportW, viewportH float64) (float64, float64, bool) {
	if cam == nil || viewportW <= 0 || viewportH <= 0 {
		return 0, 0, false
	}
	clip := cam.ViewProjection().MulVec(Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if clip.W <= 0 {
		// Behind the camera.
		return 0, 0, false
	}
	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W
	ndcZ := clip.Z / clip.W
	visible := ndcX >= -1 && ndcX <= 1 && ndcY >= -1 && ndcY <= 1 && ndcZ >= -1 && ndcZ <= 1
	// Screen origin is top-left, NDC Y increases upward.
	sx := (ndcX/2 + 0.5) * viewportW
	sy := (1 - (ndcY/2 + 0.5)) * viewportH
	return sx, sy, visible
}

// LeadPoint predicts where a projectile fired now from shooterPos at
// projectileSpeed should be aimed to intercept a target moving at
// targetVel. Lead time is distance over projectile speed; a
// non-positive speed yields the target position unchanged.
func LeadPoint(targetPos, targetVel, shooterPos Vec3, projectileSpeed float64) Vec3 {
	if projectileSpeed <= 0 {
		return targetPos
	}
	leadTime := targetPos.Sub(shooterPos).Length() / projectileSpeed
	return targetPos.Add(targetVel.Scale(leadTime))
}

// radarFadeStart is the fraction of radar range where the alpha fade
// toward the boundary begins.
const radarFadeStart = 0.8

// RadarPoint maps a tracked position onto a circular radar of radiusPx
// pixels. The offset from playerPos is rotated by -playerYaw so the
// player's forward direction renders as up, then scaled linearly by
// maxRange. Returns radar-relative pixel offsets (x right, y down from
// the radar center), an alpha in (0,1] fading near the range boundary,
// and false when the target is out of range.
func RadarPoint(playerPos Vec3, playerYaw float64, targetPos Vec3, maxRange, radiusPx float64) (float64, float64, float64, bool) {
	if maxRange <= 0 || radiusPx <= 0 {
		return 0, 0, 0, false
	}
	off := targetPos.Sub(playerPos)
	dist := math.Hypot(off.X, off.Z)
	if dist > maxRange {
		return 0, 0, 0, false
	}
	// Forward at yaw y is (-sin y, -cos y) in the XZ plane; rotating the
	// offset by -yaw expresses it in the player's frame.
	s, c := math.Sin(-playerYaw), math.Cos(-playerYaw)
	rx := off.X*c + off.Z*s
	rz := -off.X*s + off.Z*c
	scale := radiusPx / maxRange
	// rz is negative ahead of the player; screen Y grows downward, so
	// ahead maps to -radius which is up on the radar.
	px := rx * scale
	py := rz * scale
	alpha := 1.0
	if frac := dist / maxRange; frac > radarFadeStart {
		alpha = 1 - (frac-radarFadeStart)/(1-radarFadeStart)
		if alpha < 0 {
			alpha = 0
		}
	}
	return px, py, alpha, true
}
