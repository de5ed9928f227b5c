package mathx

import (
	"math"
	"testing"
)

func testCamera() *Camera {
	c := NewCamera()
	c.Aspect = 16.0 / 9.0
	return c
}

func TestWorldToScreenCenter(t *testing.T) {
	cam := testCamera()
	cam.Position = Vec3{X: 5, Y: 2, Z: -3}
	cam.Yaw = 0.7

	// A point along the exact look direction should land at the
	// viewport center.
	p := cam.Position.Add(cam.Forward().Scale(50))
	x, y, ok := WorldToScreen(cam, p, 1920, 1080)
	if !ok {
		t.Fatalf("point on the look axis should be visible")
	}
	if math.Abs(x-960) > 1 || math.Abs(y-540) > 1 {
		t.Fatalf("expected near viewport center, got (%.2f, %.2f)", x, y)
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	cam := testCamera()
	p := cam.Position.Sub(cam.Forward().Scale(10))
	if _, _, ok := WorldToScreen(cam, p, 800, 600); ok {
		t.Fatalf("point behind the camera should not be visible")
	}
}

func TestWorldToScreenNilCamera(t *testing.T) {
	if _, _, ok := WorldToScreen(nil, Vec3{}, 800, 600); ok {
		t.Fatalf("nil camera must degrade to off-screen, not panic")
	}
}

func TestWorldToScreenOffAxisSide(t *testing.T) {
	cam := testCamera()
	// A point ahead and to the camera's right should land on the right
	// half of the screen.
	p := cam.Forward().Scale(50).Add(cam.Right().Scale(10))
	x, _, ok := WorldToScreen(cam, p, 1920, 1080)
	if !ok {
		t.Fatalf("point should be visible")
	}
	if x <= 960 {
		t.Fatalf("point right of the look axis projected left of center: x=%.2f", x)
	}
}

func TestLeadPoint(t *testing.T) {
	target := Vec3{X: 100, Y: 0, Z: 0}
	vel := Vec3{X: 0, Y: 0, Z: 20}
	got := LeadPoint(target, vel, Vec3{}, 50)
	// Lead time is 100/50 = 2s, so the aim point is 40 units along Z.
	want := Vec3{X: 100, Y: 0, Z: 40}
	if got != want {
		t.Fatalf("LeadPoint = %+v, want %+v", got, want)
	}
}

func TestLeadPointZeroSpeed(t *testing.T) {
	target := Vec3{X: 1, Y: 2, Z: 3}
	if got := LeadPoint(target, Vec3{X: 9}, Vec3{}, 0); got != target {
		t.Fatalf("zero projectile speed should return the target position, got %+v", got)
	}
}

func TestRadarPointAheadIsUp(t *testing.T) {
	yaw := 1.3
	player := Vec3{X: 10, Y: 0, Z: -4}
	forward := Vec3{X: -math.Sin(yaw), Y: 0, Z: -math.Cos(yaw)}
	target := player.Add(forward.Scale(50))

	x, y, alpha, ok := RadarPoint(player, yaw, target, 100, 80)
	if !ok {
		t.Fatalf("target inside range should be drawn")
	}
	if math.Abs(x) > 1e-9 {
		t.Fatalf("target dead ahead should have x=0, got %.4f", x)
	}
	if y >= 0 {
		t.Fatalf("target dead ahead should render above center (negative y), got %.4f", y)
	}
	if math.Abs(math.Abs(y)-40) > 1e-9 {
		t.Fatalf("half range should scale to half radius, got |y|=%.4f", math.Abs(y))
	}
	if alpha != 1 {
		t.Fatalf("target at half range should not be faded, alpha=%.2f", alpha)
	}
}

func TestRadarPointTranslationInvariant(t *testing.T) {
	player := Vec3{X: 3, Y: 0, Z: 7}
	target := Vec3{X: 40, Y: 0, Z: -12}
	shift := Vec3{X: -123, Y: 0, Z: 456}

	x1, y1, a1, ok1 := RadarPoint(player, 0.4, target, 200, 64)
	x2, y2, a2, ok2 := RadarPoint(player.Add(shift), 0.4, target.Add(shift), 200, 64)
	if ok1 != ok2 || a1 != a2 {
		t.Fatalf("translation changed visibility or alpha")
	}
	if math.Abs(x1-x2) > 1e-9 || math.Abs(y1-y2) > 1e-9 {
		t.Fatalf("blip moved under joint translation: (%.4f,%.4f) vs (%.4f,%.4f)", x1, y1, x2, y2)
	}
}

func TestRadarPointOutOfRange(t *testing.T) {
	if _, _, _, ok := RadarPoint(Vec3{}, 0, Vec3{X: 500}, 100, 80); ok {
		t.Fatalf("target beyond radar range must not be drawn")
	}
}

func TestRadarPointEdgeFade(t *testing.T) {
	_, _, alpha, ok := RadarPoint(Vec3{}, 0, Vec3{X: 95}, 100, 80)
	if !ok {
		t.Fatalf("target just inside range should be drawn")
	}
	if alpha <= 0 || alpha >= 1 {
		t.Fatalf("target near the boundary should be partially faded, alpha=%.3f", alpha)
	}
}
