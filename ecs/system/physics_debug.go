package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DrawPhysicsDebug renders every shape of the physics space, tinted by the
// owning entity's sprite. The view is centered on the level pivot.
func DrawPhysicsDebug(ps *PhysicsSystem, w *ecs.World, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || w == nil || screen == nil {
		return
	}

	camX, camY := debugCameraCenter(w)
	drawer := &physicsDebugDrawer{
		screen: screen,
		world:  w,
		owners: ps.owners,
		camX:   camX,
		camY:   camY,
		zoom:   common.PixelsPerUnit,
	}
	cp.DrawSpace(ps.space, drawer)
}

// DrawActorDebug prints the live state of the player actor.
func DrawActorDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	actor, ok := ecs.Get(w, player, component.ActorComponent.Kind())
	if !ok {
		return
	}
	var vel cp.Vector
	if body, ok := BodyOf(w, player); ok {
		vel = body.Velocity()
	}
	intensity := 0.0
	if st, ok := ecs.Get(w, player, component.BounceStateComponent.Kind()); ok {
		intensity = st.LastIntensity
	}
	target := 0.0
	if re, ok := ecs.First(w, component.RotationDragComponent.Kind()); ok {
		if r, ok := ecs.Get(w, re, component.RotationDragComponent.Kind()); ok {
			target = r.Target
		}
	}
	text := fmt.Sprintf("State: %s\nGrounded: %v\nVelocity: (%.2f, %.2f)\nLast bounce: %.2f\nLevel target: %.1f deg\nEnemies: %d",
		actor.State, actor.Grounded, vel.X, vel.Y, intensity, target, ecs.Count(w, component.EnemyTagComponent.Kind()))
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	world  *ecs.World
	owners map[*cp.Shape]ecs.Entity
	camX   float64
	camY   float64
	zoom   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, fill)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, fill)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
	if radius > 0 {
		d.drawCircle(a, radius, fill)
		d.drawCircle(b, radius, fill)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2 / d.zoom
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Limegreen, 1)
}

// ShapeColor uses the owner's sprite color; hidden sprites and disabled
// shapes draw fully transparent.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	e, ok := d.owners[shape]
	if !ok {
		return toFColor(colornames.Gray, 1)
	}
	if sprite, ok := ecs.Get(d.world, e, component.SpriteComponent.Kind()); ok {
		if sprite.Hidden {
			return cp.FColor{}
		}
		if sprite.Color != nil {
			return toFColor(sprite.Color, 1)
		}
	}
	if hz, ok := ecs.Get(d.world, e, component.HazardComponent.Kind()); ok && !hz.Active {
		return toFColor(colornames.Darkred, 0.4)
	}
	if shape.Sensor() {
		return toFColor(colornames.Gold, 0.8)
	}
	return toFColor(colornames.Forestgreen, 1)
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange, 0.9)
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red, 0.9)
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	if c.A <= 0 {
		return
	}
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(c))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

// toScreen maps y-up world units to y-down pixels around the screen center.
func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	x := (v.X-d.camX)*d.zoom + common.BaseWidth/2
	y := common.BaseHeight/2 - (v.Y-d.camY)*d.zoom
	return x, y
}

func toFColor(c color.Color, alpha float32) cp.FColor {
	r, g, b, a := c.RGBA()
	return cp.FColor{
		R: float32(r) / 0xffff,
		G: float32(g) / 0xffff,
		B: float32(b) / 0xffff,
		A: float32(a) / 0xffff * alpha,
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func debugCameraCenter(w *ecs.World) (float64, float64) {
	root, ok := ecs.First(w, component.LevelRootTagComponent.Kind())
	if !ok {
		return 0, 0
	}
	if t, ok := ecs.Get(w, root, component.TransformComponent.Kind()); ok {
		return t.X, t.Y
	}
	return 0, 0
}
