package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/floater/controller"
	"golang.org/x/image/colornames"
)

const debugCircleSegments = 24

// camera maps world units (Y up) to screen pixels (Y down).
type camera struct {
	center cp.Vector
	scale  float64
	width  float64
	height float64
}

func (c camera) toScreen(v cp.Vector) (float32, float32) {
	x := (v.X-c.center.X)*c.scale + c.width/2
	y := c.height/2 - (v.Y-c.center.Y)*c.scale
	return float32(x), float32(y)
}

type spaceDrawer struct {
	screen *ebiten.Image
	cam    camera
}

func drawSpace(space *cp.Space, screen *ebiten.Image, cam camera) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen, cam: cam})
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

// DrawFatSegment outlines a capsule: two caps joined by the tangent lines.
func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		d.drawLine(a, b, outline)
		return
	}
	n := b.Sub(a).Perp().Normalize().Mult(radius)
	if n.Length() == 0 {
		n = cp.Vector{X: radius}
	}
	d.drawLine(a.Add(n), b.Add(n), outline)
	d.drawLine(a.Sub(n), b.Sub(n), outline)
	d.drawCircle(a, radius, outline)
	d.drawCircle(b, radius, outline)
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.cam.toScreen(pos)
	vector.DrawFilledCircle(d.screen, x, y, float32(math.Max(size, 2)/2), toNRGBA(fill), true)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Limegreen)
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil || shape.Body() == nil {
		return toFColor(colornames.White)
	}
	switch shape.Body().GetType() {
	case cp.BODY_STATIC:
		return toFColor(colornames.Steelblue)
	case cp.BODY_KINEMATIC:
		return toFColor(colornames.Goldenrod)
	default:
		return toFColor(colornames.Orchid)
	}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Darkorange)
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.cam.toScreen(a)
	x2, y2 := d.cam.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1.5, toNRGBA(c), true)
}

func (d *spaceDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *spaceDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := 2 * math.Pi * float64(i) / debugCircleSegments
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

// drawGroundProbe shows the last ground sample: a line from the body to
// the contact point and the surface normal.
func drawGroundProbe(screen *ebiten.Image, cam camera, pos cp.Vector, res controller.TickResult) {
	if !res.HasSample {
		return
	}
	contact := cp.Vector{X: res.Sample.ContactPoint.X(), Y: res.Sample.ContactPoint.Y()}
	normal := cp.Vector{X: res.Sample.Normal.X(), Y: res.Sample.Normal.Y()}

	px, py := cam.toScreen(pos)
	cx, cy := cam.toScreen(contact)
	nx, ny := cam.toScreen(contact.Add(normal))

	probe := colornames.Red
	if res.Current == controller.Grounded {
		probe = colornames.Lime
	}
	vector.StrokeLine(screen, px, py, cx, cy, 1, probe, true)
	vector.StrokeLine(screen, cx, cy, nx, ny, 2, colornames.Yellow, true)
	vector.DrawFilledCircle(screen, cx, cy, 3, probe, true)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
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
