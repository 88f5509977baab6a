package rendering

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Visual is a node that can carry one renderable geometry plus a local scale
// applied to it. Visuals are also the only nodes other entities may be
// parented under.
type Visual struct {
	baseNode
	geom      *Geometry
	scale     mgl64.Vec3
	destroyed bool
}

func newVisual(name string) *Visual {
	v := &Visual{scale: mgl64.Vec3{1, 1, 1}}
	v.baseNode = newBaseNode(name, v)
	return v
}

// AddGeometry attaches a geometry to the visual, replacing any previous one.
func (v *Visual) AddGeometry(g *Geometry) { v.geom = g }

// Geometry returns the attached geometry, or nil.
func (v *Visual) Geometry() *Geometry { return v.geom }

func (v *Visual) SetLocalScale(s mgl64.Vec3) { v.scale = s }

func (v *Visual) LocalScale() mgl64.Vec3 { return v.scale }

// Destroyed reports whether the scene has torn this visual down.
func (v *Visual) Destroyed() bool { return v.destroyed }
