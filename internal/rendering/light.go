package rendering

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Light is the common surface of the three light node kinds. Subtype
// parameters (spot cone, directional direction) live on the concrete types;
// construction picks the concrete type so no downcasts are needed afterwards.
type Light interface {
	Node

	SetDiffuseColor(Color)
	DiffuseColor() Color
	SetSpecularColor(Color)
	SpecularColor() Color

	SetAttenuationConstant(float64)
	SetAttenuationLinear(float64)
	SetAttenuationQuadratic(float64)
	SetAttenuationRange(float64)
	AttenuationConstant() float64
	AttenuationLinear() float64
	AttenuationQuadratic() float64
	AttenuationRange() float64

	SetIntensity(float64)
	Intensity() float64

	SetCastShadows(bool)
	CastShadows() bool

	// Destroyed reports whether the scene has torn this light down.
	Destroyed() bool

	markDestroyed()
}

// LightBase carries the properties shared by all light kinds.
type LightBase struct {
	baseNode
	diffuse   Color
	specular  Color
	attConst  float64
	attLinear float64
	attQuad   float64
	attRange  float64
	intensity float64
	shadows   bool
	destroyed bool
}

func (l *LightBase) SetDiffuseColor(c Color)  { l.diffuse = c }
func (l *LightBase) DiffuseColor() Color      { return l.diffuse }
func (l *LightBase) SetSpecularColor(c Color) { l.specular = c }
func (l *LightBase) SpecularColor() Color     { return l.specular }

func (l *LightBase) SetAttenuationConstant(v float64)  { l.attConst = v }
func (l *LightBase) SetAttenuationLinear(v float64)    { l.attLinear = v }
func (l *LightBase) SetAttenuationQuadratic(v float64) { l.attQuad = v }
func (l *LightBase) SetAttenuationRange(v float64)     { l.attRange = v }
func (l *LightBase) AttenuationConstant() float64      { return l.attConst }
func (l *LightBase) AttenuationLinear() float64        { return l.attLinear }
func (l *LightBase) AttenuationQuadratic() float64     { return l.attQuad }
func (l *LightBase) AttenuationRange() float64         { return l.attRange }

func (l *LightBase) SetIntensity(v float64) { l.intensity = v }
func (l *LightBase) Intensity() float64     { return l.intensity }

func (l *LightBase) SetCastShadows(v bool) { l.shadows = v }
func (l *LightBase) CastShadows() bool     { return l.shadows }

func (l *LightBase) Destroyed() bool { return l.destroyed }

func (l *LightBase) markDestroyed() { l.destroyed = true }

// PointLight emits in all directions from its pose.
type PointLight struct {
	LightBase
}

func newPointLight(name string) *PointLight {
	l := &PointLight{}
	l.baseNode = newBaseNode(name, l)
	l.intensity = 1
	return l
}

// SpotLight emits a cone along its pose's forward axis.
type SpotLight struct {
	LightBase
	innerAngle float64 // radians, full brightness inside
	outerAngle float64 // radians, cutoff
	falloff    float64
}

func newSpotLight(name string) *SpotLight {
	l := &SpotLight{}
	l.baseNode = newBaseNode(name, l)
	l.intensity = 1
	return l
}

func (l *SpotLight) SetInnerAngle(v float64) { l.innerAngle = v }
func (l *SpotLight) InnerAngle() float64     { return l.innerAngle }
func (l *SpotLight) SetOuterAngle(v float64) { l.outerAngle = v }
func (l *SpotLight) OuterAngle() float64     { return l.outerAngle }
func (l *SpotLight) SetFalloff(v float64)    { l.falloff = v }
func (l *SpotLight) Falloff() float64        { return l.falloff }

// DirectionalLight emits parallel rays along a fixed direction; its position
// is irrelevant to shading.
type DirectionalLight struct {
	LightBase
	direction mgl64.Vec3
}

func newDirectionalLight(name string) *DirectionalLight {
	l := &DirectionalLight{direction: mgl64.Vec3{0, 0, -1}}
	l.baseNode = newBaseNode(name, l)
	l.intensity = 1
	return l
}

func (l *DirectionalLight) SetDirection(d mgl64.Vec3) { l.direction = d }
func (l *DirectionalLight) Direction() mgl64.Vec3     { return l.direction }
