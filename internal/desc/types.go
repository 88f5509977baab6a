// Package desc holds the declarative scene description the upstream
// authority hands us: models, links, visuals, lights and their geometry and
// material blocks. These are pure data; the bridge turns them into live
// scene-graph nodes.
package desc

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/simviz/scenebridge/internal/spatial"
)

// Color is an RGBA color, channels in [0, 1]. YAML form: [r, g, b, a].
type Color [4]float64

// Pose is a position plus roll/pitch/yaw orientation in radians, relative to
// the parent entity's frame.
type Pose struct {
	Position mgl64.Vec3 `yaml:"position"`
	Euler    mgl64.Vec3 `yaml:"rotation"` // roll, pitch, yaw
}

// Transform converts the description pose to a rigid transform.
func (p Pose) Transform() spatial.Pose {
	return spatial.FromEuler(p.Position, p.Euler[0], p.Euler[1], p.Euler[2])
}

// Model is a top-level or nested entity grouping links.
type Model struct {
	Name string `yaml:"name"`
	Pose Pose   `yaml:"pose"`
}

// Link is a rigid body within a model; visuals and lights hang off links.
type Link struct {
	Name string `yaml:"name"`
	Pose Pose   `yaml:"pose"`
}

// Visual is a renderable entity: a geometry plus an optional material.
type Visual struct {
	Name     string    `yaml:"name"`
	Pose     Pose      `yaml:"pose"`
	Geometry *Geometry `yaml:"geometry"`
	Material *Material `yaml:"material"`
}

// GeometryKind tags which shape a Geometry block describes.
type GeometryKind int

const (
	GeometryEmpty GeometryKind = iota // no shape block present
	GeometryBox
	GeometryCylinder
	GeometryPlane
	GeometrySphere
	GeometryMesh
)

// Geometry is a tagged union of shapes; exactly one field should be set.
type Geometry struct {
	Box      *BoxShape      `yaml:"box,omitempty"`
	Cylinder *CylinderShape `yaml:"cylinder,omitempty"`
	Plane    *PlaneShape    `yaml:"plane,omitempty"`
	Sphere   *SphereShape   `yaml:"sphere,omitempty"`
	Mesh     *MeshShape     `yaml:"mesh,omitempty"`
}

// Kind reports which shape is present. With several set, the first in
// declaration order wins; with none, GeometryEmpty.
func (g *Geometry) Kind() GeometryKind {
	switch {
	case g == nil:
		return GeometryEmpty
	case g.Box != nil:
		return GeometryBox
	case g.Cylinder != nil:
		return GeometryCylinder
	case g.Plane != nil:
		return GeometryPlane
	case g.Sphere != nil:
		return GeometrySphere
	case g.Mesh != nil:
		return GeometryMesh
	}
	return GeometryEmpty
}

type BoxShape struct {
	Size mgl64.Vec3 `yaml:"size"`
}

type CylinderShape struct {
	Radius float64 `yaml:"radius"`
	Length float64 `yaml:"length"`
}

type PlaneShape struct {
	Size   mgl64.Vec2 `yaml:"size"`
	Normal mgl64.Vec3 `yaml:"normal"`
}

type SphereShape struct {
	Radius float64 `yaml:"radius"`
}

type MeshShape struct {
	URI   string     `yaml:"uri"`
	Scale mgl64.Vec3 `yaml:"scale"` // omitted means (1, 1, 1)
}

// Material describes surface shading: classic color channels plus an
// optional PBR block.
type Material struct {
	Ambient  Color `yaml:"ambient"`
	Diffuse  Color `yaml:"diffuse"`
	Specular Color `yaml:"specular"`
	Emissive Color `yaml:"emissive"`
	Pbr      *Pbr  `yaml:"pbr,omitempty"`
}

// Pbr selects a physically-based shading workflow. Only the metal workflow
// is renderable; a specular block can be described but not resolved.
type Pbr struct {
	Metal    *MetalWorkflow    `yaml:"metal,omitempty"`
	Specular *SpecularWorkflow `yaml:"specular,omitempty"`
}

// MetalWorkflow carries roughness/metalness shading inputs and optional
// texture map references (paths relative to the asset search paths).
type MetalWorkflow struct {
	Roughness      float64 `yaml:"roughness"`
	Metalness      float64 `yaml:"metalness"`
	RoughnessMap   string  `yaml:"roughness_map,omitempty"`
	MetalnessMap   string  `yaml:"metalness_map,omitempty"`
	AlbedoMap      string  `yaml:"albedo_map,omitempty"`
	NormalMap      string  `yaml:"normal_map,omitempty"`
	EnvironmentMap string  `yaml:"environment_map,omitempty"`
}

// SpecularWorkflow is the specular/glossiness workflow. Described for
// completeness; the resolver rejects it.
type SpecularWorkflow struct {
	Glossiness     float64 `yaml:"glossiness"`
	SpecularMap    string  `yaml:"specular_map,omitempty"`
	GlossinessMap  string  `yaml:"glossiness_map,omitempty"`
	AlbedoMap      string  `yaml:"albedo_map,omitempty"`
	NormalMap      string  `yaml:"normal_map,omitempty"`
	EnvironmentMap string  `yaml:"environment_map,omitempty"`
}

// LightKind names a light subtype.
type LightKind string

const (
	LightPoint       LightKind = "point"
	LightSpot        LightKind = "spot"
	LightDirectional LightKind = "directional"
)

// Light describes a light source of any subtype; subtype-specific fields are
// ignored for the kinds that do not use them.
type Light struct {
	Name string    `yaml:"name"`
	Type LightKind `yaml:"type"`
	Pose Pose      `yaml:"pose"`

	Diffuse  Color `yaml:"diffuse"`
	Specular Color `yaml:"specular"`

	AttenuationConstant  float64 `yaml:"attenuation_constant"`
	AttenuationLinear    float64 `yaml:"attenuation_linear"`
	AttenuationQuadratic float64 `yaml:"attenuation_quadratic"`
	AttenuationRange     float64 `yaml:"attenuation_range"`

	Intensity   float64 `yaml:"intensity"`
	CastShadows bool    `yaml:"cast_shadows"`

	// Spot parameters, radians.
	SpotInnerAngle float64 `yaml:"spot_inner_angle"`
	SpotOuterAngle float64 `yaml:"spot_outer_angle"`
	SpotFalloff    float64 `yaml:"spot_falloff"`

	// Directional parameter.
	Direction mgl64.Vec3 `yaml:"direction"`
}
