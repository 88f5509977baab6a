package scenemgr

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/simviz/scenebridge/internal/desc"
	"github.com/simviz/scenebridge/internal/rendering"
	"github.com/simviz/scenebridge/internal/spatial"
)

// loadGeometry maps a shape description to a unit primitive (or mesh) plus
// the scale that sizes it and a corrective local pose between the visual and
// the geometry. Unsupported or unresolvable shapes return a nil geometry;
// the corrective pose is non-identity only for tilted plane normals.
func (m *Manager) loadGeometry(g *desc.Geometry) (*rendering.Geometry, mgl64.Vec3, spatial.Pose) {
	scale := mgl64.Vec3{1, 1, 1}
	localPose := spatial.Identity()
	var geom *rendering.Geometry

	switch g.Kind() {
	case desc.GeometryBox:
		geom = m.scene.CreateBox()
		scale = g.Box.Size

	case desc.GeometryCylinder:
		geom = m.scene.CreateCylinder()
		scale[0] = g.Cylinder.Radius * 2
		scale[1] = scale[0]
		scale[2] = g.Cylinder.Length

	case desc.GeometryPlane:
		geom = m.scene.CreatePlane()
		scale[0] = g.Plane.Size[0]
		scale[1] = g.Plane.Size[1]

		// Rotate the +Z-facing plane primitive onto the declared normal,
		// both expressed in the visual's frame. A zero normal means the
		// default +Z facing.
		normal := g.Plane.Normal
		if normal.Len() > 0 {
			localPose.Rot = spatial.RotationTo(mgl64.Vec3{0, 0, 1}, normal.Normalize())
		}

	case desc.GeometrySphere:
		geom = m.scene.CreateSphere()
		scale[0] = g.Sphere.Radius * 2
		scale[1] = scale[0]
		scale[2] = scale[0]

	case desc.GeometryMesh:
		if g.Mesh.URI == "" {
			m.log.Error("mesh geometry missing uri")
			return nil, scale, localPose
		}
		mesh, err := m.meshes.Load(g.Mesh.URI)
		if err != nil {
			m.log.Error("unable to load mesh", zap.String("uri", g.Mesh.URI), zap.Error(err))
			return nil, scale, localPose
		}
		geom = m.scene.CreateMesh(rendering.MeshDescriptor{Name: mesh.Name, Mesh: mesh})
		if g.Mesh.Scale != (mgl64.Vec3{}) {
			scale = g.Mesh.Scale
		}

	default:
		m.log.Error("unsupported geometry type")
	}

	return geom, scale, localPose
}
