package rendering

// Scene owns the node hierarchy, the named material table, and the sensor
// table. One root visual exists for the scene's lifetime; everything else
// hangs under it. Not internally synchronized: all mutation must happen on
// one goroutine, as is usual for render graphs.
type Scene struct {
	name      string
	root      *Visual
	materials map[string]*Material
	sensors   map[uint64]*Sensor
}

// NewScene creates an empty scene with a root visual named after the scene.
func NewScene(name string) *Scene {
	return &Scene{
		name:      name,
		root:      newVisual(name),
		materials: make(map[string]*Material),
		sensors:   make(map[uint64]*Sensor),
	}
}

func (s *Scene) Name() string { return s.name }

// RootVisual returns the root of the hierarchy.
func (s *Scene) RootVisual() *Visual { return s.root }

// CreateVisual instantiates a detached visual node.
func (s *Scene) CreateVisual(name string) *Visual {
	return newVisual(name)
}

// CreatePointLight instantiates a detached point light node.
func (s *Scene) CreatePointLight(name string) *PointLight {
	return newPointLight(name)
}

// CreateSpotLight instantiates a detached spot light node.
func (s *Scene) CreateSpotLight(name string) *SpotLight {
	return newSpotLight(name)
}

// CreateDirectionalLight instantiates a detached directional light node.
func (s *Scene) CreateDirectionalLight(name string) *DirectionalLight {
	return newDirectionalLight(name)
}

// CreateBox returns a unit box geometry.
func (s *Scene) CreateBox() *Geometry { return &Geometry{kind: GeometryBox} }

// CreateCylinder returns a unit cylinder geometry (diameter 1, length 1,
// axis +Z).
func (s *Scene) CreateCylinder() *Geometry { return &Geometry{kind: GeometryCylinder} }

// CreatePlane returns a unit plane geometry facing +Z.
func (s *Scene) CreatePlane() *Geometry { return &Geometry{kind: GeometryPlane} }

// CreateSphere returns a unit-diameter sphere geometry.
func (s *Scene) CreateSphere() *Geometry { return &Geometry{kind: GeometrySphere} }

// CreateMesh wraps a loaded mesh asset as a geometry. The geometry starts
// out with the mesh's own material, if any.
func (s *Scene) CreateMesh(d MeshDescriptor) *Geometry {
	g := &Geometry{kind: GeometryMesh, mesh: d.Mesh}
	if d.Mesh != nil {
		g.material = d.Mesh.Material
	}
	return g
}

// CreateMaterial creates a material. A non-empty name registers it in the
// scene's material table for later lookup; an empty name makes it anonymous.
func (s *Scene) CreateMaterial(name string) *Material {
	m := &Material{name: name}
	if name != "" {
		s.materials[name] = m
	}
	return m
}

// Material returns the registered material with the given name, or nil.
func (s *Scene) Material(name string) *Material {
	return s.materials[name]
}

// RegisterSensor creates a sensor node under the given rendering-side id.
// Called by the sensor subsystem, which keeps ownership of the sensor.
func (s *Scene) RegisterSensor(name string, id uint64) *Sensor {
	sensor := newSensor(name, id)
	s.sensors[id] = sensor
	return sensor
}

// SensorByID returns the sensor registered under id, or nil.
func (s *Scene) SensorByID(id uint64) *Sensor {
	return s.sensors[id]
}

// DestroyVisual detaches a visual from the hierarchy and marks it dead.
// Children are orphaned, not destroyed.
func (s *Scene) DestroyVisual(v *Visual) {
	if v == nil || v == s.root {
		return
	}
	v.RemoveParent()
	for len(v.children) > 0 {
		v.children[0].RemoveParent()
	}
	v.geom = nil
	v.destroyed = true
}

// DestroyLight detaches a light from the hierarchy and marks it dead.
func (s *Scene) DestroyLight(l Light) {
	if l == nil {
		return
	}
	l.RemoveParent()
	l.markDestroyed()
}
