package rendering

// GeometryKind identifies the primitive (or mesh) a Geometry renders.
type GeometryKind int

const (
	GeometryBox GeometryKind = iota
	GeometryCylinder
	GeometryPlane
	GeometrySphere
	GeometryMesh
)

func (k GeometryKind) String() string {
	switch k {
	case GeometryBox:
		return "box"
	case GeometryCylinder:
		return "cylinder"
	case GeometryPlane:
		return "plane"
	case GeometrySphere:
		return "sphere"
	case GeometryMesh:
		return "mesh"
	}
	return "unknown"
}

// Mesh is an in-memory mesh asset handle produced by a mesh loader. Meshes
// loaded from files may carry their own material.
type Mesh struct {
	Name     string // absolute path of the source file
	Material *Material
}

// MeshDescriptor names a mesh asset for geometry creation.
type MeshDescriptor struct {
	Name string
	Mesh *Mesh
}

// Geometry is a renderable shape attached to a visual. Unit-sized for
// primitives; the owning visual's local scale sizes it.
type Geometry struct {
	kind     GeometryKind
	material *Material
	mesh     *Mesh // set for GeometryMesh only
}

func (g *Geometry) Kind() GeometryKind { return g.kind }

func (g *Geometry) SetMaterial(m *Material) { g.material = m }

// Material returns the geometry's material; for mesh geometries this starts
// out as whatever material the mesh asset carries.
func (g *Geometry) Material() *Material { return g.material }

// Mesh returns the backing mesh asset for mesh geometries, else nil.
func (g *Geometry) Mesh() *Mesh { return g.mesh }
