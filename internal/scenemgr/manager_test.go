package scenemgr

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/simviz/scenebridge/internal/desc"
	"github.com/simviz/scenebridge/internal/rendering"
)

// fakeMeshes serves canned mesh handles without touching the filesystem.
type fakeMeshes struct {
	meshes map[string]*rendering.Mesh
}

func (f *fakeMeshes) Load(uri string) (*rendering.Mesh, error) {
	if m, ok := f.meshes[uri]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("mesh not found: %s", uri)
}

// fakeFiles maps texture references to pretend absolute paths.
type fakeFiles map[string]string

func (f fakeFiles) Find(ref string) (string, error) {
	if full, ok := f[ref]; ok {
		return full, nil
	}
	return "", fmt.Errorf("not found: %s", ref)
}

func newTestManager(t *testing.T) (*Manager, *rendering.Scene) {
	t.Helper()
	mgr := New(&fakeMeshes{meshes: map[string]*rendering.Mesh{}}, fakeFiles{}, zaptest.NewLogger(t))
	scene := rendering.NewScene("test")
	mgr.SetScene(scene)
	mgr.SetWorldID(0)
	return mgr, scene
}

func boxVisual(name string) desc.Visual {
	return desc.Visual{
		Name:     name,
		Geometry: &desc.Geometry{Box: &desc.BoxShape{Size: mgl64.Vec3{1, 1, 1}}},
	}
}

func TestCreateModelUnderRoot(t *testing.T) {
	mgr, scene := newTestManager(t)

	vis := mgr.CreateModel(1, desc.Model{Name: "robot"}, 0)
	require.NotNil(t, vis)
	assert.Equal(t, "robot", vis.Name())
	assert.Same(t, scene.RootVisual(), vis.Parent().(*rendering.Visual))
	assert.True(t, mgr.HasEntity(1))
}

func TestCreateModelDuplicateID(t *testing.T) {
	mgr, scene := newTestManager(t)

	require.NotNil(t, mgr.CreateModel(1, desc.Model{Name: "a"}, 0))
	rootChildren := len(scene.RootVisual().Children())

	assert.Nil(t, mgr.CreateModel(1, desc.Model{Name: "b"}, 0))
	assert.Len(t, scene.RootVisual().Children(), rootChildren)
	assert.Equal(t, "a", mgr.NodeByID(1).Name())
}

func TestCreateMissingParent(t *testing.T) {
	mgr, scene := newTestManager(t)

	assert.Nil(t, mgr.CreateModel(1, desc.Model{}, 99))
	assert.Nil(t, mgr.CreateLink(2, desc.Link{}, 99))
	assert.Nil(t, mgr.CreateVisual(3, boxVisual("v"), 99))
	assert.Nil(t, mgr.CreateLight(4, desc.Light{Type: desc.LightPoint}, 99))

	for id := uint64(1); id <= 4; id++ {
		assert.False(t, mgr.HasEntity(id), "id %d must not be registered", id)
	}
	assert.Empty(t, scene.RootVisual().Children())
}

// A light id may only be used as a parent if it is a visual; lights are not
// valid parents.
func TestLightIsNotAValidParent(t *testing.T) {
	mgr, _ := newTestManager(t)

	require.NotNil(t, mgr.CreateLight(5, desc.Light{Type: desc.LightPoint}, 0))
	assert.Nil(t, mgr.CreateVisual(6, boxVisual("v"), 5))
	assert.False(t, mgr.HasEntity(6))
}

func TestHierarchicalNaming(t *testing.T) {
	mgr, scene := newTestManager(t)

	model := mgr.CreateModel(1, desc.Model{}, 0)
	require.NotNil(t, model)
	assert.Equal(t, "1", model.Name())
	assert.Same(t, scene.RootVisual(), model.Parent().(*rendering.Visual))

	link := mgr.CreateLink(2, desc.Link{Name: "base_link"}, 1)
	require.NotNil(t, link)
	assert.Equal(t, "1::base_link", link.Name())
	assert.Same(t, model, link.Parent().(*rendering.Visual))

	vis := mgr.CreateVisual(3, boxVisual("vis"), 2)
	require.NotNil(t, vis)
	assert.Equal(t, "1::base_link::vis", vis.Name())
	assert.Same(t, link, vis.Parent().(*rendering.Visual))

	require.NotNil(t, vis.Geometry())
	assert.Equal(t, rendering.GeometryBox, vis.Geometry().Kind())
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, vis.LocalScale())
	assert.Same(t, scene.Material(DefaultMaterialName), vis.Geometry().Material())
}

// Links and visuals parented to the world id stay detached; only models fall
// back to the scene root.
func TestLinkUnderWorldStaysDetached(t *testing.T) {
	mgr, scene := newTestManager(t)

	link := mgr.CreateLink(1, desc.Link{Name: "floating"}, 0)
	require.NotNil(t, link)
	assert.Nil(t, link.Parent())
	assert.Empty(t, scene.RootVisual().Children())

	vis := mgr.CreateVisual(2, boxVisual("v"), 0)
	require.NotNil(t, vis)
	assert.Nil(t, vis.Parent())
}

func TestCreateVisualWithoutGeometryFails(t *testing.T) {
	mgr, _ := newTestManager(t)

	assert.Nil(t, mgr.CreateVisual(1, desc.Visual{Name: "empty"}, 0))
	assert.False(t, mgr.HasEntity(1))
}

// An unresolvable shape still yields a registered, attached visual node with
// no geometry; only the resolution error is reported.
func TestCreateVisualUnsupportedShapeStillRegisters(t *testing.T) {
	mgr, _ := newTestManager(t)

	require.NotNil(t, mgr.CreateModel(1, desc.Model{Name: "m"}, 0))
	vis := mgr.CreateVisual(2, desc.Visual{Name: "v", Geometry: &desc.Geometry{}}, 1)
	require.NotNil(t, vis)
	assert.Nil(t, vis.Geometry())
	assert.True(t, mgr.HasEntity(2))
	assert.Equal(t, "m::v", vis.Name())
	assert.Same(t, mgr.NodeByID(1).(*rendering.Visual), vis.Parent().(*rendering.Visual))
}

func TestGeometryScales(t *testing.T) {
	mgr, _ := newTestManager(t)

	cases := []struct {
		name  string
		geom  desc.Geometry
		kind  rendering.GeometryKind
		scale mgl64.Vec3
	}{
		{"box", desc.Geometry{Box: &desc.BoxShape{Size: mgl64.Vec3{2, 3, 4}}}, rendering.GeometryBox, mgl64.Vec3{2, 3, 4}},
		{"cylinder", desc.Geometry{Cylinder: &desc.CylinderShape{Radius: 0.5, Length: 2}}, rendering.GeometryCylinder, mgl64.Vec3{1, 1, 2}},
		{"sphere", desc.Geometry{Sphere: &desc.SphereShape{Radius: 1.5}}, rendering.GeometrySphere, mgl64.Vec3{3, 3, 3}},
		{"plane", desc.Geometry{Plane: &desc.PlaneShape{Size: mgl64.Vec2{5, 6}}}, rendering.GeometryPlane, mgl64.Vec3{5, 6, 1}},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.geom
			vis := mgr.CreateVisual(uint64(10+i), desc.Visual{Name: tc.name, Geometry: &g}, 0)
			require.NotNil(t, vis)
			require.NotNil(t, vis.Geometry())
			assert.Equal(t, tc.kind, vis.Geometry().Kind())
			assert.Equal(t, tc.scale, vis.LocalScale())
		})
	}
}

func TestPlaneNormalCorrection(t *testing.T) {
	mgr, _ := newTestManager(t)

	// +Z normal needs no correction: no intermediate node.
	up := mgr.CreateVisual(1, desc.Visual{
		Name:     "flat",
		Geometry: &desc.Geometry{Plane: &desc.PlaneShape{Size: mgl64.Vec2{1, 1}, Normal: mgl64.Vec3{0, 0, 1}}},
	}, 0)
	require.NotNil(t, up)
	assert.Equal(t, "flat", up.Name())

	// +X normal: the registered node is the "_geom" intermediate carrying a
	// rotation that maps +Z onto +X.
	tilted := mgr.CreateVisual(2, desc.Visual{
		Name:     "wall",
		Geometry: &desc.Geometry{Plane: &desc.PlaneShape{Size: mgl64.Vec2{1, 1}, Normal: mgl64.Vec3{1, 0, 0}}},
	}, 0)
	require.NotNil(t, tilted)
	assert.Equal(t, "wall_geom", tilted.Name())
	require.NotNil(t, tilted.Geometry())

	rotated := tilted.LocalPose().Rot.Rotate(mgl64.Vec3{0, 0, 1})
	assert.True(t, rotated.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9),
		"+Z should map to +X, got %v", rotated)

	// An omitted (zero) normal behaves like +Z.
	zero := mgr.CreateVisual(3, desc.Visual{
		Name:     "default",
		Geometry: &desc.Geometry{Plane: &desc.PlaneShape{Size: mgl64.Vec2{1, 1}}},
	}, 0)
	require.NotNil(t, zero)
	assert.Equal(t, "default", zero.Name())
}

func TestDefaultMaterialIsCached(t *testing.T) {
	mgr, scene := newTestManager(t)

	a := mgr.CreateVisual(1, boxVisual("a"), 0)
	b := mgr.CreateVisual(2, boxVisual("b"), 0)
	require.NotNil(t, a)
	require.NotNil(t, b)

	require.NotNil(t, a.Geometry().Material())
	assert.Same(t, a.Geometry().Material(), b.Geometry().Material())
	assert.Same(t, scene.Material(DefaultMaterialName), a.Geometry().Material())

	mat := a.Geometry().Material()
	assert.Equal(t, rendering.RGB(0.3, 0.3, 0.3), mat.Ambient())
	assert.Equal(t, rendering.RGB(0.7, 0.7, 0.7), mat.Diffuse())
	assert.Equal(t, rendering.RGB(1.0, 1.0, 1.0), mat.Specular())
	assert.Equal(t, 0.2, mat.Roughness())
	assert.Equal(t, 1.0, mat.Metalness())
}

func TestExplicitMaterial(t *testing.T) {
	mgr, scene := newTestManager(t)
	mgr.files = fakeFiles{
		"textures/rough.png":  "/assets/textures/rough.png",
		"textures/albedo.png": "/assets/textures/albedo.png",
	}

	v := boxVisual("painted")
	v.Material = &desc.Material{
		Ambient: desc.Color{0.1, 0.2, 0.3, 1},
		Diffuse: desc.Color{0.4, 0.5, 0.6, 1},
		Pbr: &desc.Pbr{Metal: &desc.MetalWorkflow{
			Roughness:    0.7,
			Metalness:    0.9,
			RoughnessMap: "textures/rough.png",
			AlbedoMap:    "textures/albedo.png",
			NormalMap:    "textures/missing.png",
		}},
	}
	vis := mgr.CreateVisual(1, v, 0)
	require.NotNil(t, vis)

	mat := vis.Geometry().Material()
	require.NotNil(t, mat)
	assert.NotSame(t, scene.Material(DefaultMaterialName), mat)
	assert.Equal(t, rendering.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}, mat.Ambient())
	assert.Equal(t, rendering.Color{R: 0.4, G: 0.5, B: 0.6, A: 1}, mat.Diffuse())
	assert.Equal(t, 0.7, mat.Roughness())
	assert.Equal(t, 0.9, mat.Metalness())
	assert.Equal(t, "/assets/textures/rough.png", mat.RoughnessMap())
	assert.Equal(t, "/assets/textures/albedo.png", mat.Texture())
	// Unresolvable references are reported and left unset.
	assert.Empty(t, mat.NormalMap())
}

// A non-metal workflow is rejected and no workflow-derived maps are
// resolved, but the base channels still apply.
func TestUnsupportedWorkflowSkipsMaps(t *testing.T) {
	mgr, _ := newTestManager(t)
	mgr.files = fakeFiles{"textures/albedo.png": "/assets/textures/albedo.png"}

	v := boxVisual("glossy")
	v.Material = &desc.Material{
		Diffuse: desc.Color{1, 0, 0, 1},
		Pbr: &desc.Pbr{Specular: &desc.SpecularWorkflow{
			Glossiness: 0.8,
			AlbedoMap:  "textures/albedo.png",
		}},
	}
	vis := mgr.CreateVisual(1, v, 0)
	require.NotNil(t, vis)

	mat := vis.Geometry().Material()
	require.NotNil(t, mat)
	assert.Equal(t, rendering.Color{R: 1, A: 1}, mat.Diffuse())
	assert.Empty(t, mat.Texture())
	assert.Zero(t, mat.Roughness())
}

func TestMeshGeometry(t *testing.T) {
	mgr, _ := newTestManager(t)
	meshMat := &rendering.Material{}
	mgr.meshes = &fakeMeshes{meshes: map[string]*rendering.Mesh{
		"models/cart.dae": {Name: "/assets/models/cart.dae", Material: meshMat},
	}}

	vis := mgr.CreateVisual(1, desc.Visual{
		Name:     "cart",
		Geometry: &desc.Geometry{Mesh: &desc.MeshShape{URI: "models/cart.dae", Scale: mgl64.Vec3{2, 2, 2}}},
	}, 0)
	require.NotNil(t, vis)
	require.NotNil(t, vis.Geometry())
	assert.Equal(t, rendering.GeometryMesh, vis.Geometry().Kind())
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, vis.LocalScale())
	// The mesh's own material is kept, not replaced with the default.
	assert.Same(t, meshMat, vis.Geometry().Material())
}

func TestMeshGeometryFailures(t *testing.T) {
	mgr, _ := newTestManager(t)

	// Empty uri: no geometry, but the visual is still created and tracked.
	empty := mgr.CreateVisual(1, desc.Visual{
		Name:     "nouri",
		Geometry: &desc.Geometry{Mesh: &desc.MeshShape{}},
	}, 0)
	require.NotNil(t, empty)
	assert.Nil(t, empty.Geometry())
	assert.True(t, mgr.HasEntity(1))

	// Unknown asset: same partial-success behavior.
	missing := mgr.CreateVisual(2, desc.Visual{
		Name:     "lost",
		Geometry: &desc.Geometry{Mesh: &desc.MeshShape{URI: "models/nope.dae"}},
	}, 0)
	require.NotNil(t, missing)
	assert.Nil(t, missing.Geometry())
}

func TestCreateLightSubtypes(t *testing.T) {
	mgr, scene := newTestManager(t)

	point := mgr.CreateLight(1, desc.Light{
		Name:                 "bulb",
		Type:                 desc.LightPoint,
		Diffuse:              desc.Color{1, 1, 1, 1},
		AttenuationConstant:  0.9,
		AttenuationLinear:    0.01,
		AttenuationQuadratic: 0.001,
		AttenuationRange:     20,
		CastShadows:          true,
	}, 0)
	require.NotNil(t, point)
	require.IsType(t, &rendering.PointLight{}, point)
	assert.Equal(t, rendering.Color{R: 1, G: 1, B: 1, A: 1}, point.DiffuseColor())
	assert.Equal(t, 0.9, point.AttenuationConstant())
	assert.Equal(t, 0.01, point.AttenuationLinear())
	assert.Equal(t, 0.001, point.AttenuationQuadratic())
	assert.Equal(t, 20.0, point.AttenuationRange())
	assert.True(t, point.CastShadows())

	spot := mgr.CreateLight(2, desc.Light{
		Name:           "lamp",
		Type:           desc.LightSpot,
		SpotInnerAngle: 0.2,
		SpotOuterAngle: 0.5,
		SpotFalloff:    1.5,
	}, 0)
	require.NotNil(t, spot)
	sl := spot.(*rendering.SpotLight)
	assert.Equal(t, 0.2, sl.InnerAngle())
	assert.Equal(t, 0.5, sl.OuterAngle())
	assert.Equal(t, 1.5, sl.Falloff())

	directional := mgr.CreateLight(3, desc.Light{
		Name:      "sun",
		Type:      desc.LightDirectional,
		Direction: mgl64.Vec3{0, 0, -1},
	}, 0)
	require.NotNil(t, directional)
	dl := directional.(*rendering.DirectionalLight)
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, dl.Direction())

	// Unknown subtype: nothing created or registered.
	bad := mgr.CreateLight(4, desc.Light{Name: "weird", Type: "laser"}, 0)
	assert.Nil(t, bad)
	assert.False(t, mgr.HasEntity(4))
	assert.Empty(t, scene.RootVisual().Children())
}

func TestCreateLightUnderParent(t *testing.T) {
	mgr, _ := newTestManager(t)

	model := mgr.CreateModel(1, desc.Model{Name: "rig"}, 0)
	require.NotNil(t, model)

	light := mgr.CreateLight(2, desc.Light{Name: "lamp", Type: desc.LightPoint}, 1)
	require.NotNil(t, light)
	assert.Equal(t, "rig::lamp", light.Name())
	assert.Same(t, model, light.Parent().(*rendering.Visual))
}

func TestRemoveEntity(t *testing.T) {
	mgr, scene := newTestManager(t)

	vis := mgr.CreateModel(1, desc.Model{Name: "m"}, 0)
	light := mgr.CreateLight(2, desc.Light{Name: "l", Type: desc.LightPoint}, 0)
	require.NotNil(t, vis)
	require.NotNil(t, light)

	mgr.RemoveEntity(1)
	assert.False(t, mgr.HasEntity(1))
	assert.Nil(t, mgr.NodeByID(1))
	assert.True(t, vis.Destroyed())
	assert.Empty(t, scene.RootVisual().Children())

	mgr.RemoveEntity(2)
	assert.False(t, mgr.HasEntity(2))
	assert.True(t, light.Destroyed())

	// Removing an unknown id is a no-op.
	mgr.RemoveEntity(42)
}

func TestRemoveSensorOnlyForgets(t *testing.T) {
	mgr, scene := newTestManager(t)

	model := mgr.CreateModel(1, desc.Model{Name: "m"}, 0)
	require.NotNil(t, model)
	scene.RegisterSensor("cam", 500)
	require.True(t, mgr.AddSensor(2, 500, 1))

	mgr.RemoveEntity(2)
	assert.False(t, mgr.HasEntity(2))
	// The sensor subsystem owns the node: it survives removal untouched.
	sensor := scene.SensorByID(500)
	require.NotNil(t, sensor)
	assert.Same(t, model, sensor.Parent().(*rendering.Visual))
}

func TestAddSensor(t *testing.T) {
	mgr, scene := newTestManager(t)

	a := mgr.CreateModel(1, desc.Model{Name: "a"}, 0)
	b := mgr.CreateModel(2, desc.Model{Name: "b"}, 0)
	require.NotNil(t, a)
	require.NotNil(t, b)
	sensor := scene.RegisterSensor("imu", 900)

	require.True(t, mgr.AddSensor(10, 900, 1))
	assert.Same(t, a, sensor.Parent().(*rendering.Visual))
	assert.True(t, mgr.HasEntity(10))

	// Same external id again: rejected, first registration untouched.
	assert.False(t, mgr.AddSensor(10, 900, 2))
	assert.Same(t, a, sensor.Parent().(*rendering.Visual))

	// Re-parenting under a new id clears the old parent link first.
	require.True(t, mgr.AddSensor(11, 900, 2))
	assert.Same(t, b, sensor.Parent().(*rendering.Visual))
	assert.NotContains(t, a.Children(), rendering.Node(sensor))
	assert.Contains(t, b.Children(), rendering.Node(sensor))

	// Unknown rendering-side id.
	assert.False(t, mgr.AddSensor(12, 901, 1))
	assert.False(t, mgr.HasEntity(12))

	// Unknown parent.
	assert.False(t, mgr.AddSensor(13, 900, 99))
	assert.False(t, mgr.HasEntity(13))
}

// The three id spaces are disjoint by contract; when that is violated,
// lookup and removal go visual first, then light, then sensor.
func TestOverlappingIDSpaces(t *testing.T) {
	mgr, _ := newTestManager(t)

	vis := mgr.CreateModel(7, desc.Model{Name: "m"}, 0)
	light := mgr.CreateLight(7, desc.Light{Name: "l", Type: desc.LightPoint}, 0)
	require.NotNil(t, vis)
	require.NotNil(t, light)

	assert.Same(t, rendering.Node(vis), mgr.NodeByID(7))

	mgr.RemoveEntity(7)
	assert.True(t, vis.Destroyed())
	assert.False(t, light.Destroyed())
	assert.Same(t, rendering.Node(light), mgr.NodeByID(7))
}

func TestWorldIDSentinel(t *testing.T) {
	mgr, scene := newTestManager(t)
	mgr.SetWorldID(1000)

	// The old sentinel (0) is now a regular — and unknown — parent id.
	assert.Nil(t, mgr.CreateModel(1, desc.Model{Name: "m"}, 0))

	vis := mgr.CreateModel(1, desc.Model{Name: "m"}, 1000)
	require.NotNil(t, vis)
	assert.Same(t, scene.RootVisual(), vis.Parent().(*rendering.Visual))
}
