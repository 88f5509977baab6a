package rendering

// Color is an RGBA color with float channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Material holds the shading inputs for a surface: classic color channels
// plus metal-workflow PBR scalars and texture map paths. Texture paths are
// absolute; resolution happens before they are set here.
type Material struct {
	name string

	ambient  Color
	diffuse  Color
	specular Color
	emissive Color

	roughness float64
	metalness float64

	texture        string // albedo map
	normalMap      string
	roughnessMap   string
	metalnessMap   string
	environmentMap string
}

// Name returns the registry name, or "" for anonymous materials.
func (m *Material) Name() string { return m.name }

func (m *Material) SetAmbient(c Color)  { m.ambient = c }
func (m *Material) Ambient() Color      { return m.ambient }
func (m *Material) SetDiffuse(c Color)  { m.diffuse = c }
func (m *Material) Diffuse() Color      { return m.diffuse }
func (m *Material) SetSpecular(c Color) { m.specular = c }
func (m *Material) Specular() Color     { return m.specular }
func (m *Material) SetEmissive(c Color) { m.emissive = c }
func (m *Material) Emissive() Color     { return m.emissive }

func (m *Material) SetRoughness(v float64) { m.roughness = v }
func (m *Material) Roughness() float64     { return m.roughness }
func (m *Material) SetMetalness(v float64) { m.metalness = v }
func (m *Material) Metalness() float64     { return m.metalness }

func (m *Material) SetTexture(path string)        { m.texture = path }
func (m *Material) Texture() string               { return m.texture }
func (m *Material) SetNormalMap(path string)      { m.normalMap = path }
func (m *Material) NormalMap() string             { return m.normalMap }
func (m *Material) SetRoughnessMap(path string)   { m.roughnessMap = path }
func (m *Material) RoughnessMap() string          { return m.roughnessMap }
func (m *Material) SetMetalnessMap(path string)   { m.metalnessMap = path }
func (m *Material) MetalnessMap() string          { return m.metalnessMap }
func (m *Material) SetEnvironmentMap(path string) { m.environmentMap = path }
func (m *Material) EnvironmentMap() string        { return m.environmentMap }
