package scenemgr

import (
	"go.uber.org/zap"

	"github.com/simviz/scenebridge/internal/desc"
	"github.com/simviz/scenebridge/internal/rendering"
)

func toColor(c desc.Color) rendering.Color {
	return rendering.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// loadMaterial builds an anonymous material from a description: base color
// channels always, PBR inputs when a metal workflow is declared. Texture
// references that fail to resolve are reported and left unset; the material
// is still returned.
func (m *Manager) loadMaterial(mat *desc.Material) *rendering.Material {
	material := m.scene.CreateMaterial("")
	material.SetAmbient(toColor(mat.Ambient))
	material.SetDiffuse(toColor(mat.Diffuse))
	material.SetSpecular(toColor(mat.Specular))
	material.SetEmissive(toColor(mat.Emissive))

	if mat.Pbr == nil {
		return material
	}
	metal := mat.Pbr.Metal
	if metal == nil {
		// Map resolution needs a workflow to read from, so a rejected
		// workflow skips all of it.
		m.log.Error("only the metal PBR workflow is supported")
		return material
	}

	material.SetRoughness(metal.Roughness)
	material.SetMetalness(metal.Metalness)

	m.resolveMap(metal.RoughnessMap, material.SetRoughnessMap)
	m.resolveMap(metal.MetalnessMap, material.SetMetalnessMap)
	m.resolveMap(metal.AlbedoMap, material.SetTexture)
	m.resolveMap(metal.NormalMap, material.SetNormalMap)
	m.resolveMap(metal.EnvironmentMap, material.SetEnvironmentMap)

	return material
}

// resolveMap looks a texture reference up through the file locator and
// applies the absolute path via set. Empty references are skipped; failed
// lookups are reported and skipped.
func (m *Manager) resolveMap(ref string, set func(string)) {
	if ref == "" {
		return
	}
	full, err := m.files.Find(ref)
	if err != nil {
		m.log.Error("unable to find texture file", zap.String("ref", ref), zap.Error(err))
		return
	}
	set(full)
}

// defaultMaterial returns the shared grey material, creating and registering
// it in the scene's material table on first use so every later visual
// reuses the same instance.
func (m *Manager) defaultMaterial() *rendering.Material {
	if material := m.scene.Material(DefaultMaterialName); material != nil {
		return material
	}
	material := m.scene.CreateMaterial(DefaultMaterialName)
	material.SetAmbient(rendering.RGB(0.3, 0.3, 0.3))
	material.SetDiffuse(rendering.RGB(0.7, 0.7, 0.7))
	material.SetSpecular(rendering.RGB(1.0, 1.0, 1.0))
	material.SetRoughness(0.2)
	material.SetMetalness(1.0)
	return material
}
