package scenemgr

import (
	"go.uber.org/zap"

	"github.com/simviz/scenebridge/internal/desc"
	"github.com/simviz/scenebridge/internal/rendering"
)

// CreateModel mirrors a model entity as a visual node. With parentID equal
// to the world id the node attaches under the scene root; otherwise the
// parent must be a registered visual. Returns nil on duplicate id or
// missing parent, with no registry or scene change.
func (m *Manager) CreateModel(id uint64, model desc.Model, parentID uint64) *rendering.Visual {
	if _, ok := m.visuals[id]; ok {
		m.log.Error("entity already exists in the scene", zap.Uint64("id", id))
		return nil
	}
	parent, ok := m.resolveParent(parentID, "model", id)
	if !ok {
		return nil
	}

	vis := m.scene.CreateVisual(displayName(model.Name, id, parent))
	vis.SetLocalPose(model.Pose.Transform())
	m.visuals[id] = vis

	if parent != nil {
		parent.AddChild(vis)
	} else {
		m.scene.RootVisual().AddChild(vis)
	}
	return vis
}

// CreateLink mirrors a link entity as a visual node. Unlike models, a link
// whose parent resolves to "none" stays detached; links are expected to
// always declare a model parent.
func (m *Manager) CreateLink(id uint64, link desc.Link, parentID uint64) *rendering.Visual {
	if _, ok := m.visuals[id]; ok {
		m.log.Error("entity already exists in the scene", zap.Uint64("id", id))
		return nil
	}
	parent, ok := m.resolveParent(parentID, "link", id)
	if !ok {
		return nil
	}

	vis := m.scene.CreateVisual(displayName(link.Name, id, parent))
	vis.SetLocalPose(link.Pose.Transform())
	m.visuals[id] = vis

	if parent != nil {
		parent.AddChild(vis)
	}
	return vis
}

// CreateVisual mirrors a visual entity: a node carrying resolved geometry
// and material. A missing geometry block fails the creation outright; a
// geometry that fails to resolve still yields a registered, attached node
// without geometry. When the geometry needs a corrective transform (plane
// normals), an intermediate "<name>_geom" node carries geometry and scale,
// and that node is the one registered under id.
func (m *Manager) CreateVisual(id uint64, visual desc.Visual, parentID uint64) *rendering.Visual {
	if _, ok := m.visuals[id]; ok {
		m.log.Error("entity already exists in the scene", zap.Uint64("id", id))
		return nil
	}
	parent, ok := m.resolveParent(parentID, "visual", id)
	if !ok {
		return nil
	}
	if visual.Geometry == nil {
		m.log.Error("visual missing geometry", zap.Uint64("id", id), zap.String("name", visual.Name))
		return nil
	}

	name := displayName(visual.Name, id, parent)
	vis := m.scene.CreateVisual(name)
	vis.SetLocalPose(visual.Pose.Transform())

	geom, scale, localPose := m.loadGeometry(visual.Geometry)
	if geom != nil {
		// localPose holds any transform between the visual and its
		// geometry; today that is only the plane normal alignment.
		if !localPose.IsIdentity() {
			geomVis := m.scene.CreateVisual(name + "_geom")
			geomVis.SetLocalPose(visual.Pose.Transform().Mul(localPose))
			vis = geomVis
		}

		vis.AddGeometry(geom)
		vis.SetLocalScale(scale)

		var material *rendering.Material
		switch {
		case visual.Material != nil:
			material = m.loadMaterial(visual.Material)
		case visual.Geometry.Kind() == desc.GeometryMesh:
			// Meshes may carry their own material; don't override it.
			material = geom.Material()
		default:
			material = m.defaultMaterial()
		}
		geom.SetMaterial(material)
	} else {
		m.log.Error("failed to load geometry for visual",
			zap.Uint64("id", id), zap.String("name", visual.Name))
	}

	m.visuals[id] = vis
	if parent != nil {
		parent.AddChild(vis)
	}
	return vis
}

// CreateLight mirrors a light entity as the matching light node subtype. An
// unrecognized subtype fails the creation; nothing is registered.
func (m *Manager) CreateLight(id uint64, light desc.Light, parentID uint64) rendering.Light {
	if _, ok := m.lights[id]; ok {
		m.log.Error("light already exists in the scene", zap.Uint64("id", id))
		return nil
	}
	parent, ok := m.resolveParent(parentID, "light", id)
	if !ok {
		return nil
	}

	name := displayName(light.Name, id, parent)

	var node rendering.Light
	switch light.Type {
	case desc.LightPoint:
		node = m.scene.CreatePointLight(name)
	case desc.LightSpot:
		spot := m.scene.CreateSpotLight(name)
		spot.SetInnerAngle(light.SpotInnerAngle)
		spot.SetOuterAngle(light.SpotOuterAngle)
		spot.SetFalloff(light.SpotFalloff)
		node = spot
	case desc.LightDirectional:
		dir := m.scene.CreateDirectionalLight(name)
		dir.SetDirection(light.Direction)
		node = dir
	default:
		m.log.Error("light type not supported",
			zap.Uint64("id", id), zap.String("type", string(light.Type)))
		return nil
	}

	node.SetLocalPose(light.Pose.Transform())
	node.SetDiffuseColor(toColor(light.Diffuse))
	node.SetSpecularColor(toColor(light.Specular))

	node.SetAttenuationConstant(light.AttenuationConstant)
	node.SetAttenuationLinear(light.AttenuationLinear)
	node.SetAttenuationQuadratic(light.AttenuationQuadratic)
	node.SetAttenuationRange(light.AttenuationRange)

	// An omitted intensity keeps the node's default.
	if light.Intensity > 0 {
		node.SetIntensity(light.Intensity)
	}
	node.SetCastShadows(light.CastShadows)

	m.lights[id] = node
	if parent != nil {
		parent.AddChild(node)
	}
	return node
}

// AddSensor adopts a sensor node the sensor subsystem already created in the
// scene, keyed by its rendering-side id, and re-parents it under the
// resolved parent. The sensor keeps at most one parent; any prior
// attachment is cleared first.
func (m *Manager) AddSensor(id, renderingID, parentID uint64) bool {
	if _, ok := m.sensors[id]; ok {
		m.log.Error("sensor already exists in the scene", zap.Uint64("id", id))
		return false
	}
	parent, ok := m.resolveParent(parentID, "sensor", id)
	if !ok {
		return false
	}

	sensor := m.scene.SensorByID(renderingID)
	if sensor == nil {
		m.log.Error("sensor not found in scene",
			zap.Uint64("id", id), zap.Uint64("rendering_id", renderingID))
		return false
	}

	if parent != nil {
		sensor.RemoveParent()
		parent.AddChild(sensor)
	}

	m.sensors[id] = sensor
	return true
}
