// Package scenemgr keeps an upstream authority's entity set (models, links,
// visuals, lights, sensors, identified by integer ids) mirrored into a
// rendering scene graph. It owns the id→node bookkeeping and the geometry
// and material resolution; the scene graph itself belongs to the rendering
// layer.
package scenemgr

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/simviz/scenebridge/internal/rendering"
)

// DefaultMaterialName keys the shared grey material created for visuals that
// declare no material of their own.
const DefaultMaterialName = "scenebridge/grey"

// MeshLoader resolves a mesh uri to an in-memory asset handle.
type MeshLoader interface {
	Load(uri string) (*rendering.Mesh, error)
}

// FileLocator resolves a texture reference to an absolute path of an
// existing file.
type FileLocator interface {
	Find(ref string) (string, error)
}

// Manager mirrors upstream entities into one rendering scene. Not
// internally synchronized; callers must serialize access, matching the
// single-threaded mutation discipline of the scene graph itself.
type Manager struct {
	// worldID is the sentinel parent id meaning "no parent / scene root".
	// Upstream treats its default of zero as an invalid entity id.
	worldID uint64

	// scene is shared with other holders; the manager never assumes
	// exclusive ownership.
	scene *rendering.Scene

	visuals map[uint64]*rendering.Visual
	lights  map[uint64]rendering.Light
	sensors map[uint64]*rendering.Sensor

	meshes MeshLoader
	files  FileLocator
	log    *zap.Logger
}

// New builds a manager with no scene attached; call SetScene before creating
// entities.
func New(meshes MeshLoader, files FileLocator, log *zap.Logger) *Manager {
	return &Manager{
		visuals: make(map[uint64]*rendering.Visual),
		lights:  make(map[uint64]rendering.Light),
		sensors: make(map[uint64]*rendering.Sensor),
		meshes:  meshes,
		files:   files,
		log:     log,
	}
}

// SetScene hands the manager the scene to mirror entities into.
func (m *Manager) SetScene(s *rendering.Scene) { m.scene = s }

// Scene returns the scene the manager writes to.
func (m *Manager) Scene() *rendering.Scene { return m.scene }

// SetWorldID sets the sentinel id that marks "attach under the scene root".
func (m *Manager) SetWorldID(id uint64) { m.worldID = id }

// HasEntity reports whether id is registered as a visual, light or sensor.
func (m *Manager) HasEntity(id uint64) bool {
	_, v := m.visuals[id]
	_, l := m.lights[id]
	_, s := m.sensors[id]
	return v || l || s
}

// NodeByID returns the node registered under id, or nil. The three id
// spaces are disjoint by contract; if that is violated, visuals win over
// lights over sensors.
func (m *Manager) NodeByID(id uint64) rendering.Node {
	if v, ok := m.visuals[id]; ok {
		return v
	}
	if l, ok := m.lights[id]; ok {
		return l
	}
	if s, ok := m.sensors[id]; ok {
		return s
	}
	return nil
}

// RemoveEntity forgets id and tears down its node. Visuals and lights are
// destroyed through the scene; sensors are only dropped from bookkeeping —
// the sensor subsystem owns their lifetime.
func (m *Manager) RemoveEntity(id uint64) {
	if v, ok := m.visuals[id]; ok {
		m.scene.DestroyVisual(v)
		delete(m.visuals, id)
		return
	}
	if l, ok := m.lights[id]; ok {
		m.scene.DestroyLight(l)
		delete(m.lights, id)
		return
	}
	delete(m.sensors, id)
}

// resolveParent maps a declared parent id to a visual node. worldID means
// "no parent"; any other id must already be registered as a visual.
func (m *Manager) resolveParent(parentID uint64, kind string, id uint64) (*rendering.Visual, bool) {
	if parentID == m.worldID {
		return nil, true
	}
	parent, ok := m.visuals[parentID]
	if !ok {
		m.log.Error("parent entity not found",
			zap.Uint64("parent_id", parentID),
			zap.String("kind", kind),
			zap.Uint64("id", id))
		return nil, false
	}
	return parent, true
}

// displayName builds the hierarchical node name: the entity's own name (or
// its decimal id when unnamed), prefixed with the parent's name.
func displayName(name string, id uint64, parent *rendering.Visual) string {
	if name == "" {
		name = strconv.FormatUint(id, 10)
	}
	if parent != nil {
		name = parent.Name() + "::" + name
	}
	return name
}
