package assets

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/simviz/scenebridge/internal/rendering"
)

// MeshManager loads mesh assets by uri and caches them, so repeated visuals
// referencing the same file share one handle. Decoding the file contents is
// the render backend's job; the manager validates existence and identity.
type MeshManager struct {
	locator *Locator
	cache   map[string]*rendering.Mesh
	log     *zap.Logger
}

// NewMeshManager builds a mesh manager resolving uris through the given
// locator.
func NewMeshManager(locator *Locator, log *zap.Logger) *MeshManager {
	return &MeshManager{
		locator: locator,
		cache:   make(map[string]*rendering.Mesh),
		log:     log,
	}
}

// Load resolves uri to a mesh asset handle, reusing a cached handle when the
// same file was loaded before.
func (m *MeshManager) Load(uri string) (*rendering.Mesh, error) {
	path, err := m.locator.Find(uri)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", uri, err)
	}
	if mesh, ok := m.cache[path]; ok {
		return mesh, nil
	}
	mesh := &rendering.Mesh{Name: path}
	m.cache[path] = mesh
	m.log.Debug("mesh loaded", zap.String("path", path))
	return mesh, nil
}
