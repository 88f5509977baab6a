package rendering

// Sensor is a node created and owned by an external sensor subsystem. The
// scene only tracks it so it can be looked up by rendering-side id and
// re-parented; it is never destroyed through the scene.
type Sensor struct {
	baseNode
	id uint64
}

func newSensor(name string, id uint64) *Sensor {
	s := &Sensor{id: id}
	s.baseNode = newBaseNode(name, s)
	return s
}

// ID returns the rendering-side sensor id.
func (s *Sensor) ID() uint64 { return s.id }
