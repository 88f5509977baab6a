// Package rendering is the retained-mode scene graph the bridge writes into:
// named nodes with local poses arranged in a single-rooted hierarchy, plus
// the material and sensor tables. Rasterization is out of scope; this is the
// object model a render backend would consume.
package rendering

import (
	"github.com/simviz/scenebridge/internal/spatial"
)

// Node is a handle to an object in the scene hierarchy. A node has at most
// one parent; the parent link is a non-owning back-reference, ownership runs
// parent → children.
type Node interface {
	Name() string
	LocalPose() spatial.Pose
	SetLocalPose(spatial.Pose)

	// Parent returns the node this one is attached to, or nil.
	Parent() Node
	Children() []Node

	// AddChild attaches a node under this one. The child must be detached
	// (see RemoveParent); attaching an already-parented node is a caller bug.
	AddChild(Node)

	// RemoveParent detaches the node from its current parent, if any.
	RemoveParent()

	base() *baseNode
}

// baseNode carries the state shared by every node kind. The self field holds
// the outer (embedding) node so that parent/child links point at the concrete
// type rather than the embedded base.
type baseNode struct {
	name     string
	pose     spatial.Pose
	parent   Node
	children []Node
	self     Node
}

func newBaseNode(name string, self Node) baseNode {
	return baseNode{name: name, pose: spatial.Identity(), self: self}
}

func (b *baseNode) base() *baseNode { return b }

func (b *baseNode) Name() string { return b.name }

func (b *baseNode) LocalPose() spatial.Pose { return b.pose }

func (b *baseNode) SetLocalPose(p spatial.Pose) { b.pose = p }

func (b *baseNode) Parent() Node { return b.parent }

func (b *baseNode) Children() []Node { return b.children }

func (b *baseNode) AddChild(child Node) {
	child.base().parent = b.self
	b.children = append(b.children, child)
}

func (b *baseNode) RemoveParent() {
	if b.parent == nil {
		return
	}
	pb := b.parent.base()
	for i, c := range pb.children {
		if c.base() == b {
			pb.children = append(pb.children[:i], pb.children[i+1:]...)
			break
		}
	}
	b.parent = nil
}
