package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a rigid transform (translation + rotation) relative to some parent
// frame. The zero value is not a valid pose; use Identity.
type Pose struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

// Identity returns the pose with zero translation and no rotation.
func Identity() Pose {
	return Pose{Rot: mgl64.QuatIdent()}
}

// New builds a pose from a position and an orientation quaternion.
func New(pos mgl64.Vec3, rot mgl64.Quat) Pose {
	return Pose{Pos: pos, Rot: rot.Normalize()}
}

// FromEuler builds a pose from a position and roll/pitch/yaw angles in
// radians, applied extrinsically as Rz(yaw)·Ry(pitch)·Rx(roll).
func FromEuler(pos mgl64.Vec3, roll, pitch, yaw float64) Pose {
	return Pose{Pos: pos, Rot: mgl64.AnglesToQuat(yaw, pitch, roll, mgl64.ZYX)}
}

// Mul composes two poses: the result maps a point from q's frame through p's
// frame, i.e. first q, then p.
func (p Pose) Mul(q Pose) Pose {
	return Pose{
		Pos: p.Pos.Add(p.Rot.Rotate(q.Pos)),
		Rot: p.Rot.Mul(q.Rot).Normalize(),
	}
}

const eps = 1e-9

// IsIdentity reports whether the pose is (numerically) the identity
// transform.
func (p Pose) IsIdentity() bool {
	if !p.Pos.ApproxEqualThreshold(mgl64.Vec3{}, eps) {
		return false
	}
	// A quaternion and its negation encode the same rotation.
	id := mgl64.QuatIdent()
	r := p.Rot.Normalize()
	return quatApproxEqual(r, id) || quatApproxEqual(r.Scale(-1), id)
}

func quatApproxEqual(a, b mgl64.Quat) bool {
	return mgl64.FloatEqualThreshold(a.W, b.W, eps) &&
		a.V.ApproxEqualThreshold(b.V, eps)
}

// RotationTo returns the shortest-arc rotation carrying the `from` direction
// onto the `to` direction. Inputs need not be unit length.
func RotationTo(from, to mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatBetweenVectors(from, to).Normalize()
}
