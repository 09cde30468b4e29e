// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera defines the properties of the scene camera.
type Camera struct {

	// position of the camera.
	Pos math32.Vector3

	// target location for the camera -- where it is pointing at -- moves
	// with panning movements and is reset by a call to the LookAt method.
	Target math32.Vector3

	// up direction for the camera -- defaults to positive Y axis.
	UpDir math32.Vector3

	// field of view in degrees.
	FOV float32

	// aspect ratio (width/height).
	Aspect float32

	// near plane z coordinate.
	Near float32

	// far plane z coordinate.
	Far float32

	// CameraMatrix is the world transform of the camera (position and
	// look-at rotation), updated in [Camera.UpdateMatrix].
	CameraMatrix math32.Matrix4

	// ViewMatrix is the inverse of the CameraMatrix.
	ViewMatrix math32.Matrix4

	// ProjectionMatrix defines the camera perspective transform.
	ProjectionMatrix math32.Matrix4

	// InvProjectionMatrix is the inverse of the ProjectionMatrix.
	InvProjectionMatrix math32.Matrix4

	// VPMatrix is Projection * View, the full world-to-NDC transform.
	VPMatrix math32.Matrix4

	// Frustum of the projection: the viewable space defined by 6 planes
	// of a pyramidal shape.  Nil until the first UpdateMatrix call.
	Frustum *math32.Frustum
}

func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = 0.01
	cm.Far = 1000
	cm.Pos.Set(0, 0, 4)
	cm.Target.Set(0, 0, 0)
	cm.UpDir = math32.Vec3(0, 1, 0)
	cm.UpdateMatrix()
}

// UpdateMatrix updates the camera, view, projection, and combined matrices,
// and the view frustum, from the current pose fields.
func (cm *Camera) UpdateMatrix() {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(cm.Pos, cm.Target, cm.UpDir))
	cm.CameraMatrix.SetTransform(cm.Pos, lookq, math32.Vec3(1, 1, 1))
	view, _ := cm.CameraMatrix.Inverse()
	cm.ViewMatrix = *view
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	invp, _ := cm.ProjectionMatrix.Inverse()
	cm.InvProjectionMatrix = *invp
	cm.VPMatrix.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
	cm.Frustum = math32.NewFrustumFromMatrix(&cm.VPMatrix)
}

// LookAt points the camera at the given target location using the given up
// direction, and sets the Target and UpDir fields for future movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Orbit rotates the camera around the target along the given 2D axes in
// degrees (delX = left/right, delY = up/down), keeping the same distance
// from the target and rotating the up direction to keep looking at it.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	up := cm.UpDir
	right := cm.UpDir.Cross(ctdir).Normal()

	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pos = cm.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq)
	cm.LookAt(cm.Target, cm.UpDir)
}

// Pan moves the camera and target along the given 2D axes (left/right,
// up/down) relative to the current orientation, i.e., in the plane of the
// current view.
func (cm *Camera) Pan(delX, delY float32) {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(cm.Pos, cm.Target, cm.UpDir))
	dx := math32.Vec3(-delX, 0, 0).MulQuat(lookq)
	dy := math32.Vec3(0, -delY, 0).MulQuat(lookq)
	td := dx.Add(dy)
	cm.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.UpdateMatrix()
}

// Zoom moves the camera along the view axis by the given percent closer
// (negative) or further (positive) from the target.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pos.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
	cm.UpdateMatrix()
}

// Project transforms the given world position into normalized device
// coordinates under the current combined view-projection matrix.
// x and y are in [-1, 1] inside the viewport; z is in (-1, 1) between the
// near and far planes.
func (cm *Camera) Project(pos math32.Vector3) math32.Vector3 {
	return math32.Vector4FromVector3(pos, 1).MulMatrix4(&cm.VPMatrix).PerspDiv()
}

// ScreenPos transforms the given world position into pixel coordinates in
// a viewport of the given size.
func (cm *Camera) ScreenPos(pos math32.Vector3, size image.Point) math32.Vector2 {
	ndc := cm.Project(pos)
	return math32.Vec2(
		(ndc.X+1)*0.5*float32(size.X),
		(1-ndc.Y)*0.5*float32(size.Y),
	)
}

// RayFromScreen returns the world-space ray from the camera position
// through the given pixel position in a viewport of the given size,
// for pick testing.
func (cm *Camera) RayFromScreen(pos, size image.Point) math32.Ray {
	ndcx := 2*float32(pos.X)/float32(size.X) - 1
	ndcy := 1 - 2*float32(pos.Y)/float32(size.Y)
	vpos := math32.Vec4(ndcx, ndcy, -1, 1).MulMatrix4(&cm.InvProjectionMatrix).PerspDiv()
	wpos := math32.Vector4FromVector3(vpos, 1).MulMatrix4(&cm.CameraMatrix).PerspDiv()
	return math32.Ray{Origin: cm.Pos, Dir: wpos.Sub(cm.Pos).Normal()}
}
