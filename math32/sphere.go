// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/go-gl/mathgl/mgl32"

// Sphere is a bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Plane is an infinite plane with unit Normal, located at Distance
// along the normal from the origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// PlaneFromVec4 returns the plane stored as (normal.xyz, distance).
func PlaneFromVec4(v mgl32.Vec4) Plane {
	return Plane{Normal: v.Vec3(), Distance: v[3]}
}

// DistanceToPoint returns the signed distance of p from the plane,
// positive on the side the normal points to.
func (p Plane) DistanceToPoint(pt mgl32.Vec3) float32 {
	return p.Normal.Dot(pt) - p.Distance
}

// PlaneSides are the results of classifying a volume against a [Plane].
type PlaneSides int32

const (
	// Intersects is a volume crossing the plane.
	Intersects PlaneSides = iota

	// Front is a volume fully on the normal side of the plane.
	Front

	// Back is a volume fully behind the plane.
	Back
)

func (ps PlaneSides) String() string {
	switch ps {
	case Front:
		return "Front"
	case Back:
		return "Back"
	default:
		return "Intersects"
	}
}

// Classify returns which side of plane p the sphere lies on.
func (sp Sphere) Classify(p Plane) PlaneSides {
	d := p.DistanceToPoint(sp.Center)
	switch {
	case d > sp.Radius:
		return Front
	case d < -sp.Radius:
		return Back
	default:
		return Intersects
	}
}

// ContainsPoint returns whether pt is inside or on the sphere.
func (sp Sphere) ContainsPoint(pt mgl32.Vec3) bool {
	return pt.Sub(sp.Center).LenSqr() <= sp.Radius*sp.Radius
}
