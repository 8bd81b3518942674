package geomath

import "github.com/golang/geo/r3"

// Barycenter returns the arithmetic mean of pts, or the zero vector for an
// empty slice.
func Barycenter(pts []r3.Vector) r3.Vector {
	if len(pts) == 0 {
		return r3.Vector{}
	}
	var sum r3.Vector
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

// PolylineLength sums the Euclidean length of consecutive segments in pts.
func PolylineLength(pts []r3.Vector) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += Distance(pts[i-1], pts[i])
	}
	return total
}

// TriangleArea returns the area of the triangle (a, b, c) via half the norm
// of the cross product of two edge vectors.
func TriangleArea(a, b, c r3.Vector) float64 {
	return 0.5 * b.Sub(a).Cross(c.Sub(a)).Norm()
}

// PolygonArea computes the area of a (possibly non-triangular, planar)
// polygon by a fan triangulation around its barycenter. This matches the
// "measure cell size" contract of mesh §4.2 without requiring the caller to
// pre-triangulate.
func PolygonArea(verts []r3.Vector) float64 {
	if len(verts) < 3 {
		return 0
	}
	center := Barycenter(verts)
	var total float64
	for i := range verts {
		next := verts[(i+1)%len(verts)]
		total += TriangleArea(center, verts[i], next)
	}
	return total
}

// TetrahedronVolume returns the (unsigned) volume of the tetrahedron with
// corners a,b,c,d.
func TetrahedronVolume(a, b, c, d r3.Vector) float64 {
	v := b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a))
	if v < 0 {
		v = -v
	}
	return v / 6
}
