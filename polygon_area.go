package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

/*
Unit normal of a planar polygon.

    Args:
        poly: polygon vertices in perimeter order, [m]

    Returns:
        unit normal vector

    Notes:
        Taken from the cross product of two consecutive edges. The first
        vertex triples may be collinear, so edge pairs are scanned until
        one with a usable cross product is found. A polygon where every
        triple is collinear has no area and no normal.
*/
func _unit_normal(poly []r3.Vec) (r3.Vec, error) {
	m := len(poly)
	for i := 0; i < m; i++ {
		e1 := r3.Sub(poly[(i+1)%m], poly[i])
		e2 := r3.Sub(poly[(i+2)%m], poly[(i+1)%m])
		c := r3.Cross(e1, e2)
		// the cross product norm is |e1||e2| sin(angle); compare against
		// the edge magnitudes so that the collinearity test is scale free
		if r3.Norm(c) > 1.0e-12*r3.Norm(e1)*r3.Norm(e2) {
			return r3.Unit(c), nil
		}
	}
	return r3.Vec{}, fmt.Errorf("%w: all vertices are collinear, polygon has no normal", ErrDegenerateGeometry)
}

/*
Signed area of a planar 3D polygon.

    Args:
        v: closed polygon, first vertex repeated as the last, [m+1]
        n: polygon unit normal

    Returns:
        signed area (sign follows the vertex winding relative to n)

    Notes:
        Sunday's planar polygon area method: project along the dominant
        component of n onto a coordinate plane, accumulate the discrete
        Green's-theorem sum there and scale the projected area back by
        the inverse of that component.
*/
func _poly_area_3d(v []r3.Vec, n r3.Vec) float64 {
	m := len(v) - 1
	if m < 3 {
		return 0.0
	}

	ax := math.Abs(n.X)
	ay := math.Abs(n.Y)
	az := math.Abs(n.Z)

	// coordinate axis to ignore: 1=x, 2=y, 3=z
	coord := 3
	if ax > ay && ax > az {
		coord = 1
	} else if ay > az {
		coord = 2
	}

	var area float64
	for i := 1; i < m; i++ {
		switch coord {
		case 1:
			area += v[i].Y * (v[i+1].Z - v[i-1].Z)
		case 2:
			area += v[i].Z * (v[i+1].X - v[i-1].X)
		case 3:
			area += v[i].X * (v[i+1].Y - v[i-1].Y)
		}
	}

	// wrap-around term (v[m] == v[0])
	switch coord {
	case 1:
		area += v[m].Y * (v[1].Z - v[m-1].Z)
	case 2:
		area += v[m].Z * (v[1].X - v[m-1].X)
	case 3:
		area += v[m].X * (v[1].Y - v[m-1].Y)
	}

	// scale the projected area back to the polygon plane
	an := math.Sqrt(ax*ax + ay*ay + az*az)
	switch coord {
	case 1:
		area *= an / (2.0 * n.X)
	case 2:
		area *= an / (2.0 * n.Y)
	case 3:
		area *= an / (2.0 * n.Z)
	}

	return area
}

// append the first vertex at the end so that the boundary is explicitly closed
func _close_loop(poly []r3.Vec) []r3.Vec {
	closed := make([]r3.Vec, len(poly)+1)
	copy(closed, poly)
	closed[len(poly)] = poly[0]
	return closed
}
