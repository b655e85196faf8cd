package main

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_poly_area_3d_unit_square_each_axis(t *testing.T) {
	// the same unit square placed in each coordinate plane, so that each
	// branch of the dominant-axis projection is exercised
	cases := []struct {
		name string
		poly []r3.Vec
		n    r3.Vec
	}{
		{
			name: "z=0 plane, z dropped",
			poly: []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			n:    r3.Vec{Z: 1},
		},
		{
			name: "x=0 plane, x dropped",
			poly: []r3.Vec{{Y: 0, Z: 0}, {Y: 1, Z: 0}, {Y: 1, Z: 1}, {Y: 0, Z: 1}},
			n:    r3.Vec{X: 1},
		},
		{
			name: "y=0 plane, y dropped",
			poly: []r3.Vec{{Z: 0, X: 0}, {Z: 1, X: 0}, {Z: 1, X: 1}, {Z: 0, X: 1}},
			n:    r3.Vec{Y: 1},
		},
	}

	for _, c := range cases {
		area := _poly_area_3d(_close_loop(c.poly), c.n)
		assert.InDelta(t, 1.0, math.Abs(area), 1.0e-15, c.name)
	}
}

func Test_poly_area_3d_winding_sign(t *testing.T) {
	ccw := []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	cw := []r3.Vec{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	n := r3.Vec{Z: 1}

	assert.InDelta(t, 1.0, _poly_area_3d(_close_loop(ccw), n), 1.0e-15)
	assert.InDelta(t, -1.0, _poly_area_3d(_close_loop(cw), n), 1.0e-15)
}

func Test_poly_area_3d_triangle(t *testing.T) {
	// right triangle with legs 3 and 4 in a tilted plane
	p0 := r3.Vec{X: 1, Y: 1, Z: 1}
	e1 := r3.Unit(r3.Vec{X: 1, Y: 2, Z: 2})
	e2 := r3.Unit(r3.Cross(e1, r3.Vec{X: 0, Y: 0, Z: 1}))
	poly := []r3.Vec{p0, r3.Add(p0, r3.Scale(3.0, e1)), r3.Add(p0, r3.Scale(4.0, e2))}

	n, err := _unit_normal(poly)
	require.NoError(t, err)
	area := _poly_area_3d(_close_loop(poly), n)
	assert.InDelta(t, 6.0, math.Abs(area), 1.0e-12)
}

func Test_unit_normal_regular_polygon(t *testing.T) {
	poly := make([]r3.Vec, 6)
	for i := range poly {
		th := 2.0 * math.Pi * float64(i) / 6.0
		poly[i] = r3.Vec{X: math.Cos(th), Y: math.Sin(th), Z: 2.0}
	}

	n, err := _unit_normal(poly)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, n.X, 1.0e-15)
	assert.InDelta(t, 0.0, n.Y, 1.0e-15)
	assert.InDelta(t, 1.0, math.Abs(n.Z), 1.0e-15)
}

func Test_unit_normal_skips_collinear_leading_vertices(t *testing.T) {
	// first three vertices lie on a line, the normal must still be found
	poly := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}

	n, err := _unit_normal(poly)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, math.Abs(n.Z), 1.0e-15)
}

func Test_unit_normal_small_polygon(t *testing.T) {
	// micrometer-scale square: small edge cross products must not be
	// mistaken for collinearity
	s := 1.0e-7
	poly := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: s, Y: 0, Z: 0},
		{X: s, Y: s, Z: 0},
		{X: 0, Y: s, Z: 0},
	}

	n, err := _unit_normal(poly)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, math.Abs(n.Z), 1.0e-15)

	area := _poly_area_3d(_close_loop(poly), n)
	assert.InDelta(t, s*s, math.Abs(area), 1.0e-20)
}

func Test_unit_normal_degenerate(t *testing.T) {
	// every vertex on one line: no plane, no normal
	poly := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 2, Y: 2, Z: 2},
	}

	_, err := _unit_normal(poly)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
}
