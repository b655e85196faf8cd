package main

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// a polygon with fewer than 3 vertices, a vertex that is not 3D, or a negative quadrature order
	ErrInvalidInput = errors.New("invalid input")

	// the Legendre root refinement failed to settle within the iteration cap
	ErrNonConvergence = errors.New("numerical non-convergence")

	// zero-area polygon: no normal can be computed
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// ViewFactorResult holds both view factors of a polygon pair and both areas.
type ViewFactorResult struct {
	F12 float64 // fraction of radiation leaving surface 1 intercepted by surface 2
	F21 float64 // fraction of radiation leaving surface 2 intercepted by surface 1
	A1  float64 // area of surface 1, m2
	A2  float64 // area of surface 2, m2
}

/*
View factors between two planar polygons by the double contour integral.

    Args:
        c1: vertices of polygon 1 in perimeter order, [l1]
        c2: vertices of polygon 2 in perimeter order, [l2]
        gp: number of Gauss-Legendre points per segment direction
            (0 selects the default of 7)

    Returns:
        ViewFactorResult with F12, F21 and both areas

    Notes:
        The surface integral of the view factor reduces to a double line
        integral of ln(R) d1.d2 over every ordered pair of boundary
        segments, evaluated with gp x gp Gauss-Legendre points per pair:

            F12 = |S| / (8 pi A1),  F21 = |S| / (8 pi A2)

        Reciprocity F12*A1 == F21*A2 holds exactly since both factors
        derive from the same accumulated sum.

        Preconditions (not verified here): each polygon is planar and not
        self-intersecting, and neither polygon crosses the plane of the
        other. Violating them gives a numerically defined but physically
        meaningless result. Accuracy degrades for nearly touching
        boundaries, where R -> 0 drives the ln(R) kernel to -inf between
        quadrature points.
*/
func calc_view_factor(c1, c2 []r3.Vec, gp int) (*ViewFactorResult, error) {
	if len(c1) < 3 {
		return nil, fmt.Errorf("%w: polygon 1 has %d vertices, need at least 3", ErrInvalidInput, len(c1))
	}
	if len(c2) < 3 {
		return nil, fmt.Errorf("%w: polygon 2 has %d vertices, need at least 3", ErrInvalidInput, len(c2))
	}
	if gp < 0 {
		return nil, fmt.Errorf("%w: quadrature order must not be negative, got %d", ErrInvalidInput, gp)
	}
	if gp == 0 {
		gp = get_gp_default()
	}

	// quadrature rule, generated once per call
	a, w, err := _lgwt(gp)
	if err != nil {
		return nil, err
	}

	n1, err := _unit_normal(c1)
	if err != nil {
		return nil, fmt.Errorf("polygon 1: %w", err)
	}
	n2, err := _unit_normal(c2)
	if err != nil {
		return nil, fmt.Errorf("polygon 2: %w", err)
	}

	a1 := math.Abs(_poly_area_3d(_close_loop(c1), n1))
	a2 := math.Abs(_poly_area_3d(_close_loop(c2), n2))

	l1 := len(c1)
	l2 := len(c2)

	var s float64
	for i := 0; i < l1; i++ {
		p1 := c1[i]
		p2 := c1[(i+1)%l1]
		for j := 0; j < l2; j++ {
			p3 := c2[j]
			p4 := c2[(j+1)%l2]
			s += _segment_integral(a, w, p1, p2, p3, p4)
		}
	}

	return &ViewFactorResult{
		F12: math.Abs(s) / (8.0 * math.Pi * a1),
		F21: math.Abs(s) / (8.0 * math.Pi * a2),
		A1:  a1,
		A2:  a2,
	}, nil
}

/*
Contour integral contribution of one segment pair.

    Args:
        a: quadrature abscissas, [gp]
        w: quadrature weights, [gp]
        p1, p2: endpoints of the directed segment on polygon 1
        p3, p4: endpoints of the directed segment on polygon 2

    Returns:
        sum over the gp x gp parameter grid of w_k w_m ln(R) d1.d2

    Notes:
        d1.d2 is constant over the parameter square and factored out of
        the double loop. Perpendicular segments contribute nothing.
*/
func _segment_integral(a, w []float64, p1, p2, p3, p4 r3.Vec) float64 {
	d1 := r3.Sub(p2, p1)
	d2 := r3.Sub(p4, p3)

	dot := r3.Dot(d1, d2)
	if dot == 0.0 {
		return 0.0
	}

	var sum float64
	for k := range a {
		for m := range a {
			sum += w[k] * w[m] * _log_r(a[k], a[m], p1, d1, p3, d2)
		}
	}
	return sum * dot
}

// ln of the distance between the segment points at parameters t and s,
// with t, s on [-1, 1] mapped onto [0, 1] along each segment
func _log_r(t, s float64, p1, d1, p3, d2 r3.Vec) float64 {
	x1 := r3.Add(p1, r3.Scale((t+1.0)/2.0, d1))
	x2 := r3.Add(p3, r3.Scale((s+1.0)/2.0, d2))
	return math.Log(r3.Norm(r3.Sub(x2, x1)))
}
