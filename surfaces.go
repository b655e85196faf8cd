package main

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is one named planar polygon as read from the input JSON.
type Surface struct {
	Name     string      `json:"name"`
	Vertices [][]float64 `json:"vertices"`
}

/*
Vertex list of the surface as 3D vectors.

    Returns:
        polygon vertices in perimeter order, [m]

    Notes:
        Rejects surfaces with fewer than 3 vertices and vertices that are
        not exactly 3 coordinates long.
*/
func (self *Surface) polygon() ([]r3.Vec, error) {
	if len(self.Vertices) < 3 {
		return nil, fmt.Errorf("%w: surface `%s` has %d vertices, need at least 3", ErrInvalidInput, self.Name, len(self.Vertices))
	}
	poly := make([]r3.Vec, len(self.Vertices))
	for i, v := range self.Vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("%w: surface `%s` vertex %d has %d coordinates, need 3", ErrInvalidInput, self.Name, i, len(v))
		}
		poly[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}
	return poly, nil
}

// ViewFactorRow is one surface pair in the results CSV.
type ViewFactorRow struct {
	Surface1 string  `csv:"surface_1"`
	Surface2 string  `csv:"surface_2"`
	F12      float64 `csv:"f_1_2"`
	F21      float64 `csv:"f_2_1"`
	A1       float64 `csv:"a_1_m2"`
	A2       float64 `csv:"a_2_m2"`
}

/*
Pairwise view factor matrix of a surface set.

    Args:
        surfaces: named surfaces, [n]
        gp: number of Gauss-Legendre points per segment direction
            (0 selects the default)

    Returns:
        view factor matrix, -, [n, n] (element i,j is F from surface i to surface j)
        one result row per unordered surface pair, [n*(n-1)/2]

    Notes:
        Each unordered pair is computed once; the transposed element
        follows from reciprocity. The diagonal is zero since a planar
        surface cannot see itself. For a closed enclosure every row

            sum_j F_ij

        should approach 1; rows that exceed 1 beyond tolerance are
        logged, as inputs that overlap or intersect produce them.
*/
func calc_view_factor_matrix(surfaces []*Surface, gp int) (*mat.Dense, []*ViewFactorRow, error) {
	n := len(surfaces)
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 surfaces, got %d", ErrInvalidInput, n)
	}

	polys := make([][]r3.Vec, n)
	for i, sf := range surfaces {
		poly, err := sf.polygon()
		if err != nil {
			return nil, nil, err
		}
		polys[i] = poly
	}

	f := mat.NewDense(n, n, nil)
	rows := make([]*ViewFactorRow, 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			res, err := calc_view_factor(polys[i], polys[j], gp)
			if err != nil {
				return nil, nil, fmt.Errorf("surface pair `%s`-`%s`: %w", surfaces[i].Name, surfaces[j].Name, err)
			}
			f.Set(i, j, res.F12)
			f.Set(j, i, res.F21)
			rows = append(rows, &ViewFactorRow{
				Surface1: surfaces[i].Name,
				Surface2: surfaces[j].Name,
				F12:      res.F12,
				F21:      res.F21,
				A1:       res.A1,
				A2:       res.A2,
			})
		}
	}

	for i := 0; i < n; i++ {
		total := 0.0
		for j := 0; j < n; j++ {
			total += f.At(i, j)
		}
		if total > 1.0+1.0e-3 {
			log.Printf("surface `%s` row sum exceeds unity TotalFF=%.10f", surfaces[i].Name, total)
		}
	}

	return f, rows, nil
}

// largest reciprocity residual |F_ij*A_i - F_ji*A_j| over the rows, for reporting
func max_reciprocity_residual(rows []*ViewFactorRow) float64 {
	var worst float64
	for _, r := range rows {
		res := math.Abs(r.F12*r.A1 - r.F21*r.A2)
		if res > worst {
			worst = res
		}
	}
	return worst
}
