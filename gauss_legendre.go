package main

import (
	"fmt"
	"math"
)

/*
Gauss-Legendre abscissas and weights for numerical integration on [-1, 1].

    Args:
        n: number of integration points

    Returns:
        abscissas, -, [n]
        weights, -, [n]

    Notes:
        The n-point rule is exact for polynomials of degree 2n-1.
        Abscissas are the roots of the degree-n Legendre polynomial,
        located by Newton-Raphson from the asymptotic estimate
        cos(pi*(i-1/4)/(n+1/2)). Roots come in +/- pairs, so only the
        upper half is iterated and both symmetric positions share one
        weight.
*/
func _lgwt(n int) ([]float64, []float64, error) {
	return _lgwt_bounded(n, get_newton_max_iter())
}

// as _lgwt, with the Newton-Raphson iteration cap supplied by the caller
func _lgwt_bounded(n, max_iter int) ([]float64, []float64, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: number of integration points must be positive, got %d", ErrInvalidInput, n)
	}

	eps := get_machine_eps()

	a := make([]float64, n)
	w := make([]float64, n)

	m := (n + 1) / 2
	for i := 1; i <= m; i++ {
		// initial estimate of the i-th root
		z := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))

		var pp float64
		converged := false
		for it := 0; it < max_iter; it++ {
			// Legendre polynomial P_n(z) by the three-term recurrence
			p1 := 1.0
			p2 := 0.0
			for k := 1; k <= n; k++ {
				p3 := p2
				p2 = p1
				p1 = ((2.0*float64(k)-1.0)*z*p2 - (float64(k)-1.0)*p3) / float64(k)
			}

			// derivative P'_n(z)
			pp = float64(n) * (z*p1 - p2) / (z*z - 1.0)

			z1 := z
			z = z1 - p1/pp
			if math.Abs(z-z1) <= eps {
				converged = true
				break
			}
		}
		if !converged {
			return nil, nil, fmt.Errorf("%w: Legendre root %d of %d did not settle within %d iterations", ErrNonConvergence, i, n, max_iter)
		}

		a[i-1] = -z
		a[n-i] = z
		w[i-1] = 2.0 / ((1.0 - z*z) * pp * pp)
		w[n-i] = w[i-1]
	}

	return a, w, nil
}
