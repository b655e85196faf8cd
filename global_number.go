package main

import "math"

// machine epsilon for float64 (unit roundoff)
func get_machine_eps() float64 {
	return math.Nextafter(1.0, 2.0) - 1.0
}

// default number of Gauss-Legendre points per segment direction
func get_gp_default() int {
	return 7
}

// Newton-Raphson iteration cap for the Legendre root refinement
func get_newton_max_iter() int {
	return 100
}
