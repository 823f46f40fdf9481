// Package montecarlo estimates π by sampling points in the unit square.
//
// Each of iterations repetitions draws samples points (x, y) in [0,1)², and a
// point is a hit when int(x² + y²) == 0, i.e. it lies strictly inside the
// unit quarter-circle. The estimate is
//
//	4 * ((hits / samples) / iterations)
//
// evaluated in that grouping so results match other implementations bit for
// bit. A zero sample count yields NaN unless WithStrict is given.
package montecarlo
