package dynamo

import "math"

// RoundTo rounds value to the nearest multiple of precision, halves away from
// zero.
//
//	RoundTo(10.0078, 0.001) = 10.008
//	RoundTo(10.0078, 0.01)  = 10.01
//	RoundTo(10.0078, 1)     = 10
//	RoundTo(10.0078, 3)     = 9
func RoundTo(value, precision float64) float64 {
	return math.Round(value/precision) * precision
}
