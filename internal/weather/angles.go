package weather

import "math"

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

// atan2Deg converts a vector-averaged direction back to compass degrees in [0, 360).
func atan2Deg(s, c float64) float64 {
	deg := math.Atan2(s, c) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
