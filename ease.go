package main

import (
	"math"
)

// easing functions take t in [0, 1]
// reference : https://easings.net/

func EaseInCubic(t float64) float64 {
	return t * t * t
}

func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)*0.5
}

func EaseInQuint(t float64) float64 {
	return t * t * t * t * t
}

func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

func EaseOutElastic(t float64) float64 {
	const c4 = (2 * math.Pi) / 3

	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}
