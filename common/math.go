package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpClamped is Lerp with t clamped to [0,1].
func LerpClamped(a, b, t float64) float64 {
	return Lerp(a, b, Clamp01(t))
}

// InverseLerp returns where v sits between a and b, clamped to [0,1].
// A degenerate range yields 0.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Approximately reports whether a and b differ by less than eps.
func Approximately(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// SmoothDamp moves current toward target like a critically damped spring.
// velocity carries the spring state between calls; smoothTime is roughly the
// time to reach the target. maxSpeed <= 0 means unbounded.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	original := target
	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		change = Clamp(change, -maxChange, maxChange)
	}
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	// no overshoot
	if (original-current > 0) == (out > original) {
		out = original
		*velocity = (out - original) / dt
	}
	return out
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
