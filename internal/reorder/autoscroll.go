package reorder

// AutoScroller computes the continuous scroll speed applied while a drag
// pointer hovers near the top or bottom edge of the viewport. The speed is
// proportional to how deep into the edge band the pointer is: zero at the
// band's inner boundary, MaxSpeed at the viewport edge, zero everywhere
// outside the band.
type AutoScroller struct {
	// Band is the depth of the activation band in pixels, measured inward
	// from each viewport edge.
	Band float64

	// MaxSpeed is the scroll speed in pixels per tick at full band depth.
	MaxSpeed float64
}

// NewAutoScroller returns a scroller with the given band depth and peak
// speed. Non-positive values fall back to a 60px band at 20px per tick.
func NewAutoScroller(band, maxSpeed float64) *AutoScroller {
	if band <= 0 {
		band = 60
	}
	if maxSpeed <= 0 {
		maxSpeed = 20
	}
	return &AutoScroller{Band: band, MaxSpeed: maxSpeed}
}

// Speed returns the scroll delta for a pointer at pointerY within a
// viewport spanning [viewportTop, viewportTop+viewportHeight). Negative
// means scroll up, positive scroll down, zero outside both bands.
func (a *AutoScroller) Speed(pointerY, viewportTop, viewportHeight float64) float64 {
	bottom := viewportTop + viewportHeight

	if pointerY < viewportTop || pointerY > bottom {
		return 0
	}

	if depth := viewportTop + a.Band - pointerY; depth > 0 {
		return -a.MaxSpeed * clamp01(depth/a.Band)
	}
	if depth := pointerY - (bottom - a.Band); depth > 0 {
		return a.MaxSpeed * clamp01(depth/a.Band)
	}

	return 0
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
