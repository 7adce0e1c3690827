package geom

// ArcLengthBuckets is the number of equal parameter buckets an ArcLength
// table splits a segment into.
const ArcLengthBuckets = 512

// ArcLength is a piecewise-linear arc length table for a single segment. It
// carries no reference to the segment it was built from: build one per
// segment with NewArcLength, or Rebuild a reused value before querying it for
// another segment.
type ArcLength struct {
	buckets [ArcLengthBuckets]float32
	total   float32
}

// NewArcLength builds the table for s.
func NewArcLength(s Segment) *ArcLength {
	al := &ArcLength{}
	al.Rebuild(s)
	return al
}

// Rebuild replaces the table contents with the chords of s and returns the
// total length. A segment whose control points all coincide has no length;
// sampling it would only measure rounding noise.
func (al *ArcLength) Rebuild(s Segment) float32 {
	al.total = 0
	if s.A == s.H1 && s.H1 == s.H2 && s.H2 == s.B {
		al.buckets = [ArcLengthBuckets]float32{}
		return 0
	}
	prev := s.At(0)
	for i := range ArcLengthBuckets {
		// N buckets need N+1 boundary points.
		next := s.At(float32(i+1) / ArcLengthBuckets)
		al.buckets[i] = Dist(prev, next)
		al.total += al.buckets[i]
		prev = next
	}
	return al.total
}

// Total returns the approximated arc length.
func (al *ArcLength) Total() float32 {
	return al.total
}

// ParamAt returns the curve parameter reached after travelling the given
// fraction of the total arc length. Fractions outside (0, 1) and tables with
// no length are returned unchanged.
func (al *ArcLength) ParamAt(fraction float32) float32 {
	if fraction <= 0 || fraction >= 1 || al.total <= 0 {
		return fraction
	}

	target := al.total * fraction
	var accum float32
	for i, d := range al.buckets {
		prevAccum := accum
		accum += d
		if accum < target {
			continue
		}

		t1 := float32(i) / ArcLengthBuckets
		t2 := float32(i+1) / ArcLengthBuckets
		if d == 0 {
			return t1
		}
		return t1 + (t2-t1)*((target-prevAccum)/d)
	}
	// Rounding left the running sum just short of the target.
	return 1
}
