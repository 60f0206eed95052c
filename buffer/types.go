package buffer

// Range is a half-open span of rune indices: [Start, End).
type Range struct {
	Start int
	End   int
}

// NormalizeRange returns r with Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// Contains reports whether i lies inside the closed interval [Start, End].
// Caret positions use the closed form since a caret may sit at End.
func (r Range) Contains(i int) bool {
	r = NormalizeRange(r)
	return i >= r.Start && i <= r.End
}

// Clamp clamps v into [min, max]. When max < min, min wins.
func Clamp(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps both bounds of r into [0, n].
func ClampRange(r Range, n int) Range {
	return Range{
		Start: Clamp(r.Start, 0, n),
		End:   Clamp(r.End, 0, n),
	}
}
