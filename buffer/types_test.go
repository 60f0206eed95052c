package buffer

import "testing"

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: 7, End: 2})
	if r != (Range{Start: 2, End: 7}) {
		t.Fatalf("unexpected range: %#v", r)
	}

	r2 := NormalizeRange(r)
	if r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
	if got := (Range{Start: 7, End: 2}).Len(); got != 5 {
		t.Fatalf("len=%d, want 5", got)
	}
}

func TestRange_Contains_IsClosed(t *testing.T) {
	r := Range{Start: 4, End: 1}
	for _, i := range []int{1, 2, 4} {
		if !r.Contains(i) {
			t.Fatalf("expected %d in %v", i, r)
		}
	}
	for _, i := range []int{0, 5} {
		if r.Contains(i) {
			t.Fatalf("expected %d outside %v", i, r)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max int
		want        int
	}{
		{v: -1, min: 0, max: 3, want: 0},
		{v: 9, min: 0, max: 3, want: 3},
		{v: 2, min: 0, max: 3, want: 2},
		{v: 2, min: 5, max: 3, want: 5},
	}

	for _, tc := range cases {
		if got := Clamp(tc.v, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestClampRange(t *testing.T) {
	if got, want := ClampRange(Range{Start: -4, End: 40}, 5), (Range{Start: 0, End: 5}); got != want {
		t.Fatalf("ClampRange=%v, want %v", got, want)
	}
}
