package geom

import "testing"

func TestRange_LenMiddle(t *testing.T) {
	type tc struct {
		r      Range
		len    Scalar
		middle Scalar
	}

	tests := map[string]tc{
		"forward":  {r: NewRange(-10, 30), len: 40, middle: 10},
		"inverted": {r: NewRange(30, -10), len: 40, middle: 10},
		"empty":    {r: NewRange(5, 5), len: 0, middle: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Len(); got != tt.len {
				t.Errorf("Len() = %v, want %v", got, tt.len)
			}
			if got := tt.r.Middle(); got != tt.middle {
				t.Errorf("Middle() = %v, want %v", got, tt.middle)
			}
		})
	}
}

func TestRange_Overlap(t *testing.T) {
	type tc struct {
		a, b Range
		want Range
		ok   bool
	}

	tests := map[string]tc{
		"partial":    {a: NewRange(0, 10), b: NewRange(5, 20), want: NewRange(5, 10), ok: true},
		"contained":  {a: NewRange(0, 10), b: NewRange(2, 3), want: NewRange(2, 3), ok: true},
		"inverted":   {a: NewRange(10, 0), b: NewRange(5, 20), want: NewRange(5, 10), ok: true},
		"touching":   {a: NewRange(0, 10), b: NewRange(10, 20), ok: false},
		"disjoint":   {a: NewRange(0, 10), b: NewRange(11, 20), ok: false},
		"zero width": {a: NewRange(0, 0), b: NewRange(-5, 5), ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.a.Overlap(tt.b)
			if ok != tt.ok {
				t.Fatalf("Overlap() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Overlap() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRange_Align(t *testing.T) {
	r := RangeFromPosLen(0, 10)
	other := NewRange(100, 200)

	type tc struct {
		got  Range
		want Range
	}

	tests := map[string]tc{
		"start of":  {got: r.AlignStartOf(other), want: NewRange(100, 110)},
		"end of":    {got: r.AlignEndOf(other), want: NewRange(190, 200)},
		"middle of": {got: r.AlignMiddleOf(other), want: NewRange(145, 155)},
		"after":     {got: r.AlignAfter(other), want: NewRange(200, 210)},
		"before":    {got: r.AlignBefore(other), want: NewRange(90, 100)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestRange_Pad(t *testing.T) {
	if got := NewRange(0, 10).Pad(2); got != NewRange(2, 8) {
		t.Errorf("Pad() forward = %+v, want {2 8}", got)
	}
	if got := NewRange(10, 0).Pad(2); got != NewRange(8, 2) {
		t.Errorf("Pad() inverted = %+v, want {8 2}", got)
	}
}

func TestRange_ClampValue(t *testing.T) {
	r := NewRange(10, -10)
	for in, want := range map[Scalar]Scalar{-20: -10, 0: 0, 20: 10} {
		if got := r.ClampValue(in); got != want {
			t.Errorf("ClampValue(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRange_MapValueTo(t *testing.T) {
	r := NewRange(0, 10)
	if got := r.MapValueTo(5, NewRange(100, 200)); got != 150 {
		t.Errorf("MapValueTo() = %v, want 150", got)
	}
	if got := NewRange(3, 3).MapValueTo(3, NewRange(1, 2)); got != 1 {
		t.Errorf("MapValueTo() on empty range = %v, want 1", got)
	}
}
