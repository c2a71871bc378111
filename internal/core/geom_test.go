package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := NewBox(10, 20, 60, 40).Inset(5)
	want := NewBox(15, 25, 50, 30)
	if b != want {
		t.Errorf("Inset(5) = %+v, expected %+v", b, want)
	}

	collapsed := NewBox(0, 0, 6, 20).Inset(5)
	if collapsed.W != 0 {
		t.Errorf("collapsed width = %f, expected 0", collapsed.W)
	}
	if collapsed.X != 3 {
		t.Errorf("collapsed box should keep its center, X = %f", collapsed.X)
	}
	if collapsed.H != 10 {
		t.Errorf("collapsed box height = %f, expected 10", collapsed.H)
	}
}

func TestPaddedOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		pad      float64
		expected bool
	}{
		{
			// After a 5 inset these become [30,30,10,10] and [25,25,20,20].
			name:     "overlap survives padding",
			a:        NewBox(25, 25, 20, 20),
			b:        NewBox(20, 20, 30, 30),
			pad:      5,
			expected: true,
		},
		{
			name:     "raw overlap removed by padding",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(12, 0, 20, 20),
			pad:      5,
			expected: false,
		},
		{
			name:     "zero padding is plain overlap",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(12, 0, 20, 20),
			pad:      0,
			expected: true,
		},
		{
			name:     "box collapsed by padding never collides",
			a:        NewBox(0, 0, 8, 8),
			b:        NewBox(0, 0, 40, 40),
			pad:      5,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab := PaddedOverlap(tc.a, tc.b, tc.pad)
			ba := PaddedOverlap(tc.b, tc.a, tc.pad)
			if ab != ba {
				t.Fatalf("PaddedOverlap is not symmetric: a,b=%v b,a=%v", ab, ba)
			}
			if ab != tc.expected {
				t.Errorf("PaddedOverlap() = %v, expected %v", ab, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)
	if b.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", b.Right())
	}
	if b.Top() != 25 {
		t.Errorf("Top() = %f, expected 25", b.Top())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
