package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveRepeatedPoints(t *testing.T) {
	tests := []struct {
		name      string
		points    []Point
		tolerance float64
		expected  []Point
	}{
		{
			name:      "empty input",
			points:    nil,
			tolerance: 1.0,
			expected:  nil,
		},
		{
			name:      "no repeats",
			points:    []Point{{0, 0}, {10, 0}, {10, 10}},
			tolerance: 1.0,
			expected:  []Point{{0, 0}, {10, 0}, {10, 10}},
		},
		{
			name:      "consecutive duplicates collapse",
			points:    []Point{{0, 0}, {0, 0}, {10, 0}, {10, 0.5}, {10, 10}},
			tolerance: 1.0,
			expected:  []Point{{0, 0}, {10, 0}, {10, 10}},
		},
		{
			name:      "closing duplicate dropped",
			points:    []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			tolerance: 1.0,
			expected:  []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveRepeatedPoints(tt.points, tt.tolerance)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvexHull_Square(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}, {2, 3}}
	hull := ConvexHull(pts)
	require.Len(t, hull, 4)
	for _, corner := range []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}} {
		assert.Contains(t, hull, corner)
	}
}

func TestConvexHull_Degenerate(t *testing.T) {
	assert.Len(t, ConvexHull([]Point{{1, 1}}), 1)
	assert.Len(t, ConvexHull([]Point{{1, 1}, {1, 1}, {2, 2}}), 2)
}

func TestIsSimpleRing(t *testing.T) {
	tests := []struct {
		name string
		ring []Point
		want bool
	}{
		{"square", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, true},
		{"triangle", []Point{{0, 0}, {10, 0}, {5, 8}}, true},
		{"bowtie", []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}, false},
		{"too few points", []Point{{0, 0}, {10, 0}}, false},
		{"collapsed", []Point{{1, 1}, {1, 1}, {1, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSimpleRing(tt.ring))
		})
	}
}

func TestTranslate(t *testing.T) {
	pts := []Point{{1, 2}, {3, 4}}
	got := Translate(pts, 10, -2)
	assert.Equal(t, []Point{{11, 0}, {13, 2}}, got)
	// Input untouched.
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, pts)
}

func TestExtendPolyline(t *testing.T) {
	got, err := ExtendPolyline([]Point{{10, 0}, {20, 0}}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got[0].X, 1e-9)
	assert.InDelta(t, 25.0, got[1].X, 1e-9)
	assert.InDelta(t, 0.0, got[0].Y, 1e-9)

	_, err = ExtendPolyline([]Point{{10, 0}, {10, 0}}, 5)
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestContainsPoint(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.True(t, ContainsPoint(square, Point{5, 5}))
	assert.True(t, ContainsPoint(square, Point{0, 5}), "boundary counts as inside")
	assert.False(t, ContainsPoint(square, Point{15, 5}))
}
