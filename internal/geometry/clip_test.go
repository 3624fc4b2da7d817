package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitIntoParent_ClipsOutsidePart(t *testing.T) {
	parent := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	polygon := []Point{{80, 40}, {120, 40}, {120, 60}, {80, 60}}

	clipped, err := FitIntoParent(polygon, parent)
	require.NoError(t, err)
	for _, p := range clipped {
		assert.True(t, ContainsPoint(parent, p), "point %v outside parent", p)
	}
	_, maxPt := BoundingBox(clipped)
	assert.InDelta(t, 100, maxPt.X, 1e-9)
}

func TestFitIntoParent_FullyInsideUnchanged(t *testing.T) {
	parent := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	polygon := []Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}

	clipped, err := FitIntoParent(polygon, parent)
	require.NoError(t, err)
	assert.Equal(t, polygon, clipped)
}

func TestFitIntoParent_Idempotent(t *testing.T) {
	parent := []Point{{0, 0}, {100, 0}, {90, 100}, {0, 90}}
	polygon := []Point{{50, -20}, {130, 30}, {70, 80}, {20, 40}}

	once, err := FitIntoParent(polygon, parent)
	require.NoError(t, err)
	twice, err := FitIntoParent(once, parent)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFitIntoParent_ReclipIsExact(t *testing.T) {
	// Crossing edges at shallow angles makes the computed intersection
	// points land a few ulps off the clip boundary; a second clip must
	// still return the identical ring.
	parent := []Point{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}}
	polygon := []Point{{-137.3, 411.7}, {503.9, -88.1}, {911.4, 629.2}, {-73.6, 887.5}}

	once, err := FitIntoParent(polygon, parent)
	require.NoError(t, err)
	twice, err := FitIntoParent(once, parent)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFitIntoParent_EmptyIntersection(t *testing.T) {
	parent := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	polygon := []Point{{50, 50}, {60, 50}, {60, 60}, {50, 60}}

	_, err := FitIntoParent(polygon, parent)
	require.ErrorIs(t, err, ErrEmptyIntersection)
}

func TestFitIntoParent_Degenerate(t *testing.T) {
	_, err := FitIntoParent([]Point{{0, 0}, {1, 1}}, []Point{{0, 0}, {10, 0}, {10, 10}})
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestSplitOverlappingRings(t *testing.T) {
	upper := []Point{{0, 0}, {100, 0}, {100, 60}, {0, 60}}
	lower := []Point{{0, 40}, {100, 40}, {100, 100}, {0, 100}}

	u, l := SplitOverlappingRings(upper, lower, 50)
	_, uMax := BoundingBox(u)
	lMin, _ := BoundingBox(l)
	assert.InDelta(t, 50, uMax.Y, 1e-9)
	assert.InDelta(t, 50, lMin.Y, 1e-9)
	assert.True(t, IsSimpleRing(u))
	assert.True(t, IsSimpleRing(l))
}

func TestSplitOverlappingRings_NoOverlapUnchanged(t *testing.T) {
	upper := []Point{{0, 0}, {100, 0}, {100, 30}, {0, 30}}
	lower := []Point{{0, 60}, {100, 60}, {100, 100}, {0, 100}}

	u, l := SplitOverlappingRings(upper, lower, 45)
	assert.Equal(t, upper, u)
	assert.Equal(t, lower, l)
}

func TestSplitOverlappingRings_DegenerateCutKeepsOriginal(t *testing.T) {
	upper := []Point{{0, 0}, {100, 0}, {100, 60}, {0, 60}}
	lower := []Point{{0, 40}, {100, 40}, {100, 100}, {0, 100}}

	// Cut below both rings: the lower remainder would vanish.
	u, l := SplitOverlappingRings(upper, lower, 200)
	assert.Equal(t, upper, u)
	assert.Equal(t, lower, l)
}
