package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Identity(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		{0, 0},
		{121.5654, 25.033},
		{-73.9857, 40.7484},
		{179.99, -85.0},
	}

	for _, p := range points {
		assert.Zero(t, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	t.Parallel()

	a := orb.Point{121.5654, 25.033}  // Taipei 101
	b := orb.Point{121.5170, 25.0478} // Taipei Main Station

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_KnownPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     orb.Point
		expected float64
		delta    float64
	}{
		{
			name:     "one hundredth degree of longitude at the equator",
			a:        orb.Point{0, 0},
			b:        orb.Point{0.01, 0},
			expected: 1112.0,
			delta:    5.0,
		},
		{
			name:     "one degree of latitude",
			a:        orb.Point{0, 0},
			b:        orb.Point{0, 1},
			expected: 111195.0,
			delta:    50.0,
		},
		{
			name:     "Taipei 101 to Taipei Main Station",
			a:        orb.Point{121.5654, 25.033},
			b:        orb.Point{121.5170, 25.0478},
			expected: 5180.0,
			delta:    100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, DistanceMeters(tt.a, tt.b), tt.delta)
		})
	}
}

// Distance must grow with coordinate separation; a sign or unit slip in the
// formula shows up here before it shows up as a wrong zone decision.
func TestDistanceMeters_MonotonicAlongMeridian(t *testing.T) {
	t.Parallel()

	origin := orb.Point{0, 0}
	prev := 0.0

	for lat := 0.001; lat <= 1.0; lat *= 2 {
		d := DistanceMeters(origin, orb.Point{0, lat})
		assert.Greater(t, d, prev, "distance should increase at lat %f", lat)
		prev = d
	}
}

func TestDistanceMeters_ColinearTriangle(t *testing.T) {
	t.Parallel()

	a := orb.Point{0, 0}
	b := orb.Point{0, 0.5}
	c := orb.Point{0, 1.0}

	assert.GreaterOrEqual(t, DistanceMeters(a, c), DistanceMeters(a, b))
	assert.InDelta(t, DistanceMeters(a, c), DistanceMeters(a, b)+DistanceMeters(b, c), 0.001)
}
