package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	officeLat = 19.0760
	officeLon = 72.8777
)

func TestHaversineDistance_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, HaversineDistance(officeLat, officeLon, officeLat, officeLon))
}

func TestHaversineDistance_KnownCity(t *testing.T) {
	// Mumbai to Delhi is roughly 1150 km great-circle.
	d := HaversineDistance(19.0760, 72.8777, 28.7041, 77.1025)
	assert.InDelta(t, 1150_000, d, 20_000)
}

func TestClassify_BoundaryIsInclusive(t *testing.T) {
	// Walk ~100m north of the office, then use the computed distance as the
	// radius so the boundary case is exact.
	punchLat := officeLat + 100.0/111_320.0
	d := HaversineDistance(punchLat, officeLon, officeLat, officeLon)

	assert.Equal(t, StatusInOffice, Classify(punchLat, officeLon, officeLat, officeLon, d))
	assert.Equal(t, StatusRemote, Classify(punchLat, officeLon, officeLat, officeLon, d-0.01))
}

func TestClassify_InsideRadius(t *testing.T) {
	assert.Equal(t, StatusInOffice, Classify(officeLat+0.0001, officeLon, officeLat, officeLon, 100))
}

func TestClassify_FarAway(t *testing.T) {
	assert.Equal(t, StatusRemote, Classify(28.7041, 77.1025, officeLat, officeLon, 100))
}

func TestClassify_ZeroCoordinatesAreUnset(t *testing.T) {
	assert.Equal(t, StatusRemote, Classify(0, 0, officeLat, officeLon, 100))
	assert.Equal(t, StatusRemote, Classify(0, officeLon, officeLat, officeLon, 100))
	assert.Equal(t, StatusRemote, Classify(officeLat, 0, officeLat, officeLon, 100))
}

func TestClassify_NaNOfficeFailsafe(t *testing.T) {
	assert.Equal(t, StatusRemote, Classify(officeLat, officeLon, math.NaN(), officeLon, 100))
	assert.Equal(t, StatusRemote, Classify(math.NaN(), officeLon, officeLat, officeLon, 100))
}

func TestClassify_MissingOfficeCoordinates(t *testing.T) {
	assert.Equal(t, StatusRemote, Classify(officeLat, officeLon, 0, 0, 100))
}

func TestCoordinatesPresent(t *testing.T) {
	assert.True(t, CoordinatesPresent(officeLat, officeLon))
	assert.False(t, CoordinatesPresent(0, 0))
	assert.False(t, CoordinatesPresent(math.NaN(), officeLon))
	assert.False(t, CoordinatesPresent(officeLat, math.NaN()))
}
