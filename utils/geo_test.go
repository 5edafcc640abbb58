package utils

import (
	"testing"

	"kochi-transit/model"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceSymmetry(t *testing.T) {
	pairs := [][2]model.Point{
		{{Lat: 10.1082, Lon: 76.3520}, {Lat: 9.9542, Lon: 76.1870}},
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 180}},
		{{Lat: -33.86, Lon: 151.21}, {Lat: 51.51, Lon: -0.13}},
		{{Lat: 10.0450, Lon: 76.3000}, {Lat: 10.0450, Lon: 76.3001}},
	}

	for _, p := range pairs {
		assert.InDelta(t, HaversineDistance(p[0], p[1]), HaversineDistance(p[1], p[0]), 1e-12)
		assert.GreaterOrEqual(t, HaversineDistance(p[0], p[1]), 0.0)
	}
}

func TestHaversineDistanceIdenticalPoints(t *testing.T) {
	p := model.Point{Lat: 10.0522, Lon: 76.2920}
	assert.Equal(t, 0.0, HaversineDistance(p, p))
}

func TestHaversineDistanceKnownValue(t *testing.T) {
	// Aluva Metro <-> Pulinchodu Metro，约 1.13 公里
	aluva := model.Point{Lat: 10.1082, Lon: 76.3520}
	pulinchodu := model.Point{Lat: 10.1012, Lon: 76.3445}

	assert.InDelta(t, 1.131, HaversineDistance(aluva, pulinchodu), 0.005)
}

func TestDegreesToRadians(t *testing.T) {
	assert.InDelta(t, 3.14159265, DegreesToRadians(180), 1e-8)
	assert.Equal(t, 0.0, DegreesToRadians(0))
}
