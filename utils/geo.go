package utils

import (
	"math"

	"kochi-transit/model"
)

// EarthRadius 地球平均半径 (公里)
const EarthRadius = 6371.0

// DegreesToRadians 角度转弧度
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// HaversineDistance Haversine 公式 (直接计算两点间球面距离，单位公里)
// 构图时用它计算每条边的物理距离
// 对称: HaversineDistance(A,B) == HaversineDistance(B,A)，两点重合时为 0
func HaversineDistance(p1, p2 model.Point) float64 {
	lat1 := DegreesToRadians(p1.Lat)
	lat2 := DegreesToRadians(p2.Lat)

	dLat := DegreesToRadians(p2.Lat - p1.Lat)
	dLon := DegreesToRadians(p2.Lon - p1.Lon)

	// a = sin²(Δlat/2) + cos(lat1) * cos(lat2) * sin²(Δlon/2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// c = 2 * atan2(√a, √(1-a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}
