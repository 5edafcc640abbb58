package algo

import (
	"errors"
	"testing"

	"kochi-transit/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOptimizedRoutesIdenticalEndpoints(t *testing.T) {
	g := mustBuildDefault(t)

	_, err := g.FindOptimizedRoutes("Aluva Metro", "Aluva Metro")
	assert.True(t, errors.Is(err, ErrIdenticalEndpoints))
}

func TestFindOptimizedRoutesUnknownLocation(t *testing.T) {
	g := mustBuildDefault(t)

	_, err := g.FindOptimizedRoutes("NoSuchPlace", "Fort Kochi")
	var unknown *UnknownLocationError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "NoSuchPlace", unknown.Name)

	_, err = g.FindOptimizedRoutes("Fort Kochi", "NoSuchPlace")
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "NoSuchPlace", unknown.Name)
}

// 相邻两站: 唯一一条备选路线，就是那一跳地铁
func TestFindOptimizedRoutesAdjacentMetro(t *testing.T) {
	g := mustBuildDefault(t)

	routes, err := g.FindOptimizedRoutes("Aluva Metro", "Pulinchodu Metro")
	require.NoError(t, err)
	// 四种策略全部选中同一条路径，去重后只剩一条
	require.Len(t, routes, 1)

	r := routes[0]
	assert.Equal(t, 1, r.NumSegments)
	require.Len(t, r.Path, 2)
	assert.Equal(t, "Aluva Metro", r.Path[0].Location)
	assert.Equal(t, model.ModeStart, r.Path[0].Mode)
	assert.Equal(t, "Pulinchodu Metro", r.Path[1].Location)
	assert.Equal(t, model.ModeMetro, r.Path[1].Mode)
	assert.Equal(t, 5.0, r.TotalCost)
	assert.Equal(t, 2.5, r.TotalTime)
	assert.InDelta(t, 1.13, r.TotalDistance, 0.005)
}

// 互相隔绝的两个地点: 所有策略都失败，返回 NoRouteError
func TestFindOptimizedRoutesNoRoute(t *testing.T) {
	catalog := []model.Location{
		{Name: "West End", Lat: 10.0, Lon: 76.3, Category: model.CategoryResidential, Zone: model.ZoneNA, Seq: 1},
		{Name: "Far Hills", Lat: 10.5, Lon: 77.0, Category: model.CategoryResidential, Zone: model.ZoneNA, Seq: 2},
	}
	g, err := BuildNetwork(catalog)
	require.NoError(t, err)

	_, err = g.FindOptimizedRoutes("West End", "Far Hills")
	var noRoute *NoRouteError
	require.True(t, errors.As(err, &noRoute))
	assert.Equal(t, "West End", noRoute.Start)
	assert.Equal(t, "Far Hills", noRoute.End)
}

// 所有查询结果必须满足的结构性质
func TestFindOptimizedRoutesProperties(t *testing.T) {
	g := mustBuildDefault(t)

	queries := [][2]string{
		{"Aluva Town", "Fort Kochi"},
		{"Lulu Mall Edapally", "CUSAT Campus"},
		{"Kakkanad Infopark", "Marine Drive"},
		{"Aluva Metro", "Thripunithura Metro"},
	}

	for _, q := range queries {
		routes, err := g.FindOptimizedRoutes(q[0], q[1])
		require.NoError(t, err, "%s -> %s", q[0], q[1])
		require.NotEmpty(t, routes)

		seen := make(map[string]bool)

		for _, r := range routes {
			require.NotEmpty(t, r.Path)
			assert.Equal(t, len(r.Path)-1, r.NumSegments)

			// 第一步是起点，mode 为 start，增量全零
			first := r.Path[0]
			assert.Equal(t, q[0], first.Location)
			assert.Equal(t, model.ModeStart, first.Mode)
			assert.Zero(t, first.SegmentCost)
			assert.Zero(t, first.SegmentTime)
			assert.Zero(t, first.SegmentDistance)

			assert.Equal(t, q[1], r.Path[len(r.Path)-1].Location)

			// 分段累加和总量在舍入误差内一致
			var cost, time, dist float64
			for _, s := range r.Path {
				cost += s.SegmentCost
				time += s.SegmentTime
				dist += s.SegmentDistance
			}
			assert.InDelta(t, r.TotalCost, cost, 0.05)
			assert.InDelta(t, r.TotalTime, time, 0.3)
			assert.InDelta(t, r.TotalDistance, dist, 0.05)

			// 途经地点序列不允许重复出现
			key := pathKey(r.Path)
			assert.False(t, seen[key], "重复路线: %s", key)
			seen[key] = true
		}

		// 按 0.6*费用 + 0.4*时间 升序
		for i := 0; i+1 < len(routes); i++ {
			a := routes[i].TotalCost*0.6 + routes[i].TotalTime*0.4
			b := routes[i+1].TotalCost*0.6 + routes[i+1].TotalTime*0.4
			assert.LessOrEqual(t, a, b)
		}
	}
}

// 并发查询共享同一张图: 图只读，查询状态各自独立
func TestFindOptimizedRoutesConcurrent(t *testing.T) {
	g := mustBuildDefault(t)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := g.FindOptimizedRoutes("Aluva Town", "Fort Kochi")
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}
