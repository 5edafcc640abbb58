package algo

import (
	"fmt"
	"sort"

	"kochi-transit/model"
	"kochi-transit/utils"
)

// BuildNetwork 从地点目录构建路网图，构建过程纯函数式: 同一份目录总是得到同一张图
// 建图分三步:
//  1. 地铁线路上相邻两站之间建 metro 边
//  2. 每个非地铁地点接入最近的 3 个地铁站 (按距离分别建 walk/auto/bus 边)
//  3. 非地铁地点两两之间按距离建直连 auto/walk 边
//
// 第 3 步是 O(n²)，目录只有几十个地点时没有问题；目录大幅扩张时应换成空间索引
// 目录中出现重名地点属于数据缺陷，构建直接报错
func BuildNetwork(catalog []model.Location) (*Graph, error) {
	g := &Graph{
		locations: make([]model.Location, 0, len(catalog)),
		index:     make(map[string]int, len(catalog)),
		adj:       make([][]model.Edge, len(catalog)),
	}

	for i, loc := range catalog {
		if _, dup := g.index[loc.Name]; dup {
			return nil, fmt.Errorf("地点目录中存在重名: %s", loc.Name)
		}
		g.index[loc.Name] = i
		g.locations = append(g.locations, loc)
	}

	g.linkMetroLine()
	g.connectToMetro()
	g.addDirectConnections()

	return g, nil
}

// BuildDefaultNetwork 用内置目录构建路网图
func BuildDefaultNetwork() (*Graph, error) {
	return BuildNetwork(model.DefaultCatalog())
}

// addEdgePair 在 i、j 之间成对添加正反两条边，费用耗时相同; 不允许自环
func (g *Graph) addEdgePair(i, j int, mode string, time, dist, cost float64) {
	if i == j {
		return
	}
	g.adj[i] = append(g.adj[i], model.Edge{To: j, Mode: mode, Time: time, Dist: dist, Cost: cost})
	g.adj[j] = append(g.adj[j], model.Edge{To: i, Mode: mode, Time: time, Dist: dist, Cost: cost})
}

// linkMetroLine 按线路顺序连接相邻地铁站
// 只连相邻站，不做全连接; 固定每跳 2.5 分钟 / ₹5，距离按球面距离
func (g *Graph) linkMetroLine() {
	prev := -1
	for i, loc := range g.locations {
		if !loc.IsMetro() {
			continue
		}
		if prev >= 0 {
			dist := utils.HaversineDistance(g.locations[prev].Position(), loc.Position())
			g.addEdgePair(prev, i, model.ModeMetro, model.MetroHopTime, dist, model.MetroHopCost)
		}
		prev = i
	}
}

// connectToMetro 把每个非地铁地点接入最近的 3 个地铁站
// 同一对地点可以同时有 walk/auto/bus 三种边，互不排斥
func (g *Graph) connectToMetro() {
	for i, loc := range g.locations {
		if loc.IsMetro() {
			continue
		}

		for _, ns := range g.nearestStations(i, 3) {
			d := ns.dist

			// 步行: 1.5 公里以内
			if d < model.MaxWalkDist {
				g.addEdgePair(i, ns.idx, model.ModeWalk,
					d*model.WalkMinPerKm, d, d*model.WalkCostPerKm)
			}

			// 三轮车: 15 公里以内都叫得到
			if d < model.MaxAutoDist {
				g.addEdgePair(i, ns.idx, model.ModeAuto,
					d*model.AutoMinPerKm, d, model.AutoBaseFare+d*model.AutoCostPerKm)
			}

			// 公交: 1 到 10 公里之间
			if d > model.MinBusDist && d < model.MaxBusDist {
				g.addEdgePair(i, ns.idx, model.ModeBus,
					d*model.BusMinPerKm, d, model.BusBaseFare+d*model.BusCostPerKm)
			}
		}
	}
}

// addDirectConnections 非地铁地点两两直连
// 10 公里以内补 auto 边，1.5 公里以内再补 walk 边
func (g *Graph) addDirectConnections() {
	for i := range g.locations {
		if g.locations[i].IsMetro() {
			continue
		}
		for j := i + 1; j < len(g.locations); j++ {
			if g.locations[j].IsMetro() {
				continue
			}

			d := utils.HaversineDistance(g.locations[i].Position(), g.locations[j].Position())

			if d < model.MaxDirectAutoDist {
				g.addEdgePair(i, j, model.ModeAuto,
					d*model.AutoMinPerKm, d, model.AutoBaseFare+d*model.AutoCostPerKm)
			}

			if d < model.MaxWalkDist {
				g.addEdgePair(i, j, model.ModeWalk,
					d*model.WalkMinPerKm, d, d*model.WalkCostPerKm)
			}
		}
	}
}

type stationDist struct {
	idx  int
	dist float64
}

// nearestStations 取距离某地点最近的 k 个地铁站
// 对全部站点做线性扫描 (O(站点数))，目录规模下足够
// 稳定排序保证距离相同时按目录顺序取
func (g *Graph) nearestStations(from, k int) []stationDist {
	p := g.locations[from].Position()

	var all []stationDist
	for i, loc := range g.locations {
		if !loc.IsMetro() {
			continue
		}
		all = append(all, stationDist{idx: i, dist: utils.HaversineDistance(p, loc.Position())})
	}

	sort.SliceStable(all, func(a, b int) bool {
		return all[a].dist < all[b].dist
	})

	if len(all) > k {
		all = all[:k]
	}
	return all
}
