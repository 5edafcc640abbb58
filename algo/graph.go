package algo

import (
	"strings"

	"kochi-transit/model"
)

// Graph 路网图: 地点目录 + 邻接表
// 启动时构建一次，之后只读，可被任意多个查询并发共享而无需加锁
// 地点在目录中的下标同时是邻接表和搜索状态的下标
type Graph struct {
	locations []model.Location // 地点目录 (目录顺序)
	index     map[string]int   // 地点名 -> 稠密下标
	adj       [][]model.Edge   // 邻接表
}

// Lookup 按名字查找地点
func (g *Graph) Lookup(name string) (model.Location, bool) {
	i, ok := g.index[name]
	if !ok {
		return model.Location{}, false
	}
	return g.locations[i], true
}

// Locations 返回目录中全部地点 (目录顺序的拷贝)
func (g *Graph) Locations() []model.Location {
	out := make([]model.Location, len(g.locations))
	copy(out, g.locations)
	return out
}

// Catalog 返回 地点名 -> 地点 的目录映射 (拷贝)
func (g *Graph) Catalog() map[string]model.Location {
	out := make(map[string]model.Location, len(g.locations))
	for _, loc := range g.locations {
		out[loc.Name] = loc
	}
	return out
}

// Neighbors 返回某地点的出边 (拷贝)
func (g *Graph) Neighbors(name string) []model.Edge {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	out := make([]model.Edge, len(g.adj[i]))
	copy(out, g.adj[i])
	return out
}

// LocationAt 按稠密下标取地点
func (g *Graph) LocationAt(i int) model.Location {
	return g.locations[i]
}

// NumLocations 目录中的地点数
func (g *Graph) NumLocations() int {
	return len(g.locations)
}

// Search 按名字模糊搜索地点 (大小写不敏感的子串匹配，目录顺序返回)
func (g *Graph) Search(query string) []model.Location {
	q := strings.ToLower(query)

	results := make([]model.Location, 0)
	for _, loc := range g.locations {
		if strings.Contains(strings.ToLower(loc.Name), q) {
			results = append(results, loc)
		}
	}
	return results
}
