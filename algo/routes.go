package algo

import (
	"math"
	"sort"
	"strings"

	"kochi-transit/model"
)

// Step 路径上的一个地点: 到达它所用的交通方式和这一段的增量开销
// 第一步 mode 为 "start"，增量全为零
type Step struct {
	Location        string  `json:"location"`
	Category        string  `json:"type"`
	Mode            string  `json:"mode"`
	SegmentTime     float64 `json:"segment_time"`     // 分钟
	SegmentCost     float64 `json:"segment_cost"`     // 卢比
	SegmentDistance float64 `json:"segment_distance"` // 公里
}

// Route 一种策略搜出的完整路线
type Route struct {
	Strategy      string  `json:"strategy"`
	TotalCost     float64 `json:"total_cost"`
	TotalTime     float64 `json:"total_time"`
	TotalDistance float64 `json:"total_distance"`
	NumSegments   int     `json:"num_segments"`
	Path          []Step  `json:"path"`
}

// FindOptimizedRoutes 查询两地之间的多条优化路线
// 四种策略各搜一遍；路径完全相同的只留先搜到的那条，
// 最后按固定的次级评分 0.6*总费用 + 0.4*总时间 升序排列 (与搜索用的策略权重无关)
// 全部策略都不可达时返回 NoRouteError
func (g *Graph) FindOptimizedRoutes(start, end string) ([]Route, error) {
	startIdx, ok := g.index[start]
	if !ok {
		return nil, &UnknownLocationError{Name: start}
	}
	endIdx, ok := g.index[end]
	if !ok {
		return nil, &UnknownLocationError{Name: end}
	}
	if startIdx == endIdx {
		return nil, ErrIdenticalEndpoints
	}

	var routes []Route
	seen := make(map[string]bool)

	for _, strat := range Strategies {
		st := g.search(startIdx, endIdx, strat.CostWeight, strat.TimeWeight, strat.ConvenienceWeight)

		// 该策略不可达，不算错误，直接跳过
		if st.prevNode[endIdx] < 0 {
			continue
		}

		path := g.reconstructPath(startIdx, endIdx, st)
		if path == nil {
			// 回溯没有落在起点上，属于内部不一致，静默丢弃
			continue
		}

		// 去重: 途经地点序列相同的路线只留一条
		key := pathKey(path)
		if seen[key] {
			continue
		}
		seen[key] = true

		routes = append(routes, Route{
			Strategy:      strat.Name,
			TotalCost:     round2(st.cost[endIdx]),
			TotalTime:     round1(st.time[endIdx]),
			TotalDistance: round2(st.dist[endIdx]),
			NumSegments:   len(path) - 1,
			Path:          path,
		})
	}

	if len(routes) == 0 {
		return nil, &NoRouteError{Start: start, End: end}
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].TotalCost*0.6+routes[i].TotalTime*0.4 <
			routes[j].TotalCost*0.6+routes[j].TotalTime*0.4
	})

	return routes, nil
}

// reconstructPath 从终点沿前驱回溯还原路径
// 回溯步数超过地点总数或者没有落在起点上时返回 nil
func (g *Graph) reconstructPath(start, end int, st *searchState) []Step {
	var chain []int
	for at := end; at >= 0; at = st.prevNode[at] {
		if len(chain) > len(g.locations) {
			return nil
		}
		chain = append(chain, at)
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	if len(chain) == 0 || chain[0] != start {
		return nil
	}

	steps := make([]Step, 0, len(chain))
	for i, idx := range chain {
		loc := g.locations[idx]

		if i == 0 {
			// 起点: 没有到达方式，增量全为零
			steps = append(steps, Step{
				Location: loc.Name,
				Category: loc.Category,
				Mode:     model.ModeStart,
			})
			continue
		}

		edge := st.prevEdge[idx]
		if edge == nil {
			// 正常回溯不会走到这里，兜底标成 unknown
			steps = append(steps, Step{
				Location: loc.Name,
				Category: loc.Category,
				Mode:     "unknown",
			})
			continue
		}

		steps = append(steps, Step{
			Location:        loc.Name,
			Category:        loc.Category,
			Mode:            edge.Mode,
			SegmentTime:     round1(edge.Time),
			SegmentCost:     round2(edge.Cost),
			SegmentDistance: round2(edge.Dist),
		})
	}

	return steps
}

// pathKey 把途经地点序列拼成去重用的键
func pathKey(path []Step) string {
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = s.Location
	}
	return strings.Join(names, "→")
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
