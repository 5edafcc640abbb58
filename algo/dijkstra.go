package algo

import (
	"container/heap"
	"math"

	"kochi-transit/model"
)

// Strategy 一组寻路权重，决定综合评分中费用/时间/便利度三者的取舍
type Strategy struct {
	Name              string  `json:"name"`
	CostWeight        float64 `json:"cost_weight"`
	TimeWeight        float64 `json:"time_weight"`
	ConvenienceWeight float64 `json:"convenience_weight"`
}

// Strategies 预设的四种寻路策略，每次查询各跑一遍搜索
// 这是一张数据表: 新增策略只需加一行，不用改搜索算法
var Strategies = []Strategy{
	{Name: "Cheapest", CostWeight: 0.8, TimeWeight: 0.1, ConvenienceWeight: 0.1},
	{Name: "Fastest", CostWeight: 0.1, TimeWeight: 0.8, ConvenienceWeight: 0.1},
	{Name: "Balanced", CostWeight: 0.4, TimeWeight: 0.4, ConvenienceWeight: 0.2},
	{Name: "Most Convenient", CostWeight: 0.2, TimeWeight: 0.3, ConvenienceWeight: 0.5},
}

// 综合评分的归一化基准和惩罚系数
const (
	costNorm     = 200.0 // 费用归一化基准 (卢比)
	timeNorm     = 120.0 // 时间归一化基准 (分钟)
	transferNorm = 5.0   // 换乘次数归一化基准

	modeChangePenalty = 0.3 // 换不同交通方式的便利度惩罚
	longWalkThreshold = 0.5 // 超过 0.5 公里的步行段开始计惩罚
	longWalkPerKm     = 0.2 // 步行惩罚系数 (每公里)
)

// searchState 一次搜索的全部状态，按地点稠密下标索引
// 每次调用各自分配一份，调用结束即废弃，图本身不被改动
type searchState struct {
	score     []float64     // 当前最优综合评分 (不可达为 +Inf)
	cost      []float64     // 最优路径累计费用
	time      []float64     // 最优路径累计时间
	dist      []float64     // 最优路径累计距离
	transfers []int         // 最优路径累计换乘次数
	prevNode  []int         // 最优路径上的前驱下标 (-1 表示尚未到达)
	prevEdge  []*model.Edge // 到达该点使用的边
}

// priorityQueueItem 优先队列中的元素
type priorityQueueItem struct {
	node  int     // 地点下标
	score float64 // 入队时的综合评分
	index int     // 在堆中的索引
}

// priorityQueue 实现 heap.Interface 接口的优先队列
type priorityQueue []*priorityQueueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].score < pq[j].score
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*priorityQueueItem)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄漏
	item.index = -1 // 标记为已移除
	*pq = old[0 : n-1]
	return item
}

// search 多准则 Dijkstra: 松弛的键不是裸距离，而是加权合成的综合评分
//
//	composite = costWeight*归一化费用 + timeWeight*归一化时间
//	          + convenienceWeight*(归一化换乘 + 换方式惩罚 + 长步行惩罚)
//
// 换乘和换方式惩罚只与"到达当前点所用的边"比较，不看完整路径历史。
// 评分依赖到达方式时这会破坏标准 Dijkstra 的最优子结构，严格的做法是把
// 状态按 (地点, 到达方式) 展开；这里保留按地点记单前驱以复现既有行为 (见 DESIGN.md)。
// 所有评分增量非负，节点出堆即定型，终点出堆时提前结束。
// 终点不可达时 prevNode[end] 保持 -1，score 保持 +Inf，由调用方自行判断。
func (g *Graph) search(start, end int, costWeight, timeWeight, convenienceWeight float64) *searchState {
	n := len(g.locations)

	st := &searchState{
		score:     make([]float64, n),
		cost:      make([]float64, n),
		time:      make([]float64, n),
		dist:      make([]float64, n),
		transfers: make([]int, n),
		prevNode:  make([]int, n),
		prevEdge:  make([]*model.Edge, n),
	}
	for i := 0; i < n; i++ {
		st.score[i] = math.Inf(1)
		st.cost[i] = math.Inf(1)
		st.time[i] = math.Inf(1)
		st.dist[i] = math.Inf(1)
		st.prevNode[i] = -1
	}
	st.score[start] = 0
	st.cost[start] = 0
	st.time[start] = 0
	st.dist[start] = 0

	visited := make([]bool, n)

	pq := make(priorityQueue, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &priorityQueueItem{node: start, score: 0})

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*priorityQueueItem)
		u := current.node

		// 堆里可能有同一地点的过期条目，出过堆的直接跳过
		if visited[u] {
			continue
		}
		visited[u] = true

		// 到达终点，提前退出
		if u == end {
			break
		}

		// 到达 u 所用的交通方式 (起点为空)
		prevMode := ""
		if st.prevEdge[u] != nil {
			prevMode = st.prevEdge[u].Mode
		}

		for k := range g.adj[u] {
			edge := &g.adj[u][k]
			v := edge.To

			if visited[v] {
				continue
			}

			newCost := st.cost[u] + edge.Cost
			newTime := st.time[u] + edge.Time
			newDist := st.dist[u] + edge.Dist
			newTransfers := st.transfers[u]

			// 交通方式和到达 u 的方式不同算一次换乘
			changePenalty := 0.0
			if prevMode != "" && prevMode != edge.Mode {
				newTransfers++
				changePenalty = modeChangePenalty
			}

			// 长距离步行惩罚
			walkPenalty := 0.0
			if edge.Mode == model.ModeWalk && edge.Dist > longWalkThreshold {
				walkPenalty = edge.Dist * longWalkPerKm
			}

			// 归一化后加权合成
			normCost := 0.0
			if newCost > 0 {
				normCost = newCost / costNorm
			}
			normTime := 0.0
			if newTime > 0 {
				normTime = newTime / timeNorm
			}
			normTransfers := 0.0
			if newTransfers > 0 {
				normTransfers = float64(newTransfers) / transferNorm
			}

			composite := costWeight*normCost + timeWeight*normTime +
				convenienceWeight*(normTransfers+changePenalty+walkPenalty)

			// 严格小于才更新: 评分打平时保留先找到的路径
			if composite < st.score[v] {
				st.score[v] = composite
				st.cost[v] = newCost
				st.time[v] = newTime
				st.dist[v] = newDist
				st.transfers[v] = newTransfers
				st.prevNode[v] = u
				st.prevEdge[v] = edge
				heap.Push(&pq, &priorityQueueItem{node: v, score: composite})
			}
		}
	}

	return st
}
