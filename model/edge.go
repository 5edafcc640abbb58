package model

// Edge 对应两个地点之间的一条有向连线
// To 存目的地点在图中的稠密下标而不是名字，避免搜索热路径上反复做字符串哈希
// 建边时总是成对添加正反两条，费用和耗时完全相同
type Edge struct {
	To   int     // 目的地点下标
	Mode string  // 交通方式
	Time float64 // 耗时 (分钟)
	Dist float64 // 距离 (公里)
	Cost float64 // 费用 (卢比)
}

// 交通方式
const (
	ModeMetro = "metro"
	ModeBus   = "bus"
	ModeAuto  = "auto"
	ModeWalk  = "walk"
	ModeStart = "start" // 仅用于路径第一步
)

// 地铁: 相邻站之间固定耗时和票价，距离按球面距离计算
const (
	MetroHopTime = 2.5 // 相邻站平均 2.5 分钟
	MetroHopCost = 5.0 // 每跳 ₹5
)

// 各接驳方式的耗时换算 (分钟/公里)
const (
	WalkMinPerKm = 15.0
	AutoMinPerKm = 3.0
	BusMinPerKm  = 4.0
)

// 各接驳方式的计价 (卢比)
const (
	WalkCostPerKm = 5.0 // 步行按时间价值折算

	AutoBaseFare  = 20.0 // 起步价
	AutoCostPerKm = 12.0

	BusBaseFare  = 10.0
	BusCostPerKm = 3.0
)

// 建边的距离门槛 (公里)
const (
	MaxWalkDist       = 1.5  // 步行上限
	MaxAutoDist       = 15.0 // 接驳地铁站的 auto 上限
	MinBusDist        = 1.0  // 公交下限 (太近不值得等车)
	MaxBusDist        = 10.0 // 公交上限
	MaxDirectAutoDist = 10.0 // 非地铁地点之间直连 auto 的上限
)
