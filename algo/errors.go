package algo

import (
	"errors"
	"fmt"
)

// 查询类错误都以结构化结果返回给调用方，核心不做任何内部重试
// 单个策略搜不到路不算错误，只是从备选列表里消失

// ErrIdenticalEndpoints 起点和终点是同一个地点
var ErrIdenticalEndpoints = errors.New("起点和终点相同")

// UnknownLocationError 起点或终点不在地点目录中
type UnknownLocationError struct {
	Name string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("地点不存在: %s", e.Name)
}

// NoRouteError 全部策略都未能到达终点
type NoRouteError struct {
	Start string
	End   string
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("未找到从 %s 到 %s 的路线", e.Start, e.End)
}
