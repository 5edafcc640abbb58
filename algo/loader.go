package algo

import (
	"fmt"

	"kochi-transit/db"
)

// LoadFromDB 从数据库按目录顺序读取地点并构建路网图
// 图在启动时构建一次，之后只读
func LoadFromDB() (*Graph, error) {
	locations, err := db.LoadLocations()
	if err != nil {
		return nil, fmt.Errorf("读取地点目录失败: %w", err)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("地点目录为空")
	}
	return BuildNetwork(locations)
}
