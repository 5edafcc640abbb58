package handler

import (
	"errors"
	"net/http"

	"kochi-transit/algo"

	"github.com/gin-gonic/gin"
)

// Graph 全局图对象 (应在 main 中初始化)
var Graph *algo.Graph

// RouteRequest 路线查询请求
type RouteRequest struct {
	Start string `json:"start" binding:"required"` // 起点名
	End   string `json:"end" binding:"required"`   // 终点名
}

// RouteResponse 路线查询响应
type RouteResponse struct {
	Found   bool         `json:"found"`
	Count   int          `json:"count,omitempty"`
	Routes  []algo.Route `json:"routes,omitempty"`
	Message string       `json:"message,omitempty"`
}

// FindRoutes 路线查询接口: 返回多条按综合评分排序的备选路线
func FindRoutes(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	if Graph == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "路网数据未加载"})
		return
	}

	routes, err := Graph.FindOptimizedRoutes(req.Start, req.End)
	if err != nil {
		var unknown *algo.UnknownLocationError
		var noRoute *algo.NoRouteError
		switch {
		case errors.As(err, &unknown):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, algo.ErrIdenticalEndpoints):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &noRoute):
			// 两地之间不可达不是请求错误，照常返回 200
			c.JSON(http.StatusOK, RouteResponse{Found: false, Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, RouteResponse{
		Found:  true,
		Count:  len(routes),
		Routes: routes,
	})
}

// GetLocations 获取目录中全部地点
func GetLocations(c *gin.Context) {
	if Graph == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "路网数据未加载"})
		return
	}

	locations := Graph.Locations()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(locations),
		"locations": locations,
	})
}

// GetLocationByName 按名字获取地点信息
func GetLocationByName(c *gin.Context) {
	name := c.Param("name")

	if Graph == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "路网数据未加载"})
		return
	}

	loc, ok := Graph.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "地点不存在: " + name})
		return
	}

	c.JSON(http.StatusOK, loc)
}

// SearchLocations 搜索地点 (根据名字模糊匹配)
func SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少搜索关键词"})
		return
	}

	if Graph == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "路网数据未加载"})
		return
	}

	results := Graph.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}
