package main

import (
	"fmt"
	"log"

	"kochi-transit/algo"
	"kochi-transit/db"
	"kochi-transit/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("=== Kochi Transit - 多模式出行路线优化服务 ===")

	// 1. 加载 .env 配置 (文件不存在时沿用进程环境变量)
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用默认配置")
	}

	// 2. 初始化数据库
	// 连接 PostgreSQL，自动迁移表结构
	// 第一次运行会自动导入内置的高知地点目录
	db.InitDB()

	// 3. 构建路网图 (从数据库读取目录)
	// 启动时构建一次，之后只读，所有查询并发共享同一张图
	fmt.Println("正在构建路网图...")
	graph, err := algo.LoadFromDB()
	if err != nil {
		log.Fatalf("构建路网图失败: %v", err)
	}
	fmt.Printf("路网构建成功! 地点数: %d\n", graph.NumLocations())

	// 4. 将图对象传递给 handler (用于路线查询接口)
	handler.Graph = graph

	// 5. 初始化 Gin 引擎
	r := gin.Default()

	// 6. 配置路由
	setupRoutes(r)

	// 7. 启动服务器
	fmt.Println("\n服务器启动中...")
	fmt.Println("访问地址: http://localhost:8080")
	fmt.Println("API:")
	fmt.Println("  - POST   /api/routes/find       - 路线查询")
	fmt.Println("  - GET    /api/locations         - 获取全部地点")
	fmt.Println("  - GET    /api/locations/search  - 搜索地点")
	fmt.Println("  - GET    /api/locations/:name   - 获取指定地点")
	fmt.Println("\n按 Ctrl+C 退出")

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}

// setupRoutes 配置路由
func setupRoutes(r *gin.Engine) {
	// CORS 跨域中间件
	r.Use(cors.Default())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// API 路由组
	api := r.Group("/api")
	{
		api.POST("/routes/find", handler.FindRoutes)
		api.GET("/locations", handler.GetLocations)
		api.GET("/locations/search", handler.SearchLocations)
		api.GET("/locations/:name", handler.GetLocationByName)
	}
}
