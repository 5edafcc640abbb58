package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"kochi-transit/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	// 从环境变量读取配置 (为了 Docker 部署方便)
	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "kochi")
	password := getEnvOrDefault("DB_PASSWORD", "kochipass")
	dbname := getEnvOrDefault("DB_NAME", "kochitransit")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		host, user, password, dbname, port,
	)

	// 带重试的数据库连接 (Docker 启动时数据库可能还没准备好)
	var err error
	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("等待数据库就绪... (%d/%d): %v", i+1, maxRetries, err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}

	// 自动迁移模式 (自动创建表结构)
	if err := DB.AutoMigrate(&model.Location{}); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	// 地点目录为空时导入内置目录
	var count int64
	DB.Model(&model.Location{}).Count(&count)
	if count == 0 {
		log.Println("检测到地点目录为空，正在导入内置目录...")
		if err := seedCatalog(); err != nil {
			log.Printf("警告: 导入地点目录失败: %v", err)
		} else {
			log.Println("地点目录导入成功!")
		}
	}

	log.Println("数据库连接并初始化成功！")
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// seedCatalog 将内置地点目录批量写入数据库
func seedCatalog() error {
	catalog := model.DefaultCatalog()
	if err := DB.CreateInBatches(catalog, 100).Error; err != nil {
		return fmt.Errorf("插入地点失败: %w", err)
	}
	log.Printf("导入了 %d 个地点", len(catalog))
	return nil
}

// LoadLocations 按目录顺序 (seq 升序) 读取全部地点
func LoadLocations() ([]model.Location, error) {
	var locations []model.Location
	if err := DB.Order("seq").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("查询地点失败: %w", err)
	}
	return locations, nil
}
