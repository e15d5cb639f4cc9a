// 手动触发目录迁移与种子数据脚本
//
// 主应用启动时会自动迁移并在目录为空时写入默认维度/职业数据。
// 此脚本用于手动触发，例如 release 模式下首次部署或清库重建后。
//
// 用法: go run scripts/seed_catalog.go

package main

import (
	"career_guide_backend/internal/config"
	"career_guide_backend/pkg/database"
	"career_guide_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	cfg.ForceMigrate = true
	db, err := database.InitDB(&cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	log.Println("手动触发目录迁移与种子数据...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("迁移失败: %v", err)
	}
	database.Seed(db)
	log.Println("完成！")
}
