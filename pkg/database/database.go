package database

import (
	"career_guide_backend/internal/config"
	"career_guide_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbc := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbc.User,
		dbc.Password,
		dbc.Host,
		dbc.Port,
		dbc.DBName,
		dbc.Charset,
		dbc.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认跳过自动迁移，需通过 -migrate 显式触发
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		Seed(db)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Aptitude{},
		&model.Question{},
		&model.Option{},
		&model.Career{},
		&model.University{},
		&model.TestRecord{},
		&model.TestAnswer{},
		&model.AptitudeScore{},
	)
}

// Seed 参考数据为空时写入默认目录数据
func Seed(db *gorm.DB) {
	var aptCount int64
	db.Model(&model.Aptitude{}).Count(&aptCount)
	if aptCount == 0 {
		defaultAptitudes := []model.Aptitude{
			{Name: "数理逻辑", Description: "数学推理、抽象建模与问题求解能力"},
			{Name: "语言表达", Description: "书面与口头表达、阅读理解能力"},
			{Name: "空间想象", Description: "图形、结构与空间关系的感知能力"},
			{Name: "人际沟通", Description: "协作、倾听与组织协调能力"},
			{Name: "艺术创造", Description: "审美、设计与创意表达能力"},
			{Name: "自然探究", Description: "观察、实验与科学探究能力"},
		}
		for _, a := range defaultAptitudes {
			db.Create(&a)
		}
	}

	var careerCount int64
	db.Model(&model.Career{}).Count(&careerCount)
	if careerCount == 0 {
		var math, lang, space model.Aptitude
		db.Where("name = ?", "数理逻辑").First(&math)
		db.Where("name = ?", "语言表达").First(&lang)
		db.Where("name = ?", "空间想象").First(&space)

		defaultCareers := []model.Career{
			{Name: "软件工程师", Description: "设计与实现软件系统", Aptitudes: []model.Aptitude{math, space}},
			{Name: "数据分析师", Description: "从数据中提炼结论与决策支持", Aptitudes: []model.Aptitude{math}},
			{Name: "新闻编辑", Description: "采编、撰写与传播内容", Aptitudes: []model.Aptitude{lang}},
			{Name: "建筑设计师", Description: "建筑与空间设计", Aptitudes: []model.Aptitude{space, math}},
		}
		for _, c := range defaultCareers {
			db.Create(&c)
		}
	}
}
