package database

import (
	"fmt"
	"log"

	"classboard_backend/internal/config"
	"classboard_backend/internal/fixture"
	"classboard_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Assignment{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.Discussion{},
		&model.DiscussionReply{},
		&model.Resource{},
		&model.Announcement{},
		&model.Student{},
		&model.Submission{},
		&model.Attendance{},
		&model.Progress{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedIfEmpty 空库时灌入种子目录，保证 mysql 与 memory 两种
// 目录驱动起步看到的数据一致
func seedIfEmpty(db *gorm.DB) error {
	var count int64
	db.Model(&model.Class{}).Count(&count)
	if count > 0 {
		return nil
	}

	data := fixture.Load()

	return db.Transaction(func(tx *gorm.DB) error {
		for _, user := range data.Users {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&data.Classes).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Assignments).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Quizzes).Error; err != nil {
			return err
		}
		for _, discussion := range data.Discussions {
			if err := tx.Create(&discussion).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&data.Resources).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Announcements).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Students).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Submissions).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Attendance).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Progress).Error; err != nil {
			return err
		}
		log.Println("Seed catalog inserted")
		return nil
	})
}
