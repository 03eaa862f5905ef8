package database

import (
	"fmt"
	"log"

	"testcreator_backend/internal/config"
	"testcreator_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
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
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Test{},
		&model.Question{},
		&model.Answer{},
		&model.Result{},
		&model.Token{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seed 空库时写入管理员账号与一份示例测验。
func seed(db *gorm.DB) error {
	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("Pass4Admin"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Name:     "Admin",
			Email:    "admin@testcreator.local",
			Password: string(hashed),
			Role:     model.Admin,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}

		var testCount int64
		db.Model(&model.Test{}).Count(&testCount)
		if testCount == 0 {
			sample := &model.Test{
				Title:       "Are you more like a cat or a dog?",
				Description: "Cats and dogs, what do you prefer?",
				Text:        "Answer a few questions and find out which animal fits you best.",
				UserID:      admin.ID,
				Questions: []model.Question{
					{
						Text: "How do you spend your free time?",
						Answers: []model.Answer{
							{Text: "Sleeping somewhere warm", Value: 1},
							{Text: "Playing outside", Value: 0},
							{Text: "Following people around", Value: -1},
						},
					},
					{
						Text: "A stranger comes to your door. What do you do?",
						Answers: []model.Answer{
							{Text: "Hide and observe", Value: 1},
							{Text: "Greet them enthusiastically", Value: 0},
						},
					},
				},
			}
			if err := db.Create(sample).Error; err != nil {
				return err
			}

			low, mid := 0, 1
			bands := []model.Result{
				{TestID: sample.ID, Text: "You are definitely a dog person.", MaxValue: &low},
				{TestID: sample.ID, Text: "You are more like a cat.", MinValue: &mid},
			}
			for i := range bands {
				if err := db.Create(&bands[i]).Error; err != nil {
					return err
				}
			}
		}
	}

	return nil
}
