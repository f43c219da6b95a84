package database

import (
	"fmt"
	"log"

	"millionaire_backend/internal/config"
	"millionaire_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式下默认不迁移，需通过 -migrate 显式开启
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Question{},
			&model.Game{},
			&model.GameQuestion{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	// 空题库时写入一套启动题目，保证每个难度至少能抽到一题
	var count int64
	db.Model(&model.Question{}).Count(&count)
	if count == 0 {
		for _, q := range seedQuestions {
			db.Create(&q)
		}
		log.Printf("Seeded %d starter questions", len(seedQuestions))
	}

	return db, nil
}

// 启动题目，answer1 为正确答案，展示顺序由每局游戏的字母映射打乱
var seedQuestions = []model.Question{
	{Level: 0, Text: "How many letters are in the English alphabet?", Answer1: "26", Answer2: "24", Answer3: "28", Answer4: "30"},
	{Level: 1, Text: "Which planet is known as the Red Planet?", Answer1: "Mars", Answer2: "Venus", Answer3: "Jupiter", Answer4: "Mercury"},
	{Level: 2, Text: "What is the capital of France?", Answer1: "Paris", Answer2: "Lyon", Answer3: "Marseille", Answer4: "Nice"},
	{Level: 3, Text: "How many continents are there on Earth?", Answer1: "7", Answer2: "5", Answer3: "6", Answer4: "8"},
	{Level: 4, Text: "Which gas do plants absorb from the atmosphere?", Answer1: "Carbon dioxide", Answer2: "Oxygen", Answer3: "Nitrogen", Answer4: "Hydrogen"},
	{Level: 5, Text: "Who wrote the play Romeo and Juliet?", Answer1: "William Shakespeare", Answer2: "Charles Dickens", Answer3: "Oscar Wilde", Answer4: "Mark Twain"},
	{Level: 6, Text: "What is the largest ocean on Earth?", Answer1: "Pacific", Answer2: "Atlantic", Answer3: "Indian", Answer4: "Arctic"},
	{Level: 7, Text: "In which year did the first man walk on the Moon?", Answer1: "1969", Answer2: "1965", Answer3: "1971", Answer4: "1959"},
	{Level: 8, Text: "What is the chemical symbol for gold?", Answer1: "Au", Answer2: "Ag", Answer3: "Gd", Answer4: "Go"},
	{Level: 9, Text: "Which country hosted the 2008 Summer Olympics?", Answer1: "China", Answer2: "Greece", Answer3: "Australia", Answer4: "Brazil"},
	{Level: 10, Text: "What is the smallest prime number greater than 100?", Answer1: "101", Answer2: "103", Answer3: "107", Answer4: "109"},
	{Level: 11, Text: "Who developed the theory of general relativity?", Answer1: "Albert Einstein", Answer2: "Isaac Newton", Answer3: "Niels Bohr", Answer4: "Max Planck"},
	{Level: 12, Text: "Which element has the highest melting point?", Answer1: "Tungsten", Answer2: "Titanium", Answer3: "Platinum", Answer4: "Iron"},
	{Level: 13, Text: "In what year was the United Nations founded?", Answer1: "1945", Answer2: "1919", Answer3: "1950", Answer4: "1939"},
	{Level: 14, Text: "What is the rarest naturally occurring element on Earth?", Answer1: "Astatine", Answer2: "Francium", Answer3: "Promethium", Answer4: "Technetium"},
}
