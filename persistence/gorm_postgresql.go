// persistence/gorm_postgresql.go
package persistence

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GormPostgreSQL is the GORM-backed word store.
type GormPostgreSQL struct {
	db *gorm.DB
}

// WordModel is one dictionary entry. Words are unique per language.
type WordModel struct {
	ID        uint   `gorm:"primaryKey"`
	Language  string `gorm:"uniqueIndex:idx_lang_word;not null"`
	Word      string `gorm:"uniqueIndex:idx_lang_word;not null"`
	CreatedAt time.Time
}

func NewGormPostgreSQL(host string, port int, user, password, dbname string) (*GormPostgreSQL, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Silent,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&WordModel{}); err != nil {
		return nil, err
	}

	return &GormPostgreSQL{db: db}, nil
}

func (p *GormPostgreSQL) LoadWords(language string) ([]string, error) {
	var entries []WordModel
	if err := p.db.Where("language = ?", language).Order("word").Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoWords
	}

	result := make([]string, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.Word)
	}
	return result, nil
}

func (p *GormPostgreSQL) AddWords(language string, words []string) error {
	entries := make([]WordModel, 0, len(words))
	for _, w := range words {
		entries = append(entries, WordModel{Language: language, Word: w})
	}
	if len(entries) == 0 {
		return nil
	}
	return p.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error
}

func (p *GormPostgreSQL) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
