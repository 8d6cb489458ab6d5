package repository

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Username is nullable: Telegram users without a public username would all
// collide on an empty string under the unique index.
type userRecord struct {
	ID       int64   `gorm:"primaryKey"`
	Username *string `gorm:"uniqueIndex"`
	Address  *string `gorm:"index"`
}

func (userRecord) TableName() string { return "users" }

type subscriptionRecord struct {
	UserID    int64  `gorm:"primaryKey;autoIncrement:false"`
	EventName string `gorm:"primaryKey"`
	Address   string `gorm:"primaryKey"`
}

func (subscriptionRecord) TableName() string { return "subscriptions" }

// Open opens (creating if needed) the sqlite database and migrates the
// users and subscriptions tables.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&userRecord{}, &subscriptionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}
