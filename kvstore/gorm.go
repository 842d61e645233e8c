package kvstore

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one row of the slots table.
type Slot struct {
	Key       string    `gorm:"column:slot_key;type:varchar(191);primaryKey"`
	Value     string    `gorm:"column:value;type:longtext;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the database table name.
func (Slot) TableName() string {
	return "slots"
}

// GormSlots stores slots in a SQL table through GORM (MySQL or SQLite).
type GormSlots struct {
	db *gorm.DB
}

// NewGormSlots creates a GORM-backed slot store. The slots table must exist
// (see database.RunMigrations, or AutoMigrate(&Slot{}) in tests).
func NewGormSlots(db *gorm.DB) *GormSlots {
	return &GormSlots{db: db}
}

// Get returns the value at key.
func (s *GormSlots) Get(ctx context.Context, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	var slots []Slot
	if err := s.db.WithContext(ctx).Where("slot_key = ?", key).Limit(1).Find(&slots).Error; err != nil {
		return "", err
	}
	if len(slots) == 0 {
		return "", ErrSlotNotFound
	}
	return slots[0].Value, nil
}

// Set upserts the value at key.
func (s *GormSlots) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	slot := Slot{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}

// Delete removes key.
func (s *GormSlots) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&Slot{}).Error
}
