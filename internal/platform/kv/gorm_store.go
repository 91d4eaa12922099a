package kv

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"regalis_backend/internal/feature/identity/usecase"
)

// EntryModel is the GORM model for one key/value pair.
type EntryModel struct {
	Namespace string `gorm:"primaryKey;size:64"`
	Key       string `gorm:"column:entry_key;primaryKey;size:191"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (EntryModel) TableName() string { return "kv_entries" }

// GormStore implements usecase.KVStore on a SQL table through GORM.
// It works with both the sqlite and the postgres driver.
type GormStore struct {
	db        *gorm.DB
	namespace string
}

var _ usecase.KVStore = (*GormStore)(nil)

// NewGormStore creates a GormStore and migrates its table.
func NewGormStore(db *gorm.DB, namespace string) (*GormStore, error) {
	if namespace == "" {
		namespace = "regalis"
	}
	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GormStore{db: db, namespace: namespace}, nil
}

// Get returns the stored value, or found=false when the key is absent.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m EntryModel
	res := s.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", s.namespace, key).
		Limit(1).
		Find(&m)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return m.Value, true, nil
}

// Set inserts or replaces the value of key.
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	m := EntryModel{Namespace: s.namespace, Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&m).Error
}

// Delete removes key. Deleting a missing key is not an error.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", s.namespace, key).
		Delete(&EntryModel{}).Error
}

// Ping checks the underlying connection pool.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
