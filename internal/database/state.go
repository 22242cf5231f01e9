package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resumeforge/internal/storage"
	"resumeforge/internal/store"
)

// GormStateStore implements storage.StateStore on top of the snapshot table.
type GormStateStore struct {
	db *gorm.DB
}

// NewGormStateStore migrates the snapshot table and returns the store.
func NewGormStateStore(db *gorm.DB) (*GormStateStore, error) {
	if err := db.AutoMigrate(&StateSnapshot{}); err != nil {
		return nil, fmt.Errorf("migrate state snapshot table: %w", err)
	}
	return &GormStateStore{db: db}, nil
}

func (s *GormStateStore) Load(ctx context.Context) ([]byte, error) {
	var snapshot StateSnapshot
	err := s.db.WithContext(ctx).
		Where("key = ?", store.StorageKey).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrStateNotFound
		}
		return nil, fmt.Errorf("query state snapshot: %w", err)
	}
	return []byte(snapshot.Data), nil
}

func (s *GormStateStore) Save(ctx context.Context, blob []byte) error {
	snapshot := StateSnapshot{
		Key:  store.StorageKey,
		Data: datatypes.JSON(blob),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&snapshot).Error
	if err != nil {
		return fmt.Errorf("upsert state snapshot: %w", err)
	}
	return nil
}
