package db

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"hotpot-server/internal/entities"
)

// TableSnapshot is the sqlite row holding one table's serialized state.
type TableSnapshot struct {
	TableID   string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

type SQLiteStore struct {
	db *gorm.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&TableSnapshot{}); err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Msg("sqlite snapshot store ready")
	return &SQLiteStore{db: gdb}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, tableID string) (*entities.GameState, error) {
	var row TableSnapshot
	err := s.db.WithContext(ctx).First(&row, "table_id = ?", tableID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(row.Data)
}

func (s *SQLiteStore) Save(ctx context.Context, tableID string, state *entities.GameState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}
	row := TableSnapshot{TableID: tableID, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
