package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionSnapshotModel struct {
	SessionID string `gorm:"primaryKey"`
	Data      []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (sessionSnapshotModel) TableName() string {
	return "session_snapshots"
}

// PostgresStore persists snapshots in a Postgres table, one row per
// session with the snapshot body as jsonb.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore opens the database, verifies connectivity, and
// ensures the snapshot table exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&sessionSnapshotModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate session table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load reads a snapshot; a missing row means no prior session.
func (s *PostgresStore) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	var record sessionSnapshotModel
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query session snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(record.Data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse session snapshot: %w", err)
	}
	return &snap, nil
}

// Save upserts the snapshot row.
func (s *PostgresStore) Save(ctx context.Context, snap *Snapshot) error {
	if snap == nil || snap.SessionID == "" {
		return fmt.Errorf("snapshot requires a session id")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	record := sessionSnapshotModel{
		SessionID: snap.SessionID,
		Data:      data,
	}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			UpdateAll: true,
		}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("failed to upsert session snapshot: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}

var _ Store = (*PostgresStore)(nil)
