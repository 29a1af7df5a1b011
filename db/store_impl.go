package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crossbeamseed/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SQLStore struct {
	db *gorm.DB
}

var _ Store = (*SQLStore)(nil)

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Ping verifies the underlying database connection is healthy.
func (s *SQLStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sql store is not initialized")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// StartRun records a new SeedRun for seeder under a fresh run id.
func (s *SQLStore) StartRun(seeder model.SeederName) (*model.SeedRun, error) {
	run := &model.SeedRun{
		RunID:     uuid.NewString(),
		Seeder:    seeder,
		StartedAt: time.Now().UTC(),
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("start %s run: %w", seeder, err)
	}
	return run, nil
}

func (s *SQLStore) GetRun(runID string) (*model.SeedRun, error) {
	var run model.SeedRun
	err := s.db.Where("run_id = ?", runID).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return &run, nil
}

// LogAuditEvent writes event to the journal. A failed write is logged and
// otherwise ignored so that it never changes the outcome of a seeding run.
func (s *SQLStore) LogAuditEvent(logger *zap.SugaredLogger, event model.AuditLog) {
	if event.Message == "" {
		event.Message = event.Action
	}

	err := s.db.WithContext(context.Background()).Create(&event).Error
	if err != nil {
		logger.Errorf("failed to write %s audit log for %s: %v", event.Action, event.Email, err)
	}
}

// ListAuditEvents returns the events of runID in the order they were written.
func (s *SQLStore) ListAuditEvents(runID string) ([]model.AuditLog, error) {
	var events []model.AuditLog
	if err := s.db.
		Where("run_id = ?", runID).
		Order("id").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
