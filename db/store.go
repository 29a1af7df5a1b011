package db

import (
	"errors"

	"crossbeamseed/model"

	"go.uber.org/zap"
)

var ErrRunNotFound = errors.New("seed run not found")

type Store interface {
	StartRun(seeder model.SeederName) (*model.SeedRun, error)
	GetRun(runID string) (*model.SeedRun, error)
	LogAuditEvent(logger *zap.SugaredLogger, event model.AuditLog)
	ListAuditEvents(runID string) ([]model.AuditLog, error)
}
