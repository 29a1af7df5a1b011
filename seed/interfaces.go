package seed

import (
	"context"

	"crossbeamseed/model"
	"crossbeamseed/plugins/supabase"

	"go.uber.org/zap"
)

// ProfileInserter writes rows into a table of the remote database.
type ProfileInserter interface {
	InsertRows(ctx context.Context, table string, rows any) error
}

// AccountCreator creates accounts through the auth admin API.
type AccountCreator interface {
	CreateUser(ctx context.Context, attrs supabase.AdminUserAttributes) (*supabase.User, error)
}

// AuditLogger receives one event per seeded record.
type AuditLogger interface {
	LogAuditEvent(logger *zap.SugaredLogger, event model.AuditLog)
}
