package seed

import (
	"context"
	"errors"

	"crossbeamseed/model"
	"crossbeamseed/plugins/supabase"

	"go.uber.org/zap"
)

// ProfileSeeder inserts each profile into the profiles table, one row per
// call, in list order. Failures are reported and never stop the run.
type ProfileSeeder struct {
	Client   ProfileInserter
	Profiles []model.ProfileRecord
	Console  *Console
	Logger   *zap.SugaredLogger

	// Audit and RunID are optional; a nil Audit disables the journal.
	Audit AuditLogger
	RunID string
}

func (s *ProfileSeeder) Run(ctx context.Context) {
	logger := s.logger()
	logger.Infof("seeding %d profiles into %s", len(s.Profiles), supabase.ProfilesTable)

	for _, profile := range s.Profiles {
		err := s.Client.InsertRows(ctx, supabase.ProfilesTable, []model.ProfileRow{profile.Row()})
		if err != nil {
			msg := errorMessage(err)
			s.console().failure("Failed to insert profile for %s: %s", profile.Email, msg)
			logger.Debugw("profile insert failed", "id", profile.ID, "email", profile.Email, "error", err)
			s.audit(profile, model.ActionProfileInsertFailed, msg)
			continue
		}
		s.console().success("Inserted profile for %s", profile.Email)
		s.audit(profile, model.ActionProfileInserted, "")
	}
}

func (s *ProfileSeeder) audit(profile model.ProfileRecord, action, message string) {
	if s.Audit == nil {
		return
	}
	s.Audit.LogAuditEvent(s.logger(), model.AuditLog{
		RunID:    s.RunID,
		Seeder:   model.ProfileSeeder,
		RecordID: profile.ID,
		Email:    profile.Email,
		Action:   action,
		Message:  message,
	})
}

func (s *ProfileSeeder) console() *Console {
	if s.Console == nil {
		s.Console = NewConsole()
	}
	return s.Console
}

func (s *ProfileSeeder) logger() *zap.SugaredLogger {
	if s.Logger == nil {
		s.Logger = zap.NewNop().Sugar()
	}
	return s.Logger
}

// errorMessage returns the backend's own message for an API error and the
// full error text otherwise.
func errorMessage(err error) string {
	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
