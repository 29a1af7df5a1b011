package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"crossbeamseed/model"
	"crossbeamseed/plugins/supabase"

	"go.uber.org/zap"
)

const DefaultUsersFile = "seed_users_data.json"

// LoadUsers reads the JSON array of user records at path.
func LoadUsers(path string) ([]model.UserRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var users []model.UserRecord
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse users file %s: %w", path, err)
	}
	return users, nil
}

// UserSeeder creates one pre-confirmed auth account per record, in order.
// Errors reported by the auth service and unexpected failures of the call are
// reported differently, and neither stops the run.
type UserSeeder struct {
	Client  AccountCreator
	Console *Console
	Logger  *zap.SugaredLogger

	Audit AuditLogger
	RunID string
}

func (s *UserSeeder) Run(ctx context.Context, users []model.UserRecord) {
	logger := s.logger()
	logger.Infof("creating %d users", len(users))

	for _, u := range users {
		created, err := s.createUser(ctx, u)

		var apiErr *supabase.APIError
		switch {
		case err == nil:
			s.console().success("Created user: %s", u.Email)
			logger.Debugw("user created", "email", u.Email, "id", created.ID)
			s.audit(u, model.ActionUserCreated, "")
		case errors.As(err, &apiErr):
			s.console().failure("Error creating %s: %s", u.Email, apiErr.Message)
			s.audit(u, model.ActionUserCreateFailed, apiErr.Message)
		default:
			s.console().failure("Unexpected error for %s: %v", u.Email, err)
			s.audit(u, model.ActionUserCreateErrored, err.Error())
		}
	}
}

// createUser turns a panic inside the client call into an error so a single
// record cannot abort the run.
func (s *UserSeeder) createUser(ctx context.Context, u model.UserRecord) (user *supabase.User, err error) {
	defer func() {
		if r := recover(); r != nil {
			user = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	user, err = s.Client.CreateUser(ctx, supabase.AdminUserAttributes{
		Email:        u.Email,
		Password:     u.Password,
		EmailConfirm: true,
		UserMetadata: u.Metadata(),
	})
	if err == nil && user == nil {
		user = &supabase.User{Email: u.Email}
	}
	return user, err
}

func (s *UserSeeder) audit(u model.UserRecord, action, message string) {
	if s.Audit == nil {
		return
	}
	metadata, err := json.Marshal(u.Metadata())
	if err != nil {
		s.logger().Warnf("failed to encode metadata of %s: %v", u.Email, err)
	}
	s.Audit.LogAuditEvent(s.logger(), model.AuditLog{
		RunID:    s.RunID,
		Seeder:   model.UserSeeder,
		Email:    u.Email,
		Action:   action,
		Message:  message,
		Metadata: string(metadata),
	})
}

func (s *UserSeeder) console() *Console {
	if s.Console == nil {
		s.Console = NewConsole()
	}
	return s.Console
}

func (s *UserSeeder) logger() *zap.SugaredLogger {
	if s.Logger == nil {
		s.Logger = zap.NewNop().Sugar()
	}
	return s.Logger
}
