package model

import (
	"time"

	"gorm.io/gorm"
)

// A ProfileRecord is a synthetic profile destined for the profiles table.
//
// Email identifies the record on the console only; it is not part of the
// inserted row.
type ProfileRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Username string `json:"username"`
}

// Row returns the columns written to the profiles table.
func (p ProfileRecord) Row() ProfileRow {
	return ProfileRow{
		ID:       p.ID,
		Bio:      p.Bio,
		Location: p.Location,
		Username: p.Username,
	}
}

type ProfileRow struct {
	ID       string `json:"id"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Username string `json:"username"`
}

// A UserRecord is one entry of the users seed file.
type UserRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

// Metadata returns the non-credential fields attached to the created account.
func (u UserRecord) Metadata() UserMetadata {
	return UserMetadata{
		Name:     u.Name,
		Location: u.Location,
		Bio:      u.Bio,
	}
}

type UserMetadata struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

type SeederName string

const (
	ProfileSeeder SeederName = "profiles"
	UserSeeder    SeederName = "users"
)

// Audit actions, one per record outcome.
const (
	ActionProfileInserted     = "PROFILE_INSERTED"
	ActionProfileInsertFailed = "PROFILE_INSERT_FAILED"
	ActionUserCreated         = "USER_CREATED"
	ActionUserCreateFailed    = "USER_CREATE_FAILED"
	ActionUserCreateErrored   = "USER_CREATE_ERRORED"
)

// A SeedRun is one invocation of a seeder.
type SeedRun struct {
	gorm.Model
	RunID     string     `gorm:"size:36;uniqueIndex;not null"`
	Seeder    SeederName `gorm:"type:text;index"`
	StartedAt time.Time
}

type AuditLog struct {
	gorm.Model
	RunID    string     `gorm:"size:36;index"`
	Seeder   SeederName `gorm:"type:text;index"`
	RecordID string     `gorm:"index"` // profile id, empty for users
	Email    string     `gorm:"size:254;index"`
	Action   string     `gorm:"index"`
	Message  string // human-readable message, optional
	Metadata string // optional JSON blob, never credentials
}
