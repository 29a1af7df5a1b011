package seed

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"crossbeamseed/db"
	"crossbeamseed/model"
	"crossbeamseed/plugins/supabase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAuditStore creates an in-memory audit journal for testing
func setupAuditStore(t *testing.T) *db.SQLStore {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&model.SeedRun{}, &model.AuditLog{}))
	return db.NewSQLStore(database)
}

func newTestConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Console{Out: &out, Err: &errOut}, &out, &errOut
}

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

var testProfiles = []model.ProfileRecord{
	{ID: "u1", Email: "a@x.com", Bio: "b", Location: "L", Username: "a"},
	{ID: "u2", Email: "b@x.com", Bio: "bio two", Location: "Tampa, FL", Username: "b"},
	{ID: "u3", Email: "c@x.com", Bio: "bio three", Location: "Brandon, FL", Username: "c"},
}

func TestProfileSeeder(t *testing.T) {
	t.Run("single profile prints one success line", func(t *testing.T) {
		mock := NewMockSupabaseClient()
		console, out, errOut := newTestConsole()

		seeder := &ProfileSeeder{Client: mock, Profiles: testProfiles[:1], Console: console}
		seeder.Run(context.Background())

		assert.Equal(t, "✅ Inserted profile for a@x.com\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("one insert per profile in list order", func(t *testing.T) {
		mock := NewMockSupabaseClient()
		console, out, _ := newTestConsole()

		seeder := &ProfileSeeder{Client: mock, Profiles: testProfiles, Console: console}
		seeder.Run(context.Background())

		inserts := mock.GetInserts()
		require.Len(t, inserts, len(testProfiles))
		for i, call := range inserts {
			assert.Equal(t, supabase.ProfilesTable, call.Table)
			rows, ok := call.Rows.([]model.ProfileRow)
			require.True(t, ok)
			require.Len(t, rows, 1)
			assert.Equal(t, testProfiles[i].Row(), rows[0])
		}
		assert.Len(t, lines(out), len(testProfiles))
	})

	t.Run("insert payload carries no email", func(t *testing.T) {
		row := testProfiles[0].Row()
		assert.Equal(t, model.ProfileRow{ID: "u1", Bio: "b", Location: "L", Username: "a"}, row)
	})

	t.Run("failure is reported with the backend message and the run continues", func(t *testing.T) {
		mock := NewMockSupabaseClient()
		mock.FailInsert("u2", &supabase.APIError{
			StatusCode: http.StatusConflict,
			Code:       "23505",
			Message:    `duplicate key value violates unique constraint "profiles_pkey"`,
		})
		console, out, errOut := newTestConsole()

		seeder := &ProfileSeeder{Client: mock, Profiles: testProfiles, Console: console}
		seeder.Run(context.Background())

		assert.Len(t, mock.GetInserts(), 3)
		assert.Equal(t, []string{
			"✅ Inserted profile for a@x.com",
			"✅ Inserted profile for c@x.com",
		}, lines(out))
		assert.Equal(t, []string{
			`❌ Failed to insert profile for b@x.com: duplicate key value violates unique constraint "profiles_pkey"`,
		}, lines(errOut))
	})

	t.Run("transport failure uses the error text", func(t *testing.T) {
		mock := NewMockSupabaseClient()
		mock.FailInsert("u1", errors.New("POST /rest/v1/profiles failed: connection refused"))
		console, _, errOut := newTestConsole()

		seeder := &ProfileSeeder{Client: mock, Profiles: testProfiles[:1], Console: console}
		seeder.Run(context.Background())

		assert.Equal(t, "❌ Failed to insert profile for a@x.com: POST /rest/v1/profiles failed: connection refused\n", errOut.String())
	})

	t.Run("outcomes are journaled under the run id", func(t *testing.T) {
		store := setupAuditStore(t)
		run, err := store.StartRun(model.ProfileSeeder)
		require.NoError(t, err)

		mock := NewMockSupabaseClient()
		mock.FailInsert("u3", &supabase.APIError{StatusCode: http.StatusBadRequest, Message: "bad row"})
		console, _, _ := newTestConsole()

		seeder := &ProfileSeeder{Client: mock, Profiles: testProfiles, Console: console, Audit: store, RunID: run.RunID}
		seeder.Run(context.Background())

		events, err := store.ListAuditEvents(run.RunID)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, model.ActionProfileInserted, events[0].Action)
		assert.Equal(t, "u1", events[0].RecordID)
		assert.Equal(t, model.ActionProfileInserted, events[1].Action)
		assert.Equal(t, model.ActionProfileInsertFailed, events[2].Action)
		assert.Equal(t, "bad row", events[2].Message)
		assert.Equal(t, "c@x.com", events[2].Email)
	})
}

func TestDefaultProfiles(t *testing.T) {
	require.NotEmpty(t, DefaultProfiles)

	ids := make(map[string]struct{}, len(DefaultProfiles))
	usernames := make(map[string]struct{}, len(DefaultProfiles))
	for _, p := range DefaultProfiles {
		assert.Len(t, p.ID, 36, "id %q should be a uuid string", p.ID)
		assert.Equal(t, p.Username+"@email.com", p.Email)
		assert.NotEmpty(t, p.Bio)
		assert.NotEmpty(t, p.Location)
		ids[p.ID] = struct{}{}
		usernames[p.Username] = struct{}{}
	}
	assert.Len(t, ids, len(DefaultProfiles), "ids should be unique")
	assert.Len(t, usernames, len(DefaultProfiles), "usernames should be unique")
}
