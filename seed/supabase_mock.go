package seed

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"crossbeamseed/model"
	"crossbeamseed/plugins/supabase"
)

// InsertCall is one captured InsertRows invocation.
type InsertCall struct {
	Table string
	Rows  any
}

// MockSupabaseClient simulates the Supabase REST surfaces for testing
type MockSupabaseClient struct {
	mu sync.Mutex

	insertErrors map[string]error // profile id -> error
	createErrors map[string]error // email -> error
	createPanics map[string]any   // email -> panic value
	nextUserID   int

	// Capture calls for verification
	inserts     []InsertCall
	createCalls []supabase.AdminUserAttributes
}

// NewMockSupabaseClient creates a new mock Supabase client
func NewMockSupabaseClient() *MockSupabaseClient {
	return &MockSupabaseClient{
		insertErrors: make(map[string]error),
		createErrors: make(map[string]error),
		createPanics: make(map[string]any),
		nextUserID:   1,
	}
}

// FailInsert makes inserts of the profile with id return err.
func (m *MockSupabaseClient) FailInsert(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertErrors[id] = err
}

// RejectUser makes account creation for email return an API error carrying message.
func (m *MockSupabaseClient) RejectUser(email, message string) {
	m.FailUser(email, &supabase.APIError{StatusCode: http.StatusUnprocessableEntity, Message: message})
}

// FailUser makes account creation for email return err.
func (m *MockSupabaseClient) FailUser(email string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErrors[email] = err
}

// PanicOnUser makes account creation for email panic with v.
func (m *MockSupabaseClient) PanicOnUser(email string, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createPanics[email] = v
}

// InsertRows records the call and fails if any row carries a scripted id.
func (m *MockSupabaseClient) InsertRows(_ context.Context, table string, rows any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inserts = append(m.inserts, InsertCall{Table: table, Rows: rows})
	if profileRows, ok := rows.([]model.ProfileRow); ok {
		for _, r := range profileRows {
			if err := m.insertErrors[r.ID]; err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateUser records the call and returns the scripted outcome for the email.
func (m *MockSupabaseClient) CreateUser(_ context.Context, attrs supabase.AdminUserAttributes) (*supabase.User, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, attrs)
	panicValue, shouldPanic := m.createPanics[attrs.Email]
	err := m.createErrors[attrs.Email]
	id := m.nextUserID
	m.nextUserID++
	m.mu.Unlock()

	if shouldPanic {
		panic(panicValue)
	}
	if err != nil {
		return nil, err
	}
	return &supabase.User{
		ID:    fmt.Sprintf("00000000-0000-4000-8000-%012d", id),
		Email: attrs.Email,
		Role:  "authenticated",
	}, nil
}

// GetInserts returns the captured InsertRows calls
func (m *MockSupabaseClient) GetInserts() []InsertCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]InsertCall(nil), m.inserts...)
}

// GetCreateCalls returns the captured CreateUser payloads
func (m *MockSupabaseClient) GetCreateCalls() []supabase.AdminUserAttributes {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]supabase.AdminUserAttributes(nil), m.createCalls...)
}
