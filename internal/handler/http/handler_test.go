// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn     func(ctx context.Context, user models.User) (models.User, error)
	loginFn            func(ctx context.Context, user models.User) (models.User, error)
	createTokenPairFn  func(ctx context.Context, userID int64) (models.TokenPair, error)
	refreshTokensFn    func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	parseAccessTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateTokenPair(ctx context.Context, userID int64) (models.TokenPair, error) {
	return m.createTokenPairFn(ctx, userID)
}

func (m *mockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return m.refreshTokensFn(ctx, refreshToken)
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseAccessTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createNoteFn func(ctx context.Context, note models.Note) (models.Note, error)
	getNoteFn    func(ctx context.Context, userID, noteID int64) (models.Note, error)
	listNotesFn  func(ctx context.Context, userID int64, filter models.NoteFilter) ([]models.Note, error)
	updateNoteFn func(ctx context.Context, note models.Note) (models.Note, error)
	deleteNoteFn func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.createNoteFn(ctx, note)
}

func (m *mockNoteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return m.getNoteFn(ctx, userID, noteID)
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64, filter models.NoteFilter) ([]models.Note, error) {
	return m.listNotesFn(ctx, userID, filter)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.updateNoteFn(ctx, note)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	return m.deleteNoteFn(ctx, userID, noteID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testConfig returns a configuration fixture suitable for handler tests:
// permissive CORS, a rate limit high enough to never trip.
func testConfig() *config.Config {
	return &config.Config{
		Env:                  config.EnvTest,
		Host:                 "127.0.0.1",
		Port:                 3000,
		CORSOrigins:          []string{"http://localhost:3000"},
		RateLimitWindowMS:    60000,
		RateLimitMaxRequests: 10000,
	}
}

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(t *testing.T, auth service.AuthService, notes service.NoteService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		NoteService: notes,
	}
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubTokenPair is a convenience fixture used across multiple tests.
var stubTokenPair = models.TokenPair{
	AccessToken:  "signed.access.token",
	RefreshToken: "signed.refresh.token",
	TokenType:    "Bearer",
	ExpiresIn:    3600,
}
