package http

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/scies/greenchem/internal/config"
	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/service"
	"github.com/scies/greenchem/internal/utils"
	"github.com/scies/greenchem/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	createUserFn    func(ctx context.Context, user models.User, password string) (models.User, error)
	deleteUserFn    func(ctx context.Context, username string) error
	resetPasswordFn func(ctx context.Context, username, newPassword string) error
	listUsersFn     func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.createUserFn(ctx, user, password)
}

func (m *mockUserService) DeleteUser(ctx context.Context, username string) error {
	return m.deleteUserFn(ctx, username)
}

func (m *mockUserService) ResetPassword(ctx context.Context, username, newPassword string) error {
	return m.resetPasswordFn(ctx, username, newPassword)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) EnsureAdmin(ctx context.Context) error {
	return nil
}

// mockLookupService implements service.LookupService for unit tests.
type mockLookupService struct {
	searchFn func(ctx context.Context, username string, request models.SearchRequest) (models.ChemicalRecord, bool, error)
}

func (m *mockLookupService) Search(ctx context.Context, username string, request models.SearchRequest) (models.ChemicalRecord, bool, error) {
	return m.searchFn(ctx, username, request)
}

// mockAuditService implements service.AuditService for unit tests.
type mockAuditService struct {
	listFn      func(ctx context.Context, start, end time.Time) ([]models.QueryLogEntry, error)
	exportCSVFn func(ctx context.Context, w io.Writer, start, end time.Time) error
	statsFn     func(ctx context.Context, start, end time.Time) (models.QueryLogStats, error)
}

func (m *mockAuditService) List(ctx context.Context, start, end time.Time) ([]models.QueryLogEntry, error) {
	return m.listFn(ctx, start, end)
}

func (m *mockAuditService) ExportCSV(ctx context.Context, w io.Writer, start, end time.Time) error {
	return m.exportCSVFn(ctx, w, start, end)
}

func (m *mockAuditService) Stats(ctx context.Context, start, end time.Time) (models.QueryLogStats, error) {
	return m.statsFn(ctx, start, end)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version      string
	contactEmail string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetContactEmail(ctx context.Context) string {
	return m.contactEmail
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCookieName = "greenchem_session"

func testSessionConfig() config.Session {
	return config.Session{CookieName: testCookieName, ExpiryDays: 7}
}

// newTestHandler builds a Handler whose nil service fields are filled with
// safe defaults.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test", contactEmail: "liwei@scies.org"}
	}

	return NewHandler(svcs, testSessionConfig(), logger.Nop())
}

// signedToken produces a real signed JWT for the given username so that
// round-trip tests exercise actual token parsing.
func signedToken(t *testing.T, username string) models.Token {
	t.Helper()

	token, err := utils.GenerateJWTToken("greenchem", username, time.Hour, "test-sign-key")
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}
	return token
}

// passthroughAuth returns an AuthService mock whose ParseToken accepts any
// token string and yields the given username.
func passthroughAuth(t *testing.T, username string) *mockAuthService {
	t.Helper()

	return &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return signedToken(t, username), nil
		},
	}
}

// deniedAuth returns an AuthService mock that rejects every token.
func deniedAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}
