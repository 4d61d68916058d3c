package service

import (
	"context"
	"io"
	"time"

	"github.com/scies/greenchem/models"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user models.User, password string) (models.User, error)
	DeleteUser(ctx context.Context, username string) error
	ResetPassword(ctx context.Context, username, newPassword string) error
	ListUsers(ctx context.Context) ([]models.User, error)

	// EnsureAdmin creates the built-in administrator account at startup if
	// it does not exist yet.
	EnsureAdmin(ctx context.Context) error
}

type LookupService interface {
	// Search resolves a CAS number against the dataset and appends an audit
	// record of the attempt. The boolean reports whether a record matched.
	Search(ctx context.Context, username string, request models.SearchRequest) (models.ChemicalRecord, bool, error)
}

type AuditService interface {
	// List returns log entries whose timestamps fall on the given dates,
	// inclusive on both ends. A zero start or end leaves that bound open.
	List(ctx context.Context, start, end time.Time) ([]models.QueryLogEntry, error)
	ExportCSV(ctx context.Context, w io.Writer, start, end time.Time) error
	Stats(ctx context.Context, start, end time.Time) (models.QueryLogStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetContactEmail(ctx context.Context) string
}
