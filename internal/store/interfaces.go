package store

import (
	"context"

	"github.com/scies/greenchem/models"
)

// UserRepository manages user accounts in the credential database.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash, plainPassword string) error
	DeleteUser(ctx context.Context, username string) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ChemicalDataset is the read-only lookup view over the substance dataset
// loaded at startup.
type ChemicalDataset interface {
	FindByCAS(cas string) (models.ChemicalRecord, bool)
	Size() int
}

// QueryLogRepository is the append-only audit log of lookup attempts.
type QueryLogRepository interface {
	Append(entry models.QueryLogEntry) error
	LoadAll() ([]models.QueryLogEntry, error)
}
