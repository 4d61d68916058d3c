package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/models"
)

func newTestUserRepo(t *testing.T, classifier ErrorClassifier) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:         db,
			builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
			classifier: classifier,
			logger:     l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows(userColumns).
		AddRow(user.UserID, user.Username, user.Name, user.Email, user.PasswordHash, user.PlainPassword, user.CreatedAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:      "zhangsan",
		Name:          "张三",
		Email:         "zhangsan@example.org",
		PasswordHash:  "hash",
		PlainPassword: "secret",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.Username, user.Name, user.Email, user.PasswordHash, user.PlainPassword).
		WillReturnResult(sqlmock.NewResult(1, 1))

	saved := user
	saved.UserID = 1
	saved.CreatedAt = time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(user.Username).
		WillReturnRows(userRows(saved))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation_Postgres(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewPostgresErrorClassifier())
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "zhangsan"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolation_SQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "zhangsan"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintUnique,
		})

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "zhangsan"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:        7,
		Username:      "admin",
		Name:          "系统管理员",
		PasswordHash:  "hash",
		PlainPassword: "admin123",
		CreatedAt:     time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(user.Username).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != user.UserID {
		t.Errorf("expected UserID=%d, got %d", user.UserID, found.UserID)
	}
	if found.PlainPassword != user.PlainPassword {
		t.Errorf("expected plain password %q, got %q", user.PlainPassword, found.PlainPassword)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs("newhash", "newsecret", "zhangsan").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), "zhangsan", "newhash", "newsecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdatePassword_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs("newhash", "newsecret", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), "ghost", "newhash", "newsecret")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("zhangsan").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), "zhangsan"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "admin", "系统管理员", "", "hash1", "admin123", now).
		AddRow(2, "zhangsan", "张三", "zhangsan@example.org", "hash2", "secret", now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "admin" || users[1].Username != "zhangsan" {
		t.Errorf("unexpected user order: %v, %v", users[0].Username, users[1].Username)
	}
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("db gone"))

	_, err := repo.ListUsers(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
