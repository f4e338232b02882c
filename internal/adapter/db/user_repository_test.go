package db

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/core/domain"
)

var userColumns = []string{"id", "name", "email", "role", "created_at", "updated_at"}

func TestUserRepository_ListUsers_OrderedByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY name;")).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "Alice", "alice@example.com", "Task Assignee", fixedNow(), fixedNow()).
			AddRow("u-2", "Bob", "bob@example.com", "Task Reviewer", fixedNow(), fixedNow()))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, domain.UserRoleReviewer, users[1].Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsers_RejectsUnknownRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "Alice", "alice@example.com", "Admin", fixedNow(), fixedNow()))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidUserRole)
	assert.True(t, domain.IsStoreError(err))
}

func TestUserRepository_GetUserByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?;")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetUserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	repo.now = fixedNow

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Carol", "carol@example.com", "Task Creator", fixedNow(), fixedNow()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?;")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-3", "Carol", "carol@example.com", "Task Creator", fixedNow(), fixedNow()))

	user, err := repo.CreateUser(context.Background(), domain.CreateUserInput{
		Name:  "Carol",
		Email: "carol@example.com",
		Role:  domain.UserRoleCreator,
	})
	require.NoError(t, err)
	assert.Equal(t, "u-3", user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_RejectsInvalidRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	_, err := repo.CreateUser(context.Background(), domain.CreateUserInput{
		Name:  "Carol",
		Email: "carol@example.com",
		Role:  "Admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUserRole)
	require.NoError(t, mock.ExpectationsWereMet())
}
